package validation

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Минимальные длины полей заявки на грант.
const (
	MinOrganizationNameLength   = 2
	MinMissionLength            = 10
	MinLocationLength           = 2
	MinSectorLength             = 2
	MinPhoneLength              = 10
	MinGrantTitleLength         = 2
	MinPurposeLength            = 10
	MinProjectDescriptionLength = 50
	MinExpectedOutcomesLength   = 50
	MinTimelineLength           = 10
	MinEvaluationPlanLength     = 50
)

var (
	// Локальная часть: dot-atom, без точек по краям и подряд.
	emailLocalRegex = regexp.MustCompile(`^[a-z0-9_+-]+(\.[a-z0-9_+-]+)*$`)
	// Домен: метки не начинаются и не заканчиваются дефисом, зона из букв.
	emailDomainRegex = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}$`)

	// Только десятичная запись: ParseFloat принимает ещё hex и подчёркивания.
	decimalRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
)

// Length возвращает длину значения в символах без пробелов по краям.
func Length(value string) int {
	return utf8.RuneCountInString(strings.TrimSpace(value))
}

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := Length(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s must be at least %d characters", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s must be at most %d characters", fieldName, max)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("email is required")
	}

	// Базовая проверка формата
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("invalid email address")
	}

	localPart := parts[0]
	domainPart := parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("invalid email address")
	}

	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("invalid email address")
	}

	if !emailLocalRegex.MatchString(localPart) || !emailDomainRegex.MatchString(domainPart) {
		return fmt.Errorf("invalid email address")
	}

	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateWebsite проверяет, что значение разбирается как абсолютный http(s) URL.
func ValidateWebsite(link string) error {
	linkStr := strings.TrimSpace(link)
	if linkStr == "" {
		return fmt.Errorf("please enter a valid URL")
	}

	parsedURL, err := url.Parse(linkStr)
	if err != nil {
		return fmt.Errorf("please enter a valid URL")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("please enter a valid URL")
	}

	if parsedURL.Host == "" || parsedURL.Hostname() == "" {
		return fmt.Errorf("please enter a valid URL")
	}

	return nil
}

// ValidateNumeric проверяет, что значение непустое и является конечным числом.
func ValidateNumeric(fieldName, value string) error {
	if err := ValidateNonEmpty(fieldName, value); err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	if !decimalRegex.MatchString(value) {
		return fmt.Errorf("%s must be a number", fieldName)
	}

	num, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return fmt.Errorf("%s must be a number", fieldName)
	}

	return nil
}
