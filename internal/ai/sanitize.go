package ai

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	suggestionPolicyOnce sync.Once
	suggestionPolicy     *bluemonday.Policy

	blankLinesRe = regexp.MustCompile(`\n{3,}`)

	// Возвращаем только то, что экранировал сам StrictPolicy; &lt; и &gt; остаются.
	policyEntities = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&#34;", `"`)
)

func suggestionSanitizer() *bluemonday.Policy {
	suggestionPolicyOnce.Do(func() {
		suggestionPolicy = bluemonday.StrictPolicy()
	})
	return suggestionPolicy
}

// NormalizeSuggestion убирает разметку из ответа модели и схлопывает лишние пустые строки.
// Разметка, спрятанная в сущностях, раскрывается до очистки и удаляется вместе с остальной.
func NormalizeSuggestion(text string) string {
	cleaned := suggestionSanitizer().Sanitize(html.UnescapeString(text))
	return TidySuggestion(policyEntities.Replace(cleaned))
}

// TidySuggestion приводит переносы строк и пробелы по краям, не трогая содержимое.
// Переносы строк сохраняются: результат показывается как pre-wrap текст.
func TidySuggestion(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
