package validation

import (
	"sort"
	"strings"
)

// FieldErrors ошибки валидации по полям: имя поля -> сообщение.
// Пустая карта означает, что черновик можно отправлять.
type FieldErrors map[string]string

// Empty сообщает, что ошибок нет.
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

// Has проверяет наличие ошибки для поля.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Fields возвращает отсортированный список полей с ошибками.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range fe.Fields() {
		parts = append(parts, f+": "+fe[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
