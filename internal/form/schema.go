package form

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ignatzorin/grant-assistant/internal/domain/entity"
	"github.com/ignatzorin/grant-assistant/internal/validation"
)

//go:embed schema.yaml
var defaultSchemaYAML []byte

// RuleKind вид правила проверки поля.
type RuleKind string

const (
	RuleMinLength RuleKind = "min_length"
	RuleURL       RuleKind = "url"
	RuleEmail     RuleKind = "email"
	RuleNumeric   RuleKind = "numeric"
)

// Rule правило проверки одного поля.
type Rule struct {
	Kind RuleKind `yaml:"kind" json:"kind"`
	Min  int      `yaml:"min,omitempty" json:"min,omitempty"`
}

// Field описание поля формы.
type Field struct {
	Name        string `yaml:"name" json:"name"`
	Label       string `yaml:"label" json:"label"`
	Placeholder string `yaml:"placeholder" json:"placeholder"`
	Multiline   bool   `yaml:"multiline" json:"multiline"`
	Rule        Rule   `yaml:"rule" json:"rule"`
}

// Section группа полей формы.
type Section struct {
	ID     string  `yaml:"id" json:"id"`
	Title  string  `yaml:"title" json:"title"`
	Fields []Field `yaml:"fields" json:"fields"`
}

// Schema декларативный набор правил формы.
type Schema struct {
	Sections []Section `yaml:"sections" json:"sections"`

	fields []Field
}

var (
	defaultOnce   sync.Once
	defaultSchema *Schema
)

// Default возвращает встроенную схему. Ошибка разбора встроенного файла считается ошибкой сборки,
// поэтому здесь паника.
func Default() *Schema {
	defaultOnce.Do(func() {
		s, err := Parse(defaultSchemaYAML)
		if err != nil {
			panic(fmt.Sprintf("form: встроенная схема невалидна: %v", err))
		}
		defaultSchema = s
	})
	return defaultSchema
}

// Parse разбирает YAML схему и проверяет, что она покрывает ровно поля черновика.
func Parse(raw []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("form: не удалось разобрать схему: %w", err)
	}

	seen := make(map[string]bool)
	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			if !entity.IsDraftField(f.Name) {
				return nil, fmt.Errorf("form: неизвестное поле %q", f.Name)
			}
			if seen[f.Name] {
				return nil, fmt.Errorf("form: поле %q объявлено дважды", f.Name)
			}
			if err := checkRule(f.Rule); err != nil {
				return nil, fmt.Errorf("form: поле %q: %w", f.Name, err)
			}
			seen[f.Name] = true
			s.fields = append(s.fields, f)
		}
	}

	for _, name := range entity.DraftFields {
		if !seen[name] {
			return nil, fmt.Errorf("form: поле %q не описано", name)
		}
	}

	return &s, nil
}

func checkRule(r Rule) error {
	switch r.Kind {
	case RuleMinLength:
		if r.Min <= 0 {
			return fmt.Errorf("min_length требует min > 0")
		}
	case RuleURL, RuleEmail, RuleNumeric:
	default:
		return fmt.Errorf("неизвестный вид правила %q", r.Kind)
	}
	return nil
}

// Fields возвращает поля в порядке формы.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field ищет поле по имени.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ValidateField проверяет одно значение по правилу поля.
func (s *Schema) ValidateField(name, value string) error {
	f, ok := s.Field(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	return f.Check(value)
}

// Check применяет правило поля к значению.
func (f Field) Check(value string) error {
	switch f.Rule.Kind {
	case RuleMinLength:
		return validation.ValidateLength(f.Label, value, f.Rule.Min, 0)
	case RuleURL:
		return validation.ValidateWebsite(value)
	case RuleEmail:
		return validation.ValidateEmail(value)
	case RuleNumeric:
		return validation.ValidateNumeric(f.Label, value)
	}
	return nil
}

// Validate проверяет все поля черновика. Пустой результат означает, что черновик можно отправлять.
func (s *Schema) Validate(d *entity.Draft) validation.FieldErrors {
	errs := validation.FieldErrors{}
	for _, f := range s.fields {
		if err := f.Check(d.Get(f.Name)); err != nil {
			errs[f.Name] = err.Error()
		}
	}
	return errs
}
