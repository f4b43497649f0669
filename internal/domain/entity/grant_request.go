package entity

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// GrantRequest типизированное представление проверенного черновика,
// которое уходит в операцию генерации.
type GrantRequest struct {
	OrganizationName   string `mapstructure:"organization_name"`
	Website            string `mapstructure:"website"`
	Mission            string `mapstructure:"mission"`
	Location           string `mapstructure:"location"`
	Sector             string `mapstructure:"sector"`
	ContactEmail       string `mapstructure:"contact_email"`
	ContactPhone       string `mapstructure:"contact_phone"`
	GrantTitle         string `mapstructure:"grant_title"`
	FundingAmount      string `mapstructure:"funding_amount"`
	Purpose            string `mapstructure:"purpose"`
	ProjectDescription string `mapstructure:"project_description"`
	ExpectedOutcomes   string `mapstructure:"expected_outcomes"`
	Timeline           string `mapstructure:"timeline"`
	EvaluationPlan     string `mapstructure:"evaluation_plan"`
}

// NewGrantRequest собирает запрос из значений черновика.
func NewGrantRequest(d *Draft) (GrantRequest, error) {
	var req GrantRequest

	values := d.Values()
	for k, v := range values {
		values[k] = strings.TrimSpace(v)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &req,
		ErrorUnused: true,
	})
	if err != nil {
		return GrantRequest{}, fmt.Errorf("grant request: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return GrantRequest{}, fmt.Errorf("grant request: %w", err)
	}

	return req, nil
}

// Brief возвращает сокращённую проекцию из трёх полей:
// название организации, описание и тема гранта.
func (r GrantRequest) Brief() (organization, description, topic string) {
	return r.OrganizationName, r.Mission, r.GrantTitle
}
