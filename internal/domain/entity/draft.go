package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/ignatzorin/grant-assistant/internal/pkg/apperror"
)

// Имена полей черновика заявки (каноничный расширенный набор).
const (
	FieldOrganizationName   = "organization_name"
	FieldWebsite            = "website"
	FieldMission            = "mission"
	FieldLocation           = "location"
	FieldSector             = "sector"
	FieldContactEmail       = "contact_email"
	FieldContactPhone       = "contact_phone"
	FieldGrantTitle         = "grant_title"
	FieldFundingAmount      = "funding_amount"
	FieldPurpose            = "purpose"
	FieldProjectDescription = "project_description"
	FieldExpectedOutcomes   = "expected_outcomes"
	FieldTimeline           = "timeline"
	FieldEvaluationPlan     = "evaluation_plan"
)

// DraftFields перечисляет поля в порядке формы.
var DraftFields = []string{
	FieldOrganizationName,
	FieldWebsite,
	FieldMission,
	FieldLocation,
	FieldSector,
	FieldContactEmail,
	FieldContactPhone,
	FieldGrantTitle,
	FieldFundingAmount,
	FieldPurpose,
	FieldProjectDescription,
	FieldExpectedOutcomes,
	FieldTimeline,
	FieldEvaluationPlan,
}

func IsDraftField(field string) bool {
	for _, f := range DraftFields {
		if f == field {
			return true
		}
	}
	return false
}

// Draft черновик заявки на грант. Живёт только в памяти процесса.
// Не потокобезопасен: синхронизацию обеспечивает владелец.
type Draft struct {
	ID        uuid.UUID
	values    map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewDraft() *Draft {
	now := time.Now()
	d := &Draft{
		ID:        uuid.New(),
		values:    make(map[string]string, len(DraftFields)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, f := range DraftFields {
		d.values[f] = ""
	}
	return d
}

func (d *Draft) Set(field, value string) error {
	if !IsDraftField(field) {
		return apperror.Wrap(apperror.ErrUnknownField, apperror.ErrCodeBadRequest, "unknown form field: "+field)
	}
	d.values[field] = value
	d.UpdatedAt = time.Now()
	return nil
}

func (d *Draft) Get(field string) string {
	return d.values[field]
}

// Values возвращает копию значений.
func (d *Draft) Values() map[string]string {
	out := make(map[string]string, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

func (d *Draft) Reset() {
	for _, f := range DraftFields {
		d.values[f] = ""
	}
	d.UpdatedAt = time.Now()
}
