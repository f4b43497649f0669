package form

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/grant-assistant/internal/domain/entity"
	"github.com/ignatzorin/grant-assistant/internal/validation"
)

func TestDefault_CoversDraftFieldsInOrder(t *testing.T) {
	s := Default()

	names := make([]string, 0, len(entity.DraftFields))
	for _, f := range s.Fields() {
		names = append(names, f.Name)
	}

	if diff := cmp.Diff(entity.DraftFields, names); diff != "" {
		t.Fatalf("schema field order mismatch (-want +got):\n%s", diff)
	}

	sections := make([]string, 0, len(s.Sections))
	for _, sec := range s.Sections {
		sections = append(sections, sec.ID)
	}
	assert.Equal(t, []string{"organization", "contact", "grant", "project"}, sections)
}

func TestDefault_Rules(t *testing.T) {
	want := map[string]Rule{
		entity.FieldOrganizationName:   {Kind: RuleMinLength, Min: validation.MinOrganizationNameLength},
		entity.FieldWebsite:            {Kind: RuleURL},
		entity.FieldMission:            {Kind: RuleMinLength, Min: validation.MinMissionLength},
		entity.FieldLocation:           {Kind: RuleMinLength, Min: validation.MinLocationLength},
		entity.FieldSector:             {Kind: RuleMinLength, Min: validation.MinSectorLength},
		entity.FieldContactEmail:       {Kind: RuleEmail},
		entity.FieldContactPhone:       {Kind: RuleMinLength, Min: validation.MinPhoneLength},
		entity.FieldGrantTitle:         {Kind: RuleMinLength, Min: validation.MinGrantTitleLength},
		entity.FieldFundingAmount:      {Kind: RuleNumeric},
		entity.FieldPurpose:            {Kind: RuleMinLength, Min: validation.MinPurposeLength},
		entity.FieldProjectDescription: {Kind: RuleMinLength, Min: validation.MinProjectDescriptionLength},
		entity.FieldExpectedOutcomes:   {Kind: RuleMinLength, Min: validation.MinExpectedOutcomesLength},
		entity.FieldTimeline:           {Kind: RuleMinLength, Min: validation.MinTimelineLength},
		entity.FieldEvaluationPlan:     {Kind: RuleMinLength, Min: validation.MinEvaluationPlanLength},
	}

	got := make(map[string]Rule)
	for _, f := range Default().Fields() {
		got[f.Name] = f.Rule
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestSchema_MinLengthBoundaries(t *testing.T) {
	s := Default()

	for _, f := range s.Fields() {
		if f.Rule.Kind != RuleMinLength {
			continue
		}
		t.Run(f.Name, func(t *testing.T) {
			assert.Error(t, s.ValidateField(f.Name, strings.Repeat("a", f.Rule.Min-1)))
			assert.NoError(t, s.ValidateField(f.Name, strings.Repeat("a", f.Rule.Min)))
			assert.Error(t, s.ValidateField(f.Name, strings.Repeat(" ", f.Rule.Min+5)))
		})
	}
}

func TestSchema_Validate_ExactlyViolatingFields(t *testing.T) {
	s := Default()
	d := entity.NewDraft()
	values := map[string]string{
		entity.FieldOrganizationName:   "A",
		entity.FieldWebsite:            "https://example.org",
		entity.FieldMission:            "short",
		entity.FieldLocation:           "Oslo",
		entity.FieldSector:             "Arts",
		entity.FieldContactEmail:       "team@example.org",
		entity.FieldContactPhone:       "0123456789",
		entity.FieldGrantTitle:         "Murals",
		entity.FieldFundingAmount:      "1000",
		entity.FieldPurpose:            "Paint ten walls",
		entity.FieldProjectDescription: strings.Repeat("d", 50),
		entity.FieldExpectedOutcomes:   strings.Repeat("o", 50),
		entity.FieldTimeline:           "Six months",
		entity.FieldEvaluationPlan:     strings.Repeat("e", 50),
	}
	for k, v := range values {
		require.NoError(t, d.Set(k, v))
	}

	errs := s.Validate(d)

	assert.Equal(t, []string{entity.FieldMission, entity.FieldOrganizationName}, errs.Fields())
	assert.Equal(t, "Organization Name must be at least 2 characters", errs[entity.FieldOrganizationName])
	assert.Equal(t, "Mission Statement must be at least 10 characters", errs[entity.FieldMission])

	require.NoError(t, d.Set(entity.FieldOrganizationName, "Ab"))
	require.NoError(t, d.Set(entity.FieldMission, "Ten chars!"))
	assert.True(t, s.Validate(d).Empty())
}

func TestSchema_ValidateField_FormatRules(t *testing.T) {
	s := Default()

	for _, email := range []string{"a..b@x.com", ".a@x.com", "a@-x.com"} {
		assert.Error(t, s.ValidateField(entity.FieldContactEmail, email), email)
	}
	for _, amount := range []string{"0x1p4", "0x_1p0"} {
		assert.Error(t, s.ValidateField(entity.FieldFundingAmount, amount), amount)
	}
	assert.NoError(t, s.ValidateField(entity.FieldContactEmail, "first.last@green-future.org"))
	assert.NoError(t, s.ValidateField(entity.FieldFundingAmount, "75000.50"))
}

func TestSchema_Validate_EmptyDraftFailsEverywhere(t *testing.T) {
	errs := Default().Validate(entity.NewDraft())
	assert.Len(t, errs, len(entity.DraftFields))
}

func TestSchema_ValidateField_Unknown(t *testing.T) {
	assert.Error(t, Default().ValidateField("nickname", "x"))
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"broken yaml", "sections: [\n"},
		{"unknown field", "sections:\n  - id: a\n    fields:\n      - name: nickname\n        rule: {kind: url}\n"},
		{"missing fields", "sections:\n  - id: a\n    fields:\n      - name: website\n        rule: {kind: url}\n"},
		{"bad rule", "sections:\n  - id: a\n    fields:\n      - name: website\n        rule: {kind: regex}\n"},
		{"min_length without min", "sections:\n  - id: a\n    fields:\n      - name: mission\n        rule: {kind: min_length}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParse_RejectsDuplicate(t *testing.T) {
	raw := string(defaultSchemaYAML) + "  - id: extra\n    fields:\n      - name: website\n        rule: {kind: url}\n"
	_, err := Parse([]byte(raw))
	assert.ErrorContains(t, err, "website")
}
