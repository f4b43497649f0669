package validation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		min     int
		wantErr bool
	}{
		{"below minimum", "A", 2, true},
		{"at minimum", "Ab", 2, false},
		{"surrounding spaces ignored", "  A  ", 2, true},
		{"runes not bytes", "Мир", 3, false},
		{"empty", "", 2, true},
		{"long enough", strings.Repeat("x", 50), 50, false},
		{"one short", strings.Repeat("x", 49), 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLength("Field", tt.value, tt.min, 0)
			if tt.wantErr {
				assert.EqualError(t, err, fmt.Sprintf("Field must be at least %d characters", tt.min))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLength_Max(t *testing.T) {
	assert.Error(t, ValidateLength("Field", "abcdef", 0, 5))
	assert.NoError(t, ValidateLength("Field", "abcde", 0, 5))
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "grants@greenfuture.org", "First.Last+tag@Example.COM", " ok@example.org ", "o_k-1@mail.green-future.org"}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"plain", "a@b", "@example.org", "a@@example.org", "a b@example.org", "a@example.c",
		"a..b@x.com", ".a@x.com", "a.@x.com",
		"a@x..com", "a@-x.com", "a@.x.com", "a@x-.com", "a@x.com.", "a@x.c0m",
	}
	for _, email := range invalid {
		assert.EqualError(t, ValidateEmail(email), "invalid email address", email)
	}
	assert.EqualError(t, ValidateEmail("  "), "email is required")
}

func TestValidateWebsite(t *testing.T) {
	valid := []string{"https://greenfuture.org", "http://example.com/about", "https://sub.example.org:8443/x?y=1"}
	for _, link := range valid {
		assert.NoError(t, ValidateWebsite(link), link)
	}

	invalid := []string{"", "greenfuture.org", "ftp://example.com", "https://", "mailto:a@b.co", "http://%zz"}
	for _, link := range invalid {
		assert.EqualError(t, ValidateWebsite(link), "please enter a valid URL", link)
	}
}

func TestValidateNumeric(t *testing.T) {
	assert.NoError(t, ValidateNumeric("Funding Amount", "75000"))
	assert.NoError(t, ValidateNumeric("Funding Amount", " 1.5e3 "))
	assert.NoError(t, ValidateNumeric("Funding Amount", "-10"))

	assert.EqualError(t, ValidateNumeric("Funding Amount", ""), "Funding Amount is required")
	assert.EqualError(t, ValidateNumeric("Funding Amount", "lots"), "Funding Amount must be a number")
	assert.EqualError(t, ValidateNumeric("Funding Amount", "NaN"), "Funding Amount must be a number")
	assert.EqualError(t, ValidateNumeric("Funding Amount", "Inf"), "Funding Amount must be a number")
	assert.EqualError(t, ValidateNumeric("Funding Amount", "$75,000"), "Funding Amount must be a number")

	for _, v := range []string{"0x1p4", "0x_1p0", "0X10", "1_000", "1e", ".", "+", "1.2.3", "0b101"} {
		assert.EqualError(t, ValidateNumeric("Funding Amount", v), "Funding Amount must be a number", v)
	}
	for _, v := range []string{"0.5", ".5", "5.", "+12", "1E6"} {
		assert.NoError(t, ValidateNumeric("Funding Amount", v), v)
	}
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{}
	assert.True(t, fe.Empty())

	fe["mission"] = "Mission must be at least 10 characters"
	fe["organization_name"] = "Organization Name must be at least 2 characters"

	assert.False(t, fe.Empty())
	assert.True(t, fe.Has("mission"))
	assert.False(t, fe.Has("website"))
	assert.Equal(t, []string{"mission", "organization_name"}, fe.Fields())
	assert.Contains(t, fe.Error(), "mission: Mission must be at least 10 characters")
}
