package validation

import (
	"testing"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid address", "test@example.com", true},
		{"missing at sign", "invalid-email", false},
		{"empty", "", false},
		{"subdomain", "guest@mail.example.org", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.input))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"e164 number", "+12345678901", true},
		{"too short", "123", false},
		{"missing plus", "12345678901", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePhone(tt.input))
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"letters digits underscore", "john_doe", true},
		{"too short", "ab", false},
		{"minimum length", "abc", true},
		{"too long", "a123456789012345678901234567890", false},
		{"contains dash", "john-doe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateUsername(tt.input))
		})
	}
}

func TestValidateTelegramHandle(t *testing.T) {
	assert.True(t, ValidateTelegramHandle("@anna_k"))
	assert.True(t, ValidateTelegramHandle("anna_k"))
	assert.False(t, ValidateTelegramHandle("@ann"))
	assert.False(t, ValidateTelegramHandle("anna k"))
}

func TestValidateClock(t *testing.T) {
	assert.True(t, ValidateClock("09:30"))
	assert.True(t, ValidateClock("23:59"))
	assert.False(t, ValidateClock("24:00"))
	assert.False(t, ValidateClock("9:30"))
}

func TestStruct_CollectsFieldErrors(t *testing.T) {
	err := Struct(entity.NewGuest{
		Email: "not-an-email",
		Phone: "123",
	})
	require.Error(t, err)

	apiErr, ok := domainerrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindValidation, apiErr.Kind)

	fields := map[string]string{}
	for _, f := range apiErr.Errors {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "is required", fields["name"])
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
}

func TestStruct_ValidInput(t *testing.T) {
	err := Struct(entity.NewGuest{
		Name:             "Anna",
		TelegramUsername: "@anna_k",
		InvitationMethod: entity.InvitationTelegram,
	})
	assert.NoError(t, err)
}
