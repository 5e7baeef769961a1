package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmiclearn/learning-service/internal/models"
)

func TestValidateRegistration(t *testing.T) {
	bv := NewBusinessValidator()

	tests := []struct {
		name       string
		req        models.RegisterRequest
		wantFields []string
	}{
		{
			name: "valid student",
			req:  models.RegisterRequest{Username: "ada", Password: "secret1", Role: models.RoleStudent},
		},
		{
			name: "valid without role",
			req:  models.RegisterRequest{Username: "grace.h", Password: "secret1"},
		},
		{
			name:       "missing fields",
			req:        models.RegisterRequest{},
			wantFields: []string{"username", "password"},
		},
		{
			name:       "bad username and role",
			req:        models.RegisterRequest{Username: "a b", Password: "secret1", Role: "admin"},
			wantFields: []string{"username", "role"},
		},
		{
			name:       "short password",
			req:        models.RegisterRequest{Username: "ada", Password: "123"},
			wantFields: []string{"password"},
		},
		{
			name:       "password equals username",
			req:        models.RegisterRequest{Username: "student1", Password: "Student1"},
			wantFields: []string{"password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := bv.ValidateRegistration(&tt.req)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestValidationErrors_MatchesSentinel(t *testing.T) {
	errs := NewBusinessValidator().ValidateRegistration(&models.RegisterRequest{})
	require.NotEmpty(t, errs)

	var err error = errs
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.True(t, strings.HasPrefix(err.Error(), "validation failed"))
}

func TestValidationErrors_DoNotEchoPassword(t *testing.T) {
	errs := NewBusinessValidator().ValidateRegistration(&models.RegisterRequest{Username: "ada", Password: "abc"})
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
	assert.Nil(t, errs[0].Value)
}

func TestValidateRegistration_PasswordByteLimit(t *testing.T) {
	bv := New().GetBusinessValidator()

	tests := []struct {
		name     string
		password string
		wantRule string
	}{
		{name: "ascii at limit", password: strings.Repeat("a", MaxPasswordBytes)},
		{name: "ascii over limit", password: strings.Repeat("a", MaxPasswordBytes+1), wantRule: "max_bytes"},
		{name: "multibyte under char count but over byte limit", password: strings.Repeat("é", 40), wantRule: "max_bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := bv.ValidateRegistration(&models.RegisterRequest{Username: "ada", Password: tt.password})
			if tt.wantRule == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "password", errs[0].Field)
			assert.Equal(t, tt.wantRule, errs[0].Rule)
			assert.Nil(t, errs[0].Value)
		})
	}
}
