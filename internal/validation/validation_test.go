package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Status     string `validate:"omitempty,complaint_status"`
	Priority   string `validate:"omitempty,complaint_priority"`
	Category   string `validate:"omitempty,complaint_category"`
	Department string `validate:"omitempty,complaint_department"`
	Message    string `validate:"omitempty,notblank"`
}

func TestRules(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	tests := []struct {
		name  string
		input sample
		valid bool
	}{
		{"empty is allowed", sample{}, true},
		{"known values", sample{Status: "in-progress", Priority: "low", Category: "drainage", Department: "Utilities"}, true},
		{"unassigned department", sample{Department: "Unassigned"}, true},
		{"unknown status", sample{Status: "closed"}, false},
		{"status is case-sensitive", sample{Status: "Open"}, false},
		{"unknown priority", sample{Priority: "urgent"}, false},
		{"unknown category", sample{Category: "graffiti"}, false},
		{"unknown department", sample{Department: "Parks"}, false},
		{"blank message", sample{Message: "   "}, false},
		{"message", sample{Message: "on it"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegisterOnGinEngine(t *testing.T) {
	assert.NoError(t, Register())
}
