package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfigNil(t *testing.T) {
	err := NewValidator().ValidateConfig(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is nil")
}

func TestValidateConfigDefaults(t *testing.T) {
	assert.NoError(t, NewValidator().ValidateConfig(DefaultConfig()))
}

func TestValidateConfigViolations(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "empty instance path",
			mutate:    func(c *Config) { c.Instance.Path = "" },
			wantField: "Path",
		},
		{
			name:      "zero population size",
			mutate:    func(c *Config) { c.Run.PopulationSize = 0 },
			wantField: "PopulationSize",
		},
		{
			name:      "zero tournament size",
			mutate:    func(c *Config) { c.Run.TournamentSize = 0 },
			wantField: "TournamentSize",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Logging.Level = "LOUD" },
			wantField: "Level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := NewValidator().ValidateConfig(cfg)
			require.Error(t, err)

			verrs, ok := err.(ValidationErrors)
			require.True(t, ok, "expected ValidationErrors, got %T", err)
			require.NotEmpty(t, verrs)
			assert.Equal(t, tt.wantField, verrs[0].Field)
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  ValidationError
		want string
	}{
		{
			name: "explicit message wins",
			err:  ValidationError{Field: "Path", Tag: "required", Message: "config is nil"},
			want: "config is nil",
		},
		{
			name: "required",
			err:  ValidationError{Field: "Path", Tag: "required"},
			want: "Path is required",
		},
		{
			name: "min",
			err:  ValidationError{Field: "PopulationSize", Tag: "min"},
			want: "PopulationSize is below its minimum",
		},
		{
			name: "oneof",
			err:  ValidationError{Field: "Level", Tag: "oneof"},
			want: "Level must be one of the allowed values",
		},
		{
			name: "fallthrough",
			err:  ValidationError{Field: "Seed", Tag: "numeric"},
			want: "Seed failed validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestValidationErrorsJoinsMessages(t *testing.T) {
	errs := ValidationErrors{
		{Field: "Path", Tag: "required"},
		{Field: "PopulationSize", Tag: "min"},
	}

	msg := errs.Error()
	assert.True(t, strings.HasPrefix(msg, "validation failed: "))
	assert.Contains(t, msg, "Path is required")
	assert.Contains(t, msg, "PopulationSize is below its minimum")

	assert.Empty(t, ValidationErrors{}.Error())
}
