package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "git", false},
		{"valid with spaces", "my git", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Required(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestNoWhitespace(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "origin", false},
		{"trailing dash", "review-", false},
		{"empty", "", true},
		{"space", "my remote", true},
		{"tab", "a\tb", true},
		{"newline", "a\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NoWhitespace(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "NoWhitespace(%q) error = %v", tt.input, err)
		})
	}
}

func TestBranchName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"simple", "main", ""},
		{"slash", "feature/login", ""},
		{"dash inside", "release-1.0", ""},
		{"trailing dash", "topic-", ""},
		{"empty", "", "required"},
		{"blank", "  ", "required"},
		{"leading dash", "-main", "must not start"},
		{"space", "my branch", "whitespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BranchName(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBranchNameField(t *testing.T) {
	err := criterio.ValidateStruct(
		BranchNameField("target", "main"),
		BranchNameField("source", ""),
	)
	require.Error(t, err)

	var fe criterio.FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Len(t, fe, 1)
	assert.Equal(t, "source", fe[0].Field)
}
