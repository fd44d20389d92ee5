package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	require.NotNil(t, r)

	assert.Equal(t, []string{"legal", "code", "finance"}, r.Labels())
}

func TestNewRegistry_Validation(t *testing.T) {
	tests := []struct {
		name    string
		labels  []string
		wantErr error
	}{
		{"no labels", nil, ErrEmptyRegistry},
		{"empty label", []string{"legal", ""}, ErrInvalidLabel},
		{"uppercase label", []string{"Legal"}, ErrInvalidLabel},
		{"multi-word label", []string{"tax law"}, ErrInvalidLabel},
		{"duplicate label", []string{"legal", "legal"}, ErrDuplicateLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.labels...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_Labels_ReturnsCopy(t *testing.T) {
	r := DefaultRegistry()

	labels := r.Labels()
	labels[0] = "mutated"

	assert.Equal(t, []string{"legal", "code", "finance"}, r.Labels())
}

func TestRegistry_Contains(t *testing.T) {
	r := DefaultRegistry()

	assert.True(t, r.Contains("legal"))
	assert.True(t, r.Contains("code"))
	assert.True(t, r.Contains("finance"))
	assert.False(t, r.Contains("medicine"))
	assert.False(t, r.Contains(""))
}

func TestRegistry_StoreDir(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, "legal_chroma", r.StoreDir("legal"))
	assert.Equal(t, "finance_chroma", r.StoreDir("finance"))
}

func TestRegistry_Parse(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name  string
		input string
		want  Domain
	}{
		{"exact label", "legal", Domain("legal")},
		{"surrounding whitespace", "  code \n", Domain("code")},
		{"uppercase model output", "FINANCE", Domain("finance")},
		{"mixed case with newline", "Legal\n", Domain("legal")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_Parse_UnknownDomain(t *testing.T) {
	r := DefaultRegistry()

	for _, input := range []string{"medicine", "", "I think this is a legal question"} {
		_, err := r.Parse(input)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownDomain)
	}
}

func TestValidateDomainLabel(t *testing.T) {
	assert.NoError(t, ValidateDomainLabel("demo"))
	assert.NoError(t, ValidateDomainLabel("legal"))

	assert.ErrorIs(t, ValidateDomainLabel(""), ErrInvalidLabel)
	assert.ErrorIs(t, ValidateDomainLabel("Demo"), ErrInvalidLabel)
	assert.ErrorIs(t, ValidateDomainLabel("two words"), ErrInvalidLabel)
}
