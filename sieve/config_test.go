package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGeneratorConfig_FieldEquivalence(t *testing.T) {
	got := NewGeneratorConfig(500, true, VariantNaive)
	want := GeneratorConfig{
		Count:        500,
		CollectStats: true,
		Variant:      VariantNaive,
	}
	assert.Equal(t, want, got)
}

func TestNewGeneratorConfig_EmptyVariantDefaultsToDeferred(t *testing.T) {
	got := NewGeneratorConfig(10, false, "")
	assert.Equal(t, VariantDeferred, got.Variant)
}

func TestGeneratorConfig_Validate(t *testing.T) {
	assert.NoError(t, NewGeneratorConfig(1, false, "").Validate())
	assert.NoError(t, NewGeneratorConfig(MaxCount, false, "").Validate())
	assert.Error(t, NewGeneratorConfig(0, false, "").Validate())
	assert.Error(t, NewGeneratorConfig(MaxCount+1, false, "").Validate())
}
