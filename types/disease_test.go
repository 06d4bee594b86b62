package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileForKnownDiseases(t *testing.T) {
	for _, slug := range []string{"flu", "dengue", "covid"} {
		p, ok := ProfileFor(slug)
		assert.True(t, ok, slug)
		assert.Equal(t, slug, p.Slug)
		assert.NotEmpty(t, p.Keywords)
		assert.Greater(t, p.BaselineFactor, 0.0)
	}
}

func TestProfileForNormalizesInput(t *testing.T) {
	p, ok := ProfileFor("  FLU ")
	assert.True(t, ok)
	assert.Equal(t, "flu", p.Slug)
}

func TestProfileForUnknownDefaultsToDengue(t *testing.T) {
	p, ok := ProfileFor("ebola")
	assert.False(t, ok)
	assert.Equal(t, DefaultDisease, p.Slug)

	p, ok = ProfileFor("")
	assert.False(t, ok)
	assert.Equal(t, DefaultDisease, p.Slug)
}

func TestProfilesReturnsCopy(t *testing.T) {
	ps := Profiles()
	assert.Len(t, ps, 3)
	ps[0] = DiseaseProfile{Slug: "clobbered"}

	again := Profiles()
	assert.NotEqual(t, "clobbered", again[0].Slug)
}
