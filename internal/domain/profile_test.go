package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFor_KnownCountries(t *testing.T) {
	for _, country := range []string{"USA", "China", "India"} {
		p := ProfileFor(country)
		assert.Equal(t, country, p.Country)
		assert.False(t, p.Default, country)
		assert.Len(t, p.Actions, 5, country)
		assert.NotEmpty(t, p.Description, country)
		assert.NotEmpty(t, p.HighestImpact, country)
	}
	assert.Equal(t, "Water conservation and sustainable agriculture", ProfileFor("India").HighestImpact)
}

func TestProfileFor_Default(t *testing.T) {
	p := ProfileFor("Germany")
	assert.True(t, p.Default)
	assert.Equal(t, "Germany", p.Country)
	assert.Equal(t, GlobalAverageFootprint, p.AverageFootprint)
	assert.Equal(t, "Reducing carbon footprint through daily choices", p.HighestImpact)
	require.Len(t, p.Actions, 5)
	assert.Equal(t, "Use public transport or carpool at least 3x a week", p.Actions[1])
}

func TestProfileFor_ActionsNotShared(t *testing.T) {
	p := ProfileFor("USA")
	p.Actions[0] = "mutated"
	assert.NotEqual(t, "mutated", ProfileFor("USA").Actions[0])
}

func TestEmissionsInsight(t *testing.T) {
	assert.Contains(t, EmissionsInsight("China"), "largest emitter")
	assert.Contains(t, EmissionsInsight("Brazil"), "unique emissions profile")
}

func TestTemperatureMilestones(t *testing.T) {
	m := TemperatureMilestones()
	require.Len(t, m, 6)
	assert.Equal(t, "Paris Agreement target", m[4].Name)
	assert.InDelta(t, 1.5, m[4].Temperature, tolerance)
	assert.Equal(t, "Danger", m[5].Status)
}
