package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabled(t *testing.T) {
	var e Extractor = Disabled{}

	assert.False(t, e.Available())
	assert.Nil(t, e.Extract("VP of Engineering"))
}

func TestProse_Available(t *testing.T) {
	e, err := NewProse()
	require.NoError(t, err)
	assert.True(t, e.Available())
}

func TestProse_ExtractReturnsCategorizedResult(t *testing.T) {
	e, err := NewProse()
	require.NoError(t, err)

	ents := e.Extract("Senior Sales Director at Acme in Berlin reporting to John Smith")
	require.NotNil(t, ents)

	// categorized buckets are always present, even when empty
	assert.NotNil(t, ents.Persons)
	assert.NotNil(t, ents.Organizations)
	assert.NotNil(t, ents.Locations)
	assert.NotNil(t, ents.Misc)
}

func TestProse_ExtractEmptyText(t *testing.T) {
	e, err := NewProse()
	require.NoError(t, err)

	ents := e.Extract("")
	require.NotNil(t, ents)
	assert.Empty(t, ents.Persons)
	assert.Empty(t, ents.Organizations)
	assert.Empty(t, ents.Locations)
	assert.Empty(t, ents.Misc)
}
