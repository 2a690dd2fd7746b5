package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCategory(t *testing.T) {
	c, ok := FindCategory("barberia")
	require.True(t, ok)
	assert.Equal(t, "Barbería", c.Name)
	assert.Contains(t, c.Services, "Corte")

	_, ok = FindCategory("astrologia")
	assert.False(t, ok)
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("spa"))
	assert.True(t, IsValidCategory("otros"))
	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("Barbería"))
}

func TestCategoriesReturnsCopy(t *testing.T) {
	first := Categories()
	first[0].Slug = "alterado"

	assert.Equal(t, "barberia", Categories()[0].Slug)
}
