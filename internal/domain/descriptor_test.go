package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyOrder(t *testing.T) {
	want := []string{
		"apple", "berry", "citrus", "dry", "earth", "firm tannins", "floral", "full-bodied",
		"high acidity", "light-bodied", "low acidity", "medium-bodied", "oak", "off-dry",
		"semi-sweet", "smooth tannins", "spice", "stone fruit", "sweet", "tropical",
	}
	assert.Equal(t, 20, Len())
	assert.Equal(t, want, Names())
}

func TestEveryDescriptorHasDescription(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range All() {
		assert.NotEmpty(t, d.Description, d.Name)
		assert.False(t, seen[d.Name], "duplicate descriptor %q", d.Name)
		seen[d.Name] = true
	}
}

func TestAtBounds(t *testing.T) {
	d, ok := At(3)
	require.True(t, ok)
	assert.Equal(t, "dry", d.Name)

	_, ok = At(-1)
	assert.False(t, ok)
	_, ok = At(Len())
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("oak")
	require.True(t, ok)
	assert.Contains(t, d.Description, "oak barrels")
	assert.Equal(t, 12, IndexOf("oak"))

	_, ok = Lookup("Oak")
	assert.False(t, ok)
	assert.Equal(t, -1, IndexOf("petrol"))
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "changed"
	assert.Equal(t, "apple", All()[0].Name)
}
