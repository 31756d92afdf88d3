package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	outfits := All()
	require.Len(t, outfits, 8)

	for i, o := range outfits {
		assert.Equal(t, i+1, o.ID)
		assert.NotEmpty(t, o.Name)
		assert.NotEmpty(t, o.Description)
		assert.NotEmpty(t, o.ImageURL)
	}

	// Callers cannot mutate the gallery through the returned slice.
	outfits[0].Name = "mutated"
	assert.NotEqual(t, "mutated", All()[0].Name)
}

func TestByRef(t *testing.T) {
	for n := 1; n <= 8; n++ {
		o, err := ByRef(n)
		require.NoError(t, err)
		assert.Equal(t, n, o.ID)
	}

	for _, n := range []int{0, -1, 9, 100} {
		_, err := ByRef(n)
		assert.Error(t, err, "ref %d", n)
	}
}
