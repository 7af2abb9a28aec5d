package bang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, DefaultTrigger, d.Trigger)
}

func TestLookup(t *testing.T) {
	b, ok := Lookup("Y")
	require.True(t, ok)
	assert.Equal(t, "y", b.Trigger)
	assert.Equal(t, "YouTube", b.Name)

	_, ok = Lookup("doesnotexist")
	assert.False(t, ok)
}

func TestHomeURL(t *testing.T) {
	b, ok := Lookup("gh")
	require.True(t, ok)
	assert.Equal(t, "https://github.com", b.HomeURL())
}
