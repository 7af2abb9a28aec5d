package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduper_RejectsDuplicates(t *testing.T) {
	d := NewDeduper(5)
	assert.True(t, d.Add("Weather Today"))
	assert.False(t, d.Add("weather   today")) // same normalized key
	assert.Equal(t, []string{"Weather Today"}, d.Results())
}

func TestDeduper_RejectsEmpty(t *testing.T) {
	d := NewDeduper(5)
	assert.False(t, d.Add("   "))
	assert.Empty(t, d.Results())
}

func TestDeduper_CapsAtMax(t *testing.T) {
	d := NewDeduper(2)
	assert.True(t, d.Add("a"))
	assert.True(t, d.Add("b"))
	assert.False(t, d.Add("c"))
	assert.True(t, d.Full())
}

func TestDeduper_ResultsNeverNil(t *testing.T) {
	d := NewDeduper(5)
	assert.Equal(t, []string{}, d.Results())
}
