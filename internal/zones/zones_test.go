package zones

import (
	"testing"

	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
)

func TestLocateMissingZone(t *testing.T) {
	z := Manager{Zones: zone.New()}
	t.Cleanup(z.Zones.Close)

	_, ok := z.Locate(z.NewPrefix() + "nothing")
	assert.False(t, ok)
}

func TestMarkDisabledManagerPassesThrough(t *testing.T) {
	z := Manager{Zones: zone.New()}
	t.Cleanup(z.Zones.Close)
	z.Zones.SetEnabled(false)

	assert.Equal(t, "text", z.Mark("id", "text"))
	assert.Equal(t, "text", z.Scan("text"))
	_, ok := z.Locate("id")
	assert.False(t, ok)
}
