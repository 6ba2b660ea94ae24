// Package zones adapts bubblezone to the geometry the widgets work in.
package zones

import (
	"image"

	zone "github.com/lrstanley/bubblezone"
)

// Locator resolves a zone id to the screen rectangle it was last drawn at.
type Locator interface {
	Locate(id string) (image.Rectangle, bool)
}

// Manager marks and locates zones on a bubblezone manager. A nil Manager
// means the global one set up with zone.NewGlobal.
type Manager struct {
	Zones *zone.Manager
}

func (z Manager) Locate(id string) (image.Rectangle, bool) {
	var info *zone.ZoneInfo
	if z.Zones != nil {
		info = z.Zones.Get(id)
	} else {
		info = zone.Get(id)
	}
	if info == nil || info.IsZero() {
		return image.Rectangle{}, false
	}
	// Zone end coordinates are inclusive.
	return image.Rect(info.StartX, info.StartY, info.EndX+1, info.EndY+1), true
}

// Mark wraps v so its position is recorded under id on the next scan.
func (z Manager) Mark(id, v string) string {
	if z.Zones != nil {
		return z.Zones.Mark(id, v)
	}
	return zone.Mark(id, v)
}

// NewPrefix returns a prefix unique to one component.
func (z Manager) NewPrefix() string {
	if z.Zones != nil {
		return z.Zones.NewPrefix()
	}
	return zone.NewPrefix()
}

// Scan records zone positions in v and strips the markers.
func (z Manager) Scan(v string) string {
	if z.Zones != nil {
		return z.Zones.Scan(v)
	}
	return zone.Scan(v)
}

// SetEnabled turns zone tracking on or off.
func (z Manager) SetEnabled(on bool) {
	if z.Zones != nil {
		z.Zones.SetEnabled(on)
		return
	}
	zone.SetEnabled(on)
}
