package board

import (
	"image"

	"github.com/fogleman/gg"
)

// Cache memoizes the rendered image of one layer.
type Cache struct {
	img   image.Image
	valid bool
	size  int
	gen   uint64
	draws int
}

func (c *Cache) Invalidate()        { c.valid = false }
func (c *Cache) Valid() bool        { return c.valid }
func (c *Cache) Gen() uint64        { return c.gen }
func (c *Cache) Draws() int         { return c.draws }
func (c *Cache) Image() image.Image { return c.img }

// get returns the cached image, repainting it first when the slot is stale
// or the size changed.
func (c *Cache) get(size int, paint func(dc *gg.Context)) image.Image {
	if c.valid && c.size == size && c.img != nil {
		return c.img
	}
	dc := gg.NewContext(size, size)
	paint(dc)
	c.img = dc.Image()
	c.size = size
	c.valid = true
	c.gen++
	c.draws++
	return c.img
}

// Caches holds one slot per layer.
type Caches [layerCount]Cache

func (cs *Caches) Slot(l Layer) *Cache { return &cs[l] }

func (cs *Caches) Invalidate(inv Invalidation) {
	for l := Layer(0); l < layerCount; l++ {
		if inv.Has(l) {
			cs[l].Invalidate()
		}
	}
}

// Draws returns the recompute counters of every slot.
func (cs *Caches) Draws() [layerCount]int {
	var out [layerCount]int
	for i := range cs {
		out[i] = cs[i].draws
	}
	return out
}
