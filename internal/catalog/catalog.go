// Package catalog holds the authoritative, ordered list of shop items.
//
// A Catalog has exactly one owner and does no locking of its own; callers that
// share it across goroutines must serialize access (see shop.Service).
package catalog

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
)

// Catalog is an ordered sequence of items. Insertion order is the only ordering.
type Catalog struct {
	items []domain.Item
	newID func() string
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{newID: uuid.NewString}
}

// Add appends an item and returns the stored copy with its assigned ID.
// Duplicate names are allowed.
func (c *Catalog) Add(item domain.Item) domain.Item {
	item.ID = c.newID()
	c.items = append(c.items, item)
	return item
}

// Get returns a copy of the item with the given ID
func (c *Catalog) Get(id string) (domain.Item, error) {
	idx := c.IndexOf(id)
	if idx < 0 {
		return domain.Item{}, notFound(id)
	}
	return c.items[idx], nil
}

// Replace overwrites the item with the given ID in place, keeping its position
// and ID. The catalog is unchanged when the ID is unknown.
func (c *Catalog) Replace(id string, item domain.Item) error {
	idx := c.IndexOf(id)
	if idx < 0 {
		return notFound(id)
	}
	item.ID = id
	c.items[idx] = item
	return nil
}

// Remove deletes the item with the given ID, preserving the order of the rest
func (c *Catalog) Remove(id string) error {
	idx := c.IndexOf(id)
	if idx < 0 {
		return notFound(id)
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return nil
}

// ImportAll discards the current contents and installs items in the given
// order. Every installed item gets a fresh ID. The replacement is built
// before the swap, so readers never observe a half-filled catalog.
func (c *Catalog) ImportAll(items []domain.Item) []domain.Item {
	replacement := make([]domain.Item, len(items))
	for i, item := range items {
		item.ID = c.newID()
		replacement[i] = item
	}
	c.items = replacement
	return c.ExportAll()
}

// ExportAll returns a copy of the current sequence
func (c *Catalog) ExportAll() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// IndexOf returns the position of the item with the given ID, or -1
func (c *Catalog) IndexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func notFound(id string) error {
	return fmt.Errorf(ErrMsgItemIDFmt, id, domain.ErrItemNotFound)
}
