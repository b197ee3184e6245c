package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
)

func newTestCatalog() *Catalog {
	c := New()
	n := 0
	c.newID = func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}
	return c
}

func potion() domain.Item {
	return domain.Item{Name: "Potion", Description: "Heals", Price: 10, Quantity: 5, BuyMultiplier: 2}
}

func sword() domain.Item {
	return domain.Item{Name: "Sword", Price: 99.5, Quantity: 1, BuyMultiplier: 1}
}

func TestAdd_AppendsInOrder(t *testing.T) {
	c := newTestCatalog()

	first := c.Add(potion())
	second := c.Add(sword())
	third := c.Add(potion())

	assert.Equal(t, "item-1", first.ID)
	assert.Equal(t, "item-3", third.ID)

	items := c.ExportAll()
	require.Len(t, items, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, "Potion", items[2].Name, "duplicate names are allowed")
}

func TestAdd_UsesUUIDByDefault(t *testing.T) {
	c := New()
	a := c.Add(potion())
	b := c.Add(potion())

	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGet(t *testing.T) {
	c := newTestCatalog()
	added := c.Add(potion())

	got, err := c.Get(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestReplace(t *testing.T) {
	t.Run("replaces in place and keeps the ID", func(t *testing.T) {
		c := newTestCatalog()
		a := c.Add(potion())
		b := c.Add(sword())

		updated := sword()
		updated.Name = "Great Sword"
		updated.ID = "ignored"
		require.NoError(t, c.Replace(a.ID, updated))

		items := c.ExportAll()
		require.Len(t, items, 2)
		assert.Equal(t, a.ID, items[0].ID)
		assert.Equal(t, "Great Sword", items[0].Name)
		assert.Equal(t, b, items[1])
	})

	t.Run("unknown ID leaves the catalog unchanged", func(t *testing.T) {
		c := newTestCatalog()
		c.Add(potion())
		before := c.ExportAll()

		err := c.Replace("missing", sword())

		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.Equal(t, before, c.ExportAll())
	})
}

func TestReplace_IdenticalValuesAreDistinguishedByID(t *testing.T) {
	c := newTestCatalog()
	a := c.Add(potion())
	b := c.Add(potion())

	edited := potion()
	edited.Quantity = 0
	require.NoError(t, c.Replace(b.ID, edited))

	items := c.ExportAll()
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, 0, items[1].Quantity)
}

func TestRemove(t *testing.T) {
	c := newTestCatalog()
	a := c.Add(potion())
	b := c.Add(sword())
	d := c.Add(potion())

	require.NoError(t, c.Remove(b.ID))

	items := c.ExportAll()
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, d.ID, items[1].ID)

	err := c.Remove(b.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Equal(t, 2, c.Len())
}

func TestImportAll_FullyReplaces(t *testing.T) {
	c := newTestCatalog()
	c.Add(potion())
	c.Add(potion())
	c.Add(potion())

	a := sword()
	b := domain.NewItem("Shield")
	installed := c.ImportAll([]domain.Item{a, b})

	items := c.ExportAll()
	require.Len(t, items, 2)
	assert.Equal(t, installed, items)
	assert.True(t, items[0].SameFields(a))
	assert.True(t, items[1].SameFields(b))
	assert.NotEmpty(t, items[0].ID)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestImportAll_Empty(t *testing.T) {
	c := newTestCatalog()
	c.Add(potion())

	c.ImportAll(nil)

	assert.Equal(t, 0, c.Len())
	assert.NotNil(t, c.ExportAll())
}

func TestImportAll_DoesNotAliasInput(t *testing.T) {
	c := newTestCatalog()
	input := []domain.Item{sword()}

	c.ImportAll(input)
	input[0].Name = "changed"

	items := c.ExportAll()
	assert.Equal(t, "Sword", items[0].Name)
	assert.Empty(t, input[0].ID, "input slice must not receive catalog IDs")
}

func TestExportAll_ReturnsCopy(t *testing.T) {
	c := newTestCatalog()
	c.Add(potion())

	items := c.ExportAll()
	items[0].Quantity = 0
	items = append(items, sword())

	fresh := c.ExportAll()
	require.Len(t, fresh, 1)
	assert.Equal(t, 5, fresh[0].Quantity)
}

func TestIndexOf(t *testing.T) {
	c := newTestCatalog()
	c.Add(potion())
	b := c.Add(sword())

	assert.Equal(t, 1, c.IndexOf(b.ID))
	assert.Equal(t, -1, c.IndexOf("missing"))
}
