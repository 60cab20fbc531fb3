package cart

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(name string, priceCents int64) Entry {
	return Entry{
		ProductID:  uuid.New(),
		Name:       name,
		PriceCents: priceCents,
	}
}

func TestAddItemMergesByProduct(t *testing.T) {
	c := New()
	shampoo := entry("Hydrating Shampoo", 3200)

	first := c.AddItem(shampoo)
	c.AddItem(shampoo)
	c.AddItem(shampoo)

	items := c.Items()
	require.Len(t, items, 1, "repeat adds must not create new lines")
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, 3, c.TotalItems())
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	c := New()
	c.AddItem(entry("Shampoo", 3200))
	c.AddItem(entry("Conditioner", 3500))
	c.AddItem(entry("Serum", 5800))

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Shampoo", items[0].Name)
	assert.Equal(t, "Conditioner", items[1].Name)
	assert.Equal(t, "Serum", items[2].Name)
}

func TestRemoveItem(t *testing.T) {
	c := New()
	kept := c.AddItem(entry("Shampoo", 3200))
	gone := c.AddItem(entry("Conditioner", 3500))

	c.RemoveItem(gone.ID)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, kept.ID, c.Items()[0].ID)

	// absent id is a no-op
	c.RemoveItem("no-such-id")
	assert.Len(t, c.Items(), 1)
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	item := c.AddItem(entry("Shampoo", 3200))

	c.UpdateQuantity(item.ID, 5)
	assert.Equal(t, 5, c.Items()[0].Quantity)
	assert.Equal(t, 5, c.TotalItems())

	// sets exactly, not an increment
	c.UpdateQuantity(item.ID, 2)
	assert.Equal(t, 2, c.Items()[0].Quantity)

	// zero removes the line
	c.UpdateQuantity(item.ID, 0)
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.TotalItems())
}

func TestUpdateQuantityNegativeRemoves(t *testing.T) {
	c := New()
	item := c.AddItem(entry("Shampoo", 3200))
	c.UpdateQuantity(item.ID, -3)
	assert.Empty(t, c.Items())
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(entry("Shampoo", 3200))
	c.AddItem(entry("Conditioner", 3500))

	c.Clear()
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, int64(0), c.SubtotalCents())
}

func TestTotals(t *testing.T) {
	c := New()
	shampoo := entry("Shampoo", 3200)
	serum := entry("Serum", 5800)

	c.AddItem(shampoo)
	c.AddItem(shampoo)
	c.AddItem(serum)

	// 2 x 3200 + 1 x 5800
	assert.Equal(t, int64(12200), c.SubtotalCents())
	// 8% of 12200 = 976
	assert.Equal(t, int64(976), c.TaxCents())
	assert.Equal(t, int64(13176), c.TotalCents())
}

func TestTaxRoundsHalfUp(t *testing.T) {
	c := New()
	c.AddItem(entry("Scrunchie", 131)) // 8% = 10.48 -> 10

	assert.Equal(t, int64(10), c.TaxCents())

	c2 := New()
	c2.AddItem(entry("Sample", 119)) // 8% = 9.52 -> 10
	assert.Equal(t, int64(10), c2.TaxCents())
}

func TestSubtotalTracksMutations(t *testing.T) {
	c := New()
	shampoo := entry("Shampoo", 3200)
	mousse := entry("Mousse", 2800)

	a := c.AddItem(shampoo)
	b := c.AddItem(mousse)
	c.UpdateQuantity(a.ID, 3)
	c.RemoveItem(b.ID)
	c.AddItem(mousse)

	var want int64
	for _, item := range c.Items() {
		want += item.PriceCents * int64(item.Quantity)
	}
	assert.Equal(t, want, c.SubtotalCents())
	assert.Equal(t, int64(3*3200+2800), c.SubtotalCents())
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	mgr := NewManager(store)
	c, err := mgr.Get("session-1")
	require.NoError(t, err)

	c.AddItem(entry("Shampoo", 3200))
	c.AddItem(entry("Serum", 5800))
	require.NoError(t, mgr.Flush("session-1"))

	// a fresh manager over the same store sees the persisted lines
	mgr2 := NewManager(store)
	reloaded, err := mgr2.Get("session-1")
	require.NoError(t, err)

	require.Len(t, reloaded.Items(), 2)
	assert.Equal(t, c.Items(), reloaded.Items())
	assert.Equal(t, c.SubtotalCents(), reloaded.SubtotalCents())
}

func TestFileStoreMissingSlot(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	items, err := store.Load("never-seen")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartConcurrentRequests(t *testing.T) {
	// Two browser tabs hammering the same session must not corrupt the
	// lines; run with -race.
	mgr := NewManager(NoopStore{})
	shampoo := entry("Shampoo", 3200)
	serum := entry("Serum", 5800)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			c, err := mgr.Get("same-session")
			if assert.NoError(t, err) {
				c.AddItem(shampoo)
			}
		}()
		go func() {
			defer wg.Done()
			c, err := mgr.Get("same-session")
			if assert.NoError(t, err) {
				c.AddItem(serum)
			}
		}()
		go func() {
			defer wg.Done()
			c, err := mgr.Get("same-session")
			if assert.NoError(t, err) {
				_ = c.TotalItems()
				_ = c.TotalCents()
				assert.NoError(t, mgr.Flush("same-session"))
			}
		}()
	}
	wg.Wait()

	c, err := mgr.Get("same-session")
	require.NoError(t, err)
	require.Len(t, c.Items(), 2, "merging must survive concurrent adds")
	assert.Equal(t, 100, c.TotalItems())
	assert.Equal(t, int64(50*3200+50*5800), c.SubtotalCents())
}

func TestManagerSessionsAreIsolated(t *testing.T) {
	mgr := NewManager(NoopStore{})

	a, err := mgr.Get("alice")
	require.NoError(t, err)
	b, err := mgr.Get("bob")
	require.NoError(t, err)

	a.AddItem(entry("Shampoo", 3200))
	assert.Equal(t, 1, a.TotalItems())
	assert.Equal(t, 0, b.TotalItems())

	// same key returns the same container
	again, err := mgr.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, 1, again.TotalItems())
}
