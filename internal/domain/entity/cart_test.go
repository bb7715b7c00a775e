package entity_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storebot/internal/domain/entity"
)

func TestCart_AddAccumulatesQuantity(t *testing.T) {
	cart := entity.NewCart()
	cart.Add("A1", 3)
	cart.Add("A1", 2)

	items := cart.Items()
	require.Len(t, items, 1, "same code must stay a single line")
	assert.Equal(t, entity.CartItem{ProductCode: "A1", Quantity: 5}, items[0])
}

func TestCart_KeepsInsertionOrder(t *testing.T) {
	cart := entity.NewCart()
	cart.Add("C3", 1)
	cart.Add("A1", 1)
	cart.Add("B2", 1)
	cart.Add("A1", 4)

	items := cart.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "C3", items[0].ProductCode)
	assert.Equal(t, "A1", items[1].ProductCode)
	assert.Equal(t, "B2", items[2].ProductCode)
}

func TestCart_ConcurrentAddsAndReads(t *testing.T) {
	// Quick successive messages from one user can run handlers on
	// separate goroutines; the cart must stay safe under -race.
	cart := entity.NewCart()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cart.Add("A1", 1)
		}()
		go func() {
			defer wg.Done()
			cart.Items()
			cart.Empty()
		}()
	}
	wg.Wait()

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 50, items[0].Quantity, "no addition may be lost")
}

func TestCart_Empty(t *testing.T) {
	cart := entity.NewCart()
	assert.True(t, cart.Empty())
	cart.Add("A1", 1)
	assert.False(t, cart.Empty())
}
