package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qr-dish-reality/internal/cart"
	"qr-dish-reality/internal/domain"
)

var (
	burger = domain.Dish{ID: 1, Name: "Burger", Price: 15.99}
	pizza  = domain.Dish{ID: 2, Name: "Pizza", Price: 18.50}
)

func TestCartAddAndRemove(t *testing.T) {
	tests := []struct {
		name      string
		ops       func(c *cart.Cart)
		wantItems int
		wantLines int
		wantTotal float64
	}{
		{
			name:      "empty cart",
			ops:       func(c *cart.Cart) {},
			wantItems: 0,
			wantLines: 0,
			wantTotal: 0,
		},
		{
			name: "repeated add increments quantity",
			ops: func(c *cart.Cart) {
				c.Add(burger)
				c.Add(burger)
				c.Add(burger)
			},
			wantItems: 3,
			wantLines: 1,
			wantTotal: 47.97,
		},
		{
			name: "two dishes",
			ops: func(c *cart.Cart) {
				c.Add(burger)
				c.Add(pizza)
				c.Add(burger)
			},
			wantItems: 3,
			wantLines: 2,
			wantTotal: 50.48,
		},
		{
			name: "remove decrements quantity",
			ops: func(c *cart.Cart) {
				c.Add(burger)
				c.Add(burger)
				c.Remove(burger.ID)
			},
			wantItems: 1,
			wantLines: 1,
			wantTotal: 15.99,
		},
		{
			name: "remove at quantity one deletes the line",
			ops: func(c *cart.Cart) {
				c.Add(burger)
				c.Remove(burger.ID)
			},
			wantItems: 0,
			wantLines: 0,
			wantTotal: 0,
		},
		{
			name: "remove of unknown dish is a no-op",
			ops: func(c *cart.Cart) {
				c.Add(burger)
				c.Remove(999)
			},
			wantItems: 1,
			wantLines: 1,
			wantTotal: 15.99,
		},
		{
			name: "remove on empty cart never goes negative",
			ops: func(c *cart.Cart) {
				c.Remove(burger.ID)
				c.Remove(burger.ID)
			},
			wantItems: 0,
			wantLines: 0,
			wantTotal: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := cart.New()
			testCase.ops(c)

			assert.Equal(t, testCase.wantItems, c.TotalItems())
			assert.Len(t, c.Lines(), testCase.wantLines)
			assert.InDelta(t, testCase.wantTotal, c.TotalPrice(), 0.001)
		})
	}
}

func TestCartScenarioFromMenu(t *testing.T) {
	// Burger 15.99 x2 + Pizza 18.50 x1.
	c := cart.New()
	c.Add(burger)
	c.Add(pizza)
	c.Add(burger)

	assert.Equal(t, 3, c.TotalItems())
	assert.InDelta(t, 50.48, c.TotalPrice(), 0.001)

	lines := c.Lines()
	assert.Equal(t, "Burger", lines[0].Dish.Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Pizza", lines[1].Dish.Name)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestCartLinesKeepInsertionOrder(t *testing.T) {
	c := cart.New()
	c.Add(pizza)
	c.Add(burger)
	c.Add(pizza)

	lines := c.Lines()
	assert.Equal(t, pizza.ID, lines[0].Dish.ID)
	assert.Equal(t, burger.ID, lines[1].Dish.ID)
}

func TestCartClear(t *testing.T) {
	c := cart.New()
	c.Add(burger)
	c.Add(pizza)
	c.Clear()

	assert.True(t, c.Empty())
	assert.Zero(t, c.TotalItems())
	assert.Zero(t, c.TotalPrice())
}

func TestStoreCheckoutGuard(t *testing.T) {
	s := cart.NewStore()
	s.Add("session-a", 1, burger)

	lines, err := s.BeginCheckout("session-a", 1)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)

	// Second submission while the first is in flight is rejected.
	_, err = s.BeginCheckout("session-a", 1)
	assert.ErrorIs(t, err, cart.ErrCheckoutInFlight)

	// Failure releases the flag and keeps the cart.
	s.EndCheckout("session-a", 1, false)
	gotLines, _, items := s.View("session-a", 1)
	assert.Len(t, gotLines, 1)
	assert.Equal(t, 1, items)

	// Success clears the cart.
	_, err = s.BeginCheckout("session-a", 1)
	assert.NoError(t, err)
	s.EndCheckout("session-a", 1, true)
	gotLines, total, items := s.View("session-a", 1)
	assert.Empty(t, gotLines)
	assert.Zero(t, total)
	assert.Zero(t, items)
}

func TestStoreKeysBySessionAndRestaurant(t *testing.T) {
	s := cart.NewStore()
	s.Add("session-a", 1, burger)
	s.Add("session-b", 1, pizza)
	s.Add("session-a", 2, pizza)

	_, _, items := s.View("session-a", 1)
	assert.Equal(t, 1, items)
	linesB, _, _ := s.View("session-b", 1)
	assert.Equal(t, pizza.ID, linesB[0].Dish.ID)
}

func TestStorePruneIdle(t *testing.T) {
	s := cart.NewStore()
	s.Add("session-idle", 1, burger)
	s.Add("session-busy", 1, pizza)
	_, err := s.BeginCheckout("session-busy", 1)
	assert.NoError(t, err)

	// Zero max-idle makes every untouched cart eligible.
	pruned := s.PruneIdle(0)
	assert.Equal(t, 1, pruned)

	_, _, items := s.View("session-idle", 1)
	assert.Zero(t, items)

	// The in-flight cart survives and finishes its checkout normally.
	_, _, items = s.View("session-busy", 1)
	assert.Equal(t, 1, items)
	s.EndCheckout("session-busy", 1, true)
	_, _, items = s.View("session-busy", 1)
	assert.Zero(t, items)
}

func TestStoreSuccessfulCheckoutDropsMidFlightAdditions(t *testing.T) {
	s := cart.NewStore()
	s.Add("session-a", 1, burger)

	lines, err := s.BeginCheckout("session-a", 1)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)

	// Added after the snapshot was taken, so not part of the submission.
	s.Add("session-a", 1, pizza)

	s.EndCheckout("session-a", 1, true)
	gotLines, _, items := s.View("session-a", 1)
	assert.Empty(t, gotLines)
	assert.Zero(t, items)
}
