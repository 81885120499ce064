package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"qr-dish-reality/internal/cart"
	"qr-dish-reality/internal/domain"
	"qr-dish-reality/internal/mocks"
	"qr-dish-reality/internal/service"
)

func twoLineCart() []cart.Line {
	return []cart.Line{
		{Dish: domain.Dish{ID: 1, Name: "Burger", Price: 15.99}, Quantity: 2},
		{Dish: domain.Dish{ID: 2, Name: "Pizza", Price: 18.50}, Quantity: 1},
	}
}

func TestCheckoutValidation(t *testing.T) {
	tests := []struct {
		name        string
		lines       []cart.Line
		tableNumber string
		wantErr     error
	}{
		{
			name:        "empty table number",
			lines:       twoLineCart(),
			tableNumber: "",
			wantErr:     service.ErrInvalidTableNumber,
		},
		{
			name:        "non numeric table number",
			lines:       twoLineCart(),
			tableNumber: "abc",
			wantErr:     service.ErrInvalidTableNumber,
		},
		{
			name:        "empty cart",
			lines:       nil,
			tableNumber: "5",
			wantErr:     service.ErrEmptyCart,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := new(mocks.OrderRepository)
			publisher := new(mocks.OrderPublisher)
			svc := service.NewCheckoutService(orders, publisher)

			result, err := svc.Submit(context.Background(), 10, testCase.lines, testCase.tableNumber, "")

			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, result)
			// Validation failures must not reach the store.
			orders.AssertNotCalled(t, "InsertOrder", mock.Anything)
			publisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
		})
	}
}

func TestCheckoutCreatesOneRowPerLine(t *testing.T) {
	orders := new(mocks.OrderRepository)
	publisher := new(mocks.OrderPublisher)
	svc := service.NewCheckoutService(orders, publisher)

	var inserted []domain.Order
	nextID := 101
	orders.On("InsertOrder", mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
		order := args.Get(0).(*domain.Order)
		order.ID = nextID
		nextID++
		inserted = append(inserted, *order)
	}).Return(nil)
	publisher.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Submit(context.Background(), 10, twoLineCart(), "7", "no onions")

	assert.NoError(t, err)
	assert.Len(t, inserted, 2)

	// The first inserted row's id is the reported order id.
	assert.Equal(t, 101, result.OrderID)
	assert.Equal(t, 2, result.LineCount)
	assert.InDelta(t, 50.48, result.TotalAmount, 0.001)

	// Rows are written in cart order with shared form fields.
	assert.Equal(t, 1, inserted[0].DishID)
	assert.Equal(t, 2, inserted[0].Quantity)
	assert.Equal(t, 2, inserted[1].DishID)
	assert.Equal(t, 1, inserted[1].Quantity)
	for _, order := range inserted {
		assert.Equal(t, domain.StatusPending, order.Status)
		assert.Equal(t, 10, order.RestaurantID)
		assert.Equal(t, 7, order.TableNumber)
		assert.Equal(t, "no onions", order.CustomerNotes)
	}

	publisher.AssertNumberOfCalls(t, "PublishOrderPlaced", 2)
}

func TestCheckoutAbortsOnInsertFailure(t *testing.T) {
	orders := new(mocks.OrderRepository)
	publisher := new(mocks.OrderPublisher)
	svc := service.NewCheckoutService(orders, publisher)

	var insertCalls int
	orders.On("InsertOrder", mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
		insertCalls++
		args.Get(0).(*domain.Order).ID = 201
	}).Return(nil).Once()
	orders.On("InsertOrder", mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
		insertCalls++
	}).Return(assert.AnError).Once()

	result, err := svc.Submit(context.Background(), 10, twoLineCart(), "7", "")

	// The second failure aborts the loop: exactly one row was committed,
	// nothing is rolled back, and no events go out.
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 2, insertCalls)
	publisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
}

func TestCheckoutSurvivesPublisherFailure(t *testing.T) {
	orders := new(mocks.OrderRepository)
	publisher := new(mocks.OrderPublisher)
	svc := service.NewCheckoutService(orders, publisher)

	orders.On("InsertOrder", mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Order).ID = 301
	}).Return(nil)
	publisher.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(assert.AnError)

	result, err := svc.Submit(context.Background(), 10, twoLineCart()[:1], "3", "")

	// Event publishing is best effort; the order already exists.
	assert.NoError(t, err)
	assert.Equal(t, 301, result.OrderID)
}

func TestCheckoutWithoutPublisher(t *testing.T) {
	orders := new(mocks.OrderRepository)
	svc := service.NewCheckoutService(orders, nil)

	orders.On("InsertOrder", mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Order).ID = 401
	}).Return(nil)

	result, err := svc.Submit(context.Background(), 10, twoLineCart()[:1], "3", "")

	assert.NoError(t, err)
	assert.Equal(t, 401, result.OrderID)
}
