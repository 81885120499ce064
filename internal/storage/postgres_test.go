package storage

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"qr-dish-reality/internal/domain"
)

func setupTestRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return NewPostgresRepository(mockDB), mock
}

func TestEnsureSchemaExecutesStatements(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS profiles").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS restaurants").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS dishes").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_dishes_restaurant").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_orders_restaurant").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertOrderReturnsGeneratedID(t *testing.T) {
	repo, mock := setupTestRepo(t)

	created := time.Now()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(3, 1, 2, 7, "no onions", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(101, created))

	order := &domain.Order{
		RestaurantID:  3,
		DishID:        1,
		Quantity:      2,
		TableNumber:   7,
		CustomerNotes: "no onions",
		Status:        domain.StatusPending,
	}
	assert.NoError(t, repo.InsertOrder(order))
	assert.Equal(t, 101, order.ID)
	assert.Equal(t, created, order.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrderJoinsDishDetails(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectQuery("SELECT o.id, o.restaurant_id").
		WithArgs(55).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "restaurant_id", "dish_id", "name", "price", "quantity",
			"table_number", "customer_notes", "status", "created_at",
		}).AddRow(55, 3, 1, "Burger", 15.99, 2, 7, "", "pending", time.Now()))

	order, err := repo.GetOrder(55)
	assert.NoError(t, err)
	assert.Equal(t, "Burger", order.DishName)
	assert.InDelta(t, 15.99, order.DishPrice, 0.001)
	assert.Equal(t, domain.StatusPending, order.Status)
}

func TestGetOrderNotFound(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectQuery("SELECT o.id, o.restaurant_id").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOrder(99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListAvailableDishesFiltersAndScans(t *testing.T) {
	repo, mock := setupTestRepo(t)

	columns := []string{
		"id", "restaurant_id", "name", "description", "price",
		"ingredients", "calories", "protein", "image_url", "model_url",
		"availability", "preparation_time_minutes", "created_at",
	}
	mock.ExpectQuery("SELECT (.+) FROM dishes").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, 3, "Burger", "classic", 15.99, "beef, bun", 540, 28.5, "", "", true, 12, time.Now()).
			AddRow(2, 3, "Pizza", "", 18.50, "", 0, 0.0, "", "", true, 20, time.Now()))

	dishes, err := repo.ListAvailableDishes(3)
	assert.NoError(t, err)
	assert.Len(t, dishes, 2)
	assert.Equal(t, "Burger", dishes[0].Name)
	assert.Equal(t, 12, dishes[0].PrepTimeMinutes)
	assert.InDelta(t, 18.50, dishes[1].Price, 0.001)
}

func TestUpdateOrderStatusReportsRowsAffected(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("confirmed", 55).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.UpdateOrderStatus(55, domain.StatusConfirmed)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("confirmed", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err = repo.UpdateOrderStatus(99, domain.StatusConfirmed)
	assert.NoError(t, err)
	assert.Zero(t, rows)
}

func TestDeleteDishReportsRowsAffected(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectExec("DELETE FROM dishes").
		WithArgs(5, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.DeleteDish(3, 5)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, rows)
}

func TestQRCodeRoundTrip(t *testing.T) {
	repo, mock := setupTestRepo(t)
	png := []byte{0x89, 'P', 'N', 'G'}

	mock.ExpectExec("UPDATE restaurants SET qr_code").
		WithArgs(png, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.SaveQRCode(3, png))

	mock.ExpectQuery("SELECT qr_code FROM restaurants").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"qr_code"}).AddRow(png))

	got, err := repo.GetQRCode(3)
	assert.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestPlatformStatsAggregates(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM restaurants").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM profiles").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM orders").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(120))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM orders WHERE created_at").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM restaurants WHERE created_at").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COALESCE\\(SUM").
		WillReturnRows(sqlmock.NewRows([]string{"revenue"}).AddRow(1843.20))

	stats, err := repo.PlatformStats()
	assert.NoError(t, err)
	assert.Equal(t, 4, stats.TotalRestaurants)
	assert.Equal(t, 10, stats.TotalUsers)
	assert.Equal(t, 120, stats.TotalOrders)
	assert.Equal(t, 8, stats.OrdersToday)
	assert.InDelta(t, 1843.20, stats.TotalRevenue, 0.001)
}
