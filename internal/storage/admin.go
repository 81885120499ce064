package storage

import (
	"qr-dish-reality/internal/domain"
)

// PlatformStats computes the admin panel counters in one round of queries.
func (r *PostgresRepository) PlatformStats() (*domain.PlatformStats, error) {
	var stats domain.PlatformStats

	if err := r.DB.QueryRow("SELECT COUNT(*) FROM restaurants").Scan(&stats.TotalRestaurants); err != nil {
		return nil, err
	}
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM profiles").Scan(&stats.TotalUsers); err != nil {
		return nil, err
	}
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&stats.TotalOrders); err != nil {
		return nil, err
	}
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM orders WHERE created_at::date = CURRENT_DATE").Scan(&stats.OrdersToday); err != nil {
		return nil, err
	}
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM restaurants WHERE created_at >= NOW() - INTERVAL '7 days'").Scan(&stats.NewRestaurantsThisWeek); err != nil {
		return nil, err
	}
	if err := r.DB.QueryRow(`
		SELECT COALESCE(SUM(d.price * o.quantity), 0)
		FROM orders o
		JOIN dishes d ON o.dish_id = d.id`).Scan(&stats.TotalRevenue); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *PostgresRepository) ListRestaurantOverviews() ([]domain.RestaurantOverview, error) {
	rows, err := r.DB.Query(`
		SELECT r.id, r.owner_id, r.name, COALESCE(r.location, ''), r.created_at,
		       COALESCE(p.full_name, ''),
		       (SELECT COUNT(*) FROM dishes d WHERE d.restaurant_id = r.id),
		       (SELECT COUNT(*) FROM orders o WHERE o.restaurant_id = r.id)
		FROM restaurants r
		LEFT JOIN profiles p ON p.id = r.owner_id
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overviews []domain.RestaurantOverview
	for rows.Next() {
		var ov domain.RestaurantOverview
		if err := rows.Scan(&ov.ID, &ov.OwnerID, &ov.Name, &ov.Location, &ov.CreatedAt,
			&ov.OwnerName, &ov.DishesCount, &ov.OrdersCount); err != nil {
			continue
		}
		overviews = append(overviews, ov)
	}
	return overviews, nil
}

func (r *PostgresRepository) ListProfileOverviews(limit int) ([]domain.ProfileOverview, error) {
	rows, err := r.DB.Query(`
		SELECT p.id, p.email, COALESCE(p.full_name, ''), p.is_admin, p.created_at,
		       (SELECT COUNT(*) FROM restaurants r WHERE r.owner_id = p.id)
		FROM profiles p
		ORDER BY p.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overviews []domain.ProfileOverview
	for rows.Next() {
		var ov domain.ProfileOverview
		if err := rows.Scan(&ov.ID, &ov.Email, &ov.FullName, &ov.IsAdmin, &ov.CreatedAt,
			&ov.RestaurantsCount); err != nil {
			continue
		}
		overviews = append(overviews, ov)
	}
	return overviews, nil
}

func (r *PostgresRepository) ListRecentOrders(limit int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT o.id, o.restaurant_id, r.name, o.dish_id, d.name, d.price, o.quantity,
		       o.table_number, COALESCE(o.customer_notes, ''), o.status, o.created_at
		FROM orders o
		JOIN restaurants r ON o.restaurant_id = r.id
		JOIN dishes d ON o.dish_id = d.id
		ORDER BY o.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.RestaurantID, &order.RestaurantName, &order.DishID,
			&order.DishName, &order.DishPrice, &order.Quantity, &order.TableNumber,
			&order.CustomerNotes, &order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}
