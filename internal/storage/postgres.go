package storage

import (
	"database/sql"

	"qr-dish-reality/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateProfile(p *domain.Profile) error {
	return r.DB.QueryRow(
		"INSERT INTO profiles (email, password_hash, full_name) VALUES ($1, $2, $3) RETURNING id, created_at",
		p.Email, p.PasswordHash, p.FullName,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PostgresRepository) GetProfile(id int) (*domain.Profile, error) {
	var p domain.Profile
	err := r.DB.QueryRow(`
		SELECT id, email, password_hash, COALESCE(full_name, ''), is_admin, created_at
		FROM profiles
		WHERE id = $1`, id).
		Scan(&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.IsAdmin, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) GetProfileByEmail(email string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.DB.QueryRow(`
		SELECT id, email, password_hash, COALESCE(full_name, ''), is_admin, created_at
		FROM profiles
		WHERE email = $1`, email).
		Scan(&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.IsAdmin, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (owner_id, name, location) VALUES ($1, $2, $3) RETURNING id, created_at",
		rest.OwnerID, rest.Name, rest.Location,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, owner_id, name, COALESCE(location, ''), created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Location, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurantByOwner(ownerID int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, owner_id, name, COALESCE(location, ''), created_at
		FROM restaurants
		WHERE owner_id = $1`, ownerID).
		Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Location, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"UPDATE restaurants SET name=$1, location=$2 WHERE id=$3 RETURNING id, owner_id, name, COALESCE(location, ''), created_at",
		rest.Name, rest.Location, rest.ID).
		Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Location, &rest.CreatedAt)
}

func (r *PostgresRepository) SaveQRCode(restaurantID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE restaurants SET qr_code = $1 WHERE id = $2`, qr, restaurantID)
	return err
}

func (r *PostgresRepository) GetQRCode(restaurantID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM restaurants WHERE id = $1", restaurantID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *PostgresRepository) CreateDish(dish *domain.Dish) error {
	return r.DB.QueryRow(`
		INSERT INTO dishes (restaurant_id, name, description, price, ingredients, calories, protein, image_url, model_url, availability, preparation_time_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		dish.RestaurantID, dish.Name, dish.Description, dish.Price, dish.Ingredients,
		dish.Calories, dish.Protein, dish.ImageURL, dish.ModelURL, dish.Availability, dish.PrepTimeMinutes).
		Scan(&dish.ID, &dish.CreatedAt)
}

const dishColumns = `id, restaurant_id, name, COALESCE(description, ''), price,
		COALESCE(ingredients, ''), COALESCE(calories, 0), COALESCE(protein, 0),
		COALESCE(image_url, ''), COALESCE(model_url, ''), availability,
		COALESCE(preparation_time_minutes, 0), created_at`

func scanDish(row interface{ Scan(...interface{}) error }, dish *domain.Dish) error {
	return row.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description, &dish.Price,
		&dish.Ingredients, &dish.Calories, &dish.Protein,
		&dish.ImageURL, &dish.ModelURL, &dish.Availability,
		&dish.PrepTimeMinutes, &dish.CreatedAt)
}

func (r *PostgresRepository) ListDishes(restaurantID int) ([]domain.Dish, error) {
	rows, err := r.DB.Query(`
		SELECT `+dishColumns+`
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY created_at DESC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := scanDish(rows, &dish); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func (r *PostgresRepository) ListAvailableDishes(restaurantID int) ([]domain.Dish, error) {
	rows, err := r.DB.Query(`
		SELECT `+dishColumns+`
		FROM dishes
		WHERE restaurant_id = $1 AND availability = true
		ORDER BY name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := scanDish(rows, &dish); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func (r *PostgresRepository) GetDish(restaurantID, dishID int) (*domain.Dish, error) {
	var dish domain.Dish
	err := scanDish(r.DB.QueryRow(`
		SELECT `+dishColumns+`
		FROM dishes
		WHERE id = $1 AND restaurant_id = $2`, dishID, restaurantID), &dish)
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) UpdateDish(dish *domain.Dish) error {
	_, err := r.DB.Exec(`
		UPDATE dishes
		SET name=$1, description=$2, price=$3, ingredients=$4, calories=$5, protein=$6,
		    image_url=$7, model_url=$8, preparation_time_minutes=$9
		WHERE id=$10 AND restaurant_id=$11`,
		dish.Name, dish.Description, dish.Price, dish.Ingredients, dish.Calories, dish.Protein,
		dish.ImageURL, dish.ModelURL, dish.PrepTimeMinutes, dish.ID, dish.RestaurantID)
	return err
}

func (r *PostgresRepository) SetAvailability(restaurantID, dishID int, available bool) error {
	_, err := r.DB.Exec("UPDATE dishes SET availability = $1 WHERE id = $2 AND restaurant_id = $3",
		available, dishID, restaurantID)
	return err
}

func (r *PostgresRepository) DeleteDish(restaurantID, dishID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM dishes WHERE id=$1 AND restaurant_id=$2", dishID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// InsertOrder writes a single order row. Checkout calls this once per cart
// line; the rows are deliberately not wrapped in a transaction.
func (r *PostgresRepository) InsertOrder(order *domain.Order) error {
	return r.DB.QueryRow(`
		INSERT INTO orders (restaurant_id, dish_id, quantity, table_number, customer_notes, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		order.RestaurantID, order.DishID, order.Quantity, order.TableNumber,
		order.CustomerNotes, order.Status).
		Scan(&order.ID, &order.CreatedAt)
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT o.id, o.restaurant_id, o.dish_id, d.name, d.price, o.quantity,
		       o.table_number, COALESCE(o.customer_notes, ''), o.status, o.created_at
		FROM orders o
		JOIN dishes d ON o.dish_id = d.id
		WHERE o.id = $1`, orderID).
		Scan(&order.ID, &order.RestaurantID, &order.DishID, &order.DishName, &order.DishPrice,
			&order.Quantity, &order.TableNumber, &order.CustomerNotes, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) ListRestaurantOrders(restaurantID int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT o.id, o.restaurant_id, o.dish_id, d.name, d.price, o.quantity,
		       o.table_number, COALESCE(o.customer_notes, ''), o.status, o.created_at
		FROM orders o
		JOIN dishes d ON o.dish_id = d.id
		WHERE o.restaurant_id = $1
		ORDER BY o.created_at DESC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.RestaurantID, &order.DishID, &order.DishName,
			&order.DishPrice, &order.Quantity, &order.TableNumber, &order.CustomerNotes,
			&order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateOrderStatus(orderID int, status domain.Status) (int64, error) {
	result, err := r.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
