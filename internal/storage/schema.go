package storage

import "fmt"

// EnsureSchema creates or patches the tables at startup. Statements are
// idempotent so restarts are safe.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name TEXT,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			owner_id INTEGER NOT NULL REFERENCES profiles(id),
			name TEXT NOT NULL,
			location TEXT,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL,
			ingredients TEXT,
			calories INTEGER,
			protein NUMERIC(6,2),
			image_url TEXT,
			model_url TEXT,
			availability BOOLEAN NOT NULL DEFAULT TRUE,
			preparation_time_minutes INTEGER,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			dish_id INTEGER NOT NULL REFERENCES dishes(id),
			quantity INTEGER NOT NULL,
			table_number INTEGER NOT NULL,
			customer_notes TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS idx_dishes_restaurant ON dishes (restaurant_id)",
		"CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders (restaurant_id, created_at DESC)",
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
