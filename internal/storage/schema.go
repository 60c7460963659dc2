package storage

import "fmt"

// EnsureSchema creates the tables on startup. Statements are idempotent so
// the service can be restarted against an existing database.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			birth_date DATE,
			preferences JSONB NOT NULL DEFAULT '{}',
			avatar_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT '🍽️',
			active BOOLEAN NOT NULL DEFAULT TRUE,
			tags JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			type TEXT NOT NULL DEFAULT 'main',
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			serving_size TEXT NOT NULL DEFAULT '',
			composition TEXT NOT NULL DEFAULT '',
			nutrition JSONB NOT NULL DEFAULT '{}',
			prep_minutes INTEGER NOT NULL DEFAULT 15,
			spice_level INTEGER NOT NULL DEFAULT 0 CHECK (spice_level BETWEEN 0 AND 4),
			tags JSONB NOT NULL DEFAULT '[]',
			active BOOLEAN NOT NULL DEFAULT TRUE,
			discount_on BOOLEAN NOT NULL DEFAULT FALSE,
			discount_price NUMERIC(10,2),
			popularity INTEGER NOT NULL DEFAULT 0,
			avg_rating NUMERIC(3,2) NOT NULL DEFAULT 0,
			review_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			id SERIAL PRIMARY KEY,
			cart_id INTEGER NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
			dish_id INTEGER NOT NULL REFERENCES dishes(id) ON DELETE CASCADE,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			added_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (cart_id, dish_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			status TEXT NOT NULL DEFAULT 'new',
			total NUMERIC(10,2) NOT NULL DEFAULT 0,
			customer_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			comment TEXT NOT NULL DEFAULT '',
			payment_method TEXT NOT NULL DEFAULT 'cash',
			promo_code TEXT NOT NULL DEFAULT '',
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			dish_id INTEGER NOT NULL REFERENCES dishes(id) ON DELETE CASCADE,
			dish_name TEXT NOT NULL DEFAULT '',
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			price NUMERIC(10,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			dish_id INTEGER NOT NULL REFERENCES dishes(id) ON DELETE CASCADE,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (user_id, dish_id)
		)`,
		`CREATE TABLE IF NOT EXISTS favorites (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			dish_id INTEGER NOT NULL REFERENCES dishes(id) ON DELETE CASCADE,
			added_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (user_id, dish_id)
		)`,
		`CREATE TABLE IF NOT EXISTS promo_codes (
			id SERIAL PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			percent INTEGER NOT NULL CHECK (percent BETWEEN 1 AND 100),
			min_total NUMERIC(10,2) NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			expires_at TIMESTAMPTZ NOT NULL,
			used_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
