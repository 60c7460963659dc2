package storage

import (
	"resto-backend/internal/domain"
)

// RegisterUser creates the user together with its profile and cart in one
// transaction, so a user never exists without either.
func (r *PostgresRepository) RegisterUser(user *domain.User, profile *domain.Profile) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO users (username, email) VALUES ($1, $2)
		RETURNING id, created_at
	`, user.Username, user.Email).Scan(&user.ID, &user.CreatedAt); err != nil {
		return mapUnique(err)
	}

	profile.UserID = user.ID
	if err := tx.QueryRow(`
		INSERT INTO profiles (user_id, phone, address, birth_date, preferences, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, profile.UserID, profile.Phone, profile.Address, profile.BirthDate,
		profile.Preferences, profile.AvatarURL).
		Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return err
	}

	if _, err := tx.Exec("INSERT INTO carts (user_id) VALUES ($1)", user.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetUser(userID int) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(`
		SELECT id, username, email, created_at FROM users WHERE id = $1
	`, userID).Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetProfile(userID int) (*domain.Profile, error) {
	var p domain.Profile
	err := r.DB.QueryRow(`
		SELECT id, user_id, phone, address, birth_date, preferences, avatar_url, created_at, updated_at
		FROM profiles WHERE user_id = $1
	`, userID).Scan(&p.ID, &p.UserID, &p.Phone, &p.Address, &p.BirthDate,
		&p.Preferences, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) UpdateProfile(p *domain.Profile) error {
	return r.DB.QueryRow(`
		UPDATE profiles
		SET phone = $1, address = $2, birth_date = $3, preferences = $4, avatar_url = $5,
			updated_at = now()
		WHERE user_id = $6
		RETURNING id, created_at, updated_at
	`, p.Phone, p.Address, p.BirthDate, p.Preferences, p.AvatarURL, p.UserID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}
