package domain

import "time"

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Profile struct {
	ID          int         `json:"id"`
	UserID      int         `json:"user_id"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	BirthDate   *time.Time  `json:"birth_date,omitempty"`
	Preferences Preferences `json:"preferences"`
	AvatarURL   string      `json:"avatar_url"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
