package core

import "time"

type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credentials is the login projection of a user row.
type Credentials struct {
	ID           string
	Name         string
	Email        string
	Role         string
	PasswordHash string
}
