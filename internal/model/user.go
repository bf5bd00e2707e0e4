package model

import "time"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsSeller  bool      `json:"is_seller"`
	CreatedAt time.Time `json:"created_at"`
}

// UserDisplayInfo is the slice of a user record the request lists need
type UserDisplayInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
