// File: internal/model/user.go
package model

import "time"

type User struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	PasswordDigest string    `db:"password_digest" json:"-"`
	IsAdmin        bool      `db:"is_admin" json:"is_admin"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// UserStats 個人頁側欄統計
type UserStats struct {
	Microposts int `json:"microposts"`
	Following  int `json:"following"`
	Followers  int `json:"followers"`
}
