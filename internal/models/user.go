package models

import "time"

// User is a party of a transaction, uniquely keyed by phone number.
type User struct {
	ID          int64      `json:"id"`
	FullName    string     `json:"fullName"`
	PhoneNumber string     `json:"phoneNumber"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

type CreateUserIn struct {
	FullName    string
	PhoneNumber string
}
