// Package models defines the data exchanged between the greeter CLI and the API.
package models

// User is the public projection of an account as returned by the API.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Greeting struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
