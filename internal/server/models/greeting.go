package models

type Greeting struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
