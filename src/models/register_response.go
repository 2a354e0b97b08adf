package models

type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
