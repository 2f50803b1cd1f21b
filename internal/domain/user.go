package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Username       string    `json:"username"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	IsOperator     bool      `json:"is_operator"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	FullName       string
	Username       string
	TelegramChatID *int64
	IsOperator     bool
}
