package domain

import "time"

type Equipment struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Quantity      int       `json:"quantity"`
	IsAvailable   bool      `json:"is_available"`
	RequiresPhoto bool      `json:"requires_photo"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateEquipmentInput struct {
	Name          string
	Category      string
	Quantity      int
	RequiresPhoto bool
}
