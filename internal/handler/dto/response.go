package dto

import (
	"time"

	"github.com/Boodsmen/booking-bot/internal/domain"
)

type EquipmentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
	IsAvailable   bool   `json:"is_available"`
	RequiresPhoto bool   `json:"requires_photo"`
	CreatedAt     string `json:"created_at"`
}

type BookingResponse struct {
	ID                string   `json:"id"`
	EquipmentID       string   `json:"equipment_id"`
	UserID            string   `json:"user_id"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	Status            string   `json:"status"`
	ConfirmedAt       *string  `json:"confirmed_at,omitempty"`
	CompletedAt       *string  `json:"completed_at,omitempty"`
	PhotosStart       []string `json:"photos_start,omitempty"`
	PhotosEnd         []string `json:"photos_end,omitempty"`
	IsOverdue         bool     `json:"is_overdue"`
	MaintenanceReason string   `json:"maintenance_reason,omitempty"`
	CreatedAt         string   `json:"created_at"`
}

type AvailabilityResponse struct {
	EquipmentID    string `json:"equipment_id"`
	AvailableUnits int    `json:"available_units"`
	WindowStart    string `json:"window_start,omitempty"`
	WindowEnd      string `json:"window_end,omitempty"`
}

type UserResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Username       string `json:"username,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	IsOperator     bool   `json:"is_operator"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEquipmentResponse(e *domain.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:            e.ID,
		Name:          e.Name,
		Category:      e.Category,
		Quantity:      e.Quantity,
		IsAvailable:   e.IsAvailable,
		RequiresPhoto: e.RequiresPhoto,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                b.ID,
		EquipmentID:       b.EquipmentID,
		UserID:            b.UserID,
		StartTime:         b.StartTime.Format(time.RFC3339),
		EndTime:           b.EndTime.Format(time.RFC3339),
		Status:            string(b.Status),
		ConfirmedAt:       formatOptional(b.ConfirmedAt),
		CompletedAt:       formatOptional(b.CompletedAt),
		PhotosStart:       b.PhotosStart,
		PhotosEnd:         b.PhotosEnd,
		IsOverdue:         b.IsOverdue,
		MaintenanceReason: b.MaintenanceReason,
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		FullName:       u.FullName,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		IsOperator:     u.IsOperator,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
