package dto

type CreateEquipmentRequest struct {
	Name          string `json:"name" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,gte=1"`
	RequiresPhoto bool   `json:"requires_photo"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

type CreateBookingRequest struct {
	EquipmentID string `json:"equipment_id" binding:"required,uuid"`
	UserID      string `json:"user_id" binding:"required,uuid"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}

type CreateMaintenanceRequest struct {
	EquipmentID string `json:"equipment_id" binding:"required,uuid"`
	OperatorID  string `json:"operator_id" binding:"required,uuid"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

type ConfirmBookingRequest struct {
	Photos []string `json:"photos"`
}

type CompleteBookingRequest struct {
	Photos []string `json:"photos"`
}

type CreateUserRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
	IsOperator     bool   `json:"is_operator"`
}
