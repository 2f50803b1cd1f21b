package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Boodsmen/booking-bot/internal/domain"
	"github.com/Boodsmen/booking-bot/internal/handler/dto"
)

type EquipmentSvc interface {
	Create(ctx context.Context, input domain.CreateEquipmentInput) (*domain.Equipment, error)
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context, onlyAvailable bool, category string) ([]*domain.Equipment, error)
	SetAvailability(ctx context.Context, id string, available bool) (*domain.Equipment, error)
}

type BookingSvc interface {
	Create(ctx context.Context, equipmentID, userID string, start, end time.Time) (*domain.Booking, error)
	CreateMaintenance(ctx context.Context, equipmentID, operatorID string, start, end time.Time, reason string) (*domain.Booking, error)
	Confirm(ctx context.Context, id string, photos []string) (*domain.Booking, error)
	Complete(ctx context.Context, id string, photos []string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	ForceComplete(ctx context.Context, id string) (*domain.Booking, error)
	CompleteMaintenance(ctx context.Context, id string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	AvailableUnits(ctx context.Context, equipmentID string, window *domain.Window) (int, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	equipmentService EquipmentSvc
	bookingService   BookingSvc
	userService      UserSvc
}

func NewHandler(equipmentService EquipmentSvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		equipmentService: equipmentService,
		bookingService:   bookingService,
		userService:      userService,
	}
}

// Equipment

func (h *Handler) CreateEquipment(c *ginext.Context) {
	var req dto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateEquipmentInput{
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		RequiresPhoto: req.RequiresPhoto,
	}

	equipment, err := h.equipmentService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEquipmentResponse(equipment))
}

func (h *Handler) GetEquipment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid equipment id"})
		return
	}

	equipment, err := h.equipmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEquipmentResponse(equipment))
}

func (h *Handler) ListEquipment(c *ginext.Context) {
	onlyAvailable := c.Query("available") == "true"
	category := c.Query("category")

	equipment, err := h.equipmentService.List(c.Request.Context(), onlyAvailable, category)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EquipmentResponse, 0, len(equipment))
	for _, e := range equipment {
		resp = append(resp, dto.ToEquipmentResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetEquipmentAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid equipment id"})
		return
	}

	var req dto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	equipment, err := h.equipmentService.SetAvailability(c.Request.Context(), id, *req.IsAvailable)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEquipmentResponse(equipment))
}

// GetAvailability reports free units, either over a window given via the
// start/end query params or as an outstanding-commitments count without.
func (h *Handler) GetAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid equipment id"})
		return
	}

	var window *domain.Window
	startParam, endParam := c.Query("start"), c.Query("end")
	if startParam != "" || endParam != "" {
		start, err := time.Parse(time.RFC3339, startParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start, expected RFC3339"})
			return
		}
		end, err := time.Parse(time.RFC3339, endParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end, expected RFC3339"})
			return
		}
		window = &domain.Window{Start: start, End: end}
	}

	units, err := h.bookingService.AvailableUnits(c.Request.Context(), id, window)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.AvailabilityResponse{EquipmentID: id, AvailableUnits: units}
	if window != nil {
		resp.WindowStart = window.Start.Format(time.RFC3339)
		resp.WindowEnd = window.End.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, end, ok := h.parseWindow(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), req.EquipmentID, req.UserID, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	h.transition(c, func(ctx context.Context, id string) (*domain.Booking, error) {
		var req dto.ConfirmBookingRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, errBadRequest(err)
			}
		}
		return h.bookingService.Confirm(ctx, id, req.Photos)
	})
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	h.transition(c, func(ctx context.Context, id string) (*domain.Booking, error) {
		var req dto.CompleteBookingRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, errBadRequest(err)
			}
		}
		return h.bookingService.Complete(ctx, id, req.Photos)
	})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	h.transition(c, func(ctx context.Context, id string) (*domain.Booking, error) {
		return h.bookingService.Cancel(ctx, id)
	})
}

func (h *Handler) ForceCompleteBooking(c *ginext.Context) {
	h.transition(c, func(ctx context.Context, id string) (*domain.Booking, error) {
		return h.bookingService.ForceComplete(ctx, id)
	})
}

// Maintenance

func (h *Handler) CreateMaintenance(c *ginext.Context) {
	var req dto.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, end, ok := h.parseWindow(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	booking, err := h.bookingService.CreateMaintenance(
		c.Request.Context(), req.EquipmentID, req.OperatorID, start, end, req.Reason,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CompleteMaintenance(c *ginext.Context) {
	h.transition(c, func(ctx context.Context, id string) (*domain.Booking, error) {
		return h.bookingService.CompleteMaintenance(ctx, id)
	})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		FullName:       req.FullName,
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
		IsOperator:     req.IsOperator,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// helpers

func (h *Handler) transition(c *ginext.Context, do func(ctx context.Context, id string) (*domain.Booking, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := do(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) parseWindow(c *ginext.Context, startRaw, endRaw string) (start, end time.Time, ok bool) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time, expected RFC3339"})
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(time.RFC3339, endRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time, expected RFC3339"})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

type badRequestError struct{ err error }

func (e badRequestError) Error() string { return e.err.Error() }

func errBadRequest(err error) error { return badRequestError{err: err} }

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var badReq badRequestError
	switch {
	case errors.As(err, &badReq):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: badReq.Error()})

	case errors.Is(err, domain.ErrEquipmentNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrDurationLimit),
		errors.Is(err, domain.ErrTooFarAhead),
		errors.Is(err, domain.ErrWrongStatus),
		errors.Is(err, domain.ErrAlreadyStarted):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
