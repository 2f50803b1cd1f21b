package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/Boodsmen/booking-bot/internal/domain"
	"github.com/Boodsmen/booking-bot/internal/handler/dto"
	hmocks "github.com/Boodsmen/booking-bot/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockEquipmentSvc, *hmocks.MockBookingSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	equipmentSvc := hmocks.NewMockEquipmentSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(equipmentSvc, bookingSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/equipment", h.CreateEquipment)
		api.GET("/equipment", h.ListEquipment)
		api.GET("/equipment/:id", h.GetEquipment)
		api.PATCH("/equipment/:id/availability", h.SetEquipmentAvailability)
		api.GET("/equipment/:id/available-units", h.GetAvailability)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/force-complete", h.ForceCompleteBooking)
		api.POST("/maintenance", h.CreateMaintenance)
		api.POST("/maintenance/:id/complete", h.CompleteMaintenance)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	return equipmentSvc, bookingSvc, userSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Equipment ---

func TestHandler_CreateEquipment_Success(t *testing.T) {
	equipmentSvc, _, _, r := setupRouter(t)

	equipment := &domain.Equipment{
		ID:          uuid.New().String(),
		Name:        "Sony A7",
		Category:    "camera",
		Quantity:    3,
		IsAvailable: true,
		CreatedAt:   time.Now(),
	}

	equipmentSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(equipment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/equipment", dto.CreateEquipmentRequest{
		Name:     "Sony A7",
		Category: "camera",
		Quantity: 3,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EquipmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sony A7", resp.Name)
	assert.Equal(t, 3, resp.Quantity)
}

func TestHandler_CreateEquipment_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/equipment", map[string]any{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEquipment_NotFound(t *testing.T) {
	equipmentSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	equipmentSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrEquipmentNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/equipment/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEquipment_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/equipment/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetEquipmentAvailability(t *testing.T) {
	equipmentSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	updated := &domain.Equipment{ID: id, Name: "Sony A7", IsAvailable: false, CreatedAt: time.Now()}

	equipmentSvc.EXPECT().SetAvailability(mock.Anything, id, false).Return(updated, nil)

	available := false
	w := doJSON(t, r, http.MethodPatch, "/api/equipment/"+id+"/availability", dto.SetAvailabilityRequest{
		IsAvailable: &available,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EquipmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsAvailable)
}

func TestHandler_GetAvailability_WithWindow(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	end := start.Add(2 * time.Hour)

	bookingSvc.EXPECT().
		AvailableUnits(mock.Anything, id, &domain.Window{Start: start, End: end}).
		Return(2, nil)

	path := "/api/equipment/" + id + "/available-units?start=" + start.Format(time.RFC3339) + "&end=" + end.Format(time.RFC3339)
	w := doJSON(t, r, http.MethodGet, path, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.AvailableUnits)
	assert.NotEmpty(t, resp.WindowStart)
}

func TestHandler_GetAvailability_NoWindow(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().AvailableUnits(mock.Anything, id, (*domain.Window)(nil)).Return(5, nil)

	w := doJSON(t, r, http.MethodGet, "/api/equipment/"+id+"/available-units", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.AvailableUnits)
	assert.Empty(t, resp.WindowStart)
}

func TestHandler_GetAvailability_BadWindow(t *testing.T) {
	_, _, _, r := setupRouter(t)

	id := uuid.New().String()
	w := doJSON(t, r, http.MethodGet, "/api/equipment/"+id+"/available-units?start=not-a-date&end=also-not", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	equipmentID := uuid.New().String()
	userID := uuid.New().String()
	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	end := start.Add(2 * time.Hour)

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		EquipmentID: equipmentID,
		UserID:      userID,
		StartTime:   start,
		EndTime:     end,
		Status:      domain.BookingStatusPending,
		CreatedAt:   time.Now(),
	}

	bookingSvc.EXPECT().Create(mock.Anything, equipmentID, userID, start, end).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		EquipmentID: equipmentID,
		UserID:      userID,
		StartTime:   start.Format(time.RFC3339),
		EndTime:     end.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.BookingStatusPending), resp.Status)
}

func TestHandler_CreateBooking_SlotUnavailable(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	equipmentID := uuid.New().String()
	userID := uuid.New().String()
	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	bookingSvc.EXPECT().
		Create(mock.Anything, equipmentID, userID, mock.Anything, mock.Anything).
		Return(nil, domain.ErrSlotUnavailable)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		EquipmentID: equipmentID,
		UserID:      userID,
		StartTime:   start.Format(time.RFC3339),
		EndTime:     start.Add(time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		EquipmentID: uuid.New().String(),
		UserID:      uuid.New().String(),
		StartTime:   "not-a-date",
		EndTime:     "also-not",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConfirmBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	confirmed := &domain.Booking{ID: id, Status: domain.BookingStatusActive, CreatedAt: time.Now()}

	bookingSvc.EXPECT().Confirm(mock.Anything, id, []string{"start.jpg"}).Return(confirmed, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/confirm", dto.ConfirmBookingRequest{
		Photos: []string{"start.jpg"},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.BookingStatusActive), resp.Status)
}

func TestHandler_ConfirmBooking_WrongStatus(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Confirm(mock.Anything, id, mock.Anything).Return(nil, domain.ErrWrongStatus)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/confirm", dto.ConfirmBookingRequest{})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_AlreadyStarted(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id).Return(nil, domain.ErrAlreadyStarted)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ForceCompleteBooking(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	completed := &domain.Booking{ID: id, Status: domain.BookingStatusCompleted, CreatedAt: time.Now()}

	bookingSvc.EXPECT().ForceComplete(mock.Anything, id).Return(completed, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/force-complete", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Maintenance ---

func TestHandler_CreateMaintenance_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	equipmentID := uuid.New().String()
	operatorID := uuid.New().String()
	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	end := start.Add(3 * time.Hour)

	block := &domain.Booking{
		ID:                uuid.New().String(),
		EquipmentID:       equipmentID,
		UserID:            operatorID,
		Status:            domain.BookingStatusMaintenance,
		MaintenanceReason: "lens cleaning",
		CreatedAt:         time.Now(),
	}

	bookingSvc.EXPECT().
		CreateMaintenance(mock.Anything, equipmentID, operatorID, start, end, "lens cleaning").
		Return(block, nil)

	w := doJSON(t, r, http.MethodPost, "/api/maintenance", dto.CreateMaintenanceRequest{
		EquipmentID: equipmentID,
		OperatorID:  operatorID,
		StartTime:   start.Format(time.RFC3339),
		EndTime:     end.Format(time.RFC3339),
		Reason:      "lens cleaning",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.BookingStatusMaintenance), resp.Status)
	assert.Equal(t, "lens cleaning", resp.MaintenanceReason)
}

func TestHandler_CreateMaintenance_Conflict(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	equipmentID := uuid.New().String()
	operatorID := uuid.New().String()
	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	bookingSvc.EXPECT().
		CreateMaintenance(mock.Anything, equipmentID, operatorID, mock.Anything, mock.Anything, "repairs").
		Return(nil, domain.ErrSlotUnavailable)

	w := doJSON(t, r, http.MethodPost, "/api/maintenance", dto.CreateMaintenanceRequest{
		EquipmentID: equipmentID,
		OperatorID:  operatorID,
		StartTime:   start.Format(time.RFC3339),
		EndTime:     start.Add(time.Hour).Format(time.RFC3339),
		Reason:      "repairs",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:       uuid.New().String(),
		FullName: "Alice Smith",
		Username: "alice",
	}

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		FullName: "Alice Smith",
		Username: "alice",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice Smith", resp.FullName)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		FullName: "Alice Smith",
		Username: "alice",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserBookings(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: uuid.New().String(), UserID: userID, Status: domain.BookingStatusActive, CreatedAt: time.Now()},
		{ID: uuid.New().String(), UserID: userID, Status: domain.BookingStatusCompleted, CreatedAt: time.Now()},
	}

	bookingSvc.EXPECT().ListByUser(mock.Anything, userID).Return(bookings, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
