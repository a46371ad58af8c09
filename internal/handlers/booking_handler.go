package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/httpresp"
	ucbooking "github.com/gonzalomaurino/canchas-api/internal/usecase/booking"
)

// BookingHandler exposes the reservation lifecycle. All business rules
// live in the use cases; this layer only binds and translates.
type BookingHandler struct {
	create       *ucbooking.CreateBooking
	list         *ucbooking.ListBookings
	update       *ucbooking.UpdateBooking
	cancel       *ucbooking.CancelBooking
	delete       *ucbooking.DeleteBooking
	availability *ucbooking.CheckAvailability
}

func NewBookingHandler(
	create *ucbooking.CreateBooking,
	list *ucbooking.ListBookings,
	update *ucbooking.UpdateBooking,
	cancel *ucbooking.CancelBooking,
	del *ucbooking.DeleteBooking,
	availability *ucbooking.CheckAvailability,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		list:         list,
		update:       update,
		cancel:       cancel,
		delete:       del,
		availability: availability,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	Date       string  `json:"date" binding:"required"`
	ClientID   uint    `json:"client_id" binding:"required"`
	CourtID    uint    `json:"court_id" binding:"required"`
	TimeSlotID uint    `json:"time_slot_id" binding:"required"`
	Amount     float64 `json:"amount"`
}

type UpdateBookingRequest struct {
	Date       *string  `json:"date,omitempty"`
	CourtID    *uint    `json:"court_id,omitempty"`
	TimeSlotID *uint    `json:"time_slot_id,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		Date:       req.Date,
		ClientID:   req.ClientID,
		CourtID:    req.CourtID,
		TimeSlotID: req.TimeSlotID,
		Amount:     req.Amount,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	out, err := h.list.Execute(
		c.Request.Context(),
		c.Query("status"),
		queryUint(c, "court_id"),
	)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	b, err := h.update.Execute(c.Request.Context(), id, ucbooking.UpdateBookingInput{
		Date:       req.Date,
		CourtID:    req.CourtID,
		TimeSlotID: req.TimeSlotID,
		Amount:     req.Amount,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Availability answers whether a court/date/slot combination is free.
// The check never blocks the flow: a failing lookup reports available.
func (h *BookingHandler) Availability(c *gin.Context) {
	courtID := queryUint(c, "court_id")
	slotID := queryUint(c, "time_slot_id")

	if courtID == nil || slotID == nil {
		httperr.BadRequest(c, "missing_fields",
			"court_id y time_slot_id son obligatorios.")
		return
	}

	date, err := ucbooking.ParseDate(c.Query("date"))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	available := h.availability.Execute(c.Request.Context(), *courtID, date, *slotID)

	httpresp.OK(c, gin.H{"available": available})
}
