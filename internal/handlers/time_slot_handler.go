package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/httpresp"
	"github.com/gonzalomaurino/canchas-api/internal/models"
)

type TimeSlotHandler struct {
	db *gorm.DB
}

func NewTimeSlotHandler(db *gorm.DB) *TimeSlotHandler {
	return &TimeSlotHandler{db: db}
}

type CreateTimeSlotRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateTimeSlotRequest struct {
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

func validSlotRange(start, end string) bool {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return false
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return false
	}
	return e.After(s)
}

func (h *TimeSlotHandler) List(c *gin.Context) {
	var slots []models.TimeSlot
	if err := h.db.WithContext(c.Request.Context()).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_list_time_slots", "Error al listar horarios.")
		return
	}

	httpresp.List(c, slots)
}

func (h *TimeSlotHandler) Create(c *gin.Context) {
	var req CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !validSlotRange(req.StartTime, req.EndTime) {
		httperr.BadRequest(c, "invalid_time_range",
			"El horario debe tener formato HH:MM y terminar después de empezar.")
		return
	}

	slot := models.TimeSlot{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Write(c, http.StatusConflict, "time_slot_exists",
				"Ya existe un horario con ese rango.")
			return
		}
		httperr.Internal(c, "failed_to_create_time_slot", "Error al crear horario.")
		return
	}

	c.JSON(http.StatusCreated, slot)
}

func (h *TimeSlotHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var slot models.TimeSlot
	if err := h.db.WithContext(c.Request.Context()).First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFoundStatus(c, "time_slot_not_found", "Horario no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_time_slot", "Error al buscar horario.")
		return
	}

	var req UpdateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}

	if !validSlotRange(slot.StartTime, slot.EndTime) {
		httperr.BadRequest(c, "invalid_time_range",
			"El horario debe tener formato HH:MM y terminar después de empezar.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Write(c, http.StatusConflict, "time_slot_exists",
				"Ya existe un horario con ese rango.")
			return
		}
		httperr.Internal(c, "failed_to_update_time_slot", "Error al actualizar horario.")
		return
	}

	c.JSON(http.StatusOK, slot)
}

func (h *TimeSlotHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var slot models.TimeSlot
	if err := h.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFoundStatus(c, "time_slot_not_found", "Horario no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_time_slot", "Error al buscar horario.")
		return
	}

	var inUse int64
	if err := h.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("time_slot_id = ?", id).
		Count(&inUse).Error; err != nil {
		httperr.Internal(c, "failed_to_check_bookings", "Error al verificar reservas.")
		return
	}

	if inUse > 0 {
		httperr.Write(c, http.StatusConflict, "time_slot_in_use",
			"No se puede eliminar: el horario tiene reservas asociadas.")
		return
	}

	if err := h.db.WithContext(ctx).Delete(&models.TimeSlot{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_time_slot", "Error al eliminar horario.")
		return
	}

	c.Status(http.StatusNoContent)
}
