package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/httpresp"
	"github.com/gonzalomaurino/canchas-api/internal/models"
)

type CourtHandler struct {
	db *gorm.DB
}

func NewCourtHandler(db *gorm.DB) *CourtHandler {
	return &CourtHandler{db: db}
}

// --------- Requests ---------

type CreateCourtRequest struct {
	Name        string  `json:"name" binding:"required"`
	SurfaceType string  `json:"surface_type" binding:"required"`
	Lighting    bool    `json:"lighting"`
	HourlyPrice float64 `json:"hourly_price" binding:"required,gt=0"`
}

type UpdateCourtRequest struct {
	Name        *string  `json:"name,omitempty"`
	SurfaceType *string  `json:"surface_type,omitempty"`
	Lighting    *bool    `json:"lighting,omitempty"`
	HourlyPrice *float64 `json:"hourly_price,omitempty"`
}

// --------- Handlers ---------

func (h *CourtHandler) List(c *gin.Context) {
	var courts []models.Court
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Services").
		Order("name ASC").
		Find(&courts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_courts", "Error al listar canchas.")
		return
	}

	httpresp.List(c, courts)
}

func (h *CourtHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var court models.Court
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Services").
		First(&court, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFoundStatus(c, "court_not_found", "Cancha no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_court", "Error al buscar cancha.")
		return
	}

	httpresp.OK(c, court)
}

func (h *CourtHandler) Create(c *gin.Context) {
	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	court := models.Court{
		Name:        strings.TrimSpace(req.Name),
		SurfaceType: req.SurfaceType,
		Lighting:    req.Lighting,
		HourlyPrice: req.HourlyPrice,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&court).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Write(c, http.StatusConflict, "court_exists",
				"Ya existe una cancha con ese nombre.")
			return
		}
		httperr.Internal(c, "failed_to_create_court", "Error al crear cancha.")
		return
	}

	c.JSON(http.StatusCreated, court)
}

func (h *CourtHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var court models.Court
	if err := h.db.WithContext(c.Request.Context()).First(&court, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFoundStatus(c, "court_not_found", "Cancha no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_court", "Error al buscar cancha.")
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		court.Name = strings.TrimSpace(*req.Name)
	}
	if req.SurfaceType != nil {
		court.SurfaceType = *req.SurfaceType
	}
	if req.Lighting != nil {
		court.Lighting = *req.Lighting
	}
	if req.HourlyPrice != nil {
		if *req.HourlyPrice <= 0 {
			httperr.BadRequest(c, "invalid_price", "El precio por hora debe ser mayor a cero.")
			return
		}
		court.HourlyPrice = *req.HourlyPrice
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&court).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Write(c, http.StatusConflict, "court_exists",
				"Ya existe otra cancha con ese nombre.")
			return
		}
		httperr.Internal(c, "failed_to_update_court", "Error al actualizar cancha.")
		return
	}

	c.JSON(http.StatusOK, court)
}

// Delete refuses while bookings reference the court, unless force=true is
// passed, in which case the bookings and everything hanging off them go
// down with it.
func (h *CourtHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	force := c.Query("force") == "true"

	var court models.Court
	if err := h.db.WithContext(ctx).First(&court, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFoundStatus(c, "court_not_found", "Cancha no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_court", "Error al buscar cancha.")
		return
	}

	var inUse int64
	if err := h.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("court_id = ?", id).
		Count(&inUse).Error; err != nil {
		httperr.Internal(c, "failed_to_check_bookings", "Error al verificar reservas.")
		return
	}

	if inUse > 0 && !force {
		httperr.Write(c, http.StatusConflict, "court_has_bookings",
			"No se puede eliminar: la cancha tiene reservas asociadas.")
		return
	}

	// Even a forced delete never drops the money trail: bookings holding
	// payments in a protected state must be settled first.
	var protected int64
	if err := h.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("court_id = ? AND LOWER(status) IN ?", id,
			[]string{"confirmada", "seña"}).
		Where("EXISTS (SELECT 1 FROM payments WHERE payments.booking_id = bookings.id)").
		Count(&protected).Error; err != nil {
		httperr.Internal(c, "failed_to_check_bookings", "Error al verificar reservas.")
		return
	}

	if protected > 0 {
		httperr.Write(c, http.StatusConflict, "court_has_protected_bookings",
			"No se puede eliminar: la cancha tiene reservas con pagos registrados.")
		return
	}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if inUse > 0 {
			sub := tx.Model(&models.Booking{}).
				Select("id").
				Where("court_id = ?", id)

			if err := tx.Where("booking_id IN (?)", sub).
				Delete(&models.TournamentBooking{}).Error; err != nil {
				return err
			}
			if err := tx.Where("booking_id IN (?)", sub).
				Delete(&models.Payment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("court_id = ?", id).
				Delete(&models.Booking{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Exec(
			"DELETE FROM court_services WHERE court_id = ?", id,
		).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Court{}, id).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_court", "Error al eliminar cancha.")
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignService links an existing service to the court.
func (h *CourtHandler) AssignService(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}
	serviceID, ok := paramID(c, "serviceID")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var court models.Court
	if err := h.db.WithContext(ctx).First(&court, courtID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFoundStatus(c, "court_not_found", "Cancha no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_court", "Error al buscar cancha.")
		return
	}

	var svc models.Service
	if err := h.db.WithContext(ctx).First(&svc, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFoundStatus(c, "service_not_found", "Servicio no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Error al buscar servicio.")
		return
	}

	if err := h.db.WithContext(ctx).
		Model(&court).
		Association("Services").
		Append(&svc); err != nil {
		httperr.Internal(c, "failed_to_assign_service", "Error al asignar servicio.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CourtHandler) UnassignService(c *gin.Context) {
	courtID, ok := paramID(c, "id")
	if !ok {
		return
	}
	serviceID, ok := paramID(c, "serviceID")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var court models.Court
	if err := h.db.WithContext(ctx).First(&court, courtID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFoundStatus(c, "court_not_found", "Cancha no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_court", "Error al buscar cancha.")
		return
	}

	if err := h.db.WithContext(ctx).
		Model(&court).
		Association("Services").
		Delete(&models.Service{ID: serviceID}); err != nil {
		httperr.Internal(c, "failed_to_unassign_service", "Error al quitar servicio.")
		return
	}

	c.Status(http.StatusNoContent)
}
