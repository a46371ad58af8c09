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

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type CreateServiceRequest struct {
	Name string  `json:"name" binding:"required"`
	Cost float64 `json:"cost" binding:"gte=0"`
}

type UpdateServiceRequest struct {
	Name *string  `json:"name,omitempty"`
	Cost *float64 `json:"cost,omitempty"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	svc := models.Service{
		Name: strings.TrimSpace(req.Name),
		Cost: req.Cost,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Write(c, http.StatusConflict, "service_exists",
				"Ya existe un servicio con ese nombre.")
			return
		}
		httperr.Internal(c, "failed_to_create_service", "Error al crear servicio.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var svc models.Service
	if err := h.db.WithContext(c.Request.Context()).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFoundStatus(c, "service_not_found", "Servicio no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Error al buscar servicio.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Cost != nil {
		if *req.Cost < 0 {
			httperr.BadRequest(c, "invalid_cost", "El costo no puede ser negativo.")
			return
		}
		svc.Cost = *req.Cost
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Write(c, http.StatusConflict, "service_exists",
				"Ya existe otro servicio con ese nombre.")
			return
		}
		httperr.Internal(c, "failed_to_update_service", "Error al actualizar servicio.")
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var svc models.Service
	if err := h.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFoundStatus(c, "service_not_found", "Servicio no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Error al buscar servicio.")
		return
	}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM court_services WHERE service_id = ?", id,
		).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Service{}, id).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Error al eliminar servicio.")
		return
	}

	c.Status(http.StatusNoContent)
}
