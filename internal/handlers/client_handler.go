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
	"github.com/gonzalomaurino/canchas-api/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

type UpdateClientRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("last_name ASC, first_name ASC").
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Error al listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !validators.HasEmailShape(req.Email) {
		httperr.BadRequest(c, "invalid_email", "El email no tiene un formato válido.")
		return
	}

	client := models.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Write(c, http.StatusConflict, "client_exists",
				"Ya existe un cliente con ese email o teléfono.")
			return
		}
		httperr.Internal(c, "failed_to_create_client", "Error al crear cliente.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFoundStatus(c, "client_not_found", "Cliente no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Error al buscar cliente.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		if !validators.HasEmailShape(*req.Email) {
			httperr.BadRequest(c, "invalid_email", "El email no tiene un formato válido.")
			return
		}
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Write(c, http.StatusConflict, "client_exists",
				"Ya existe otro cliente con ese email o teléfono.")
			return
		}
		httperr.Internal(c, "failed_to_update_client", "Error al actualizar cliente.")
		return
	}

	c.JSON(http.StatusOK, client)
}

// Delete removes a client together with its deletable bookings. Any
// booking holding payments in a protected state blocks the whole delete.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var client models.Client
	if err := h.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFoundStatus(c, "client_not_found", "Cliente no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Error al buscar cliente.")
		return
	}

	var protected int64
	if err := h.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("client_id = ? AND LOWER(status) IN ?", id,
			[]string{"confirmada", "seña"}).
		Where("EXISTS (SELECT 1 FROM payments WHERE payments.booking_id = bookings.id)").
		Count(&protected).Error; err != nil {
		httperr.Internal(c, "failed_to_check_bookings", "Error al verificar reservas.")
		return
	}

	if protected > 0 {
		httperr.Write(c, http.StatusConflict, "client_has_protected_bookings",
			"No se puede eliminar: el cliente tiene reservas con pagos registrados.")
		return
	}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&models.Booking{}).
			Select("id").
			Where("client_id = ?", id)

		if err := tx.Where("booking_id IN (?)", sub).
			Delete(&models.TournamentBooking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("booking_id IN (?)", sub).
			Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).
			Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Client{}, id).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Error al eliminar cliente.")
		return
	}

	c.Status(http.StatusNoContent)
}
