package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/gonzalomaurino/canchas-api/internal/domain/tournament"
	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/httpresp"
	uctournament "github.com/gonzalomaurino/canchas-api/internal/usecase/tournament"
)

type TournamentHandler struct {
	repo     domain.Repository
	create   *uctournament.CreateTournament
	assign   *uctournament.AssignBooking
	unassign *uctournament.UnassignBooking
	bookings *uctournament.BookingsOfTournament
	delete   *uctournament.DeleteTournament
}

func NewTournamentHandler(
	repo domain.Repository,
	create *uctournament.CreateTournament,
	assign *uctournament.AssignBooking,
	unassign *uctournament.UnassignBooking,
	bookings *uctournament.BookingsOfTournament,
	del *uctournament.DeleteTournament,
) *TournamentHandler {
	return &TournamentHandler{
		repo:     repo,
		create:   create,
		assign:   assign,
		unassign: unassign,
		bookings: bookings,
		delete:   del,
	}
}

// --------- Requests ---------

type CreateTournamentRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Category  string `json:"category"`
}

// --------- Handlers ---------

func (h *TournamentHandler) Create(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	t, err := h.create.Execute(c.Request.Context(), uctournament.CreateTournamentInput{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Category:  req.Category,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

func (h *TournamentHandler) List(c *gin.Context) {
	tournaments, err := h.repo.ListTournaments(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_tournaments", "Error al listar torneos.")
		return
	}

	httpresp.List(c, tournaments)
}

func (h *TournamentHandler) Delete(c *gin.Context) {
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

func (h *TournamentHandler) AssignBooking(c *gin.Context) {
	tournamentID, ok := paramID(c, "id")
	if !ok {
		return
	}
	bookingID, ok := paramID(c, "bookingID")
	if !ok {
		return
	}

	if err := h.assign.Execute(c.Request.Context(), tournamentID, bookingID); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TournamentHandler) UnassignBooking(c *gin.Context) {
	tournamentID, ok := paramID(c, "id")
	if !ok {
		return
	}
	bookingID, ok := paramID(c, "bookingID")
	if !ok {
		return
	}

	if err := h.unassign.Execute(c.Request.Context(), tournamentID, bookingID); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TournamentHandler) Bookings(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.bookings.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}
