package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/httpresp"
	"github.com/gonzalomaurino/canchas-api/internal/paylink"
	ucpayment "github.com/gonzalomaurino/canchas-api/internal/usecase/payment"
)

type PaymentHandler struct {
	register *ucpayment.RegisterPayment
	list     *ucpayment.ListPayments
	delete   *ucpayment.DeletePayment
	details  *ucpayment.PaymentDetails

	// nil when MP_ACCESS_TOKEN is not configured.
	links *paylink.Service
}

func NewPaymentHandler(
	register *ucpayment.RegisterPayment,
	list *ucpayment.ListPayments,
	del *ucpayment.DeletePayment,
	details *ucpayment.PaymentDetails,
	links *paylink.Service,
) *PaymentHandler {
	return &PaymentHandler{
		register: register,
		list:     list,
		delete:   del,
		details:  details,
		links:    links,
	}
}

// --------- Requests ---------

type RegisterPaymentRequest struct {
	BookingID uint    `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Method    string  `json:"method" binding:"required"`
}

// --------- Handlers ---------

func (h *PaymentHandler) Register(c *gin.Context) {
	var req RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	p, err := h.register.Execute(c.Request.Context(), ucpayment.RegisterPaymentInput{
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Method:    req.Method,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *PaymentHandler) List(c *gin.Context) {
	var method *string
	if m := c.Query("method"); m != "" {
		method = &m
	}

	out, err := h.list.Execute(c.Request.Context(), queryUint(c, "court_id"), method)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
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

// Details reports total, paid and outstanding for one booking.
func (h *PaymentHandler) Details(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	details, err := h.details.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, details)
}

func (h *PaymentHandler) Balance(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	outstanding, err := h.details.OutstandingBalance(c.Request.Context(), id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"outstanding": outstanding})
}

// PaymentLink creates a MercadoPago checkout preference for the booking's
// outstanding balance.
func (h *PaymentHandler) PaymentLink(c *gin.Context) {
	if h.links == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "payment_links_disabled",
			"Los links de pago no están habilitados.")
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	outstanding, err := h.details.OutstandingBalance(ctx, id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	link, err := h.links.CreateForBooking(ctx, id, "Reserva de cancha", outstanding)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}
