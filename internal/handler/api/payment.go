package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "event-booking-api/internal/handler/dto/request"
	resdto "event-booking-api/internal/handler/dto/response"
	"event-booking-api/internal/handler/httperr"
	"event-booking-api/internal/handler/middleware"
	"event-booking-api/internal/pkg/errs"
	"event-booking-api/internal/usecase/commands"
	"event-booking-api/internal/usecase/queries"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Process payment
// @Description Pay for a RESERVED ticket; the payment value is the ticket type's price
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProcessPaymentRequest true "Process payment request"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/process [post]
func (h *PaymentHandler) Process(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Ticket id and card data are required!", nil)
		return
	}

	payment, err := h.cmds.ProcessPayment(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTicketNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found!", nil)
		case errors.Is(err, commands.ErrTicketNotOwned):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Ticket is not yours!", nil)
		case errors.Is(err, commands.ErrTicketAlreadyPaid):
			httperr.AbortWithError(c, http.StatusConflict, err, "Ticket is already paid!", nil)
		case errors.Is(err, commands.ErrInvalidPayment):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(payment))
}

// @Summary Get payment
// @Description Get the payment recorded for a ticket owned by the user
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param ticketId query string true "Ticket ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	rawTicketID := c.Query("ticketId")
	if rawTicketID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing ticketId"), "Ticket id is required!", nil)
		return
	}

	ticketID, err := uuid.Parse(rawTicketID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket id", nil)
		return
	}

	payment, err := h.q.GetPayment(c.Request.Context(), userID, ticketID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrTicketNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found!", nil)
		case errors.Is(err, queries.ErrTicketNotOwned):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Ticket is not yours!", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	// Absent payment is a valid state; the ticket exists but is unpaid.
	if payment == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(payment))
}
