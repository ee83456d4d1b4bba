package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "event-booking-api/internal/handler/dto/response"
	"event-booking-api/internal/handler/httperr"
	"event-booking-api/internal/handler/middleware"
	"event-booking-api/internal/pkg/errs"
	"event-booking-api/internal/usecase/queries"
)

var errUnauthenticated = errs.New("user not authenticated")

type HotelHandler struct {
	q queries.HotelQueries
}

func NewHotelHandler(q queries.HotelQueries) *HotelHandler {
	return &HotelHandler{q: q}
}

// @Summary List hotels
// @Description List all hotels; requires a paid in-person hotel-inclusive ticket
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.HotelResponse
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	hotels, err := h.q.ListHotels(c.Request.Context(), userID)
	if err != nil {
		h.abortWithAccessError(c, err)
		return
	}

	result := make([]*resdto.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		result[i] = resdto.FromHotelView(hotel)
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get hotel with rooms
// @Description Get a hotel and its rooms; requires a paid in-person hotel-inclusive ticket
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param hotelId path string true "Hotel ID"
// @Success 200 {object} resdto.HotelWithRoomsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{hotelId} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	hotelID, err := uuid.Parse(c.Param("hotelId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel id", nil)
		return
	}

	hotel, err := h.q.GetHotelWithRooms(c.Request.Context(), hotelID, userID)
	if err != nil {
		h.abortWithAccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelWithRoomsView(hotel))
}

func (h *HotelHandler) abortWithAccessError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrEnrollmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Enrollment not found!", nil)
	case errors.Is(err, queries.ErrTicketNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found!", nil)
	case errors.Is(err, queries.ErrPaymentRequired):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "You need to pay your ticket first!", nil)
	case errors.Is(err, queries.ErrHotelNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found!", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
