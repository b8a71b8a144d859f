package handler

import (
	"github.com/gin-gonic/gin"

	"lightbnb/src/app/http/dto"
	"lightbnb/src/app/http/response"
	"lightbnb/src/app/middleware"
	"lightbnb/src/core/usecase"
)

// ReservationHandler handles a guest's reservation listing.
type ReservationHandler struct {
	reservationService *usecase.ReservationService
}

func NewReservationHandler(reservationService *usecase.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// List returns the guest's reservations ordered by start date.
// GET /v1/users/:user_id/reservations
func (h *ReservationHandler) List(c *gin.Context) {
	guestID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var q dto.ReservationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Invalid(c, "limit", "must be a non-negative integer", middleware.GetRequestID(c))
		return
	}

	reservations, err := h.reservationService.ListForGuest(c.Request.Context(), guestID, q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	response.OKList(c, dto.NewReservationList(reservations), len(reservations))
}
