package api

import (
	"errors"
	"net/http"

	"neko-hotel/internal/domain/booking"
	reqdto "neko-hotel/internal/handler/dto/request"
	resdto "neko-hotel/internal/handler/dto/response"
	"neko-hotel/internal/usecase/commands"
	"neko-hotel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated booking site: rates for the
// price table and the self-service booking endpoint.
type PublicHandler struct {
	publicUseCase commands.PublicBookingCommands
	rateQueries   queries.RateQueries
}

func NewPublicHandler(publicUseCase commands.PublicBookingCommands, rateQueries queries.RateQueries) *PublicHandler {
	return &PublicHandler{
		publicUseCase: publicUseCase,
		rateQueries:   rateQueries,
	}
}

// @Summary Public rates
// @Description Nightly prices for the public price table
// @Tags public
// @Produce json
// @Success 200 {array} queries.RateView
// @Router /public/rates [get]
func (h *PublicHandler) ListRates(c *gin.Context) {
	views, err := h.rateQueries.ListRates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Online booking
// @Description Self-service booking; a free room of the requested type is assigned automatically
// @Tags public
// @Accept json
// @Produce json
// @Param request body reqdto.OnlineBookingRequest true "Booking request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /public/bookings [post]
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req reqdto.OnlineBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	created, err := h.publicUseCase.CreateOnlineBooking(c.Request.Context(), input)
	if err != nil {
		var noVacancy *booking.NoVacancyError

		switch {
		case errors.As(err, &noVacancy):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No vacancy for the requested room type",
				"date":  noVacancy.Date.String(),
			})
		case errors.Is(err, booking.ErrNoVacancy), errors.Is(err, commands.ErrNoRoomToAssign):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No room of the requested type is free for these dates",
			})
		case errors.Is(err, commands.ErrRateNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No rate configured for room type",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(created))
}
