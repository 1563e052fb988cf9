package api

import (
	"errors"
	"net/http"

	"neko-hotel/internal/domain/rate"
	"neko-hotel/internal/domain/room"
	reqdto "neko-hotel/internal/handler/dto/request"
	resdto "neko-hotel/internal/handler/dto/response"
	"neko-hotel/internal/usecase/commands"
	"neko-hotel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RateHandler struct {
	rateUseCase commands.RateCommands
	rateQueries queries.RateQueries
}

func NewRateHandler(rateUseCase commands.RateCommands, rateQueries queries.RateQueries) *RateHandler {
	return &RateHandler{
		rateUseCase: rateUseCase,
		rateQueries: rateQueries,
	}
}

// @Summary List rates
// @Description Nightly price per room type
// @Tags rates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.RateView
// @Failure 401 {object} map[string]string
// @Router /rates [get]
func (h *RateHandler) ListRates(c *gin.Context) {
	views, err := h.rateQueries.ListRates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Update rate
// @Description Change the nightly price for one room type
// @Tags rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomType path string true "Room type"
// @Param request body reqdto.UpdateRateRequest true "Rate request"
// @Success 200 {object} resdto.RateResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rates/{roomType} [put]
func (h *RateHandler) UpdateRate(c *gin.Context) {
	roomType, err := room.ParseType(c.Param("roomType"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room type",
		})
		return
	}

	var req reqdto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updated, err := h.rateUseCase.UpdateRate(c.Request.Context(), roomType, req.NightlyCents)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRateNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rate not found",
			})
		case errors.Is(err, rate.ErrNegativeRate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Nightly rate cannot be negative",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRate(updated))
}
