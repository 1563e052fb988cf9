package api

import (
	"errors"
	"net/http"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/room"
	reqdto "neko-hotel/internal/handler/dto/request"
	resdto "neko-hotel/internal/handler/dto/response"
	"neko-hotel/internal/usecase/commands"
	"neko-hotel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase commands.BookingCommands
	bookingQueries queries.BookingQueries
}

func NewBookingHandler(bookingUseCase commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		bookingQueries: bookingQueries,
	}
}

// @Summary List reservations
// @Description List every reservation, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ReservationView
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *BookingHandler) ListReservations(c *gin.Context) {
	views, err := h.bookingQueries.ListReservations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *BookingHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetReservation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Create reservation
// @Description Book a room for a stay after availability and conflict checks
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *BookingHandler) CreateReservation(c *gin.Context) {
	var req reqdto.ReservationRequest
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

	created, err := h.bookingUseCase.CreateReservation(c.Request.Context(), input)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(created))
}

// @Summary Update reservation
// @Description Replace every editable field of a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id} [put]
func (h *BookingHandler) UpdateReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.ReservationRequest
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

	updated, err := h.bookingUseCase.UpdateReservation(c.Request.Context(), id, input)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(updated))
}

// @Summary Delete reservation
// @Description Cancel a reservation; its final snapshot is kept in history
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *BookingHandler) DeleteReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.bookingUseCase.DeleteReservation(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var noVacancy *booking.NoVacancyError

	switch {
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.As(err, &noVacancy):
		c.JSON(http.StatusConflict, gin.H{
			"error": "No vacancy for the requested room type",
			"date":  noVacancy.Date.String(),
		})
	case errors.Is(err, booking.ErrNoVacancy):
		c.JSON(http.StatusConflict, gin.H{
			"error": "No vacancy for the requested room type",
		})
	case errors.Is(err, booking.ErrRoomConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room is already booked for these dates",
		})
	case errors.Is(err, commands.ErrRateNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "No rate configured for room type",
		})
	case errors.Is(err, booking.ErrEmptyBookerName),
		errors.Is(err, booking.ErrEmptyCatName),
		errors.Is(err, booking.ErrRoomTypeMismatch),
		errors.Is(err, room.ErrTypeMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
