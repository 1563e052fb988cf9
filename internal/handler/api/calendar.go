package api

import (
	"net/http"
	"strconv"
	"time"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CalendarHandler struct {
	calendarQueries queries.CalendarQueries
}

func NewCalendarHandler(calendarQueries queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{calendarQueries: calendarQueries}
}

// @Summary Month overview
// @Description Occupancy state for every day of a month
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} queries.CalendarMonthView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /calendar [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid year",
		})
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid month",
		})
		return
	}

	view, err := h.calendarQueries.Month(c.Request.Context(), year, time.Month(month))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Day availability
// @Description Per-category unit breakdown and reservations for one night
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.DayDetailView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /availability [get]
func (h *CalendarHandler) DayAvailability(c *gin.Context) {
	date, err := booking.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date",
		})
		return
	}

	view, err := h.calendarQueries.DayDetail(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Room options
// @Description Rooms of a type still free for a stay, for the booking form
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param room_type query string true "Room type"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Checkout date (YYYY-MM-DD)"
// @Param exclude query string false "Reservation ID to exclude (edit mode)"
// @Success 200 {array} queries.RoomOptionView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rooms/options [get]
func (h *CalendarHandler) RoomOptions(c *gin.Context) {
	roomType, err := room.ParseType(c.Query("room_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room type",
		})
		return
	}

	checkIn, err := booking.ParseDate(c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid check-in date",
		})
		return
	}
	checkOut, err := booking.ParseDate(c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid checkout date",
		})
		return
	}

	stay, err := booking.NewStayWindow(checkIn, checkOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Checkout must be after check-in",
		})
		return
	}

	excludeID := uuid.Nil
	if raw := c.Query("exclude"); raw != "" {
		excludeID, err = uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid exclude ID format",
			})
			return
		}
	}

	views, err := h.calendarQueries.RoomOptions(c.Request.Context(), roomType, stay, excludeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
