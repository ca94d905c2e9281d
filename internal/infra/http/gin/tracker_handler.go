package ginserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	gin "github.com/gin-gonic/gin"

	"staytrack/internal/app/tracker"
	"staytrack/internal/domain/booking"
	"staytrack/internal/domain/property"
	"staytrack/internal/domain/rooms"
)

// TrackerHandler translates HTTP requests into tracker operations and
// tracker errors back into status codes. All business rules live below;
// the handler only parses and formats.
type TrackerHandler struct {
	Service *tracker.Service
}

type createPropertyRequest struct {
	Name  string `json:"name" binding:"required"`
	Rooms int    `json:"rooms" binding:"required"`
}

func (h *TrackerHandler) CreateProperty(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateProperty(c.Request.Context(), req.Name, req.Rooms); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"name": req.Name, "rooms": req.Rooms})
}

func (h *TrackerHandler) ListProperties(c *gin.Context) {
	names := h.Service.ListProperties(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"properties": names})
}

func (h *TrackerHandler) PropertySummary(c *gin.Context) {
	summary, err := h.Service.PropertySummary(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *TrackerHandler) RemoveProperty(c *gin.Context) {
	if err := h.Service.RemoveProperty(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type renamePropertyRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

func (h *TrackerHandler) RenameProperty(c *gin.Context) {
	var req renamePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.RenameProperty(c.Request.Context(), c.Param("name"), req.NewName); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": req.NewName})
}

type addRoomsRequest struct {
	Count int `json:"count" binding:"required"`
}

func (h *TrackerHandler) AddRooms(c *gin.Context) {
	var req addRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	added, err := h.Service.AddRooms(c.Request.Context(), c.Param("name"), req.Count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

func (h *TrackerHandler) RoomDetail(c *gin.Context) {
	number, ok := paramInt(c, "number")
	if !ok {
		return
	}
	info, err := h.Service.RoomDetail(c.Request.Context(), c.Param("name"), number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *TrackerHandler) RemoveRoom(c *gin.Context) {
	number, ok := paramInt(c, "number")
	if !ok {
		return
	}
	if err := h.Service.RemoveRoom(c.Request.Context(), c.Param("name"), number); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type updatePricesRequest struct {
	BasePrice float64 `json:"base_price" binding:"required"`
}

func (h *TrackerHandler) UpdateRoomPrices(c *gin.Context) {
	var req updatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateAllRoomPrices(c.Request.Context(), c.Param("name"), req.BasePrice); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"base_price": req.BasePrice})
}

type setRateRequest struct {
	Day        int     `json:"day" binding:"required"`
	Percentage float64 `json:"percentage" binding:"required"`
}

func (h *TrackerHandler) SetRateOverride(c *gin.Context) {
	var req setRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.SetRateOverride(c.Request.Context(), c.Param("name"), req.Day, req.Percentage); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": req.Day, "percentage": req.Percentage})
}

type simulateBookingRequest struct {
	Guest        string `json:"guest" binding:"required"`
	CheckIn      int    `json:"check_in" binding:"required"`
	CheckOut     int    `json:"check_out" binding:"required"`
	RoomClass    string `json:"room_class" binding:"required"`
	DiscountCode string `json:"discount_code"`
}

func (h *TrackerHandler) SimulateBooking(c *gin.Context) {
	var req simulateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	class, ok := parseClass(req.RoomClass)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown room class " + req.RoomClass})
		return
	}
	outcome, err := h.Service.SimulateBooking(c.Request.Context(), c.Param("name"), req.Guest, req.CheckIn, req.CheckOut, class, req.DiscountCode)
	if err != nil {
		respondError(c, err)
		return
	}
	body := gin.H{"outcome": outcome.String(), "booked": outcome.Booked()}
	switch outcome {
	case booking.OutcomeInvalidDates:
		c.JSON(http.StatusBadRequest, body)
	case booking.OutcomeNoAvailability:
		c.JSON(http.StatusConflict, body)
	default:
		c.JSON(http.StatusCreated, body)
	}
}

func (h *TrackerHandler) ReservationDetail(c *gin.Context) {
	info, err := h.Service.ReservationDetail(c.Request.Context(), c.Param("name"), c.Param("guest"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *TrackerHandler) RemoveReservation(c *gin.Context) {
	if err := h.Service.RemoveReservation(c.Request.Context(), c.Param("name"), c.Param("guest")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TrackerHandler) Earnings(c *gin.Context) {
	earnings, err := h.Service.Earnings(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"earnings": earnings})
}

func (h *TrackerHandler) DayOccupancy(c *gin.Context) {
	day, err := strconv.Atoi(c.Query("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day query parameter must be an integer"})
		return
	}
	occ, err := h.Service.DayOccupancy(c.Request.Context(), c.Param("name"), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, occ)
}

func paramInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return v, true
}

func parseClass(s string) (rooms.Class, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "STANDARD", "1":
		return rooms.Standard, true
	case "DELUXE", "2":
		return rooms.Deluxe, true
	case "EXECUTIVE", "3":
		return rooms.Executive, true
	default:
		return 0, false
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, tracker.ErrPropertyNotFound),
		errors.Is(err, booking.ErrReservationNotFound),
		errors.Is(err, rooms.ErrInvalidRoomNumber):
		return http.StatusNotFound
	case errors.Is(err, tracker.ErrNameTaken),
		errors.Is(err, property.ErrRoomHasReservations),
		errors.Is(err, property.ErrHasReservations),
		errors.Is(err, rooms.ErrCapacityExceeded):
		return http.StatusConflict
	case errors.Is(err, property.ErrInvalidRoomCount),
		errors.Is(err, property.ErrPriceTooLow),
		errors.Is(err, tracker.ErrInvalidDay):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
