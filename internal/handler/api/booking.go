package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "stable-booking-api/internal/handler/dto/request"
	resdto "stable-booking-api/internal/handler/dto/response"
	"stable-booking-api/internal/handler/middleware"
	"stable-booking-api/internal/usecase/commands"
	"stable-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Arena availability
// @Description List free start times for an arena, date and duration
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param arena query string false "Arena name" default(GREENACHERS)
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration query int true "Duration in minutes (30 or 60)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *BookingHandler) Availability(c *gin.Context) {
	arena := c.DefaultQuery("arena", "GREENACHERS")
	date := c.Query("date")

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid duration",
		})
		return
	}

	view, err := h.bookingQueries.Availability(c.Request.Context(), arena, date, duration)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability query",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Request arena booking
// @Description Submit a booking request; it stays pending until reviewed
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.bookingCommands.Submit(c.Request.Context(), req, userID)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	h.writeCreated(c, userID, false, id)
}

// @Summary List own arena bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get arena booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, middleware.IsAdmin(c), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, queries.ErrBookingAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Proxy arena booking
// @Description Place a pre-approved booking for a customer or walk-in
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProxyBookingRequest true "Proxy booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings [post]
func (h *BookingHandler) CreateProxy(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ProxyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.bookingCommands.SubmitProxy(c.Request.Context(), req, adminID)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	h.writeCreated(c, adminID, true, id)
}

// writeCreated echoes the stored booking, end time and price included.
func (h *BookingHandler) writeCreated(c *gin.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) {
	view, err := h.bookingQueries.GetByID(c.Request.Context(), actorID, isAdmin, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) writeSubmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Requested slot conflicts with an existing booking",
		})
	case errors.Is(err, commands.ErrAccountNotActive):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Account is not active",
		})
	case errors.Is(err, commands.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking request",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
