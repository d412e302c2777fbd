package api

import (
	"errors"
	"net/http"

	reqdto "stable-booking-api/internal/handler/dto/request"
	resdto "stable-booking-api/internal/handler/dto/response"
	"stable-booking-api/internal/handler/middleware"
	"stable-booking-api/internal/usecase/commands"
	"stable-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CareHandler struct {
	careCommands commands.CareCommands
	careQueries  queries.CareQueries
}

func NewCareHandler(careCommands commands.CareCommands, careQueries queries.CareQueries) *CareHandler {
	return &CareHandler{
		careCommands: careCommands,
		careQueries:  careQueries,
	}
}

// @Summary Request horse-care booking
// @Tags care
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCareBookingRequest true "Care booking request"
// @Success 201 {object} resdto.CareBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /care-bookings [post]
func (h *CareHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateCareBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.careCommands.Submit(c.Request.Context(), req, userID)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	h.writeCreated(c, userID, false, id)
}

// @Summary List own care bookings
// @Tags care
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CareBookingResponse
// @Router /care-bookings [get]
func (h *CareHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.careQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCareBookingViews(views))
}

// @Summary Get care booking
// @Tags care
// @Produce json
// @Security BearerAuth
// @Param id path string true "Care booking ID"
// @Success 200 {object} resdto.CareBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /care-bookings/{id} [get]
func (h *CareHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid care booking ID format",
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

	view, err := h.careQueries.GetByID(c.Request.Context(), userID, middleware.IsAdmin(c), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Care booking not found",
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

	c.JSON(http.StatusOK, resdto.FromCareBookingView(view))
}

// @Summary Proxy horse-care booking
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProxyCareBookingRequest true "Proxy care booking"
// @Success 201 {object} resdto.CareBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/care-bookings [post]
func (h *CareHandler) CreateProxy(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ProxyCareBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.careCommands.SubmitProxy(c.Request.Context(), req, adminID)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	h.writeCreated(c, adminID, true, id)
}

func (h *CareHandler) writeCreated(c *gin.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) {
	view, err := h.careQueries.GetByID(c.Request.Context(), actorID, isAdmin, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCareBookingView(view))
}

func (h *CareHandler) writeSubmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	case errors.Is(err, commands.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case errors.Is(err, commands.ErrAccountNotActive):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Account is not active",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid care booking request",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
