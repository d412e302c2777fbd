package api

import (
	"context"
	"errors"
	"net/http"

	resdto "stable-booking-api/internal/handler/dto/response"
	"stable-booking-api/internal/handler/middleware"
	"stable-booking-api/internal/usecase/commands"
	"stable-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	userCommands   commands.UserCommands
	reviewCommands commands.ReviewCommands
	adminQueries   queries.AdminQueries
}

func NewAdminHandler(userCommands commands.UserCommands, reviewCommands commands.ReviewCommands, adminQueries queries.AdminQueries) *AdminHandler {
	return &AdminHandler{
		userCommands:   userCommands,
		reviewCommands: reviewCommands,
		adminQueries:   adminQueries,
	}
}

// @Summary Dashboard counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AdminStatsResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	view, err := h.adminQueries.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdminStatsView(view))
}

// @Summary Pending booking queue
// @Description All bookings awaiting review, arena and care combined
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PendingBookingResponse
// @Router /admin/bookings/pending [get]
func (h *AdminHandler) PendingBookings(c *gin.Context) {
	items, err := h.adminQueries.PendingBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPendingBookingItems(items))
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by account status"
// @Success 200 {array} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Router /admin/users [get]
func (h *AdminHandler) Users(c *gin.Context) {
	var statusFilter *string
	if status := c.Query("status"); status != "" {
		statusFilter = &status
	}

	views, err := h.adminQueries.Users(c.Request.Context(), statusFilter)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidStatusFilter) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary Approve account
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Router /admin/users/{id}/approve [post]
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	h.userTransition(c, h.userCommands.Approve)
}

// @Summary Deny account
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Router /admin/users/{id}/deny [post]
func (h *AdminHandler) DenyUser(c *gin.Context) {
	h.userTransition(c, h.userCommands.Deny)
}

// @Summary Suspend account
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Router /admin/users/{id}/suspend [post]
func (h *AdminHandler) SuspendUser(c *gin.Context) {
	h.userTransition(c, h.userCommands.Suspend)
}

// @Summary Reactivate account
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Router /admin/users/{id}/reactivate [post]
func (h *AdminHandler) ReactivateUser(c *gin.Context) {
	h.userTransition(c, h.userCommands.Reactivate)
}

// @Summary Delete account
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	h.userTransition(c, h.userCommands.Delete)
}

// @Summary Approve arena booking
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Router /admin/bookings/{id}/approve [post]
func (h *AdminHandler) ApproveBooking(c *gin.Context) {
	h.reviewBooking(c, h.reviewCommands.ApproveArenaBooking)
}

// @Summary Deny arena booking
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Router /admin/bookings/{id}/deny [post]
func (h *AdminHandler) DenyBooking(c *gin.Context) {
	h.reviewBooking(c, h.reviewCommands.DenyArenaBooking)
}

// @Summary Approve care booking
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Care booking ID"
// @Success 204
// @Router /admin/care-bookings/{id}/approve [post]
func (h *AdminHandler) ApproveCareBooking(c *gin.Context) {
	h.reviewBooking(c, h.reviewCommands.ApproveCareBooking)
}

// @Summary Deny care booking
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Care booking ID"
// @Success 204
// @Router /admin/care-bookings/{id}/deny [post]
func (h *AdminHandler) DenyCareBooking(c *gin.Context) {
	h.reviewBooking(c, h.reviewCommands.DenyCareBooking)
}

func (h *AdminHandler) userTransition(c *gin.Context, action func(ctx context.Context, targetID, adminID uuid.UUID) error) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := action(c.Request.Context(), targetID, adminID); err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrAdminProtected):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin accounts cannot be suspended or deleted",
			})
		case errors.Is(err, commands.ErrSelfDelete):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Cannot delete own account",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) reviewBooking(c *gin.Context, action func(ctx context.Context, bookingID, adminID uuid.UUID) error) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := action(c.Request.Context(), bookingID, adminID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking has already been reviewed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
