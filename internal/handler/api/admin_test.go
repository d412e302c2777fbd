//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	domuser "stable-booking-api/internal/domain/user"
	"stable-booking-api/internal/handler/api"
	resdto "stable-booking-api/internal/handler/dto/response"
	"stable-booking-api/internal/usecase/commands"
	"stable-booking-api/internal/usecase/queries"
	"stable-booking-api/tests/common/builder"
	"stable-booking-api/tests/common/httptest"
	commandsmock "stable-booking-api/tests/mock/commands"
	queriesmock "stable-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUsers   *commandsmock.MockUserCommands
	mockReviews *commandsmock.MockReviewCommands
	mockQueries *queriesmock.MockAdminQueries
	handler     *api.AdminHandler
	adminID     uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockReviews = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockUsers, s.mockReviews, s.mockQueries)
	s.adminID = uuid.New()

	asAdmin := func(c *gin.Context) {
		c.Set("user_id", s.adminID)
		c.Set("user_role", domuser.RoleAdmin)
	}

	s.router.GET("/admin/stats", asAdmin, s.handler.Stats)
	s.router.GET("/admin/bookings/pending", asAdmin, s.handler.PendingBookings)
	s.router.GET("/admin/users", asAdmin, s.handler.Users)
	s.router.POST("/admin/users/:id/approve", asAdmin, s.handler.ApproveUser)
	s.router.POST("/admin/users/:id/suspend", asAdmin, s.handler.SuspendUser)
	s.router.DELETE("/admin/users/:id", asAdmin, s.handler.DeleteUser)
	s.router.POST("/admin/bookings/:id/approve", asAdmin, s.handler.ApproveBooking)
	s.router.POST("/admin/bookings/:id/deny", asAdmin, s.handler.DenyBooking)
	s.router.POST("/admin/care-bookings/:id/approve", asAdmin, s.handler.ApproveCareBooking)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestStats() {
	view := &queries.AdminStatsView{
		PendingBookings:   3,
		PendingAccounts:   2,
		ActiveAccounts:    40,
		MonthRevenuePence: 12500,
	}
	s.mockQueries.EXPECT().Stats(gomock.Any()).Return(view, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/stats", nil, "")

	var response resdto.AdminStatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(int64(3), response.PendingBookings)
	s.Equal(int64(12500), response.MonthRevenuePence)
}

func (s *AdminHandlerTestSuite) TestPendingBookings() {
	summary := "GREENACHERS 10:00 (30 min)"
	items := []*queries.PendingBookingItem{
		{
			ID:          uuid.New(),
			Type:        "ARENA",
			Summary:     summary,
			Date:        time.Date(2030, 6, 15, 0, 0, 0, 0, time.Local),
			RequestedAt: time.Date(2030, 6, 1, 9, 0, 0, 0, time.Local),
		},
	}
	s.mockQueries.EXPECT().PendingBookings(gomock.Any()).Return(items, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/pending", nil, "")

	var response []resdto.PendingBookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 1)
	s.Equal("ARENA", response[0].Type)
	s.Equal(summary, response[0].Summary)
	s.Equal("2030-06-15", response[0].Date)
}

func (s *AdminHandlerTestSuite) TestUsers() {
	s.Run("success: no filter", func() {
		views := []*queries.UserView{builder.NewUserBuilder().BuildView()}
		s.mockQueries.EXPECT().Users(gomock.Any(), nil).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users", nil, "")

		var response []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: status filter forwarded", func() {
		s.mockQueries.EXPECT().Users(gomock.Any(), gomock.Cond(func(f *string) bool {
			return f != nil && *f == "PENDING_APPROVAL"
		})).Return([]*queries.UserView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users?status=PENDING_APPROVAL", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on an invalid filter", func() {
		s.mockQueries.EXPECT().Users(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidStatusFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users?status=DELETED", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})
}

func (s *AdminHandlerTestSuite) TestUserTransitions() {
	targetID := uuid.New()

	s.Run("success: approve returns 204", func() {
		s.mockUsers.EXPECT().Approve(gomock.Any(), targetID, s.adminID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/users/"+targetID.String()+"/approve", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/users/not-a-uuid/approve", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user ID")
	})

	s.Run("error: 404 for an unknown account", func() {
		s.mockUsers.EXPECT().Approve(gomock.Any(), targetID, s.adminID).
			Return(commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/users/"+targetID.String()+"/approve", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 403 when suspending an admin", func() {
		s.mockUsers.EXPECT().Suspend(gomock.Any(), targetID, s.adminID).
			Return(commands.ErrAdminProtected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/users/"+targetID.String()+"/suspend", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Admin accounts cannot be suspended or deleted")
	})

	s.Run("error: 403 on self delete", func() {
		s.mockUsers.EXPECT().Delete(gomock.Any(), s.adminID, s.adminID).
			Return(commands.ErrSelfDelete).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/admin/users/"+s.adminID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Cannot delete own account")
	})
}

func (s *AdminHandlerTestSuite) TestBookingReview() {
	bookingID := uuid.New()

	s.Run("success: arena approve returns 204", func() {
		s.mockReviews.EXPECT().ApproveArenaBooking(gomock.Any(), bookingID, s.adminID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/bookings/"+bookingID.String()+"/approve", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: care approve routes to the care command", func() {
		s.mockReviews.EXPECT().ApproveCareBooking(gomock.Any(), bookingID, s.adminID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/care-bookings/"+bookingID.String()+"/approve", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockReviews.EXPECT().DenyArenaBooking(gomock.Any(), bookingID, s.adminID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/bookings/"+bookingID.String()+"/deny", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 when reviewed twice", func() {
		s.mockReviews.EXPECT().ApproveArenaBooking(gomock.Any(), bookingID, s.adminID).
			Return(commands.ErrAlreadyReviewed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/bookings/"+bookingID.String()+"/approve", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already been reviewed")
	})
}
