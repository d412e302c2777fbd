package response

import (
	"time"

	"stable-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"fullName,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	resp := &UserResponse{}
	_ = copier.Copy(resp, v)
	return resp
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	result := make([]*UserResponse, len(views))
	for i, v := range views {
		result[i] = FromUserView(v)
	}
	return result
}

type PendingBookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Summary      string     `json:"summary"`
	Date         string     `json:"date"`
	UserID       *uuid.UUID `json:"userId,omitempty"`
	CustomerName *string    `json:"customerName,omitempty"`
	IsWalkIn     bool       `json:"isWalkIn"`
	RequestedAt  time.Time  `json:"requestedAt"`
}

func FromPendingBookingItems(items []*queries.PendingBookingItem) []*PendingBookingResponse {
	result := make([]*PendingBookingResponse, len(items))
	for i, item := range items {
		resp := &PendingBookingResponse{}
		_ = copier.Copy(resp, item)
		resp.Date = item.Date.Format(dateLayout)
		result[i] = resp
	}
	return result
}

type AdminStatsResponse struct {
	PendingBookings   int64 `json:"pendingBookings"`
	PendingAccounts   int64 `json:"pendingAccounts"`
	ActiveAccounts    int64 `json:"activeAccounts"`
	MonthRevenuePence int64 `json:"monthRevenuePence"`
}

func FromAdminStatsView(v *queries.AdminStatsView) *AdminStatsResponse {
	resp := &AdminStatsResponse{}
	_ = copier.Copy(resp, v)
	return resp
}
