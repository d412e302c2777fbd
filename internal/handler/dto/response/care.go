package response

import (
	"time"

	"stable-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CareBookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	ServiceID     uuid.UUID  `json:"serviceId"`
	ServiceName   string     `json:"serviceName"`
	HorseName     string     `json:"horseName"`
	Date          string     `json:"date"`
	Status        string     `json:"status"`
	UserID        *uuid.UUID `json:"userId,omitempty"`
	CustomerName  *string    `json:"customerName,omitempty"`
	CustomerPhone *string    `json:"customerPhone,omitempty"`
	IsWalkIn      bool       `json:"isWalkIn"`
	RequestedAt   time.Time  `json:"requestedAt"`
	ReviewedBy    *uuid.UUID `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
}

func FromCareBookingView(v *queries.CareBookingView) *CareBookingResponse {
	resp := &CareBookingResponse{}
	_ = copier.Copy(resp, v)
	resp.Date = v.Date.Format(dateLayout)
	return resp
}

func FromCareBookingViews(views []*queries.CareBookingView) []*CareBookingResponse {
	result := make([]*CareBookingResponse, len(views))
	for i, v := range views {
		result[i] = FromCareBookingView(v)
	}
	return result
}
