package response

import (
	"time"

	"stable-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID               uuid.UUID  `json:"id"`
	Kind             string     `json:"kind"`
	Title            string     `json:"title"`
	Message          string     `json:"message"`
	RelatedBookingID *uuid.UUID `json:"relatedBookingId,omitempty"`
	Read             bool       `json:"read"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func FromNotificationViews(views []*queries.NotificationView) []*NotificationResponse {
	result := make([]*NotificationResponse, len(views))
	for i, v := range views {
		resp := &NotificationResponse{}
		_ = copier.Copy(resp, v)
		result[i] = resp
	}
	return result
}
