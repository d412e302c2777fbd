package response

import (
	"time"

	"stable-booking-api/internal/domain/service"
	"stable-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PricePence  int32     `json:"pricePence"`
	Duration    string    `json:"duration"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	resp := &ServiceResponse{}
	_ = copier.Copy(resp, v)
	resp.Duration = service.FormatDuration(int(v.DurationMin))
	return resp
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	result := make([]*ServiceResponse, len(views))
	for i, v := range views {
		result[i] = FromServiceView(v)
	}
	return result
}
