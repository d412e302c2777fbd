package response

import (
	"fmt"
	"time"

	"stable-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	Arena         string     `json:"arena"`
	Date          string     `json:"date"`
	Start         string     `json:"start"`
	End           string     `json:"end"`
	DurationMin   int32      `json:"durationMin"`
	PricePence    int32      `json:"pricePence"`
	Status        string     `json:"status"`
	UserID        *uuid.UUID `json:"userId,omitempty"`
	CustomerName  *string    `json:"customerName,omitempty"`
	CustomerPhone *string    `json:"customerPhone,omitempty"`
	IsWalkIn      bool       `json:"isWalkIn"`
	RequestedAt   time.Time  `json:"requestedAt"`
	ReviewedBy    *uuid.UUID `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, v)
	resp.Date = v.Date.Format(dateLayout)
	resp.Start = formatMinutes(v.StartMin)
	resp.End = formatMinutes(v.StartMin + v.DurationMin)
	return resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(views))
	for i, v := range views {
		result[i] = FromBookingView(v)
	}
	return result
}

type AvailabilityResponse struct {
	Arena           string               `json:"arena"`
	Date            string               `json:"date"`
	DurationMin     int32                `json:"durationMin"`
	AvailableStarts []string             `json:"availableStarts"`
	BookedSlots     []BookedSlotResponse `json:"bookedSlots"`
}

type BookedSlotResponse struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	DurationMin int32  `json:"durationMin"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	booked := make([]BookedSlotResponse, len(v.BookedSlots))
	for i, s := range v.BookedSlots {
		booked[i] = BookedSlotResponse{
			Start:       formatMinutes(s.StartMin),
			End:         formatMinutes(s.StartMin + s.DurationMin),
			DurationMin: s.DurationMin,
		}
	}
	return &AvailabilityResponse{
		Arena:           v.Arena,
		Date:            v.Date.Format(dateLayout),
		DurationMin:     v.DurationMin,
		AvailableStarts: v.AvailableStarts,
		BookedSlots:     booked,
	}
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func formatMinutes(m int32) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
