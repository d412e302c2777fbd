package booking

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// Date is a plain local calendar date. No timezone is attached; bookings are
// interpreted in the yard's local wall clock.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	if !dateRe.MatchString(s) {
		return Date{}, ErrInvalidDate
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// At combines the date with a time of day into a local wall-clock instant.
func (d Date) At(tod TimeOfDay) time.Time {
	return d.t.Add(time.Duration(tod) * time.Minute)
}

// TimeOfDay is minutes since midnight, minute precision.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTime
	}
	return TimeOfDay(hour*60 + minute), nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !timeRe.MatchString(s) {
		return 0, ErrInvalidTime
	}
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, ErrInvalidTime
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) Add(d Duration) TimeOfDay {
	return t + TimeOfDay(d.Minutes())
}

// Interval is a half-open [start, start+duration) span within one day.
type Interval struct {
	start    TimeOfDay
	duration Duration
}

func NewInterval(start TimeOfDay, duration Duration) Interval {
	return Interval{start: start, duration: duration}
}

func (iv Interval) Start() TimeOfDay {
	return iv.start
}

func (iv Interval) End() TimeOfDay {
	return iv.start.Add(iv.duration)
}

func (iv Interval) Duration() Duration {
	return iv.duration
}

// Overlaps reports whether two half-open intervals intersect. Intervals that
// merely touch at a boundary do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start() < other.End() && iv.End() > other.Start()
}

// Money is an amount in pence.
type Money int

func NewMoney(pence int) (Money, error) {
	if pence < 0 {
		return 0, ErrNegativePrice
	}
	return Money(pence), nil
}

func (m Money) Pence() int {
	return int(m)
}

func (m Money) Pounds() float64 {
	return float64(m) / 100.0
}

func (m Money) String() string {
	return fmt.Sprintf("£%.2f", m.Pounds())
}

// WalkIn identifies a customer without a registered account.
type WalkIn struct {
	Name  string
	Phone string
}

// Requester is either a registered account reference or walk-in details,
// never both and never neither.
type Requester struct {
	userID *uuid.UUID
	walkIn *WalkIn
}

func NewAccountRequester(userID uuid.UUID) Requester {
	id := userID
	return Requester{userID: &id}
}

func NewWalkInRequester(name, phone string) (Requester, error) {
	if name == "" || phone == "" {
		return Requester{}, ErrWalkInDetailsRequired
	}
	return Requester{walkIn: &WalkIn{Name: name, Phone: phone}}, nil
}

func ReconstructRequester(userID *uuid.UUID, walkIn *WalkIn) Requester {
	return Requester{userID: userID, walkIn: walkIn}
}

func (r Requester) UserID() *uuid.UUID {
	return r.userID
}

func (r Requester) WalkIn() *WalkIn {
	return r.walkIn
}

func (r Requester) IsWalkIn() bool {
	return r.walkIn != nil
}

func (r Requester) IsZero() bool {
	return r.userID == nil && r.walkIn == nil
}
