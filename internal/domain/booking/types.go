package booking

type Arena string

const (
	ArenaGreenachers Arena = "GREENACHERS"
	ArenaMerydown    Arena = "MERYDOWN"
)

func (a Arena) String() string {
	return string(a)
}

func (a Arena) IsValid() bool {
	switch a {
	case ArenaGreenachers, ArenaMerydown:
		return true
	default:
		return false
	}
}

func NewArena(s string) (Arena, error) {
	a := Arena(s)
	if !a.IsValid() {
		return "", ErrInvalidArena
	}
	return a, nil
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusDenied   Status = "DENIED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied:
		return true
	default:
		return false
	}
}

// Reviewed reports whether the status is terminal.
func (s Status) Reviewed() bool {
	return s == StatusApproved || s == StatusDenied
}

// Duration is a booking length in minutes. Only two lengths are bookable.
type Duration int

const (
	DurationHalfHour Duration = 30
	DurationHour     Duration = 60
)

func (d Duration) Minutes() int {
	return int(d)
}

func (d Duration) IsValid() bool {
	return d == DurationHalfHour || d == DurationHour
}

func NewDuration(minutes int) (Duration, error) {
	d := Duration(minutes)
	if !d.IsValid() {
		return 0, ErrInvalidDuration
	}
	return d, nil
}
