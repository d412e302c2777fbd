package booking

// Tariff prices arena time by duration. Prices are fixed per duration and
// never client-supplied.
type Tariff struct {
	halfHourPence Money
	hourPence     Money
}

func DefaultTariff() Tariff {
	return Tariff{
		halfHourPence: 250,
		hourPence:     500,
	}
}

func (t Tariff) PriceFor(d Duration) (Money, error) {
	switch d {
	case DurationHalfHour:
		return t.halfHourPence, nil
	case DurationHour:
		return t.hourPence, nil
	default:
		return 0, ErrInvalidDuration
	}
}
