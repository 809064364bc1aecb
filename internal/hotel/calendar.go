package hotel

const (
	FirstDate   = 1
	LastDate    = 30
	MinRate     = 0.5
	MaxRate     = 1.5
	DefaultRate = 1.0
)

// RateSource resolves the price modifier of a single date.
type RateSource interface {
	Rate(date int) float64
}

// PriceCalendar holds per-date price modifiers of one month.
// Dates that were never set resolve to DefaultRate.
type PriceCalendar struct {
	rates map[int]float64
}

func NewPriceCalendar() *PriceCalendar {
	return &PriceCalendar{
		rates: make(map[int]float64),
	}
}

func ValidDate(date int) bool {
	return date >= FirstDate && date <= LastDate
}

func (c *PriceCalendar) SetRate(date int, rate float64) error {
	if !ValidDate(date) {
		return ErrInvalidDate
	}

	if !(rate >= MinRate && rate <= MaxRate) {
		return ErrInvalidRate
	}

	c.rates[date] = rate

	return nil
}

func (c *PriceCalendar) Rate(date int) float64 {
	if rate, ok := c.rates[date]; ok {
		return rate
	}

	return DefaultRate
}

// Rates returns the effective rate of every date in the month.
func (c *PriceCalendar) Rates() map[int]float64 {
	out := make(map[int]float64, LastDate)

	for date := FirstDate; date <= LastDate; date++ {
		out[date] = c.Rate(date)
	}

	return out
}
