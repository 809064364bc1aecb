package hotel

import "strings"

type Category int

const (
	Standard Category = iota
	Deluxe
	Executive
)

type categoryInfo struct {
	title      string
	multiplier float64
	suffix     string
}

//nolint:gomnd
var categories = map[Category]categoryInfo{
	Standard:  {title: "Standard", multiplier: 1.0, suffix: ""},
	Deluxe:    {title: "Deluxe", multiplier: 1.2, suffix: " (DX)"},
	Executive: {title: "Executive", multiplier: 1.35, suffix: " (EC)"},
}

func ParseCategory(s string) (Category, error) {
	for category, info := range categories {
		if strings.EqualFold(strings.TrimSpace(s), info.title) {
			return category, nil
		}
	}

	return 0, ErrInvalidCategory
}

func (c Category) Valid() bool {
	_, ok := categories[c]

	return ok
}

func (c Category) String() string {
	if info, ok := categories[c]; ok {
		return info.title
	}

	return "Unknown"
}

// Multiplier is applied to the hotel base price once, when the room is created.
func (c Category) Multiplier() float64 {
	return categories[c].multiplier
}

func (c Category) Suffix() string {
	return categories[c].suffix
}
