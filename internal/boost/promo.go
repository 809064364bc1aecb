package boost

import (
	"fmt"
	"sort"
)

const (
	EmployeeCode     = "I_WORK_HERE"
	FreeNightCode    = "STAY4_GET1"
	PaydayCode       = "PAYDAY"
	freeNightMinStay = 5
	firstPayday      = 15
	secondPayday     = 30
)

// Stay is the part of a reservation a discount is allowed to look at.
type Stay struct {
	CheckIn      int
	CheckOut     int
	NightlyPrice float64
	Total        float64
}

func (s Stay) Nights() int {
	return s.CheckOut - s.CheckIn
}

type Strategy interface {
	Code() string
	Check(stay Stay) error
	Apply(stay Stay) float64
}

type EmployeeDiscount struct {
	Factor float64
}

func (d *EmployeeDiscount) Code() string {
	return EmployeeCode
}

func (d *EmployeeDiscount) Check(_ Stay) error {
	return nil
}

func (d *EmployeeDiscount) Apply(stay Stay) float64 {
	return stay.Total * d.Factor
}

type FreeNightDiscount struct {
	MinNights int
}

func (d *FreeNightDiscount) Code() string {
	return FreeNightCode
}

func (d *FreeNightDiscount) Check(stay Stay) error {
	if stay.Nights() < d.MinNights {
		return fmt.Errorf("%s needs %d nights, got %d: %w", FreeNightCode, d.MinNights, stay.Nights(), ErrStayTooShort)
	}

	return nil
}

func (d *FreeNightDiscount) Apply(stay Stay) float64 {
	return stay.Total - stay.NightlyPrice
}

type PaydayDiscount struct {
	Factor  float64
	Paydays []int
}

func (d *PaydayDiscount) Code() string {
	return PaydayCode
}

// Check passes when a payday is one of the nights of the stay,
// a stay checking out on a payday does not count.
func (d *PaydayDiscount) Check(stay Stay) error {
	for _, payday := range d.Paydays {
		if stay.CheckIn <= payday && stay.CheckOut > payday {
			return nil
		}
	}

	return fmt.Errorf("%s needs a stay over day %v: %w", PaydayCode, d.Paydays, ErrPaydayNotSpanned)
}

func (d *PaydayDiscount) Apply(stay Stay) float64 {
	return stay.Total * d.Factor
}

//nolint:gomnd,exhaustruct
var strategies = map[string]Strategy{
	EmployeeCode:  &EmployeeDiscount{Factor: 0.9},
	FreeNightCode: &FreeNightDiscount{MinNights: freeNightMinStay},
	PaydayCode:    &PaydayDiscount{Factor: 0.93, Paydays: []int{firstPayday, secondPayday}},
}

func Lookup(code string) (Strategy, bool) {
	strategy, ok := strategies[code]

	return strategy, ok
}

// Codes lists the known discount codes in alphabetical order.
func Codes() []string {
	out := make([]string, 0, len(strategies))

	for code := range strategies {
		out = append(out, code)
	}

	sort.Strings(out)

	return out
}

// Check reports why code cannot be applied to stay, nil when it can.
func Check(code string, stay Stay) error {
	strategy, ok := Lookup(code)
	if !ok {
		return fmt.Errorf("code %q: %w", code, ErrUnknownCode)
	}

	return strategy.Check(stay)
}

func Eligible(code string, stay Stay) bool {
	return Check(code, stay) == nil
}

// Apply returns the discounted total, or stay.Total unchanged when code is not eligible.
func Apply(code string, stay Stay) float64 {
	if err := Check(code, stay); err != nil {
		return stay.Total
	}

	strategy, _ := Lookup(code)

	return strategy.Apply(stay)
}
