package core

import (
	"errors"
	"strings"
	"time"
)

const (
	CategoryJ30      Category = "J30"
	CategoryJ60      Category = "J60"
	CategoryJ100     Category = "J100"
	CategoryITF      Category = "ITF"
	CategoryNational Category = "National"
	CategoryOther    Category = "Other"
)

type (
	// Category is the tournament grade. The set is fixed; see Categories.
	Category string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// TournamentRecord is one attended tournament: identity, what it cost,
	// and what it returned. Records are immutable once appended to a ledger.
	TournamentRecord struct {
		Name     string
		Date     Date
		Location string
		Category Category

		EntryFee Money
		Flights  Money
		Hotel    Money
		Meals    Money
		Coaching Money
		Misc     Money

		MatchWins     int
		MatchLosses   int
		RankingPoints int

		Notes string // optional free text
	}
)

// Categories lists the valid tournament grades in display order.
var Categories = []Category{
	CategoryJ30, CategoryJ60, CategoryJ100,
	CategoryITF, CategoryNational, CategoryOther,
}

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrNegativeAmount  = errors.New("negative amount")
	ErrNegativeCount   = errors.New("negative count")
	ErrEmptyName       = errors.New("empty tournament name")
)

func (c Category) Validate() error {
	for _, v := range Categories {
		if c == v {
			return nil
		}
	}
	return ErrInvalidCategory
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Costs returns the six cost fields in schema order.
func (r TournamentRecord) Costs() []Money {
	return []Money{r.EntryFee, r.Flights, r.Hotel, r.Meals, r.Coaching, r.Misc}
}

func (r TournamentRecord) Validate() error {
	if len(strings.TrimSpace(r.Name)) == 0 {
		return ErrEmptyName
	}
	if len(r.Name) > 200 {
		return errors.New("tournament name too long (max 200 characters)")
	}
	if err := r.Date.Validate(); err != nil {
		return err
	}
	if err := r.Category.Validate(); err != nil {
		return err
	}
	for _, m := range r.Costs() {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	if r.MatchWins < 0 || r.MatchLosses < 0 || r.RankingPoints < 0 {
		return ErrNegativeCount
	}
	if len(r.Notes) > 500 {
		return errors.New("notes too long (max 500 characters)")
	}
	return nil
}
