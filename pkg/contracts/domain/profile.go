package domain

import (
	"fmt"
)

// Profile describes the fixed numeric shape of one lottery game. It is
// supplied by the caller per game and never derived from the draw data.
type Profile struct {
	Name         string `json:"name" yaml:"name"`
	TotalNumbers int    `json:"total_numbers" yaml:"total_numbers" validate:"required,min=2,max=999"`
	DrawSize     int    `json:"draw_size" yaml:"draw_size" validate:"required,min=1"`
	BetSize      int    `json:"bet_size" yaml:"bet_size" validate:"required,min=1"`
	HotCount     int    `json:"hot_count" yaml:"hot_count" validate:"required,min=1"`
	ColdCount    int    `json:"cold_count" yaml:"cold_count" validate:"required,min=1"`
}

// Validate checks the cross-field constraints that struct tags cannot express.
func (p Profile) Validate() error {
	if p.TotalNumbers < 2 {
		return fmt.Errorf("total numbers must be at least 2, got %d", p.TotalNumbers)
	}
	if p.DrawSize < 1 || p.DrawSize > p.TotalNumbers {
		return fmt.Errorf("draw size must be in [1, %d], got %d", p.TotalNumbers, p.DrawSize)
	}
	if p.BetSize < 1 || p.BetSize > p.TotalNumbers {
		return fmt.Errorf("bet size must be in [1, %d], got %d", p.TotalNumbers, p.BetSize)
	}
	if p.HotCount < 1 || p.ColdCount < 1 {
		return fmt.Errorf("hot and cold pool sizes must be at least 1")
	}
	return nil
}

// InRange reports whether n is a playable number for this game.
func (p Profile) InRange(n int) bool {
	return n >= 1 && n <= p.TotalNumbers
}

// DefaultProfile is a 60-number, 6-ball game, the most common layout of the
// historical exports this engine was built against.
func DefaultProfile() Profile {
	return Profile{
		Name:         "mega",
		TotalNumbers: 60,
		DrawSize:     6,
		BetSize:      6,
		HotCount:     10,
		ColdCount:    10,
	}
}
