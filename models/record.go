package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Outcome represents a fight result from one fighter's point of view
type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeLoss      Outcome = "loss"
	OutcomeDraw      Outcome = "draw"
	OutcomeNoContest Outcome = "no_contest"
)

// FormChar returns the single character used in the last-5 form string
func (o Outcome) FormChar() string {
	switch o {
	case OutcomeWin:
		return "W"
	case OutcomeLoss:
		return "L"
	case OutcomeDraw:
		return "D"
	default:
		return "N"
	}
}

// RecordTriple is a win-loss-draw count. Components may be negative while
// a reverse-calculated baseline is in flight; String clamps at render time.
type RecordTriple struct {
	Wins   int
	Losses int
	Draws  int
}

// ParseRecord parses a "W-L-D" string. Anything that does not parse is
// treated as a zero record rather than an error.
func ParseRecord(s string) RecordTriple {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return RecordTriple{}
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return RecordTriple{}
		}
		nums[i] = n
	}
	return RecordTriple{Wins: nums[0], Losses: nums[1], Draws: nums[2]}
}

// Add returns the component-wise sum of two triples
func (t RecordTriple) Add(other RecordTriple) RecordTriple {
	return RecordTriple{
		Wins:   t.Wins + other.Wins,
		Losses: t.Losses + other.Losses,
		Draws:  t.Draws + other.Draws,
	}
}

// Sub returns the component-wise difference of two triples
func (t RecordTriple) Sub(other RecordTriple) RecordTriple {
	return RecordTriple{
		Wins:   t.Wins - other.Wins,
		Losses: t.Losses - other.Losses,
		Draws:  t.Draws - other.Draws,
	}
}

// CountOutcome adds a single outcome to the triple. No-contests count
// toward nothing.
func (t RecordTriple) CountOutcome(o Outcome) RecordTriple {
	switch o {
	case OutcomeWin:
		t.Wins++
	case OutcomeLoss:
		t.Losses++
	case OutcomeDraw:
		t.Draws++
	}
	return t
}

// String formats the triple as "W-L-D", clamping negative components to zero
func (t RecordTriple) String() string {
	return fmt.Sprintf("%d-%d-%d", max(0, t.Wins), max(0, t.Losses), max(0, t.Draws))
}

// RecordSummary is the derived record state written back onto a fighter
// profile after recomputation.
type RecordSummary struct {
	Total  RecordTriple
	Last5  string
	Streak int
}
