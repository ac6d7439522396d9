package models

import (
	"time"

	"github.com/google/uuid"
)

// WinnerSide represents the recorded result of a bout
type WinnerSide string

const (
	WinnerSideRed       WinnerSide = "red"
	WinnerSideBlue      WinnerSide = "blue"
	WinnerSideDraw      WinnerSide = "draw"
	WinnerSideNoContest WinnerSide = "no_contest"
)

// IsValid checks the side is one of the recordable results
func (s WinnerSide) IsValid() bool {
	switch s {
	case WinnerSideRed, WinnerSideBlue, WinnerSideDraw, WinnerSideNoContest:
		return true
	}
	return false
}

// Bout represents a matchup between two fighters on an event card
type Bout struct {
	ID            uuid.UUID   `db:"id"`
	EventID       uuid.UUID   `db:"event_id"`
	RedFighterID  uuid.UUID   `db:"red_fighter_id"`
	BlueFighterID uuid.UUID   `db:"blue_fighter_id"`
	WinnerSide    *WinnerSide `db:"winner_side"`
	CreatedAt     time.Time   `db:"created_at"`
	ResolvedAt    *time.Time  `db:"resolved_at"`
}

// IsResolved checks whether a winner side has been recorded
func (b *Bout) IsResolved() bool {
	return b.WinnerSide != nil
}

// HasCorner checks if a fighter occupies either corner of the bout
func (b *Bout) HasCorner(fighterID uuid.UUID) bool {
	return b.RedFighterID == fighterID || b.BlueFighterID == fighterID
}

// Opponent returns the other corner's fighter ID for a given participant
func (b *Bout) Opponent(fighterID uuid.UUID) uuid.UUID {
	if b.RedFighterID == fighterID {
		return b.BlueFighterID
	}
	if b.BlueFighterID == fighterID {
		return b.RedFighterID
	}
	return uuid.Nil
}

// OutcomeFor derives the outcome of a resolved bout from the given
// fighter's point of view. A draw counts as a draw regardless of corner;
// a no-contest counts toward nothing.
func (b *Bout) OutcomeFor(fighterID uuid.UUID) Outcome {
	if b.WinnerSide == nil || !b.HasCorner(fighterID) {
		return OutcomeNoContest
	}
	switch *b.WinnerSide {
	case WinnerSideDraw:
		return OutcomeDraw
	case WinnerSideNoContest:
		return OutcomeNoContest
	case WinnerSideRed:
		if b.RedFighterID == fighterID {
			return OutcomeWin
		}
		return OutcomeLoss
	case WinnerSideBlue:
		if b.BlueFighterID == fighterID {
			return OutcomeWin
		}
		return OutcomeLoss
	}
	return OutcomeNoContest
}
