package models

import (
	"time"

	"github.com/google/uuid"
)

// FightResult is the explicit result stored on a manually entered
// fight-history row. Unlike bouts there is no corner to compare against.
type FightResult string

const (
	FightResultWin       FightResult = "win"
	FightResultLoss      FightResult = "loss"
	FightResultDraw      FightResult = "draw"
	FightResultNoContest FightResult = "no_contest"
)

// IsValid checks the result is one of the storable values
func (r FightResult) IsValid() bool {
	switch r {
	case FightResultWin, FightResultLoss, FightResultDraw, FightResultNoContest:
		return true
	}
	return false
}

// Outcome maps the stored result to a record outcome
func (r FightResult) Outcome() Outcome {
	switch r {
	case FightResultWin:
		return OutcomeWin
	case FightResultLoss:
		return OutcomeLoss
	case FightResultDraw:
		return OutcomeDraw
	default:
		return OutcomeNoContest
	}
}

// FightHistory is a fight-history entry entered directly by the fighter
// for fights fought off the platform.
type FightHistory struct {
	ID           uuid.UUID   `db:"id"`
	FighterID    uuid.UUID   `db:"fighter_id"`
	OpponentName string      `db:"opponent_name"`
	Result       FightResult `db:"result"`
	EventDate    time.Time   `db:"event_date"`
	CreatedAt    time.Time   `db:"created_at"`
}
