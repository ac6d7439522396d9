package service

import (
	"sort"
	"strings"
	"time"

	"ringside/models"

	"github.com/google/uuid"
)

// fightEntry is one result in a fighter's merged timeline, drawn from
// either a resolved bout or a manual fight-history row.
type fightEntry struct {
	at      time.Time
	outcome models.Outcome
}

// mergeTimeline flattens resolved bouts and manual fight-history entries
// into a single list sorted most recent first. Resolved bouts order by
// their creation timestamp, manual entries by event date.
func mergeTimeline(fighterID uuid.UUID, bouts []*models.Bout, history []*models.FightHistory) []fightEntry {
	entries := make([]fightEntry, 0, len(bouts)+len(history))

	for _, b := range bouts {
		if b == nil || !b.IsResolved() || !b.HasCorner(fighterID) {
			continue
		}
		entries = append(entries, fightEntry{at: b.CreatedAt, outcome: b.OutcomeFor(fighterID)})
	}
	for _, h := range history {
		if h == nil {
			continue
		}
		entries = append(entries, fightEntry{at: h.EventDate, outcome: h.Result.Outcome()})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.After(entries[j].at)
	})

	return entries
}

// foldOutcomes sums a timeline into a record triple. No-contests count
// toward nothing.
func foldOutcomes(entries []fightEntry) models.RecordTriple {
	var t models.RecordTriple
	for _, e := range entries {
		t = t.CountOutcome(e.outcome)
	}
	return t
}

// ComputeRecord derives the authoritative record, last-5 form string and
// current win streak for a fighter from the stored baseline, resolved
// bouts and manual fight-history entries. It never returns an error:
// a baseline that does not parse counts as 0-0-0 and missing inputs count
// as empty.
func ComputeRecord(fighterID uuid.UUID, baseline string, bouts []*models.Bout, history []*models.FightHistory) models.RecordSummary {
	entries := mergeTimeline(fighterID, bouts, history)

	total := models.ParseRecord(baseline).Add(foldOutcomes(entries))

	return models.RecordSummary{
		Total:  total,
		Last5:  last5Form(entries),
		Streak: winStreak(entries),
	}
}

// last5Form renders the 5 most recent results oldest-to-newest as a
// string of W/L/D/N characters.
func last5Form(entries []fightEntry) string {
	recent := entries
	if len(recent) > 5 {
		recent = recent[:5]
	}

	var sb strings.Builder
	for i := len(recent) - 1; i >= 0; i-- {
		sb.WriteString(recent[i].outcome.FormChar())
	}
	return sb.String()
}

// winStreak counts consecutive wins starting from the most recent result.
// Any non-win stops the count immediately; a draw or no-contest ends the
// streak rather than being skipped over.
func winStreak(entries []fightEntry) int {
	streak := 0
	for _, e := range entries {
		if e.outcome != models.OutcomeWin {
			break
		}
		streak++
	}
	return streak
}

// ReverseBaseline recalculates the stored baseline from an authoritative
// total supplied by the fighter, so that recomputing with the same bouts
// and history reproduces the supplied total exactly. Components can go
// negative when the supplied total undercounts platform results; they are
// clamped when the baseline is formatted for storage.
func ReverseBaseline(fighterID uuid.UUID, newTotal models.RecordTriple, bouts []*models.Bout, history []*models.FightHistory) models.RecordTriple {
	return newTotal.Sub(foldOutcomes(mergeTimeline(fighterID, bouts, history)))
}
