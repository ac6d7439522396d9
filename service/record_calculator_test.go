package service

import (
	"testing"
	"time"

	"ringside/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sidePtr(s models.WinnerSide) *models.WinnerSide { return &s }

func resolvedBout(fighterID, opponentID uuid.UUID, fighterWins bool, createdAt time.Time) *models.Bout {
	side := models.WinnerSideRed
	if !fighterWins {
		side = models.WinnerSideBlue
	}
	now := createdAt
	return &models.Bout{
		ID:            uuid.New(),
		EventID:       uuid.New(),
		RedFighterID:  fighterID,
		BlueFighterID: opponentID,
		WinnerSide:    sidePtr(side),
		CreatedAt:     createdAt,
		ResolvedAt:    &now,
	}
}

func historyEntry(fighterID uuid.UUID, result models.FightResult, eventDate time.Time) *models.FightHistory {
	return &models.FightHistory{
		ID:        uuid.New(),
		FighterID: fighterID,
		Result:    result,
		EventDate: eventDate,
	}
}

func TestComputeRecord_BaselinePlusResults(t *testing.T) {
	fighterID := uuid.New()
	opponentID := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	bouts := []*models.Bout{
		// Fighter in the red corner, blue wins: a loss
		{
			ID:            uuid.New(),
			RedFighterID:  fighterID,
			BlueFighterID: opponentID,
			WinnerSide:    sidePtr(models.WinnerSideBlue),
			CreatedAt:     base,
			ResolvedAt:    &base,
		},
	}
	history := []*models.FightHistory{
		historyEntry(fighterID, models.FightResultWin, base.AddDate(0, 0, 10)),
	}

	summary := ComputeRecord(fighterID, "10-2-1", bouts, history)

	assert.Equal(t, "11-3-1", summary.Total.String())
}

func TestComputeRecord_MalformedBaselineCountsAsZero(t *testing.T) {
	fighterID := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	history := []*models.FightHistory{
		historyEntry(fighterID, models.FightResultWin, base),
		historyEntry(fighterID, models.FightResultLoss, base.AddDate(0, 0, 1)),
	}

	summary := ComputeRecord(fighterID, "not-a-record", nil, history)

	assert.Equal(t, models.RecordTriple{Wins: 1, Losses: 1}, summary.Total)
}

func TestComputeRecord_NoContestAddsNothing(t *testing.T) {
	fighterID := uuid.New()
	opponentID := uuid.New()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	bout := &models.Bout{
		ID:            uuid.New(),
		RedFighterID:  fighterID,
		BlueFighterID: opponentID,
		WinnerSide:    sidePtr(models.WinnerSideNoContest),
		CreatedAt:     base,
		ResolvedAt:    &base,
	}

	summary := ComputeRecord(fighterID, "5-1-0", []*models.Bout{bout}, nil)

	assert.Equal(t, "5-1-0", summary.Total.String())
	assert.Equal(t, "N", summary.Last5)
	assert.Equal(t, 0, summary.Streak)
}

func TestComputeRecord_UnresolvedAndForeignBoutsIgnored(t *testing.T) {
	fighterID := uuid.New()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	unresolved := &models.Bout{
		ID:            uuid.New(),
		RedFighterID:  fighterID,
		BlueFighterID: uuid.New(),
		CreatedAt:     base,
	}
	foreign := resolvedBout(uuid.New(), uuid.New(), true, base)

	summary := ComputeRecord(fighterID, "2-0-0", []*models.Bout{unresolved, foreign}, nil)

	assert.Equal(t, "2-0-0", summary.Total.String())
	assert.Equal(t, "", summary.Last5)
}

func TestComputeRecord_Last5Form(t *testing.T) {
	fighterID := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Seven results, oldest to newest: W W L W D W W. Only the 5 most
	// recent appear, rendered oldest-to-newest: L W D W W.
	results := []models.FightResult{
		models.FightResultWin,
		models.FightResultWin,
		models.FightResultLoss,
		models.FightResultWin,
		models.FightResultDraw,
		models.FightResultWin,
		models.FightResultWin,
	}
	history := make([]*models.FightHistory, len(results))
	for i, r := range results {
		history[i] = historyEntry(fighterID, r, base.AddDate(0, 0, i))
	}

	summary := ComputeRecord(fighterID, "0-0-0", nil, history)

	assert.Equal(t, "LWDWW", summary.Last5)
	assert.Equal(t, 2, summary.Streak)
}

func TestComputeRecord_WinStreak(t *testing.T) {
	fighterID := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	buildHistory := func(results ...models.FightResult) []*models.FightHistory {
		history := make([]*models.FightHistory, len(results))
		for i, r := range results {
			history[i] = historyEntry(fighterID, r, base.AddDate(0, 0, i))
		}
		return history
	}

	t.Run("loss before recent wins", func(t *testing.T) {
		// Oldest to newest: W L W W
		summary := ComputeRecord(fighterID, "0-0-0", nil, buildHistory(
			models.FightResultWin, models.FightResultLoss,
			models.FightResultWin, models.FightResultWin,
		))
		assert.Equal(t, 2, summary.Streak)
	})

	t.Run("draw as most recent result ends the streak", func(t *testing.T) {
		// Oldest to newest: W W D
		summary := ComputeRecord(fighterID, "0-0-0", nil, buildHistory(
			models.FightResultWin, models.FightResultWin, models.FightResultDraw,
		))
		assert.Equal(t, 0, summary.Streak)
	})

	t.Run("no contest as most recent result ends the streak", func(t *testing.T) {
		// Oldest to newest: W N
		summary := ComputeRecord(fighterID, "0-0-0", nil, buildHistory(
			models.FightResultWin, models.FightResultNoContest,
		))
		assert.Equal(t, 0, summary.Streak)
	})

	t.Run("all wins", func(t *testing.T) {
		summary := ComputeRecord(fighterID, "0-0-0", nil, buildHistory(
			models.FightResultWin, models.FightResultWin, models.FightResultWin,
		))
		assert.Equal(t, 3, summary.Streak)
	})
}

func TestComputeRecord_MergesBoutsAndHistoryByTime(t *testing.T) {
	fighterID := uuid.New()
	opponentID := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Bout win on day 5, manual loss on day 10: the loss is most recent
	bouts := []*models.Bout{resolvedBout(fighterID, opponentID, true, base.AddDate(0, 0, 5))}
	history := []*models.FightHistory{historyEntry(fighterID, models.FightResultLoss, base.AddDate(0, 0, 10))}

	summary := ComputeRecord(fighterID, "0-0-0", bouts, history)

	assert.Equal(t, "WL", summary.Last5)
	assert.Equal(t, 0, summary.Streak)
}

func TestReverseBaseline_RoundTrip(t *testing.T) {
	fighterID := uuid.New()
	opponentID := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	bouts := []*models.Bout{
		resolvedBout(fighterID, opponentID, true, base),
		resolvedBout(fighterID, opponentID, false, base.AddDate(0, 0, 1)),
	}
	history := []*models.FightHistory{
		historyEntry(fighterID, models.FightResultDraw, base.AddDate(0, 0, 2)),
	}

	// Fighter claims an authoritative total of 15-4-2
	newTotal := models.RecordTriple{Wins: 15, Losses: 4, Draws: 2}

	baseline := ReverseBaseline(fighterID, newTotal, bouts, history)
	assert.Equal(t, models.RecordTriple{Wins: 14, Losses: 3, Draws: 1}, baseline)

	// Recomputing from the stored baseline reproduces the supplied total
	summary := ComputeRecord(fighterID, baseline.String(), bouts, history)
	assert.Equal(t, newTotal, summary.Total)
}

func TestReverseBaseline_UndercountClampsAtStore(t *testing.T) {
	fighterID := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Platform already counts 2 wins but the fighter claims only 1
	history := []*models.FightHistory{
		historyEntry(fighterID, models.FightResultWin, base),
		historyEntry(fighterID, models.FightResultWin, base.AddDate(0, 0, 1)),
	}

	baseline := ReverseBaseline(fighterID, models.RecordTriple{Wins: 1}, nil, history)
	assert.Equal(t, -1, baseline.Wins)

	// The stored form clamps, so recomputation floors at the platform count
	summary := ComputeRecord(fighterID, baseline.String(), nil, history)
	assert.Equal(t, models.RecordTriple{Wins: 2}, summary.Total)
}
