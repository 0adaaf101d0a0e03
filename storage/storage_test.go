package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	assert.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	assert.True(t, prefs.PlayerIsFirst)
	assert.Equal(t, 2000, prefs.MoveTimeMs)
}

func TestPreferencesRoundtrip(t *testing.T) {
	s := openTestStorage(t)

	prefs := &Preferences{PlayerIsFirst: false, MoveTimeMs: 750}
	assert.NoError(t, s.SavePreferences(prefs))

	loaded, err := s.LoadPreferences()
	assert.NoError(t, err)
	assert.False(t, loaded.PlayerIsFirst)
	assert.Equal(t, 750, loaded.MoveTimeMs)
	assert.False(t, loaded.LastPlayed.IsZero())
}

func TestLoadPreferencesEmptyReturnsDefaults(t *testing.T) {
	s := openTestStorage(t)

	prefs, err := s.LoadPreferences()
	assert.NoError(t, err)
	assert.Equal(t, DefaultPreferences().MoveTimeMs, prefs.MoveTimeMs)
}

func TestRecordGameUpdatesStats(t *testing.T) {
	s := openTestStorage(t)

	assert.NoError(t, s.RecordGame(GameResult{Won: true, Duration: time.Minute}))
	assert.NoError(t, s.RecordGame(GameResult{Won: true, Duration: time.Minute}))
	assert.NoError(t, s.RecordGame(GameResult{Draw: true, Duration: time.Minute}))
	assert.NoError(t, s.RecordGame(GameResult{Duration: time.Minute}))

	stats, err := s.LoadStats()
	assert.NoError(t, err)
	assert.Equal(t, 4, stats.GamesPlayed)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 2, stats.LongestWinStrk)
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 4*time.Minute, stats.TotalPlayTime)
	assert.InDelta(t, 50.0, stats.WinRate(), 0.001)
}

func TestWinRateEmptyStats(t *testing.T) {
	assert.Equal(t, 0.0, NewStats().WinRate())
}
