// Package score folds placement outcomes into a running session score.
// Updates are functional: every call returns a new Score value, so
// concurrent sessions never share mutable state.
package score

import (
	"time"

	"github.com/google/uuid"

	"github.com/cloudsketch/engine/internal/validate"
)

const (
	// StreakThreshold is the streak length at which the bonus kicks in.
	StreakThreshold = 3
	// StreakBonus is added atop the placement's own points once the
	// streak reaches the threshold.
	StreakBonus = 5
)

// HistoryEntry records one scored placement attempt.
type HistoryEntry struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	ServiceID     string    `json:"service_id"`
	ContainerType string    `json:"container_type,omitempty"`
	IsValid       bool      `json:"is_valid"`
	Points        int       `json:"points"`
	Message       string    `json:"message"`
}

// Score is the session-owned scoring state. It is mutated only by
// replacement through Update.
type Score struct {
	CorrectPlacements int            `json:"correct_placements"`
	IncorrectAttempts int            `json:"incorrect_attempts"`
	CurrentStreak     int            `json:"current_streak"`
	LongestStreak     int            `json:"longest_streak"`
	TotalPoints       int            `json:"total_points"`
	History           []HistoryEntry `json:"history"`
}

// New returns a fresh zero score for a new session.
func New() Score {
	return Score{}
}

// Update folds one placement outcome into the score and returns the new
// value; the input score is left untouched. TotalPoints is clamped at
// zero after every update, however many penalties accumulate.
func Update(s Score, v validate.Placement, serviceID, containerType string) Score {
	next := s
	next.History = make([]HistoryEntry, len(s.History), len(s.History)+1)
	copy(next.History, s.History)

	points := v.Points
	if v.IsValid {
		next.CorrectPlacements++
		next.CurrentStreak++
		if next.CurrentStreak > next.LongestStreak {
			next.LongestStreak = next.CurrentStreak
		}
		if next.CurrentStreak >= StreakThreshold {
			points += StreakBonus
		}
	} else {
		next.IncorrectAttempts++
		next.CurrentStreak = 0
	}

	next.TotalPoints += points
	if next.TotalPoints < 0 {
		next.TotalPoints = 0
	}

	next.History = append(next.History, HistoryEntry{
		ID:            uuid.NewString(),
		Timestamp:     time.Now().UTC(),
		ServiceID:     serviceID,
		ContainerType: containerType,
		IsValid:       v.IsValid,
		Points:        points,
		Message:       v.Message,
	})
	return next
}
