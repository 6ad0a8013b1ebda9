package streak

import (
	"math"
	"strings"

	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
)

// Outcome of a scored debate from the user's side.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

// ParseOutcome accepts win/loss/draw case-insensitively.
func ParseOutcome(s string) (Outcome, error) {
	switch o := Outcome(strings.ToLower(strings.TrimSpace(s))); o {
	case OutcomeWin, OutcomeLoss, OutcomeDraw:
		return o, nil
	}
	return "", svcErr.Invalid("outcome", "must be one of win, loss, draw")
}

// Completion is one newly scored debate. DisplayName is optional.
type Completion struct {
	UserID      string
	Outcome     Outcome
	Score       float64
	DisplayName string
}

// Validate rejects completions that must not reach the store.
func (c *Completion) Validate() error {
	c.UserID = strings.TrimSpace(c.UserID)
	c.DisplayName = strings.TrimSpace(c.DisplayName)
	if c.UserID == "" {
		return svcErr.Invalid("user_id", "must not be empty")
	}
	o, err := ParseOutcome(string(c.Outcome))
	if err != nil {
		return err
	}
	c.Outcome = o
	if math.IsNaN(c.Score) || math.IsInf(c.Score, 0) || c.Score < 0 {
		return svcErr.Invalid("score", "must be a finite, non-negative number")
	}
	return nil
}
