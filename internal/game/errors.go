package game

import (
	"errors"
	"fmt"
)

// ErrUnknownDecision is returned by ParseDecision for tokens that are not a
// recognized hit or stand input. Callers recover by re-prompting.
var ErrUnknownDecision = errors.New("game: unrecognized decision")

// BetReason classifies why a bet was rejected
type BetReason int

const (
	BetNonPositive BetReason = iota
	BetExceedsBalance
)

// BetError reports a rejected bet. It is recoverable: the caller re-prompts
// for a new amount. Non-numeric input never reaches this layer; it is
// rejected by the console before parsing.
type BetError struct {
	Reason  BetReason
	Amount  int
	Balance int
}

func (e *BetError) Error() string {
	switch e.Reason {
	case BetNonPositive:
		return fmt.Sprintf("bet must be positive, got %d", e.Amount)
	case BetExceedsBalance:
		return fmt.Sprintf("bet %d exceeds balance %d", e.Amount, e.Balance)
	default:
		return fmt.Sprintf("invalid bet %d", e.Amount)
	}
}
