package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Decision is a player's choice during their turn
type Decision int

const (
	Hit Decision = iota
	Stand
)

// String returns the string representation of a decision
func (d Decision) String() string {
	switch d {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// ParseDecision maps an input token onto a Decision. Matching is
// case-insensitive and accepts both the full word and its initial.
func ParseDecision(token string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "h", "hit":
		return Hit, nil
	case "s", "stand":
		return Stand, nil
	default:
		return Stand, fmt.Errorf("%w: %q", ErrUnknownDecision, token)
	}
}

// HandView is the read-only state an agent sees when deciding
type HandView struct {
	Cards        []deck.Card
	Total        int
	SoftAces     int
	DealerUpcard deck.Card
}

// Agent represents any entity (human or house policy) that can decide for a
// hand. Agents receive immutable state and return a decision; they never
// mutate the round.
type Agent interface {
	Decide(view HandView) (Decision, error)
}

// HumanAgent asks the player through a prompt function supplied by the
// presentation layer. Token validation and re-prompting happen inside the
// prompt; an error from it means the input stream ended.
type HumanAgent struct {
	promptFunc func(view HandView) (Decision, error)
}

// NewHumanAgent creates a human agent with a prompt function
func NewHumanAgent(promptFunc func(view HandView) (Decision, error)) *HumanAgent {
	return &HumanAgent{promptFunc: promptFunc}
}

// Decide prompts the human for a decision
func (h *HumanAgent) Decide(view HandView) (Decision, error) {
	if h.promptFunc == nil {
		return Stand, fmt.Errorf("no prompt function configured")
	}
	return h.promptFunc(view)
}

// dealerStandTotal is the fixed house policy threshold: the dealer hits
// strictly below 17 and stands on any 17, soft or hard.
const dealerStandTotal = 17

// DealerAgent plays the fixed house policy
type DealerAgent struct{}

// Decide hits below 17 and stands otherwise
func (DealerAgent) Decide(view HandView) (Decision, error) {
	if view.Total < dealerStandTotal {
		return Hit, nil
	}
	return Stand, nil
}
