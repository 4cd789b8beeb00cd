package game

// Outcome is the result of a completed round
type Outcome int

const (
	OutcomeNone Outcome = iota
	PlayerBust
	DealerBust
	PlayerWin
	DealerWin
	PlayerBlackjackWin
	DealerBlackjackWin
	Push
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case PlayerBust:
		return "player busts"
	case DealerBust:
		return "dealer busts"
	case PlayerWin:
		return "player wins"
	case DealerWin:
		return "dealer wins"
	case PlayerBlackjackWin:
		return "player wins with blackjack"
	case DealerBlackjackWin:
		return "dealer wins with blackjack"
	case Push:
		return "push"
	default:
		return "undecided"
	}
}

// PlayerWon reports whether the outcome pays the player's bet
func (o Outcome) PlayerWon() bool {
	return o == PlayerWin || o == DealerBust || o == PlayerBlackjackWin
}

// PlayerLost reports whether the outcome costs the player's bet
func (o Outcome) PlayerLost() bool {
	return o == DealerWin || o == PlayerBust || o == DealerBlackjackWin
}
