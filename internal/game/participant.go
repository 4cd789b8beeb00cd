package game

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// StartingBalance is the bankroll a player begins a session with, and the
// amount restored by the broke-player subsidy.
const StartingBalance = 100

// Participant holds the per-round hand state shared by the player and dealer
type Participant struct {
	Name string
	Hand Hand
}

// AddCard deals one card from the deck into the participant's hand
func (p *Participant) AddCard(d *deck.Deck) (deck.Card, error) {
	card, err := d.Deal()
	if err != nil {
		return deck.Card{}, fmt.Errorf("dealing to %s: %w", p.Name, err)
	}
	p.Hand.Add(card)
	return card, nil
}

// ResetHand clears the hand for the next round. Balance and bet are untouched.
func (p *Participant) ResetHand() {
	p.Hand.Reset()
}

// Player is a participant with a bankroll and a pending bet
type Player struct {
	Participant
	Balance int
	Bet     int
}

// NewPlayer creates a player with the given display name and starting balance
func NewPlayer(name string, balance int) *Player {
	return &Player{
		Participant: Participant{Name: name},
		Balance:     balance,
	}
}

// NewDealer creates the house dealer. The dealer has no bankroll.
func NewDealer() *Participant {
	return &Participant{Name: "Dealer"}
}

// PlaceBet validates and records the pending bet. Funds do not move until
// the round settles. A rejected bet leaves both bet and balance untouched.
func (p *Player) PlaceBet(amount int) error {
	if amount <= 0 {
		return &BetError{Reason: BetNonPositive, Amount: amount, Balance: p.Balance}
	}
	if amount > p.Balance {
		return &BetError{Reason: BetExceedsBalance, Amount: amount, Balance: p.Balance}
	}
	p.Bet = amount
	return nil
}

// SettleWin credits the pending bet to the balance
func (p *Player) SettleWin() {
	p.Balance += p.Bet
}

// SettleLoss debits the pending bet from the balance
func (p *Player) SettleLoss() {
	p.Balance -= p.Bet
}
