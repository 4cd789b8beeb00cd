package game

import "github.com/lox/blackjack/internal/deck"

const (
	// BlackjackTotal is the target hand total; anything above it is a bust.
	BlackjackTotal = 21

	// naturalSize is the number of cards in a natural (a two-card 21).
	naturalSize = 2
)

// Hand is an ordered sequence of cards with an incrementally maintained
// best total. Aces enter at eleven and are demoted to one, one at a time,
// whenever the running total goes over BlackjackTotal. The incremental
// result is order-independent: it always matches scoring the full card
// list from scratch.
type Hand struct {
	cards    []deck.Card
	total    int
	softAces int
}

// Add appends a card to the hand and updates the total
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
	h.total += card.Value()
	if card.IsAce() {
		h.softAces++
	}
	for h.total > BlackjackTotal && h.softAces > 0 {
		h.total -= 10
		h.softAces--
	}
}

// Total returns the best total for the hand
func (h *Hand) Total() int {
	return h.total
}

// SoftAces returns the number of aces still counted as eleven
func (h *Hand) SoftAces() int {
	return h.softAces
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// IsNatural reports whether the hand is a natural: 21 from exactly two
// cards. A natural outranks any 21 built from three or more cards.
func (h *Hand) IsNatural() bool {
	return h.total == BlackjackTotal && len(h.cards) == naturalSize
}

// IsBust reports whether the hand total exceeds 21
func (h *Hand) IsBust() bool {
	return h.total > BlackjackTotal
}

// Reset clears the cards, total and ace counter
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
	h.total = 0
	h.softAces = 0
}
