package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
)

func cards(pairs ...deck.Rank) []deck.Card {
	suits := []deck.Suit{deck.Spades, deck.Hearts, deck.Diamonds, deck.Clubs}
	out := make([]deck.Card, len(pairs))
	for i, rank := range pairs {
		out[i] = deck.NewCard(suits[i%len(suits)], rank)
	}
	return out
}

// scoreFromScratch recomputes the best total over the full card list,
// independently of Hand's incremental bookkeeping
func scoreFromScratch(cs []deck.Card) int {
	total, aces := 0, 0
	for _, c := range cs {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > BlackjackTotal && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

func TestHandScoring(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		ranks    []deck.Rank
		expected int
	}{
		{name: "simple hand", ranks: []deck.Rank{deck.Ten, deck.Five}, expected: 15},
		{name: "ace as eleven", ranks: []deck.Rank{deck.Ace, deck.Nine}, expected: 20},
		{name: "ace demoted", ranks: []deck.Rank{deck.Ace, deck.Nine, deck.Two}, expected: 12},
		{name: "two aces", ranks: []deck.Rank{deck.Ace, deck.Ace}, expected: 12},
		{name: "two aces and nine", ranks: []deck.Rank{deck.Ace, deck.Ace, deck.Nine}, expected: 21},
		{name: "face cards", ranks: []deck.Rank{deck.King, deck.Queen}, expected: 20},
		{name: "three aces", ranks: []deck.Rank{deck.Ace, deck.Ace, deck.Ace}, expected: 13},
		{name: "bust", ranks: []deck.Rank{deck.King, deck.Queen, deck.Jack}, expected: 30},
		{name: "ace rescues twice", ranks: []deck.Rank{deck.Ace, deck.Ace, deck.Nine, deck.King}, expected: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Hand
			for _, c := range cards(tt.ranks...) {
				h.Add(c)
			}
			if h.Total() != tt.expected {
				t.Errorf("Total() = %d, want %d", h.Total(), tt.expected)
			}
		})
	}
}

func TestHandIncrementalMatchesRecompute(t *testing.T) {
	t.Parallel()
	// Every arrival order of the same multiset must land on the same total
	multisets := [][]deck.Rank{
		{deck.Ace, deck.Nine, deck.King},
		{deck.King, deck.Ace, deck.Nine},
		{deck.Nine, deck.King, deck.Ace},
		{deck.Ace, deck.Ace, deck.Nine, deck.Ten},
		{deck.Ten, deck.Ace, deck.Nine, deck.Ace},
		{deck.Two, deck.Three, deck.Ace, deck.Ace, deck.Ace, deck.King},
	}

	for _, ranks := range multisets {
		var h Hand
		cs := cards(ranks...)
		for _, c := range cs {
			h.Add(c)
			if got, want := h.Total(), scoreFromScratch(h.Cards()); got != want {
				t.Errorf("incremental total %d diverged from recompute %d after %v", got, want, h.Cards())
			}
		}
	}
}

func TestHandNatural(t *testing.T) {
	t.Parallel()
	var natural Hand
	for _, c := range cards(deck.Ace, deck.King) {
		natural.Add(c)
	}
	if !natural.IsNatural() {
		t.Error("A+K should be a natural")
	}

	var drawn21 Hand
	for _, c := range cards(deck.Seven, deck.Seven, deck.Seven) {
		drawn21.Add(c)
	}
	if drawn21.Total() != 21 {
		t.Fatalf("7+7+7 should total 21, got %d", drawn21.Total())
	}
	if drawn21.IsNatural() {
		t.Error("a three-card 21 is not a natural")
	}

	var twenty Hand
	for _, c := range cards(deck.King, deck.Queen) {
		twenty.Add(c)
	}
	if twenty.IsNatural() {
		t.Error("a two-card 20 is not a natural")
	}
}

func TestHandReset(t *testing.T) {
	t.Parallel()
	var h Hand
	for _, c := range cards(deck.Ace, deck.Ace, deck.Nine) {
		h.Add(c)
	}

	h.Reset()
	if h.Total() != 0 || h.SoftAces() != 0 || h.Len() != 0 {
		t.Errorf("Reset left state behind: total=%d softAces=%d len=%d", h.Total(), h.SoftAces(), h.Len())
	}

	// A reset hand scores fresh
	h.Add(deck.NewCard(deck.Clubs, deck.Ace))
	if h.Total() != 11 {
		t.Errorf("Total after reset = %d, want 11", h.Total())
	}
}

func TestHandBust(t *testing.T) {
	t.Parallel()
	var h Hand
	for _, c := range cards(deck.King, deck.Nine) {
		h.Add(c)
	}
	if h.IsBust() {
		t.Error("19 is not a bust")
	}
	h.Add(deck.NewCard(deck.Clubs, deck.Five))
	if !h.IsBust() {
		t.Error("24 should be a bust")
	}
}
