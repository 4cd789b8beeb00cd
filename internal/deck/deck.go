package deck

import (
	"errors"
	rand "math/rand/v2"
)

// Size is the number of cards in a fresh deck.
const Size = 52

// ErrEmptyDeck is returned by Deal when every card has already been dealt.
// A blackjack round deals ~20 cards at most, so hitting this indicates a
// bug in the caller rather than a playable condition.
var ErrEmptyDeck = errors.New("deck: no cards remaining")

// Deck represents a single 52-card deck. Cards are dealt from the top
// without replacement; build a fresh deck for every round.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck, one card per suit/rank pair.
// The provided RNG is used for shuffling, which keeps rounds reproducible
// when the caller seeds it (see internal/randutil).
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}

	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	return d
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// NewStacked builds a deck containing exactly the given cards, dealt in the
// order provided. It exists for scripted scenarios and tests; gameplay
// always uses New followed by Shuffle.
func NewStacked(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}
