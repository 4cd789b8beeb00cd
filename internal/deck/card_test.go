package deck

import "testing"

func TestCardValue(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		expected int
	}{
		{name: "two at face", card: NewCard(Clubs, Two), expected: 2},
		{name: "nine at face", card: NewCard(Hearts, Nine), expected: 9},
		{name: "ten", card: NewCard(Diamonds, Ten), expected: 10},
		{name: "jack counts ten", card: NewCard(Spades, Jack), expected: 10},
		{name: "queen counts ten", card: NewCard(Clubs, Queen), expected: 10},
		{name: "king counts ten", card: NewCard(Hearts, King), expected: 10},
		{name: "ace counts eleven", card: NewCard(Spades, Ace), expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.Value(); got != tt.expected {
				t.Errorf("Value() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "T♥"},
		{NewCard(Diamonds, Queen), "Q♦"},
		{NewCard(Clubs, Two), "2♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestCardPredicates(t *testing.T) {
	if !NewCard(Hearts, Ace).IsAce() {
		t.Error("A♥ should be an ace")
	}
	if NewCard(Hearts, King).IsAce() {
		t.Error("K♥ should not be an ace")
	}
	if !NewCard(Spades, Jack).IsFaceCard() {
		t.Error("J♠ should be a face card")
	}
	if NewCard(Spades, Ten).IsFaceCard() {
		t.Error("T♠ should not be a face card")
	}
	if !NewCard(Diamonds, Two).IsRed() {
		t.Error("2♦ should be red")
	}
	if NewCard(Clubs, Two).IsRed() {
		t.Error("2♣ should not be red")
	}
}
