package game

import (
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeRoundStarted   EventType = "round_started"
	EventTypeCardDealt      EventType = "card_dealt"
	EventTypePlayerAction   EventType = "player_action"
	EventTypeDealerReveal   EventType = "dealer_reveal"
	EventTypeDealerHit      EventType = "dealer_hit"
	EventTypeRoundSettled   EventType = "round_settled"
	EventTypeSubsidyGranted EventType = "subsidy_granted"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartedEvent is published once the bet is placed and cards are about to go out
type RoundStartedEvent struct {
	Bet       int
	Balance   int
	timestamp time.Time
}

func (e RoundStartedEvent) EventType() EventType { return EventTypeRoundStarted }
func (e RoundStartedEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartedEvent creates a new round started event
func NewRoundStartedEvent(bet, balance int) RoundStartedEvent {
	return RoundStartedEvent{Bet: bet, Balance: balance, timestamp: time.Now()}
}

// CardDealtEvent is published for each card dealt. Hidden is true for the
// dealer's hole card, which stays face down until the dealer's turn.
type CardDealtEvent struct {
	To        string
	Card      deck.Card
	Total     int
	Hidden    bool
	timestamp time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// NewCardDealtEvent creates a new card dealt event
func NewCardDealtEvent(to string, card deck.Card, total int, hidden bool) CardDealtEvent {
	return CardDealtEvent{To: to, Card: card, Total: total, Hidden: hidden, timestamp: time.Now()}
}

// PlayerActionEvent is published when the player hits or stands
type PlayerActionEvent struct {
	Player    string
	Decision  Decision
	Total     int
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerActionEvent creates a new player action event
func NewPlayerActionEvent(player string, decision Decision, total int) PlayerActionEvent {
	return PlayerActionEvent{Player: player, Decision: decision, Total: total, timestamp: time.Now()}
}

// DealerRevealEvent is published when the dealer's hole card is turned over
type DealerRevealEvent struct {
	Dealer    string
	Cards     []deck.Card
	Total     int
	timestamp time.Time
}

func (e DealerRevealEvent) EventType() EventType { return EventTypeDealerReveal }
func (e DealerRevealEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerRevealEvent creates a new dealer reveal event
func NewDealerRevealEvent(dealer string, cards []deck.Card, total int) DealerRevealEvent {
	copied := make([]deck.Card, len(cards))
	copy(copied, cards)
	return DealerRevealEvent{Dealer: dealer, Cards: copied, Total: total, timestamp: time.Now()}
}

// DealerHitEvent is published for each card the dealer draws during its turn
type DealerHitEvent struct {
	Dealer    string
	Card      deck.Card
	Total     int
	timestamp time.Time
}

func (e DealerHitEvent) EventType() EventType { return EventTypeDealerHit }
func (e DealerHitEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerHitEvent creates a new dealer hit event
func NewDealerHitEvent(dealer string, card deck.Card, total int) DealerHitEvent {
	return DealerHitEvent{Dealer: dealer, Card: card, Total: total, timestamp: time.Now()}
}

// RoundSettledEvent is published after the bet has been settled against the balance
type RoundSettledEvent struct {
	Outcome   Outcome
	Bet       int
	Balance   int
	timestamp time.Time
}

func (e RoundSettledEvent) EventType() EventType { return EventTypeRoundSettled }
func (e RoundSettledEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundSettledEvent creates a new round settled event
func NewRoundSettledEvent(outcome Outcome, bet, balance int) RoundSettledEvent {
	return RoundSettledEvent{Outcome: outcome, Bet: bet, Balance: balance, timestamp: time.Now()}
}

// SubsidyGrantedEvent is published when a broke player's balance is restored.
// This is a deliberate session-continuity feature and is never applied silently.
type SubsidyGrantedEvent struct {
	Restored  int
	timestamp time.Time
}

func (e SubsidyGrantedEvent) EventType() EventType { return EventTypeSubsidyGranted }
func (e SubsidyGrantedEvent) Timestamp() time.Time { return e.timestamp }

// NewSubsidyGrantedEvent creates a new subsidy granted event
func NewSubsidyGrantedEvent(restored int) SubsidyGrantedEvent {
	return SubsidyGrantedEvent{Restored: restored, timestamp: time.Now()}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation. Delivery is
// synchronous on the publishing goroutine; the game is single-threaded.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
