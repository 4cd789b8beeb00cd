package game

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
)

// Phase is a stage in the round state machine
type Phase int

const (
	PhaseBetting Phase = iota
	PhaseDealing
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseResolution
	PhaseSettled
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhaseDealing:
		return "dealing"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseDealerTurn:
		return "dealer_turn"
	case PhaseResolution:
		return "resolution"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// BetSource supplies bet amounts during the betting phase. The engine
// validates every amount; invalid amounts are asked for again, so a source
// backed by a prompt can simply return whatever the user typed.
type BetSource interface {
	NextBet(balance int) (int, error)
}

// BetFunc adapts a function to the BetSource interface
type BetFunc func(balance int) (int, error)

// NextBet calls f
func (f BetFunc) NextBet(balance int) (int, error) {
	return f(balance)
}

// Round drives a single round through
// Betting -> Dealing -> PlayerTurn -> DealerTurn -> Resolution -> Settled.
// It owns the deck for the round; the deck is discarded when the round ends.
type Round struct {
	rng         *rand.Rand
	deck        *deck.Deck
	player      *Player
	dealer      *Participant
	playerAgent Agent
	dealerAgent Agent
	bets        BetSource
	logger      *log.Logger
	eventBus    EventBus
	phase       Phase
	outcome     Outcome
}

// RoundOption configures a Round
type RoundOption func(*Round)

// WithDeck supplies a pre-built deck instead of a fresh shuffled one.
// The deck is used as-is, giving tests full control over card order.
func WithDeck(d *deck.Deck) RoundOption {
	return func(r *Round) {
		r.deck = d
	}
}

// WithLogger sets the round logger
func WithLogger(logger *log.Logger) RoundOption {
	return func(r *Round) {
		r.logger = logger
	}
}

// WithEventBus sets the event bus the round publishes to, letting a session
// keep one subscription across many rounds
func WithEventBus(bus EventBus) RoundOption {
	return func(r *Round) {
		r.eventBus = bus
	}
}

// WithDealerAgent overrides the house policy agent
func WithDealerAgent(agent Agent) RoundOption {
	return func(r *Round) {
		r.dealerAgent = agent
	}
}

// NewRound creates a round for one bet. The RNG shuffles the fresh deck
// built during the dealing phase; seed it via internal/randutil for
// reproducible rounds.
func NewRound(rng *rand.Rand, player *Player, dealer *Participant, playerAgent Agent, bets BetSource, opts ...RoundOption) *Round {
	r := &Round{
		rng:         rng,
		player:      player,
		dealer:      dealer,
		playerAgent: playerAgent,
		dealerAgent: DealerAgent{},
		bets:        bets,
		logger:      log.New(io.Discard),
		eventBus:    NewEventBus(),
		phase:       PhaseBetting,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// EventBus returns the bus the round publishes to
func (r *Round) EventBus() EventBus {
	return r.eventBus
}

// Phase returns the current phase
func (r *Round) Phase() Phase {
	return r.phase
}

// Outcome returns the round outcome, or OutcomeNone before resolution
func (r *Round) Outcome() Outcome {
	return r.outcome
}

// Play runs the round to completion and returns the outcome. An error means
// the round was abandoned before settlement (e.g. the input stream ended);
// in that case no funds have moved.
func (r *Round) Play() (Outcome, error) {
	if err := r.betting(); err != nil {
		return OutcomeNone, err
	}
	if err := r.dealing(); err != nil {
		return OutcomeNone, err
	}
	if err := r.playerTurn(); err != nil {
		return OutcomeNone, err
	}
	if r.outcome == OutcomeNone {
		if err := r.dealerTurn(); err != nil {
			return OutcomeNone, err
		}
	}
	r.settle()
	return r.outcome, nil
}

// betting obtains a valid bet from the bet source, asking again until the
// amount passes validation
func (r *Round) betting() error {
	r.phase = PhaseBetting
	for {
		amount, err := r.bets.NextBet(r.player.Balance)
		if err != nil {
			return fmt.Errorf("obtaining bet: %w", err)
		}

		if err := r.player.PlaceBet(amount); err != nil {
			var betErr *BetError
			if errors.As(err, &betErr) {
				r.logger.Warn("Rejected bet", "amount", amount, "balance", r.player.Balance, "reason", betErr.Reason)
				continue
			}
			return err
		}

		r.logger.Debug("Bet placed", "amount", amount, "balance", r.player.Balance)
		return nil
	}
}

// dealing builds a fresh shuffled deck, resets both hands and deals two
// cards each. The dealer's first card stays hidden until the dealer's turn.
func (r *Round) dealing() error {
	r.phase = PhaseDealing

	if r.deck == nil {
		r.deck = deck.New(r.rng)
		r.deck.Shuffle()
	}

	r.player.ResetHand()
	r.dealer.ResetHand()

	r.eventBus.Publish(NewRoundStartedEvent(r.player.Bet, r.player.Balance))

	for i := 0; i < 2; i++ {
		card, err := r.player.AddCard(r.deck)
		if err != nil {
			return err
		}
		r.eventBus.Publish(NewCardDealtEvent(r.player.Name, card, r.player.Hand.Total(), false))
	}
	for i := 0; i < 2; i++ {
		card, err := r.dealer.AddCard(r.deck)
		if err != nil {
			return err
		}
		r.eventBus.Publish(NewCardDealtEvent(r.dealer.Name, card, r.dealer.Hand.Total(), i == 0))
	}

	return nil
}

// playerTurn runs the player's decision loop. A natural stands immediately:
// a two-card 21 never takes a third card.
func (r *Round) playerTurn() error {
	r.phase = PhasePlayerTurn

	if r.player.Hand.IsNatural() {
		r.logger.Debug("Player dealt a natural, standing")
		return nil
	}

	for {
		decision, err := r.playerAgent.Decide(r.playerView())
		if err != nil {
			return fmt.Errorf("player decision: %w", err)
		}

		r.eventBus.Publish(NewPlayerActionEvent(r.player.Name, decision, r.player.Hand.Total()))

		if decision == Stand {
			return nil
		}

		card, err := r.player.AddCard(r.deck)
		if err != nil {
			return err
		}
		r.eventBus.Publish(NewCardDealtEvent(r.player.Name, card, r.player.Hand.Total(), false))

		if r.player.Hand.IsBust() {
			r.logger.Debug("Player busts", "total", r.player.Hand.Total())
			r.outcome = PlayerBust
			return nil
		}
	}
}

// dealerTurn reveals the hole card and plays the fixed house policy, then
// resolves the outcome. Naturals are checked before the dealer draws:
// a player natural beats anything except a dealer 21, and two naturals push.
func (r *Round) dealerTurn() error {
	r.phase = PhaseDealerTurn

	r.eventBus.Publish(NewDealerRevealEvent(r.dealer.Name, r.dealer.Hand.Cards(), r.dealer.Hand.Total()))

	switch {
	case r.dealer.Hand.Total() != BlackjackTotal && r.player.Hand.IsNatural():
		r.outcome = PlayerBlackjackWin
		return nil
	case r.dealer.Hand.IsNatural() && r.player.Hand.IsNatural():
		r.outcome = Push
		return nil
	}

	for {
		decision, err := r.dealerAgent.Decide(r.dealerView())
		if err != nil {
			return fmt.Errorf("dealer decision: %w", err)
		}
		if decision != Hit {
			break
		}

		card, err := r.dealer.AddCard(r.deck)
		if err != nil {
			return err
		}
		r.logger.Debug("Dealer hits", "card", card, "total", r.dealer.Hand.Total())
		r.eventBus.Publish(NewDealerHitEvent(r.dealer.Name, card, r.dealer.Hand.Total()))
	}

	dealerTotal, playerTotal := r.dealer.Hand.Total(), r.player.Hand.Total()
	switch {
	case dealerTotal > BlackjackTotal:
		r.outcome = DealerBust
	case dealerTotal > playerTotal:
		r.outcome = DealerWin
	case dealerTotal < playerTotal:
		r.outcome = PlayerWin
	case r.dealer.Hand.IsNatural() && !r.player.Hand.IsNatural():
		// Equal totals, but a two-card 21 outranks a drawn 21
		r.outcome = DealerBlackjackWin
	default:
		r.outcome = Push
	}

	return nil
}

// settle maps the outcome onto the balance and applies the broke-player
// subsidy before the next round can begin
func (r *Round) settle() {
	r.phase = PhaseResolution

	switch {
	case r.outcome.PlayerWon():
		r.player.SettleWin()
	case r.outcome.PlayerLost():
		r.player.SettleLoss()
	}

	r.logger.Info("Round settled", "outcome", r.outcome, "bet", r.player.Bet, "balance", r.player.Balance)
	r.eventBus.Publish(NewRoundSettledEvent(r.outcome, r.player.Bet, r.player.Balance))

	if r.player.Balance <= 0 {
		r.player.Balance = StartingBalance
		r.logger.Info("Player broke, subsidy granted", "restored", StartingBalance)
		r.eventBus.Publish(NewSubsidyGrantedEvent(StartingBalance))
	}

	r.phase = PhaseSettled
}

func (r *Round) playerView() HandView {
	view := HandView{
		Cards:    r.player.Hand.Cards(),
		Total:    r.player.Hand.Total(),
		SoftAces: r.player.Hand.SoftAces(),
	}
	if cards := r.dealer.Hand.Cards(); len(cards) > 1 {
		view.DealerUpcard = cards[1]
	}
	return view
}

func (r *Round) dealerView() HandView {
	return HandView{
		Cards:    r.dealer.Hand.Cards(),
		Total:    r.dealer.Hand.Total(),
		SoftAces: r.dealer.Hand.SoftAces(),
	}
}
