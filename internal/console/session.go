// Package console is the presentation layer: it prompts for input, renders
// engine events and drives the menu loop around rounds. The core never
// prints; everything the player sees comes through here.
package console

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/highscore"
	"github.com/lox/blackjack/internal/randutil"
)

// subsidyExcuses are the stories told when a broke player's balance is
// restored. One is picked at random per subsidy.
var subsidyExcuses = []string{
	"While leaving the casino you found 100$ on the floor!",
	"Your mom agreed to loan you 100 bucks. No pressure.",
	"You sold your wrist watch outside. You are back in business!",
	"A generous stranger mistook you for a busker and handed you 100$.",
	"Your shoes weren't made for walking anyway. Sold, for 100$.",
}

// Session drives one interactive sitting: name entry, menus, rounds and the
// final cash out. It subscribes to the round event bus and renders every
// event as it happens.
type Session struct {
	cfg    *config.Config
	store  *highscore.Store
	logger *log.Logger
	prompt *Prompter
	out    io.Writer
	rng    *rand.Rand
	bus    game.EventBus
	player *game.Player
	dealer *game.Participant
	cheat  bool
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithCheat adds the debug balance boost at session start. It is never
// applied silently: the boost is printed and logged.
func WithCheat() SessionOption {
	return func(s *Session) {
		s.cheat = true
	}
}

// NewSession creates a session reading from in and writing to out. The
// deck RNG comes from the configured seed, or the wall clock when unset.
func NewSession(cfg *config.Config, store *highscore.Store, logger *log.Logger, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		store:  store,
		logger: logger,
		prompt: NewPrompter(in, out),
		out:    out,
		rng:    randutil.New(seed),
		bus:    game.NewEventBus(),
		dealer: game.NewDealer(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.bus.Subscribe(s)
	return s
}

// Run plays the session until the player exits, cashes out or closes the
// input stream. A closed stream is a clean quit, not an error.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, TitleStyle.Render(" ♠ ♥ Max' Blackjack Casino ♦ ♣ "))
	fmt.Fprintln(s.out)

	name := s.cfg.Game.PlayerName
	if name == "" {
		var err error
		if name, err = s.prompt.Name(); err != nil {
			return s.quit(err)
		}
	}

	balance := s.cfg.Game.StartingBalance
	if s.cheat {
		balance += 1000
		s.logger.Warn("Cheat enabled, boosting starting balance", "boost", 1000)
		fmt.Fprintln(s.out, WarningStyle.Render("Cheat enabled: +1000$ starting balance."))
	}
	s.player = game.NewPlayer(name, balance)
	s.logger.Info("Session started", "player", name, "balance", balance)

	for {
		choice, err := s.menu("Choose an option", []string{"Play", "See highscores", "Help", "Exit"})
		if err != nil {
			return s.quit(err)
		}
		if choice == 1 {
			break
		}
		switch choice {
		case 2:
			RenderHighscores(s.out, s.store.Load())
		case 3:
			RenderHelp(s.out)
		case 4:
			s.goodbye()
			return nil
		}
	}

	for {
		round := game.NewRound(s.rng, s.player, s.dealer,
			game.NewHumanAgent(s.promptDecision),
			game.BetFunc(s.prompt.Bet),
			game.WithEventBus(s.bus),
			game.WithLogger(s.logger.WithPrefix("round")),
		)
		if _, err := round.Play(); err != nil {
			return s.quit(err)
		}

		again, err := s.afterRound()
		if err != nil {
			return s.quit(err)
		}
		if !again {
			return nil
		}
	}
}

// afterRound runs the post-round menu and reports whether to play again
func (s *Session) afterRound() (bool, error) {
	for {
		choice, err := s.menu("Choose an option", []string{"Play again", "See highscores", "Help", "Cash out"})
		if err != nil {
			return false, err
		}
		switch choice {
		case 1:
			return true, nil
		case 2:
			RenderHighscores(s.out, s.store.Load())
		case 3:
			RenderHelp(s.out)
		case 4:
			s.cashOut()
			s.goodbye()
			return false, nil
		}
	}
}

// cashOut submits the balance to the highscore store. A failed save is
// reported but changes nothing about the session's accounting.
func (s *Session) cashOut() {
	made, err := s.store.Submit(s.player.Name, s.player.Balance)
	if err != nil {
		s.logger.Error("Failed to save highscores", "error", err)
		fmt.Fprintln(s.out, ErrorStyle.Render("Your highscore could not be saved."))
	}
	if made {
		fmt.Fprintln(s.out, SuccessStyle.Render("You made it to the highscore list!"))
		RenderHighscores(s.out, s.store.Load())
	} else {
		fmt.Fprintf(s.out, "%s\n", InfoStyle.Render(fmt.Sprintf("%d$ was not enough for the highscore list this time.", s.player.Balance)))
	}
}

func (s *Session) menu(title string, options []string) (int, error) {
	fmt.Fprintf(s.out, "\n%s\t\tBalance: %d$\n", HeaderStyle.Render("["+title+"]"), s.player.Balance)
	for i, option := range options {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, option)
	}
	return s.prompt.Choice(len(options))
}

// promptDecision shows the table before asking, the dealer's upcard first
func (s *Session) promptDecision(view game.HandView) (game.Decision, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "%s %s %s\n", HeaderStyle.Render("Dealer shows:"), HiddenCardStyle.Render("[??]"), renderCard(view.DealerUpcard))
	RenderHand(s.out, s.player.Name, view.Cards, view.Total, false)
	return s.prompt.Decision()
}

func (s *Session) quit(err error) error {
	if errors.Is(err, ErrQuit) {
		s.goodbye()
		return nil
	}
	return err
}

func (s *Session) goodbye() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, InfoStyle.Render("That I hope to see you again soon!"))
}

// OnEvent renders engine events as they happen
func (s *Session) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartedEvent:
		fmt.Fprintf(s.out, "\nYou bet %d$.\n", e.Bet)
	case game.CardDealtEvent:
		s.renderCardDealt(e)
	case game.PlayerActionEvent:
		if e.Decision == game.Stand {
			fmt.Fprintf(s.out, "%s stands. %s is playing:\n", e.Player, s.dealer.Name)
		}
	case game.DealerRevealEvent:
		fmt.Fprintln(s.out)
		RenderHand(s.out, e.Dealer, e.Cards, e.Total, false)
	case game.DealerHitEvent:
		fmt.Fprintf(s.out, "%s hits: %s (%d)\n", e.Dealer, renderCard(e.Card), e.Total)
	case game.RoundSettledEvent:
		s.renderSettled(e)
	case game.SubsidyGrantedEvent:
		fmt.Fprintln(s.out, WarningStyle.Render("Oh no, you are broke..."))
		fmt.Fprintln(s.out, subsidyExcuses[s.rng.IntN(len(subsidyExcuses))])
		fmt.Fprintf(s.out, "Your balance is back to %d$.\n", e.Restored)
	}
}

func (s *Session) renderCardDealt(e game.CardDealtEvent) {
	if e.To == s.dealer.Name {
		if e.Hidden {
			fmt.Fprintf(s.out, "%s takes a card face down.\n", e.To)
		} else {
			fmt.Fprintf(s.out, "%s shows: %s\n", e.To, renderCard(e.Card))
		}
		return
	}
	fmt.Fprintf(s.out, "You are dealt: %s (%d)\n", renderCard(e.Card), e.Total)
}

func (s *Session) renderSettled(e game.RoundSettledEvent) {
	fmt.Fprintln(s.out)
	switch e.Outcome {
	case game.PlayerBlackjackWin:
		fmt.Fprintln(s.out, SuccessStyle.Render("Wow, that's a blackjack! You win!"))
	case game.DealerBust:
		fmt.Fprintln(s.out, SuccessStyle.Render("Dealer busts, you win!"))
	case game.PlayerWin:
		fmt.Fprintln(s.out, SuccessStyle.Render("You win!"))
	case game.PlayerBust:
		fmt.Fprintln(s.out, ErrorStyle.Render("You bust!"))
	case game.DealerWin:
		fmt.Fprintln(s.out, ErrorStyle.Render("Dealer wins."))
	case game.DealerBlackjackWin:
		fmt.Fprintln(s.out, ErrorStyle.Render("That's just bad luck, the dealer has a blackjack."))
	case game.Push:
		fmt.Fprintln(s.out, InfoStyle.Render("It's a push."))
	}

	switch {
	case e.Outcome.PlayerWon():
		fmt.Fprintf(s.out, "You won %d$. Your balance is %d$.\n", e.Bet, e.Balance)
	case e.Outcome.PlayerLost():
		fmt.Fprintf(s.out, "You lost %d$. Your balance is %d$.\n", e.Bet, e.Balance)
	}
}

var _ game.EventSubscriber = (*Session)(nil)
