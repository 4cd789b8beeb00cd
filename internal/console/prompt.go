package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/blackjack/internal/game"
)

// ErrQuit is returned when the input stream ends. The session treats it as
// the player walking away from the table.
var ErrQuit = errors.New("console: input closed")

// Prompter reads validated player input line by line. All recoverable input
// errors (non-numeric bets, unrecognized decisions) are handled here by
// re-prompting; only a closed input stream escapes as ErrQuit.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a prompter over the given streams
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrQuit, err)
		}
		return "", ErrQuit
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Name asks for a non-empty display name
func (p *Prompter) Name() (string, error) {
	for {
		name, err := p.line("Enter your name: ")
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
		fmt.Fprintln(p.out, ErrorStyle.Render("A name cannot be empty."))
	}
}

// Bet asks for a bet until it is a whole number within the balance
func (p *Prompter) Bet(balance int) (int, error) {
	for {
		input, err := p.line(fmt.Sprintf("How much of your %d$ do you want to bet? ", balance))
		if err != nil {
			return 0, err
		}

		amount, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(p.out, ErrorStyle.Render("The bet must be a whole number."))
			continue
		}
		if amount <= 0 {
			fmt.Fprintln(p.out, ErrorStyle.Render("You have to bet something to play."))
			continue
		}
		if amount > balance {
			fmt.Fprintln(p.out, ErrorStyle.Render(fmt.Sprintf("Your bet cannot exceed your balance of %d$.", balance)))
			continue
		}
		return amount, nil
	}
}

// Decision asks for hit or stand until a recognized token arrives
func (p *Prompter) Decision() (game.Decision, error) {
	for {
		input, err := p.line("Hit or stand? [h/s] ")
		if err != nil {
			return game.Stand, err
		}

		decision, err := game.ParseDecision(input)
		if err != nil {
			fmt.Fprintln(p.out, ErrorStyle.Render("Sorry, please answer with 'h' or 's'."))
			continue
		}
		return decision, nil
	}
}

// Choice asks for a menu option between 1 and n
func (p *Prompter) Choice(n int) (int, error) {
	for {
		input, err := p.line("> ")
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > n {
			fmt.Fprintln(p.out, ErrorStyle.Render(fmt.Sprintf("Please enter a number between 1-%d.", n)))
			continue
		}
		return choice, nil
	}
}
