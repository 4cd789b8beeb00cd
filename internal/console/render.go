package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/highscore"
)

// renderCard styles a card red or black to match its suit
func renderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func renderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}

// RenderHand writes a participant's hand. With hideHole set the first card
// is shown face down and the total is withheld, which is how the dealer's
// hand appears until the reveal.
func RenderHand(w io.Writer, name string, cards []deck.Card, total int, hideHole bool) {
	if hideHole && len(cards) > 0 {
		shown := renderCards(cards[1:])
		fmt.Fprintf(w, "%s: %s %s\n", HeaderStyle.Render(name+"'s hand"), HiddenCardStyle.Render("[??]"), shown)
		return
	}
	fmt.Fprintf(w, "%s (%d): %s\n", HeaderStyle.Render(name+"'s hand"), total, renderCards(cards))
}

// RenderHighscores writes the highscore table
func RenderHighscores(w io.Writer, list highscore.List) {
	fmt.Fprintln(w, HeaderStyle.Render("Highscores"))
	fmt.Fprintln(w, InfoStyle.Render(strings.Repeat("─", 40)))
	if len(list) == 0 {
		fmt.Fprintln(w, InfoStyle.Render("No highscores have been recorded yet."))
		return
	}
	for i, record := range list {
		fmt.Fprintf(w, "%d. %-16s %6d$  %s\n", i+1, record.Name, record.Balance, record.Date)
	}
}

// RenderHelp writes the rules summary
func RenderHelp(w io.Writer) {
	help := []string{
		"Cards 2-10 count face value, J/Q/K count ten and an ace counts",
		"eleven or one, whichever serves the hand best.",
		"",
		"Beat the dealer's total without going over 21. The dealer draws",
		"below 17 and stands on any 17 or more.",
		"",
		"A natural (21 in two cards) outranks a drawn 21.",
		"",
		"The highscore list keeps three entries, and only a cash out puts",
		"your balance on it. Use it wisely.",
	}
	fmt.Fprintln(w, HeaderStyle.Render("How to play"))
	for _, line := range help {
		fmt.Fprintln(w, InfoStyle.Render(line))
	}
}
