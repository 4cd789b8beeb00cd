package console

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/highscore"
)

func newTestSession(t *testing.T, input string, opts ...SessionOption) (*Session, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Game.Seed = 42
	store := highscore.NewStore(filepath.Join(t.TempDir(), "highscores.json"))
	var out bytes.Buffer
	s := NewSession(cfg, store, log.New(io.Discard), strings.NewReader(input), &out, opts...)
	return s, &out
}

func TestSessionExitFromMenu(t *testing.T) {
	t.Parallel()
	s, out := newTestSession(t, "Max\n4\n")

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Blackjack Casino")
	assert.Contains(t, out.String(), "hope to see you again")
}

func TestSessionShowsHighscoresAndHelp(t *testing.T) {
	t.Parallel()
	s, out := newTestSession(t, "Max\n2\n3\n4\n")

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "No highscores have been recorded yet")
	assert.Contains(t, out.String(), "How to play")
}

func TestSessionQuitOnClosedInput(t *testing.T) {
	t.Parallel()
	// Stream ends mid-session; that is a clean quit, not an error
	s, _ := newTestSession(t, "Max\n1\n")

	require.NoError(t, s.Run())
}

func TestSessionPlaysARound(t *testing.T) {
	t.Parallel()
	// Stand on whatever is dealt, then cash out. Extra lines absorb the
	// re-prompt when the hand is a natural and no decision is asked for.
	s, out := newTestSession(t, "Max\n1\n50\ns\n4\n4\n4\n")

	require.NoError(t, s.Run())
	output := out.String()
	assert.Contains(t, output, "You bet 50$")
	assert.Contains(t, output, "You are dealt")
	assert.Contains(t, output, "Dealer")
}

func TestSessionCheatBoost(t *testing.T) {
	t.Parallel()
	s, out := newTestSession(t, "Max\n4\n", WithCheat())

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Cheat enabled")
	assert.Contains(t, out.String(), "Balance: 1100$")
}

func TestSessionUsesConfiguredName(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Game.Seed = 42
	cfg.Game.PlayerName = "Eva"
	store := highscore.NewStore(filepath.Join(t.TempDir(), "highscores.json"))
	var out bytes.Buffer
	s := NewSession(cfg, store, log.New(io.Discard), strings.NewReader("4\n"), &out)

	require.NoError(t, s.Run())
	assert.NotContains(t, out.String(), "Enter your name")
}

func TestSessionCashOutRecordsHighscore(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Game.Seed = 42
	cfg.Game.PlayerName = "Max"
	path := filepath.Join(t.TempDir(), "highscores.json")
	store := highscore.NewStore(path)
	var out bytes.Buffer

	// Play one round standing pat, then cash out whatever remains. The
	// trailing 4s ride out menu re-prompts regardless of the round outcome.
	input := "1\n50\ns\n4\n4\n4\n"
	s := NewSession(cfg, store, log.New(io.Discard), strings.NewReader(input), &out)
	require.NoError(t, s.Run())

	list := store.Load()
	if assert.NotEmpty(t, list, "cash out should record a highscore") {
		assert.Equal(t, "Max", list[0].Name)
	}
}
