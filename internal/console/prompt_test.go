package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func TestBetReprompting(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n-5\n0\n500\n50\n"), &out)

	amount, err := p.Bet(100)
	require.NoError(t, err)
	assert.Equal(t, 50, amount)
	assert.Contains(t, out.String(), "whole number")
	assert.Contains(t, out.String(), "cannot exceed")
}

func TestBetQuitOnEOF(t *testing.T) {
	t.Parallel()
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Bet(100)
	assert.ErrorIs(t, err, ErrQuit)
}

func TestDecisionReprompting(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("x\nmaybe\nh\n"), &out)

	decision, err := p.Decision()
	require.NoError(t, err)
	assert.Equal(t, game.Hit, decision)
}

func TestDecisionCaseInsensitive(t *testing.T) {
	t.Parallel()
	p := NewPrompter(strings.NewReader("STAND\n"), &bytes.Buffer{})

	decision, err := p.Decision()
	require.NoError(t, err)
	assert.Equal(t, game.Stand, decision)
}

func TestNameRejectsEmpty(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n   \nMax\n"), &out)

	name, err := p.Name()
	require.NoError(t, err)
	assert.Equal(t, "Max", name)
}

func TestChoiceBounds(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("0\n9\nbanana\n3\n"), &out)

	choice, err := p.Choice(4)
	require.NoError(t, err)
	assert.Equal(t, 3, choice)
}
