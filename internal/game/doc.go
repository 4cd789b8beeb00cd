// Package game implements the core blackjack round logic.
//
// The main type is Round, which drives a single bet through the phases
// Betting, Dealing, PlayerTurn, DealerTurn, Resolution and Settled. Hand
// scoring, participant state and the agent decision interface live alongside
// it; presentation subscribes to the round's EventBus and never reaches into
// engine state.
//
// # Basic Usage
//
// Create and play a round:
//
//	player := game.NewPlayer("Max", game.StartingBalance)
//	dealer := game.NewDealer()
//	agent := game.NewHumanAgent(promptDecision)
//	r := game.NewRound(rng, player, dealer, agent, game.BetFunc(promptBet))
//	outcome, err := r.Play()
//
// # Deterministic Testing
//
// Seed the RNG via internal/randutil for reproducible shuffles:
//
//	r := game.NewRound(randutil.New(42), player, dealer, agent, bets)
//
// Or stack the deck for full control over the cards dealt:
//
//	d := deck.NewStacked(cards...)
//	r := game.NewRound(nil, player, dealer, agent, bets, game.WithDeck(d))
//
// Each round owns its deck and discards it at settlement; nothing is shared
// between rounds except the player's balance.
package game
