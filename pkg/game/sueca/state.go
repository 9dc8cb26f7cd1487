package sueca

import (
	"fmt"

	"github.com/mpsalisbury/sueca/pkg/cards"
	"golang.org/x/exp/slices"
)

// GameState is what one seat sees when it is asked to play a card.
// It is built once per decision and never mutated by a strategy.
type GameState struct {
	CurrentPlayer  int
	Hand           cards.Cards
	TrumpPlayer    int
	TrumpCard      cards.Card
	CurrentTrick   cards.Trick
	PreviousTricks []cards.Trick
	// Points per team, indexed by Team(seat).
	Points [2]int
}

func (gs GameState) TrumpSuit() cards.Suit {
	return gs.TrumpCard.Suit
}

func (gs GameState) Team() int {
	return Team(gs.CurrentPlayer)
}

func (gs GameState) Partner() int {
	return Partner(gs.CurrentPlayer)
}

func (gs GameState) IsLeading() bool {
	return gs.CurrentTrick.IsEmpty()
}

// PlayedCards returns every card on the table: previous tricks, then the current one.
func (gs GameState) PlayedCards() cards.Cards {
	var played cards.Cards
	for _, t := range gs.PreviousTricks {
		played = append(played, t.Played()...)
	}
	return append(played, gs.CurrentTrick.Played()...)
}

// LegalPlays applies rules to the current player's hand.
func (gs GameState) LegalPlays(rules Rules) (cards.Cards, error) {
	return rules.LegalMoves(gs.Hand, gs.CurrentTrick, gs.TrumpSuit())
}

// Clone returns a deep copy.
func (gs GameState) Clone() GameState {
	c := gs
	c.Hand = gs.Hand.Copy()
	c.PreviousTricks = slices.Clone(gs.PreviousTricks)
	return c
}

func validSeat(seat int) bool {
	return seat >= 0 && seat < cards.NumSeats
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// Validate checks the invariants a decision relies on.
// Any violation wraps ErrInvalidState.
func (gs GameState) Validate() error {
	if !validSeat(gs.CurrentPlayer) {
		return invalid("current player %d", gs.CurrentPlayer)
	}
	if !validSeat(gs.TrumpPlayer) {
		return invalid("trump player %d", gs.TrumpPlayer)
	}
	if gs.TrumpCard.IsEmpty() {
		return invalid("no trump card")
	}
	if len(gs.PreviousTricks) >= NumTricks {
		return invalid("%d tricks already played", len(gs.PreviousTricks))
	}
	if gs.Points[0] < 0 || gs.Points[1] < 0 || gs.Points[0]+gs.Points[1] > TotalPoints {
		return invalid("points %v", gs.Points)
	}

	type location struct {
		where string
		seat  int
	}
	seen := make(map[cards.Card]location)
	note := func(c cards.Card, where string, seat int) error {
		if c.IsEmpty() {
			return invalid("missing card in %s", where)
		}
		if prior, ok := seen[c]; ok {
			return invalid("card %s appears in %s and %s", c, prior.where, where)
		}
		seen[c] = location{where, seat}
		return nil
	}

	for _, c := range gs.Hand {
		if err := note(c, "hand", gs.CurrentPlayer); err != nil {
			return err
		}
	}
	leader := -1
	for i, t := range gs.PreviousTricks {
		where := fmt.Sprintf("trick %d", i+1)
		if !validSeat(t.StartingPlayer) {
			return invalid("%s starting player %d", where, t.StartingPlayer)
		}
		if leader >= 0 && t.StartingPlayer != leader {
			return invalid("%s led by %d, but %d won the trick before", where, t.StartingPlayer, leader)
		}
		for seat, c := range t.Cards {
			if err := note(c, where, seat); err != nil {
				return err
			}
		}
		if lead, _ := t.LeadSuit(); t.Suit != cards.NoSuit && t.Suit != lead {
			return invalid("%s suit %s but %s was led", where, t.Suit, lead)
		}
		leader, _ = ResolveTrick(t, gs.TrumpSuit())
	}

	ct := gs.CurrentTrick
	if !validSeat(ct.StartingPlayer) {
		return invalid("current trick starting player %d", ct.StartingPlayer)
	}
	if leader >= 0 && ct.StartingPlayer != leader {
		return invalid("current trick led by %d, but %d won the last trick", ct.StartingPlayer, leader)
	}
	n := ct.NumPlayed()
	if n == cards.NumSeats {
		return invalid("current trick is already complete")
	}
	for i := n; i < cards.NumSeats; i++ {
		if seat := ct.Seat(i); !ct.Cards[seat].IsEmpty() {
			return invalid("seat %d played out of turn in current trick", seat)
		}
	}
	for i := 0; i < n; i++ {
		seat := ct.Seat(i)
		if err := note(ct.Cards[seat], "current trick", seat); err != nil {
			return err
		}
	}
	if lead, ok := ct.LeadSuit(); ok && ct.Suit != cards.NoSuit && ct.Suit != lead {
		return invalid("current trick suit %s but %s was led", ct.Suit, lead)
	}
	if next := ct.NextSeat(); next != gs.CurrentPlayer {
		return invalid("seat %d is due to play, not %d", next, gs.CurrentPlayer)
	}

	// The current player has not played to this trick yet.
	if left := NumTricks - len(gs.PreviousTricks); len(gs.Hand) != left {
		return invalid("hand holds %d cards, want %d", len(gs.Hand), left)
	}
	if loc, ok := seen[gs.TrumpCard]; ok && loc.seat != gs.TrumpPlayer {
		return invalid("trump card %s held by seat %d, not trump player %d", gs.TrumpCard, loc.seat, gs.TrumpPlayer)
	} else if !ok && gs.CurrentPlayer == gs.TrumpPlayer {
		return invalid("trump player has neither kept nor played trump card %s", gs.TrumpCard)
	}
	return nil
}
