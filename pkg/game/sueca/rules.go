package sueca

import (
	"fmt"

	"github.com/mpsalisbury/sueca/pkg/cards"
)

// NumTricks is the number of tricks in a deal: 40 cards over 4 seats.
const NumTricks = 10

// TotalPoints is the trick value of the whole deck.
const TotalPoints = 120

// Rules holds the house-rule switches that change legality.
type Rules struct {
	// A player who cannot follow suit normally has to trump if able.
	// When set, that obligation is lifted while the player's partner
	// is winning the trick.
	FreeDiscardWhenPartnerWinning bool
}

var DefaultRules = Rules{}

// Team returns the team of seat: seats 0 and 2 play against 1 and 3.
func Team(seat int) int {
	return seat % 2
}

func Partner(seat int) int {
	return (seat + 2) % cards.NumSeats
}

func CardPoints(c cards.Card) int {
	if c.IsEmpty() {
		return 0
	}
	return c.Rank.Points()
}

// TrickValue sums the points of the cards in the trick. Empty slots count zero.
func TrickValue(t cards.Trick) int {
	total := 0
	for _, c := range t.Cards {
		total += CardPoints(c)
	}
	return total
}

// Beats reports whether c takes over a trick currently held by best.
func Beats(c, best cards.Card, trump cards.Suit) bool {
	if c.Suit == best.Suit {
		return c.Rank > best.Rank
	}
	return c.Suit == trump
}

// CurrentWinner returns the seat holding the trick so far.
// Returns false if nothing has been played.
func CurrentWinner(t cards.Trick, trump cards.Suit) (int, bool) {
	n := t.NumPlayed()
	if n == 0 {
		return -1, false
	}
	winner := t.StartingPlayer
	for i := 1; i < n; i++ {
		seat := t.Seat(i)
		if Beats(t.Cards[seat], t.Cards[winner], trump) {
			winner = seat
		}
	}
	return winner, true
}

// ResolveTrick returns the seat that wins a complete trick.
func ResolveTrick(t cards.Trick, trump cards.Suit) (int, error) {
	if !t.IsComplete() {
		return -1, fmt.Errorf("%w: trick %s has %d of %d cards", ErrInvalidState, t, t.NumPlayed(), cards.NumSeats)
	}
	winner, _ := CurrentWinner(t, trump)
	return winner, nil
}

// LegalMoves applies the default rules.
func LegalMoves(hand cards.Cards, trick cards.Trick, trump cards.Suit) (cards.Cards, error) {
	return DefaultRules.LegalMoves(hand, trick, trump)
}

// LegalMoves returns the cards of hand that the seat due to play in trick may play.
// A leader may play anything. A follower must follow the led suit, failing
// that must trump, failing that may discard anything.
func (r Rules) LegalMoves(hand cards.Cards, trick cards.Trick, trump cards.Suit) (cards.Cards, error) {
	if len(hand) == 0 {
		return nil, fmt.Errorf("%w: asked for a move with an empty hand", ErrInvalidState)
	}
	if trick.IsComplete() {
		return nil, fmt.Errorf("%w: asked for a move on a finished trick %s", ErrInvalidState, trick)
	}
	ledSuit, ok := trick.LeadSuit()
	if !ok {
		return hand.Copy(), nil
	}
	if following := hand.FilterBySuit(ledSuit); len(following) > 0 {
		return following, nil
	}
	trumps := hand.FilterBySuit(trump)
	if len(trumps) == 0 {
		return hand.Copy(), nil
	}
	if r.FreeDiscardWhenPartnerWinning && partnerWinning(trick, trump) {
		return hand.Copy(), nil
	}
	return trumps, nil
}

func partnerWinning(t cards.Trick, trump cards.Suit) bool {
	seat := t.NextSeat()
	winner, ok := CurrentWinner(t, trump)
	return ok && seat >= 0 && winner == Partner(seat)
}
