// Package protocol reads the per-turn game state sent by the game host and
// writes back the chosen card.
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mpsalisbury/sueca/pkg/cards"
	"github.com/mpsalisbury/sueca/pkg/game/sueca"
)

var ErrMalformedInput = errors.New("malformed input")

// Reader decodes whitespace separated tokens. Line breaks carry no meaning.
type Reader struct {
	sc *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

func malformed(field string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedInput, field, fmt.Sprintf(format, args...))
}

func (r *Reader) token(field string) (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", field, err)
	}
	return "", malformed(field, "unexpected end of input")
}

func (r *Reader) number(field string, lo, hi int) (int, error) {
	tok, err := r.token(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, malformed(field, "'%s' is not a number", tok)
	}
	if n < lo || n > hi {
		return 0, malformed(field, "%d out of range [%d, %d]", n, lo, hi)
	}
	return n, nil
}

func (r *Reader) seat(field string) (int, error) {
	return r.number(field, 0, cards.NumSeats-1)
}

func (r *Reader) card(field string, allowEmpty bool) (cards.Card, error) {
	tok, err := r.token(field)
	if err != nil {
		return cards.Empty, err
	}
	c, err := cards.ParseCard(tok)
	if err != nil {
		return cards.Empty, malformed(field, "%v", err)
	}
	if c.IsEmpty() && !allowEmpty {
		return cards.Empty, malformed(field, "card missing")
	}
	return c, nil
}

func (r *Reader) trick(field string, allowEmpty bool) (cards.Trick, error) {
	start, err := r.seat(field + " starting player")
	if err != nil {
		return cards.Trick{}, err
	}
	t := cards.NewTrick(start)
	for seat := range t.Cards {
		c, err := r.card(fmt.Sprintf("%s card %d", field, seat), allowEmpty)
		if err != nil {
			return cards.Trick{}, err
		}
		t.Cards[seat] = c
	}
	if lead := t.Cards[start]; !lead.IsEmpty() {
		t.Suit = lead.Suit
	}
	return t, nil
}

// ReadGameState reads one decision request, which must be the whole input,
// and checks it for consistency.
// Format errors wrap ErrMalformedInput; consistent-looking input that breaks
// a game invariant wraps sueca.ErrInvalidState.
func (r *Reader) ReadGameState() (sueca.GameState, error) {
	var gs sueca.GameState
	var err error
	if gs.CurrentPlayer, err = r.seat("current player"); err != nil {
		return gs, err
	}
	nc, err := r.number("hand size", 0, sueca.NumTricks)
	if err != nil {
		return gs, err
	}
	gs.Hand = make(cards.Cards, 0, nc)
	for i := 0; i < nc; i++ {
		c, err := r.card(fmt.Sprintf("hand card %d", i), false)
		if err != nil {
			return gs, err
		}
		gs.Hand = append(gs.Hand, c)
	}
	if gs.TrumpPlayer, err = r.seat("trump player"); err != nil {
		return gs, err
	}
	if gs.TrumpCard, err = r.card("trump card", false); err != nil {
		return gs, err
	}
	if gs.CurrentTrick, err = r.trick("current trick", true); err != nil {
		return gs, err
	}
	tok, err := r.token("trick suit")
	if err != nil {
		return gs, err
	}
	suit, err := cards.ParseSuit(tok)
	if err != nil {
		return gs, malformed("trick suit", "%v", err)
	}
	if suit != gs.CurrentTrick.Suit {
		return gs, malformed("trick suit", "'%s' does not match the card led", tok)
	}
	pt, err := r.number("previous trick count", 0, sueca.NumTricks-1)
	if err != nil {
		return gs, err
	}
	for i := 0; i < pt; i++ {
		t, err := r.trick(fmt.Sprintf("previous trick %d", i), false)
		if err != nil {
			return gs, err
		}
		gs.PreviousTricks = append(gs.PreviousTricks, t)
	}
	for team := range gs.Points {
		if gs.Points[team], err = r.number(fmt.Sprintf("team %d points", team), 0, sueca.TotalPoints); err != nil {
			return gs, err
		}
	}
	if r.sc.Scan() {
		return gs, malformed("end of input", "unexpected token '%s'", r.sc.Text())
	}
	if err := r.sc.Err(); err != nil {
		return gs, fmt.Errorf("reading end of input: %w", err)
	}
	if err := gs.Validate(); err != nil {
		return gs, err
	}
	return gs, nil
}
