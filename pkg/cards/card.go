package cards

import (
	"fmt"
	"strings"
)

// A card's suit. NoSuit is only used by the Empty card.
type Suit int8

const (
	NoSuit Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

var Suits = []Suit{
	Clubs,
	Diamonds,
	Hearts,
	Spades,
}

func (s Suit) String() string {
	switch s {
	case NoSuit:
		return EmptyToken
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	}
	panic("Unknown Suit")
}

// ParseSuit parses a single suit letter. The empty token parses as NoSuit.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToUpper(s) {
	case EmptyToken:
		return NoSuit, nil
	case "C":
		return Clubs, nil
	case "D":
		return Diamonds, nil
	case "H":
		return Hearts, nil
	case "S":
		return Spades, nil
	}
	return NoSuit, fmt.Errorf("no such suit '%s'", s)
}

// A card's rank, in Sueca trick order: 2-7,Q,J,K,A.
type Rank int8

const (
	NoRank Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Queen
	Jack
	King
	Ace
)

var Ranks = []Rank{
	Two,
	Three,
	Four,
	Five,
	Six,
	Seven,
	Queen,
	Jack,
	King,
	Ace,
}

func (r Rank) String() string {
	switch r {
	case NoRank:
		return EmptyToken
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	panic("Unknown Rank")
}

func parseRank(r string) (Rank, error) {
	switch strings.ToUpper(r) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	return NoRank, fmt.Errorf("no such rank '%s'", r)
}

// Points is the rank's trick value: A=11, 7=10, K=4, J=3, Q=2.
func (r Rank) Points() int {
	switch r {
	case Ace:
		return 11
	case Seven:
		return 10
	case King:
		return 4
	case Jack:
		return 3
	case Queen:
		return 2
	}
	return 0
}

// EmptyToken is the text form of a missing card.
const EmptyToken = "X"

type Card struct {
	Rank
	Suit
}

// Empty marks an unplayed or unknown slot.
var Empty = Card{}

func (c Card) IsEmpty() bool {
	return c.Rank == NoRank || c.Suit == NoSuit
}

func (c Card) String() string {
	if c.IsEmpty() {
		return EmptyToken
	}
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a two character rank+suit token, or the one character empty token.
func ParseCard(c string) (Card, error) {
	if strings.ToUpper(c) == EmptyToken {
		return Empty, nil
	}
	if len(c) != 2 {
		return Empty, fmt.Errorf("can't parse card '%s'", c)
	}
	r, rerr := parseRank(c[0:1])
	s, serr := ParseSuit(c[1:2])
	if rerr != nil || serr != nil || s == NoSuit {
		return Empty, fmt.Errorf("can't parse card '%s'", c)
	}
	return Card{r, s}, nil
}

func (c1 Card) LessThan(c2 Card) bool {
	if c1.Suit == c2.Suit {
		return c1.Rank < c2.Rank
	}
	return c1.Suit < c2.Suit
}
