package sueca

import (
	"fmt"
	"math/rand"

	"github.com/mpsalisbury/sueca/pkg/cards"
	"golang.org/x/exp/slices"
)

// Game runs a deal with every hand in view. Bots never see it directly;
// they receive the redacted StateFor their seat.
type Game struct {
	id           string
	rules        Rules
	hands        [cards.NumSeats]cards.Cards
	trumpPlayer  int
	trumpCard    cards.Card
	currentTrick cards.Trick
	tricks       []cards.Trick
	points       [2]int
}

func NewGame(id string, rules Rules, hands [cards.NumSeats]cards.Cards, trumpPlayer int, trumpCard cards.Card, leader int) *Game {
	g := &Game{
		id:           id,
		rules:        rules,
		trumpPlayer:  trumpPlayer,
		trumpCard:    trumpCard,
		currentTrick: cards.NewTrick(leader),
	}
	for seat, h := range hands {
		g.hands[seat] = h.Copy()
	}
	return g
}

// Deal shuffles and deals ten cards to each seat, starting to the dealer's
// right. The dealer's last card is turned up as the trump card and the
// seat after the dealer leads the first trick.
func Deal(id string, rng *rand.Rand, rules Rules, dealer int) *Game {
	deck := NewDeck(rng)
	var hands [cards.NumSeats]cards.Cards
	var trumpCard cards.Card
	for i := 0; i < NumTricks*cards.NumSeats; i++ {
		seat := (dealer + 1 + i) % cards.NumSeats
		c := deck.Draw()
		hands[seat] = append(hands[seat], c)
		if seat == dealer {
			trumpCard = c
		}
	}
	for _, h := range hands {
		h.Sort()
	}
	return NewGame(id, rules, hands, dealer, trumpCard, (dealer+1)%cards.NumSeats)
}

// Resume rebuilds a game from a seat's view plus a guess at every
// remaining hand. hands[gs.CurrentPlayer] is replaced by gs.Hand.
func Resume(id string, rules Rules, gs GameState, hands [cards.NumSeats]cards.Cards) *Game {
	g := &Game{
		id:           id,
		rules:        rules,
		trumpPlayer:  gs.TrumpPlayer,
		trumpCard:    gs.TrumpCard,
		currentTrick: gs.CurrentTrick,
		tricks:       slices.Clone(gs.PreviousTricks),
		points:       gs.Points,
	}
	for seat, h := range hands {
		g.hands[seat] = h.Copy()
	}
	g.hands[gs.CurrentPlayer] = gs.Hand.Copy()
	return g
}

func (g *Game) Id() string {
	return g.id
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) TrumpSuit() cards.Suit {
	return g.trumpCard.Suit
}

func (g *Game) TrumpPlayer() int {
	return g.trumpPlayer
}

func (g *Game) TrumpCard() cards.Card {
	return g.trumpCard
}

func (g *Game) Hand(seat int) cards.Cards {
	return g.hands[seat].Copy()
}

func (g *Game) Points() [2]int {
	return g.points
}

func (g *Game) Tricks() []cards.Trick {
	return slices.Clone(g.tricks)
}

func (g *Game) Done() bool {
	return len(g.tricks) == NumTricks
}

// NextPlayer is the seat due to play, or -1 once the deal is over.
func (g *Game) NextPlayer() int {
	if g.Done() {
		return -1
	}
	return g.currentTrick.NextSeat()
}

// StateFor returns what seat is allowed to see.
func (g *Game) StateFor(seat int) GameState {
	return GameState{
		CurrentPlayer:  seat,
		Hand:           g.hands[seat].Copy(),
		TrumpPlayer:    g.trumpPlayer,
		TrumpCard:      g.trumpCard,
		CurrentTrick:   g.currentTrick,
		PreviousTricks: slices.Clone(g.tricks),
		Points:         g.points,
	}
}

func (g *Game) LegalPlays() (cards.Cards, error) {
	seat := g.NextPlayer()
	if seat < 0 {
		return nil, fmt.Errorf("%w: game %s is over", ErrInvalidState, g.id)
	}
	return g.rules.LegalMoves(g.hands[seat], g.currentTrick, g.TrumpSuit())
}

// PlayCard plays card for seat and settles the trick once all four have played.
func (g *Game) PlayCard(seat int, card cards.Card) error {
	if next := g.NextPlayer(); seat != next {
		return fmt.Errorf("it is not seat %d's turn in game %s", seat, g.id)
	}
	if !g.hands[seat].ContainsCard(card) {
		return fmt.Errorf("seat %d does not have card %s", seat, card)
	}
	legal, err := g.LegalPlays()
	if err != nil {
		return err
	}
	if !legal.ContainsCard(card) {
		return fmt.Errorf("seat %d cannot play card %s, legal plays are %s", seat, card, legal)
	}
	g.hands[seat] = g.hands[seat].Remove(card)
	g.currentTrick.Add(seat, card)
	if !g.currentTrick.IsComplete() {
		return nil
	}
	// Trick is over.
	winner, err := ResolveTrick(g.currentTrick, g.TrumpSuit())
	if err != nil {
		return err
	}
	g.points[Team(winner)] += TrickValue(g.currentTrick)
	g.tricks = append(g.tricks, g.currentTrick)
	g.currentTrick = cards.NewTrick(winner)
	return nil
}

// Clone returns an independent copy for lookahead.
func (g *Game) Clone() *Game {
	c := *g
	for seat, h := range g.hands {
		c.hands[seat] = h.Copy()
	}
	c.tricks = slices.Clone(g.tricks)
	return &c
}
