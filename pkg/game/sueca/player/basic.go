package player

import (
	"context"

	"github.com/mpsalisbury/sueca/pkg/cards"
	"github.com/mpsalisbury/sueca/pkg/game/sueca"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultMateriality is the trick value above which a seat holding a
// sure winner takes its partner's trick instead of playing under it.
const DefaultMateriality = 10

// BasicStrategy implements simple card-counting heuristics.

func NewBasicStrategy(rules sueca.Rules) Strategy {
	return &basicStrategy{rules: rules, materiality: DefaultMateriality}
}

type basicStrategy struct {
	rules       sueca.Rules
	materiality int
}

func (s basicStrategy) ChooseCardToPlay(_ context.Context, gs sueca.GameState, legalPlays cards.Cards) cards.Card {
	// Play only valid card.
	if len(legalPlays) == 1 {
		return legalPlays[0]
	}
	k := sueca.NewKnowledge(gs, s.rules)
	if gs.IsLeading() {
		return chooseLeadCard(gs, k, legalPlays)
	}
	winner, _ := sueca.CurrentWinner(gs.CurrentTrick, gs.TrumpSuit())
	if winner == gs.Partner() {
		return s.followPartnerWinning(gs, k, legalPlays)
	}
	return followOpponentWinning(gs, k, legalPlays)
}

// holds reports whether c, once played by the current seat, stays on top of
// the trick against every opponent still to play.
func holds(c cards.Card, gs sueca.GameState, k *sueca.Knowledge) bool {
	trick := gs.CurrentTrick
	led, ok := trick.LeadSuit()
	if !ok {
		led = c.Suit
	}
	for i := trick.NumPlayed() + 1; i < cards.NumSeats; i++ {
		seat := trick.Seat(i)
		if sueca.Team(seat) == gs.Team() {
			continue
		}
		if k.CanBeat(seat, c) {
			return false
		}
		// Out of the led suit with trumps left to ruff.
		if c.Suit != k.Trump && !k.MayHoldSuit(seat, led) && k.MayHoldSuit(seat, k.Trump) {
			return false
		}
	}
	return true
}

func trickWinningCard(gs sueca.GameState) cards.Card {
	winner, ok := sueca.CurrentWinner(gs.CurrentTrick, gs.TrumpSuit())
	if !ok {
		return cards.Empty
	}
	return gs.CurrentTrick.Cards[winner]
}

// Cards of legalPlays that would take the trick from its current winner.
func overtaking(gs sueca.GameState, legalPlays cards.Cards) cards.Cards {
	best := trickWinningCard(gs)
	return legalPlays.Filter(func(c cards.Card) bool {
		return sueca.Beats(c, best, gs.TrumpSuit())
	})
}

func chooseLeadCard(gs sueca.GameState, k *sueca.Knowledge, legalPlays cards.Cards) cards.Card {
	trump := gs.TrumpSuit()

	// Cash a sure winner, the richest one first.
	sure := legalPlays.Filter(func(c cards.Card) bool {
		return c.Suit != trump && k.IsMaster(c) && holds(c, gs, k)
	})
	if len(sure) > 0 {
		return sure.Richest()
	}

	// With a long trump holding headed by the master trump, draw trumps.
	trumps := legalPlays.FilterBySuit(trump)
	if len(trumps) >= 4 && k.UnseenOfSuit(trump) > 0 {
		if top := trumps.Highest(); k.IsMaster(top) {
			return top
		}
	}

	// Lead low from the side suit that keeps most outstanding points in
	// play for our side to recover, skipping suits opponents can ruff.
	bySuit := legalPlays.FilterBySuit(nonTrumpSuits(trump)...).SplitBySuit()
	suits := maps.Keys(bySuit)
	slices.Sort(suits)
	bestSuit, bestScore := cards.NoSuit, -1
	for _, suit := range suits {
		if k.OpponentsVoid(suit) {
			continue
		}
		score := len(bySuit[suit])*10 + suitPointsOutstanding(k, suit)
		if score > bestScore {
			bestSuit, bestScore = suit, score
		}
	}
	if bestSuit != cards.NoSuit {
		return bySuit[bestSuit].Cheapest()
	}
	return legalPlays.Cheapest()
}

func nonTrumpSuits(trump cards.Suit) []cards.Suit {
	var suits []cards.Suit
	for _, s := range cards.Suits {
		if s != trump {
			suits = append(suits, s)
		}
	}
	return suits
}

func suitPointsOutstanding(k *sueca.Knowledge, suit cards.Suit) int {
	return k.Unseen().FilterBySuit(suit).Points()
}

func (s basicStrategy) followPartnerWinning(gs sueca.GameState, k *sueca.Knowledge, legalPlays cards.Cards) cards.Card {
	over := overtaking(gs, legalPlays)
	// Take the trick ourselves only with a sure winner when it is worth it.
	if sueca.TrickValue(gs.CurrentTrick) > s.materiality {
		sure := over.Filter(func(c cards.Card) bool { return holds(c, gs, k) })
		if len(sure) > 0 {
			return sure.Cheapest()
		}
	}
	// Stay under the partner with the cheapest card.
	if under := legalPlays.Without(over); len(under) > 0 {
		return under.Cheapest()
	}
	return legalPlays.Cheapest()
}

func followOpponentWinning(gs sueca.GameState, k *sueca.Knowledge, legalPlays cards.Cards) cards.Card {
	over := overtaking(gs, legalPlays)
	if len(over) == 0 {
		return legalPlays.Cheapest()
	}
	if sure := over.Filter(func(c cards.Card) bool { return holds(c, gs, k) }); len(sure) > 0 {
		return sure.Cheapest()
	}
	// Nothing is sure; play the highest card that can still win.
	return over.Highest()
}
