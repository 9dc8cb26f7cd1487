package cards

import (
	"log"
	"math/rand"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

type Cards []Card

// MakeDeck returns the 40 card deck in suit, rank order.
func MakeDeck() Cards {
	d := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			d = append(d, Card{r, s})
		}
	}
	return d
}

func (cs Cards) Copy() Cards {
	cardsCopy := make([]Card, len(cs))
	copy(cardsCopy, cs)
	return cardsCopy
}

func (cs Cards) Equals(other Cards) bool {
	sorted := cs.Copy()
	sorted.Sort()
	otherSorted := other.Copy()
	otherSorted.Sort()
	return slices.Equal(sorted, otherSorted)
}

func (cs Cards) Contains(match func(Card) bool) bool {
	return slices.IndexFunc(cs, match) >= 0
}

func (cs Cards) ContainsCard(c Card) bool {
	return slices.Contains(cs, c)
}

func (cs Cards) ContainsSuit(s Suit) bool {
	return cs.Contains(func(c Card) bool { return c.Suit == s })
}

func (cs Cards) Count(match func(Card) bool) int {
	count := 0
	for _, c := range cs {
		if match(c) {
			count++
		}
	}
	return count
}
func (cs Cards) CountSuit(s Suit) int {
	return cs.Count(func(c Card) bool { return c.Suit == s })
}

// Points sums the trick value of every card.
func (cs Cards) Points() int {
	total := 0
	for _, c := range cs {
		total += c.Rank.Points()
	}
	return total
}

// Remove returns a copy of cs without c. The receiver is left untouched.
func (cs Cards) Remove(c Card) Cards {
	i := slices.Index(cs, c)
	if i < 0 {
		return cs
	}
	out := make(Cards, 0, len(cs)-1)
	out = append(out, cs[:i]...)
	return append(out, cs[i+1:]...)
}

// Without returns the cards of cs that are not in other.
func (cs Cards) Without(other Cards) Cards {
	return cs.Filter(func(c Card) bool { return !other.ContainsCard(c) })
}

func (cs Cards) Sort() {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].LessThan(cs[j])
	})
}

func (cs Cards) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(cs), func(i, j int) { cs[i], cs[j] = cs[j], cs[i] })
}

// Returns a card that is better than all other cards according to the better func (is c1 better than c2).
// If no cards are present, fatal error.
func (cs Cards) GetExtreme(better func(c1, c2 Card) bool) Card {
	if len(cs) == 0 {
		log.Fatal("Can't get extreme for empty list of cards")
	}
	best := cs[0]
	for _, c := range cs {
		if better(c, best) {
			best = c
		}
	}
	return best
}
func (cs Cards) Highest() Card {
	return cs.GetExtreme(func(c1, c2 Card) bool {
		return c1.Rank > c2.Rank
	})
}

// Cheapest is the card giving away the fewest points, lowest rank on ties.
func (cs Cards) Cheapest() Card {
	return cs.GetExtreme(func(c1, c2 Card) bool {
		if c1.Points() != c2.Points() {
			return c1.Points() < c2.Points()
		}
		return c1.Rank < c2.Rank
	})
}

// Richest is the card carrying the most points, highest rank on ties.
func (cs Cards) Richest() Card {
	return cs.GetExtreme(func(c1, c2 Card) bool {
		if c1.Points() != c2.Points() {
			return c1.Points() > c2.Points()
		}
		return c1.Rank > c2.Rank
	})
}

func (cs Cards) Filter(match func(c Card) bool) Cards {
	var filtered Cards
	for _, c := range cs {
		if match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (cs Cards) FilterBySuit(suits ...Suit) Cards {
	return cs.Filter(func(c Card) bool {
		return slices.Contains(suits, c.Suit)
	})
}

func (cs Cards) SplitBySuit() map[Suit]Cards {
	cbs := make(map[Suit]Cards)
	for _, c := range cs {
		cbs[c.Suit] = append(cbs[c.Suit], c)
	}
	return cbs
}

func (cs Cards) Strings() []string {
	cardStrings := []string{}
	for _, c := range cs {
		cardStrings = append(cardStrings, c.String())
	}
	return cardStrings
}

func (cs Cards) String() string {
	cardStrings := cs.Strings()
	return strings.Join(cardStrings, " ")
}

func (cs Cards) HandString() string {
	cbs := cs.SplitBySuit()
	suitStrings := []string{}
	for _, s := range Suits {
		scs := cbs[s]
		if len(scs) > 0 {
			scs.Sort()
			suitStrings = append(suitStrings, scs.String())
		}
	}
	return strings.Join(suitStrings, "   ")
}
