package player

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/mpsalisbury/sueca/pkg/cards"
	"github.com/mpsalisbury/sueca/pkg/game/sueca"
)

// DefaultSamples is how many opponent deals the search strategy imagines per decision.
const DefaultSamples = 24

// SearchStrategy samples opponent hands consistent with what has been seen,
// plays each candidate card out to the end of the deal with the basic
// strategy at every seat, and keeps the card with the best mean margin.

func NewSearchStrategy(rules sueca.Rules, samples int, seed int64) Strategy {
	if samples <= 0 {
		samples = DefaultSamples
	}
	return &searchStrategy{
		rules:   rules,
		samples: samples,
		seed:    seed,
		rollout: NewBasicStrategy(rules),
	}
}

type searchStrategy struct {
	rules   sueca.Rules
	samples int
	seed    int64
	rollout Strategy
}

func (s searchStrategy) ChooseCardToPlay(ctx context.Context, gs sueca.GameState, legalPlays cards.Cards) cards.Card {
	if len(legalPlays) == 1 {
		return legalPlays[0]
	}
	// Seeding per decision keeps every answer reproducible from its input.
	rng := rand.New(rand.NewSource(s.seed))
	k := sueca.NewKnowledge(gs, s.rules)
	margins := make([]int, len(legalPlays))
	runs := 0
	for i := 0; i < s.samples && ctx.Err() == nil; i++ {
		hands, ok := SampleHands(rng, k)
		if !ok {
			continue
		}
		world := sueca.Resume(fmt.Sprintf("sample-%d", i), s.rules, gs, hands)
		// A sample counts only once every candidate has been played out.
		sample := make([]int, len(legalPlays))
		scored := true
		for ci, c := range legalPlays {
			margin, err := s.playOut(ctx, world.Clone(), gs.CurrentPlayer, c)
			if err != nil {
				scored = false
				break
			}
			sample[ci] = margin
		}
		if !scored {
			continue
		}
		for ci := range margins {
			margins[ci] += sample[ci]
		}
		runs++
	}
	if runs == 0 {
		return s.rollout.ChooseCardToPlay(ctx, gs, legalPlays)
	}
	best := 0
	for ci := range legalPlays {
		if margins[ci] > margins[best] {
			best = ci
		}
	}
	return legalPlays[best]
}

// playOut plays card for seat and finishes the deal, returning seat's team
// points minus the other team's. It gives up as soon as ctx is done.
func (s searchStrategy) playOut(ctx context.Context, g *sueca.Game, seat int, card cards.Card) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := g.PlayCard(seat, card); err != nil {
		return 0, err
	}
	for !g.Done() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		next := g.NextPlayer()
		legal, err := g.LegalPlays()
		if err != nil {
			return 0, err
		}
		c := s.rollout.ChooseCardToPlay(ctx, g.StateFor(next), legal)
		if err := g.PlayCard(next, c); err != nil {
			return 0, err
		}
	}
	pts := g.Points()
	team := sueca.Team(seat)
	return pts[team] - pts[1-team], nil
}

const maxSampleAttempts = 20

// SampleHands deals the unseen cards to the other seats at random, respecting
// their hand sizes, known voids and the face-up trump card's holder. The
// current seat's own entry is left empty. If the void constraints cannot be
// met after a few attempts they are dropped, keeping only hand sizes.
func SampleHands(rng *rand.Rand, k *sueca.Knowledge) ([cards.NumSeats]cards.Cards, bool) {
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		if hands, ok := sampleHands(rng, k, true); ok {
			return hands, true
		}
	}
	return sampleHands(rng, k, false)
}

func sampleHands(rng *rand.Rand, k *sueca.Knowledge, strict bool) ([cards.NumSeats]cards.Cards, bool) {
	var hands [cards.NumSeats]cards.Cards
	var need [cards.NumSeats]int
	total := 0
	for _, seat := range k.Others() {
		need[seat] = k.HandSize(seat)
		total += need[seat]
	}
	unseen := k.Unseen()
	if total != len(unseen) {
		return hands, false
	}
	unseen.Shuffle(rng)

	candidates := func(c cards.Card) []int {
		var seats []int
		for _, seat := range k.Others() {
			if need[seat] > 0 && (!strict || k.CanHold(seat, c)) {
				seats = append(seats, seat)
			}
		}
		return seats
	}
	// Most constrained cards first.
	sort.SliceStable(unseen, func(i, j int) bool {
		return len(candidates(unseen[i])) < len(candidates(unseen[j]))
	})
	if holder, ok := k.TrumpCardHolder(); ok {
		if need[holder] == 0 {
			return hands, false
		}
		hands[holder] = append(hands[holder], k.TrumpCard())
		need[holder]--
		unseen = unseen.Remove(k.TrumpCard())
	}
	for _, c := range unseen {
		seats := candidates(c)
		if len(seats) == 0 {
			return hands, false
		}
		// Weight by open slots so short hands fill at their fair rate.
		open := 0
		for _, seat := range seats {
			open += need[seat]
		}
		pick := rng.Intn(open)
		for _, seat := range seats {
			if pick < need[seat] {
				hands[seat] = append(hands[seat], c)
				need[seat]--
				break
			}
			pick -= need[seat]
		}
	}
	return hands, true
}
