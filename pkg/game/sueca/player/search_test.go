package player

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/mpsalisbury/sueca/pkg/cards"
	"github.com/mpsalisbury/sueca/pkg/game/sueca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// midDealState plays tricks of a seeded deal with the basic strategy and
// returns the state seen by the next seat to play.
func midDealState(t *testing.T, seed int64, plays int) sueca.GameState {
	t.Helper()
	rules := sueca.DefaultRules
	g := sueca.Deal("mid", rand.New(rand.NewSource(seed)), rules, 0)
	basic := NewBasicStrategy(rules)
	for i := 0; i < plays; i++ {
		seat := g.NextPlayer()
		card, err := Decide(context.Background(), basic, rules, g.StateFor(seat))
		require.NoError(t, err)
		require.NoError(t, g.PlayCard(seat, card))
	}
	gs := g.StateFor(g.NextPlayer())
	require.NoError(t, gs.Validate())
	return gs
}

func TestSearchStrategyIsDeterministic(t *testing.T) {
	rules := sueca.DefaultRules
	for _, plays := range []int{0, 6, 17, 30} {
		gs := midDealState(t, 5, plays)
		first, err := Decide(context.Background(), NewSearchStrategy(rules, 6, 99), rules, gs)
		require.NoError(t, err)
		s := NewSearchStrategy(rules, 6, 99)
		for i := 0; i < 2; i++ {
			again, err := Decide(context.Background(), s, rules, gs)
			require.NoError(t, err)
			assert.Equal(t, first, again, "after %d plays", plays)
		}
	}
}

func TestSearchStrategyHonorsCancelledContext(t *testing.T) {
	rules := sueca.DefaultRules
	gs := midDealState(t, 8, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Decide(ctx, NewSearchStrategy(rules, 1000, 1), rules, gs)
	require.NoError(t, err)
	want, err := Decide(ctx, NewBasicStrategy(rules), rules, gs)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// expiringContext reports itself done after limit calls to Err.
type expiringContext struct {
	context.Context
	checks, limit int
}

func (c *expiringContext) Err() error {
	c.checks++
	if c.checks > c.limit {
		return context.DeadlineExceeded
	}
	return nil
}

func TestSearchStrategyStopsMidSample(t *testing.T) {
	rules := sueca.DefaultRules
	gs := midDealState(t, 8, 4)
	legal, err := gs.LegalPlays(rules)
	require.NoError(t, err)
	require.Greater(t, len(legal), 1)

	ctx := &expiringContext{Context: context.Background(), limit: 3}
	got, err := Decide(ctx, NewSearchStrategy(rules, 1000, 1), rules, gs)
	require.NoError(t, err)
	// No sample finished, so the basic strategy answers.
	want, err := Decide(context.Background(), NewBasicStrategy(rules), rules, gs)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.LessOrEqual(t, ctx.checks, 6)
}

func TestSearchStrategyStopsAtDeadline(t *testing.T) {
	rules := sueca.DefaultRules
	gs := midDealState(t, 9, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	got, err := Decide(ctx, NewSearchStrategy(rules, 1_000_000, 1), rules, gs)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	legal, err := gs.LegalPlays(rules)
	require.NoError(t, err)
	assert.True(t, legal.ContainsCard(got))
}

func TestSampleHandsRespectsKnowledge(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for _, plays := range []int{0, 3, 9, 14, 22, 35} {
		gs := midDealState(t, int64(plays), plays)
		k := sueca.NewKnowledge(gs, sueca.DefaultRules)
		for i := 0; i < 10; i++ {
			hands, ok := SampleHands(rng, k)
			require.True(t, ok, "after %d plays", plays)
			assert.Empty(t, hands[gs.CurrentPlayer])

			var dealt cards.Cards
			for _, seat := range k.Others() {
				require.Len(t, hands[seat], k.HandSize(seat), "seat %d after %d plays", seat, plays)
				for _, c := range hands[seat] {
					assert.True(t, k.CanHold(seat, c), "seat %d given %s after %d plays", seat, c, plays)
				}
				dealt = append(dealt, hands[seat]...)
			}
			assert.True(t, dealt.Equals(k.Unseen()), "dealt %s, unseen %s", dealt, k.Unseen())
			if holder, ok := k.TrumpCardHolder(); ok && holder != gs.CurrentPlayer {
				assert.True(t, hands[holder].ContainsCard(k.TrumpCard()))
			}
		}
	}
}
