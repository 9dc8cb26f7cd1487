package sueca

import (
	"math/rand"
	"testing"

	"github.com/mpsalisbury/sueca/pkg/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trickOf builds a trick from cards listed in play order.
func trickOf(start int, played ...cards.Card) cards.Trick {
	t := cards.NewTrick(start)
	for i, c := range played {
		t.Add(t.Seat(i), c)
	}
	return t
}

func TestLegalMovesScenarios(t *testing.T) {
	tests := []struct {
		name  string
		hand  cards.Cards
		trick cards.Trick
		trump cards.Suit
		want  cards.Cards
	}{
		{
			name:  "Leading plays anything",
			hand:  cards.Cards{cards.Cas, cards.C7h},
			trick: cards.NewTrick(0),
			trump: cards.Diamonds,
			want:  cards.Cards{cards.Cas, cards.C7h},
		},
		{
			name:  "Must follow suit",
			hand:  cards.Cards{cards.Cas, cards.C7h},
			trick: trickOf(3, cards.C2h),
			trump: cards.Diamonds,
			want:  cards.Cards{cards.C7h},
		},
		{
			name:  "May discard with no led suit or trump",
			hand:  cards.Cards{cards.Cas},
			trick: trickOf(3, cards.C2h),
			trump: cards.Diamonds,
			want:  cards.Cards{cards.Cas},
		},
		{
			name:  "Must trump when unable to follow",
			hand:  cards.Cards{cards.Cas, cards.C3d, cards.Ckd},
			trick: trickOf(1, cards.C2h, cards.C5h),
			trump: cards.Diamonds,
			want:  cards.Cards{cards.C3d, cards.Ckd},
		},
		{
			name:  "Following suit beats trumping",
			hand:  cards.Cards{cards.C4h, cards.C3d},
			trick: trickOf(1, cards.C2h),
			trump: cards.Diamonds,
			want:  cards.Cards{cards.C4h},
		},
		{
			name:  "Trump led must be followed with trump",
			hand:  cards.Cards{cards.C4h, cards.C3d},
			trick: trickOf(2, cards.C6d),
			trump: cards.Diamonds,
			want:  cards.Cards{cards.C3d},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LegalMoves(tc.hand, tc.trick, tc.trump)
			require.NoError(t, err)
			assert.True(t, got.Equals(tc.want), "LegalMoves(%s, %s)=%s, want %s", tc.hand, tc.trick, got, tc.want)
		})
	}
}

func TestLegalMovesPartnerWinningHouseRule(t *testing.T) {
	// Seat 0 led hearts and is winning; seat 2 is to play with no hearts.
	trick := trickOf(0, cards.Cah, cards.C2h)
	hand := cards.Cards{cards.C3d, cards.Cks}

	strict, err := DefaultRules.LegalMoves(hand, trick, cards.Diamonds)
	require.NoError(t, err)
	assert.True(t, strict.Equals(cards.Cards{cards.C3d}), "default rules got %s", strict)

	relaxed := Rules{FreeDiscardWhenPartnerWinning: true}
	free, err := relaxed.LegalMoves(hand, trick, cards.Diamonds)
	require.NoError(t, err)
	assert.True(t, free.Equals(hand), "house rule got %s", free)

	// Opponent winning: the house rule still forces the trump.
	losing := trickOf(0, cards.C2h, cards.Cah)
	forced, err := relaxed.LegalMoves(hand, losing, cards.Diamonds)
	require.NoError(t, err)
	assert.True(t, forced.Equals(cards.Cards{cards.C3d}), "house rule with opponent winning got %s", forced)
}

func TestLegalMovesErrors(t *testing.T) {
	_, err := LegalMoves(cards.Cards{}, cards.NewTrick(0), cards.Hearts)
	assert.ErrorIs(t, err, ErrInvalidState)

	full := trickOf(0, cards.C2h, cards.C3h, cards.C4h, cards.C5h)
	_, err = LegalMoves(cards.Cards{cards.Cas}, full, cards.Hearts)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestResolveTrick(t *testing.T) {
	tests := []struct {
		name  string
		trick cards.Trick
		trump cards.Suit
		want  int
	}{
		{
			name:  "Trump beats higher led cards",
			trick: trickOf(0, cards.C7h, cards.Cqh, cards.C2d, cards.Ckh),
			trump: cards.Diamonds,
			want:  2,
		},
		{
			name:  "Highest of led suit wins",
			trick: trickOf(1, cards.Cjc, cards.Ckc, cards.C7c, cards.Cac),
			trump: cards.Hearts,
			want:  0,
		},
		{
			name:  "Off-suit ace cannot win",
			trick: trickOf(3, cards.C2s, cards.Cah, cards.C3s, cards.Cac),
			trump: cards.Diamonds,
			want:  1,
		},
		{
			name:  "Higher trump overtrumps",
			trick: trickOf(2, cards.C5c, cards.C2h, cards.Cqh, cards.Cac),
			trump: cards.Hearts,
			want:  0,
		},
		{
			name:  "Queen is below jack",
			trick: trickOf(0, cards.Cqs, cards.Cjs, cards.C2s, cards.C3s),
			trump: cards.Clubs,
			want:  1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveTrick(tc.trick, tc.trump)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveIncompleteTrick(t *testing.T) {
	_, err := ResolveTrick(trickOf(0, cards.C7h, cards.Cqh), cards.Spades)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestTrickValueIgnoresSeats(t *testing.T) {
	played := cards.Cards{cards.Cas, cards.C7s, cards.Cks, cards.C2s}
	rng := rand.New(rand.NewSource(3))
	for start := 0; start < cards.NumSeats; start++ {
		for i := 0; i < 5; i++ {
			perm := played.Copy()
			perm.Shuffle(rng)
			assert.Equal(t, 25, TrickValue(trickOf(start, perm...)), "trick %s", perm)
		}
	}
	assert.Equal(t, 0, TrickValue(cards.NewTrick(0)))
	assert.Equal(t, 5, TrickValue(trickOf(0, cards.Cqh, cards.Cjd)))
}

func TestTeams(t *testing.T) {
	assert.Equal(t, 0, Team(0))
	assert.Equal(t, 1, Team(1))
	assert.Equal(t, 0, Team(2))
	assert.Equal(t, 1, Team(3))
	assert.Equal(t, 2, Partner(0))
	assert.Equal(t, 1, Partner(3))
}

// Plays many random deals and checks the legality laws at every turn.
func TestLegalMovesLawsOverRandomDeals(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, rules := range []Rules{DefaultRules, {FreeDiscardWhenPartnerWinning: true}} {
		for deal := 0; deal < 50; deal++ {
			g := Deal("law-test", rng, rules, deal%cards.NumSeats)
			for !g.Done() {
				seat := g.NextPlayer()
				gs := g.StateFor(seat)
				require.NoError(t, gs.Validate())
				legal, err := gs.LegalPlays(rules)
				require.NoError(t, err)
				require.NotEmpty(t, legal)
				for _, c := range legal {
					require.True(t, gs.Hand.ContainsCard(c), "legal card %s not in hand %s", c, gs.Hand)
				}
				if led, ok := gs.CurrentTrick.LeadSuit(); ok {
					if gs.Hand.ContainsSuit(led) {
						assert.Equal(t, len(legal), legal.CountSuit(led), "must follow %s with %s", led, gs.Hand)
					} else if gs.Hand.ContainsSuit(gs.TrumpSuit()) && !rules.FreeDiscardWhenPartnerWinning {
						assert.Equal(t, len(legal), legal.CountSuit(gs.TrumpSuit()), "must trump with %s", gs.Hand)
					}
				}
				require.NoError(t, g.PlayCard(seat, legal[rng.Intn(len(legal))]))
			}
			for _, tr := range g.Tricks() {
				winner, err := ResolveTrick(tr, g.TrumpSuit())
				require.NoError(t, err)
				w := tr.Cards[winner]
				if w.Suit != g.TrumpSuit() {
					led, _ := tr.LeadSuit()
					assert.Equal(t, led, w.Suit)
					assert.Equal(t, w, tr.Played().FilterBySuit(led).Highest())
					assert.Zero(t, tr.Played().CountSuit(g.TrumpSuit()))
				}
			}
			assert.Equal(t, TotalPoints, g.Points()[0]+g.Points()[1])
		}
	}
}
