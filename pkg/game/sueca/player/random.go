package player

import (
	"context"
	"math/rand"

	"github.com/mpsalisbury/sueca/pkg/cards"
	"github.com/mpsalisbury/sueca/pkg/game/sueca"
)

// Plays a random (legal) card.

func NewRandomStrategy(seed int64) Strategy {
	return &randomStrategy{rng: rand.New(rand.NewSource(seed))}
}

type randomStrategy struct {
	rng *rand.Rand
}

func (s randomStrategy) ChooseCardToPlay(_ context.Context, _ sueca.GameState, legalPlays cards.Cards) cards.Card {
	return legalPlays[s.rng.Intn(len(legalPlays))]
}
