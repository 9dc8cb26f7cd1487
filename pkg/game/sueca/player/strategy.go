package player

import (
	"context"
	"fmt"

	"github.com/mpsalisbury/sueca/pkg/cards"
	"github.com/mpsalisbury/sueca/pkg/game/sueca"
)

// Strategy picks one of legalPlays for the seat described by gs.
// Implementations see only what gs shows; legalPlays is never empty.
type Strategy interface {
	ChooseCardToPlay(ctx context.Context, gs sueca.GameState, legalPlays cards.Cards) cards.Card
}

// SelectCard asks s for a card and checks that the answer is one of legalPlays.
func SelectCard(ctx context.Context, s Strategy, gs sueca.GameState, legalPlays cards.Cards) (cards.Card, error) {
	if len(legalPlays) == 0 {
		return cards.Empty, fmt.Errorf("%w: seat %d holds %s", sueca.ErrNoLegalMoves, gs.CurrentPlayer, gs.Hand)
	}
	if len(legalPlays) == 1 {
		return legalPlays[0], nil
	}
	card := s.ChooseCardToPlay(ctx, gs, legalPlays)
	if card.IsEmpty() || !legalPlays.ContainsCard(card) {
		return cards.Empty, fmt.Errorf("%w: strategy chose %s, legal plays are %s", sueca.ErrInvalidState, card, legalPlays)
	}
	return card, nil
}

// Decide derives the legal plays for gs under rules and selects one with s.
func Decide(ctx context.Context, s Strategy, rules sueca.Rules, gs sueca.GameState) (cards.Card, error) {
	legalPlays, err := gs.LegalPlays(rules)
	if err != nil {
		return cards.Empty, err
	}
	return SelectCard(ctx, s, gs, legalPlays)
}
