package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mpsalisbury/sueca/pkg/cards"
	"github.com/mpsalisbury/sueca/pkg/game/sueca"
)

// TerminalStrategy has a person enter plays, suggesting the basic
// strategy's card as the default.

func NewTerminalStrategy(rules sueca.Rules, in io.Reader, out io.Writer) Strategy {
	return &terminalStrategy{
		in:          bufio.NewScanner(in),
		out:         out,
		recommender: NewBasicStrategy(rules),
	}
}

type terminalStrategy struct {
	in          *bufio.Scanner
	out         io.Writer
	recommender Strategy
}

func (s terminalStrategy) ChooseCardToPlay(ctx context.Context, gs sueca.GameState, legalPlays cards.Cards) cards.Card {
	recommended := s.recommender.ChooseCardToPlay(ctx, gs, legalPlays)
	fmt.Fprintln(s.out, showGame(gs))
	for {
		fmt.Fprintf(s.out, "Enter card to play [%s]: ", recommended)
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return recommended
		}
		entry := strings.TrimSpace(s.in.Text())
		if entry == "" {
			return recommended
		}
		card, err := cards.ParseCard(entry)
		if err != nil || card.IsEmpty() {
			fmt.Fprintf(s.out, "Invalid card %s, try again\n", entry)
			continue
		}
		if !legalPlays.ContainsCard(card) {
			fmt.Fprintf(s.out, "Can't play card %s, legal plays are %s\n", card, legalPlays)
			continue
		}
		return card
	}
}

func showGame(gs sueca.GameState) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Points: %d - %d\n", gs.Points[0], gs.Points[1]))
	sb.WriteString(fmt.Sprintf("Trump: %s (seat %d)\n", gs.TrumpCard, gs.TrumpPlayer))
	sb.WriteString(fmt.Sprintf("Your hand (seat %d): %s\n", gs.CurrentPlayer, gs.Hand.HandString()))
	sb.WriteString(fmt.Sprintf("Trick so far: %s", gs.CurrentTrick.Played()))
	return sb.String()
}
