package protocol

import (
	"fmt"
	"io"
	"strings"

	"github.com/mpsalisbury/sueca/pkg/cards"
	"github.com/mpsalisbury/sueca/pkg/game/sueca"
)

// WriteCard writes the two character token for c followed by a newline.
func WriteCard(w io.Writer, c cards.Card) error {
	if c.IsEmpty() {
		return fmt.Errorf("%w: refusing to write an empty card", sueca.ErrInvalidState)
	}
	_, err := fmt.Fprintln(w, c)
	return err
}

// WriteGameState encodes gs in the layout ReadGameState reads, one field
// group per line.
func WriteGameState(w io.Writer, gs sueca.GameState) error {
	var b strings.Builder
	fmt.Fprintln(&b, gs.CurrentPlayer)
	fmt.Fprintln(&b, strings.Join(append([]string{fmt.Sprint(len(gs.Hand))}, gs.Hand.Strings()...), " "))
	fmt.Fprintln(&b, gs.TrumpPlayer)
	fmt.Fprintln(&b, gs.TrumpCard)
	fmt.Fprintln(&b, gs.CurrentTrick)
	fmt.Fprintln(&b, gs.CurrentTrick.Suit)
	prev := []string{fmt.Sprint(len(gs.PreviousTricks))}
	for _, t := range gs.PreviousTricks {
		prev = append(prev, t.String())
	}
	fmt.Fprintln(&b, strings.Join(prev, " "))
	fmt.Fprintln(&b, gs.Points[0], gs.Points[1])
	_, err := io.WriteString(w, b.String())
	return err
}
