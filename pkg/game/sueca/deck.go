package sueca

import (
	"math/rand"

	"github.com/idsulik/go-collections/v3/queue"
	"github.com/mpsalisbury/sueca/pkg/cards"
)

// Deck deals a shuffled 40 card deck from the top.
type Deck struct {
	q *queue.Queue[cards.Card]
}

func NewDeck(rng *rand.Rand) *Deck {
	deck := cards.MakeDeck()
	deck.Shuffle(rng)
	q := queue.New[cards.Card](len(deck))
	for _, c := range deck {
		q.Enqueue(c)
	}
	return &Deck{q: q}
}

func (d *Deck) Draw() cards.Card {
	c, ok := d.q.Dequeue()
	if !ok {
		panic("deck is empty")
	}
	return c
}
