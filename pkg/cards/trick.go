package cards

import "fmt"

// NumSeats is the number of players around the table.
const NumSeats = 4

// A Trick holds one card slot per seat. Seats play in turn starting
// at StartingPlayer, so filled slots always run contiguously from it.
type Trick struct {
	Cards          [NumSeats]Card
	StartingPlayer int
	// Led suit, NoSuit until the starting player has played.
	Suit Suit
}

func NewTrick(startingPlayer int) Trick {
	return Trick{StartingPlayer: startingPlayer}
}

func (t Trick) String() string {
	return fmt.Sprintf("%d %s", t.StartingPlayer, Cards(t.Cards[:]))
}

// Seat returns the seat that plays the i-th card of the trick.
func (t Trick) Seat(i int) int {
	return (t.StartingPlayer + i) % NumSeats
}

// NumPlayed counts the slots filled in play order, stopping at the first gap.
func (t Trick) NumPlayed() int {
	n := 0
	for n < NumSeats && !t.Cards[t.Seat(n)].IsEmpty() {
		n++
	}
	return n
}

func (t Trick) IsEmpty() bool {
	return t.NumPlayed() == 0
}

func (t Trick) IsComplete() bool {
	return t.NumPlayed() == NumSeats
}

// NextSeat is the seat due to play, or -1 if the trick is complete.
func (t Trick) NextSeat() int {
	n := t.NumPlayed()
	if n == NumSeats {
		return -1
	}
	return t.Seat(n)
}

// Returns false if no card has been led.
func (t Trick) LeadSuit() (Suit, bool) {
	lead := t.Cards[t.StartingPlayer]
	if lead.IsEmpty() {
		return NoSuit, false
	}
	return lead.Suit, true
}

// Played returns the cards in play order.
func (t Trick) Played() Cards {
	n := t.NumPlayed()
	played := make(Cards, 0, n)
	for i := 0; i < n; i++ {
		played = append(played, t.Cards[t.Seat(i)])
	}
	return played
}

// Add places c in seat's slot and records the led suit on the first play.
func (t *Trick) Add(seat int, c Card) {
	if t.IsEmpty() {
		t.Suit = c.Suit
	}
	t.Cards[seat] = c
}
