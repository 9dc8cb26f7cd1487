package sueca

import "github.com/mpsalisbury/sueca/pkg/cards"

// Knowledge is what the current player can deduce from public play.
// It never looks at another seat's hand.
type Knowledge struct {
	Seat   int
	Trump  cards.Suit
	Hand   cards.Cards
	Played cards.Cards

	unseen      cards.Cards
	trumpCard   cards.Card
	trumpPlayer int
	voids       [cards.NumSeats]map[cards.Suit]bool
	handSizes   [cards.NumSeats]int
}

func NewKnowledge(gs GameState, rules Rules) *Knowledge {
	k := &Knowledge{
		Seat:        gs.CurrentPlayer,
		Trump:       gs.TrumpSuit(),
		Hand:        gs.Hand.Copy(),
		Played:      gs.PlayedCards(),
		trumpCard:   gs.TrumpCard,
		trumpPlayer: gs.TrumpPlayer,
	}
	k.unseen = cards.MakeDeck().Filter(func(c cards.Card) bool {
		return !k.Hand.ContainsCard(c) && !k.Played.ContainsCard(c)
	})
	for seat := range k.voids {
		k.voids[seat] = make(map[cards.Suit]bool)
	}
	for _, t := range gs.PreviousTricks {
		k.observe(t, rules)
	}
	k.observe(gs.CurrentTrick, rules)

	remaining := NumTricks - len(gs.PreviousTricks)
	for seat := range k.handSizes {
		k.handSizes[seat] = remaining
		if !gs.CurrentTrick.Cards[seat].IsEmpty() {
			k.handSizes[seat]--
		}
	}
	k.handSizes[k.Seat] = len(gs.Hand)
	return k
}

// observe replays a trick and marks the suits each follower showed out of.
func (k *Knowledge) observe(t cards.Trick, rules Rules) {
	n := t.NumPlayed()
	if n == 0 {
		return
	}
	led := t.Cards[t.StartingPlayer].Suit
	partial := cards.NewTrick(t.StartingPlayer)
	partial.Add(t.StartingPlayer, t.Cards[t.StartingPlayer])
	for i := 1; i < n; i++ {
		seat := t.Seat(i)
		c := t.Cards[seat]
		if c.Suit != led {
			k.voids[seat][led] = true
			// Discarding instead of trumping shows no trumps, unless the
			// house rule let the player off because the partner was winning.
			if c.Suit != k.Trump && !(rules.FreeDiscardWhenPartnerWinning && partnerWinning(partial, k.Trump)) {
				k.voids[seat][k.Trump] = true
			}
		}
		partial.Add(seat, c)
	}
}

func (k *Knowledge) IsVoid(seat int, suit cards.Suit) bool {
	return k.voids[seat][suit]
}

// HandSize is the number of cards seat still holds.
func (k *Knowledge) HandSize(seat int) int {
	return k.handSizes[seat]
}

// Unseen returns the cards held by the other seats.
func (k *Knowledge) Unseen() cards.Cards {
	return k.unseen.Copy()
}

// TrumpCardHolder returns the seat known to hold the face-up trump card,
// if it is still out and not in our own hand.
func (k *Knowledge) TrumpCardHolder() (int, bool) {
	if k.trumpPlayer == k.Seat || k.Played.ContainsCard(k.trumpCard) {
		return -1, false
	}
	return k.trumpPlayer, true
}

func (k *Knowledge) TrumpCard() cards.Card {
	return k.trumpCard
}

// CanHold reports whether seat may hold c given public information.
func (k *Knowledge) CanHold(seat int, c cards.Card) bool {
	if seat == k.Seat {
		return k.Hand.ContainsCard(c)
	}
	if c == k.trumpCard {
		holder, ok := k.TrumpCardHolder()
		return ok && holder == seat
	}
	return !k.IsVoid(seat, c.Suit)
}

// IsMaster reports whether no unseen card of c's suit outranks c.
func (k *Knowledge) IsMaster(c cards.Card) bool {
	return !k.unseen.Contains(func(o cards.Card) bool {
		return o.Suit == c.Suit && o.Rank > c.Rank
	})
}

// UnseenOfSuit counts the cards of suit still held by the other seats.
func (k *Knowledge) UnseenOfSuit(suit cards.Suit) int {
	return k.unseen.CountSuit(suit)
}

// CanBeat reports whether seat may hold a card of c's suit ranked above c.
func (k *Knowledge) CanBeat(seat int, c cards.Card) bool {
	return k.unseen.Contains(func(o cards.Card) bool {
		return o.Suit == c.Suit && o.Rank > c.Rank && k.CanHold(seat, o)
	})
}

// MayHoldSuit reports whether seat may still hold any card of suit.
func (k *Knowledge) MayHoldSuit(seat int, suit cards.Suit) bool {
	return k.unseen.Contains(func(o cards.Card) bool {
		return o.Suit == suit && k.CanHold(seat, o)
	})
}

// OpponentsVoid reports whether both opponents have shown out of suit.
func (k *Knowledge) OpponentsVoid(suit cards.Suit) bool {
	for _, seat := range k.Opponents() {
		if !k.IsVoid(seat, suit) {
			return false
		}
	}
	return true
}

func (k *Knowledge) Opponents() []int {
	return []int{(k.Seat + 1) % cards.NumSeats, (k.Seat + 3) % cards.NumSeats}
}

// Others lists the other seats in play order after ours.
func (k *Knowledge) Others() []int {
	others := make([]int, 0, cards.NumSeats-1)
	for i := 1; i < cards.NumSeats; i++ {
		others = append(others, (k.Seat+i)%cards.NumSeats)
	}
	return others
}
