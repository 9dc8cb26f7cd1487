package cards

import "testing"

func TestParseValidCard(t *testing.T) {
	tests := []struct {
		c    string
		want Card
	}{
		{"2C", Card{Two, Clubs}},
		{"3C", Card{Three, Clubs}},
		{"4C", Card{Four, Clubs}},
		{"5C", Card{Five, Clubs}},
		{"6C", Card{Six, Clubs}},
		{"7C", Card{Seven, Clubs}},
		{"QC", Card{Queen, Clubs}},
		{"JC", Card{Jack, Clubs}},
		{"KC", Card{King, Clubs}},
		{"AC", Card{Ace, Clubs}},
		{"7s", Card{Seven, Spades}},
		{"jH", Card{Jack, Hearts}},
		{"ad", Card{Ace, Diamonds}},
		{"X", Empty},
		{"x", Empty},
	}
	for _, tc := range tests {
		got, err := ParseCard(tc.c)
		if err != nil {
			t.Errorf("ParseCard(%s)=error(%s), want %s", tc.c, err, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCard(%s)=%s, want %s", tc.c, got, tc.want)
		}
	}
}

func TestParseInvalidCard(t *testing.T) {
	// Eights, nines and tens are not part of the deck.
	tests := []string{"8C", "9H", "TS", "XC", "7X", "2CC", "22C", "", "5", "AZ"}
	for _, tc := range tests {
		got, err := ParseCard(tc)
		if err == nil {
			t.Errorf("ParseCard(%s)=%s, want err", tc, got)
		}
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	deck := MakeDeck()
	if len(deck) != 40 {
		t.Fatalf("MakeDeck()=%d cards, want 40", len(deck))
	}
	for _, c := range deck {
		s := c.String()
		if len(s) != 2 {
			t.Errorf("%v.String()=%q, want 2 characters", c, s)
		}
		got, err := ParseCard(s)
		if err != nil || got != c {
			t.Errorf("ParseCard(%s)=%s,%v, want %s", s, got, err, c)
		}
	}
	if Empty.String() != EmptyToken {
		t.Errorf("Empty.String()=%q, want %q", Empty.String(), EmptyToken)
	}
}

func TestRankOrder(t *testing.T) {
	for i := 1; i < len(Ranks); i++ {
		if Ranks[i-1] >= Ranks[i] {
			t.Errorf("rank %s should be below %s", Ranks[i-1], Ranks[i])
		}
	}
	if !(Queen < Jack && Jack < King && Seven < Queen) {
		t.Errorf("expected 7 < Q < J < K")
	}
}

func TestRankPoints(t *testing.T) {
	tests := []struct {
		r    Rank
		want int
	}{
		{Ace, 11},
		{Seven, 10},
		{King, 4},
		{Jack, 3},
		{Queen, 2},
		{Six, 0},
		{Two, 0},
		{NoRank, 0},
	}
	for _, tc := range tests {
		if got := tc.r.Points(); got != tc.want {
			t.Errorf("%s.Points()=%d, want %d", tc.r, got, tc.want)
		}
	}
	if got := MakeDeck().Points(); got != 120 {
		t.Errorf("deck points=%d, want 120", got)
	}
}
