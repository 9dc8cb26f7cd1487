// Command deal deals a seeded Sueca game, plays it forward with a strategy
// and prints the next seat's view in the bot's input format.
//
//	deal -seed 7 -plays 13 | bot -strategy search
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/mpsalisbury/sueca/pkg/cards"
	"github.com/mpsalisbury/sueca/pkg/game/sueca"
	"github.com/mpsalisbury/sueca/pkg/game/sueca/player"
	"github.com/mpsalisbury/sueca/pkg/protocol"
)

var (
	seed        = flag.Int64("seed", 1, "Seed for the shuffle")
	dealer      = flag.Int("dealer", 0, "Dealing seat")
	plays       = flag.Int("plays", 0, "Cards to play before printing the state")
	freeDiscard = flag.Bool("free_discard", false, "Allow any discard when partner is winning the trick")
	verbose     = flag.Bool("verbose", false, "Print every hand and play to stderr")
	human       = flag.Int("human", -1, "Seat whose cards are entered at the terminal, -1 for none")
	strategy    = "basic"
)

func init() {
	player.AddStrategyFlag(&strategy, "strategy")
}

func main() {
	flag.Parse()
	err := runDeal()
	if err != nil {
		log.Fatal(err)
	}
}

func runDeal() error {
	if *dealer < 0 || *dealer >= cards.NumSeats {
		return fmt.Errorf("dealer must be a seat in [0, %d)", cards.NumSeats)
	}
	if *plays < 0 || *plays >= sueca.NumTricks*cards.NumSeats {
		return fmt.Errorf("plays must be in [0, %d)", sueca.NumTricks*cards.NumSeats)
	}
	rules := sueca.Rules{FreeDiscardWhenPartnerWinning: *freeDiscard}
	s, err := player.NewStrategyFromFlag(strategy, player.Options{Rules: rules, Seed: *seed})
	if err != nil {
		return err
	}
	var person player.Strategy
	if *human >= 0 {
		person = player.NewTerminalStrategy(rules, os.Stdin, os.Stderr)
	}
	g := sueca.Deal(uuid.NewString(), rand.New(rand.NewSource(*seed)), rules, *dealer)
	if *verbose {
		log.Printf("Game %s, trump %s turned by seat %d", g.Id(), g.TrumpCard(), g.TrumpPlayer())
		for seat := 0; seat < cards.NumSeats; seat++ {
			log.Printf("%d: %s", seat, g.Hand(seat).HandString())
		}
	}
	ctx := context.Background()
	for i := 0; i < *plays; i++ {
		seat := g.NextPlayer()
		chooser := s
		if seat == *human {
			chooser = person
		}
		card, err := player.Decide(ctx, chooser, rules, g.StateFor(seat))
		if err != nil {
			return err
		}
		if err := g.PlayCard(seat, card); err != nil {
			return err
		}
		if *verbose {
			log.Printf("%d plays %s", seat, card)
		}
	}
	return protocol.WriteGameState(os.Stdout, g.StateFor(g.NextPlayer()))
}
