// Command bot answers one Sueca decision: it reads the game state from
// stdin and writes the card to play to stdout.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mpsalisbury/sueca/pkg/game/sueca"
	"github.com/mpsalisbury/sueca/pkg/game/sueca/player"
	"github.com/mpsalisbury/sueca/pkg/protocol"
)

var (
	verbose     = flag.Bool("verbose", false, "Log the decoded state and decision to stderr")
	freeDiscard = flag.Bool("free_discard", false, "Allow any discard when partner is winning the trick")
	seed        = flag.Int64("seed", 1, "Random seed for the random and search strategies")
	samples     = flag.Int("samples", player.DefaultSamples, "Opponent deals sampled per decision by the search strategy")
	deadline    = flag.Duration("deadline", 0, "Time limit for a decision, 0 for none")
	strategy    = "basic"
)

func init() {
	player.AddStrategyFlag(&strategy, "strategy")
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	err := runBot()
	if err != nil {
		log.Fatal(err)
	}
}

func runBot() error {
	rules := sueca.Rules{FreeDiscardWhenPartnerWinning: *freeDiscard}
	s, err := player.NewStrategyFromFlag(strategy, player.Options{
		Rules:   rules,
		Seed:    *seed,
		Samples: *samples,
	})
	if err != nil {
		return err
	}
	gs, err := protocol.NewReader(bufio.NewReader(os.Stdin)).ReadGameState()
	if err != nil {
		return fmt.Errorf("couldn't read game state: %w", err)
	}
	if *verbose {
		log.Printf("Seat %d holds %s, trump %s (seat %d), trick %s, points %v",
			gs.CurrentPlayer, gs.Hand, gs.TrumpCard, gs.TrumpPlayer, gs.CurrentTrick, gs.Points)
	}

	ctx := context.Background()
	if *deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *deadline)
		defer cancel()
	}
	start := time.Now()
	card, err := player.Decide(ctx, s, rules, gs)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("%s strategy played %s in %v", strategy, card, time.Since(start))
	}
	return protocol.WriteCard(os.Stdout, card)
}
