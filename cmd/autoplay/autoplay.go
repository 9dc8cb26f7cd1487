// Command autoplay pits two strategies against each other over many deals.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mpsalisbury/sueca/internal/appconfig"
	"github.com/mpsalisbury/sueca/pkg/game/sueca/player"
	"github.com/schollz/progressbar/v3"
)

var verbose = flag.Bool("verbose", false, "Print every deal's result")

func main() {
	cfg, err := appconfig.LoadAutoplayConfig()
	if err != nil {
		log.Fatalf("couldn't read environment: %v", err)
	}
	flag.IntVar(&cfg.Deals, "deals", cfg.Deals, "Number of deals to play")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for dealing and strategies")
	flag.BoolVar(&cfg.FreeDiscard, "free_discard", cfg.FreeDiscard, "Allow any discard when partner is winning the trick")
	flag.IntVar(&cfg.Samples, "samples", cfg.Samples, "Samples per decision for the search strategy")
	player.AddStrategyFlag(&cfg.Team0, "team0")
	player.AddStrategyFlag(&cfg.Team1, "team1")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), appconfig.Usage())
	}
	flag.Parse()

	err = runMatch(*cfg)
	if err != nil {
		log.Fatal(err)
	}
}

func runMatch(cfg appconfig.AutoplayConfig) error {
	bar := progressbar.Default(int64(cfg.Deals), "dealing")
	report := func(d DealResult) {
		if *verbose {
			log.Printf("Game %s dealer %d: %d - %d", d.GameId, d.Dealer, d.Points[0], d.Points[1])
		}
		bar.Add(1)
	}
	summary, err := playMatch(cfg, report)
	if err != nil {
		return err
	}
	bar.Finish()
	fmt.Printf("%d deals, %s (seats 0,2) vs %s (seats 1,3)\n", summary.Deals, cfg.Team0, cfg.Team1)
	for team, name := range []string{cfg.Team0, cfg.Team1} {
		fmt.Printf("  team %d %-7s won %3d, mean points %.1f\n", team, name, summary.Wins[team], summary.MeanPoints(team))
	}
	fmt.Printf("  drawn %d\n", summary.Draws)
	return nil
}
