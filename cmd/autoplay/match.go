package main

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/mpsalisbury/sueca/internal/appconfig"
	"github.com/mpsalisbury/sueca/pkg/cards"
	"github.com/mpsalisbury/sueca/pkg/game/sueca"
	"github.com/mpsalisbury/sueca/pkg/game/sueca/player"
	"golang.org/x/sync/errgroup"
)

type DealResult struct {
	GameId string
	Dealer int
	Points [2]int
}

type Summary struct {
	Deals  int
	Wins   [2]int
	Draws  int
	Points [2]int
}

func (s Summary) MeanPoints(team int) float64 {
	if s.Deals == 0 {
		return 0
	}
	return float64(s.Points[team]) / float64(s.Deals)
}

func (s *Summary) add(d DealResult) {
	s.Deals++
	s.Points[0] += d.Points[0]
	s.Points[1] += d.Points[1]
	switch {
	case d.Points[0] > d.Points[1]:
		s.Wins[0]++
	case d.Points[1] > d.Points[0]:
		s.Wins[1]++
	default:
		s.Draws++
	}
}

// playMatch plays cfg.Deals deals in parallel. Deal i is seeded from
// cfg.Seed and i alone, so the summary does not depend on scheduling.
func playMatch(cfg appconfig.AutoplayConfig, onDeal func(DealResult)) (Summary, error) {
	rules := sueca.Rules{FreeDiscardWhenPartnerWinning: cfg.FreeDiscard}
	results := make([]DealResult, cfg.Deals)
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < cfg.Deals; i++ {
		i := i
		g.Go(func() error {
			d, err := playDeal(cfg, rules, i)
			if err != nil {
				return err
			}
			results[i] = d
			mu.Lock()
			defer mu.Unlock()
			if onDeal != nil {
				onDeal(d)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	var summary Summary
	for _, d := range results {
		summary.add(d)
	}
	return summary, nil
}

func playDeal(cfg appconfig.AutoplayConfig, rules sueca.Rules, i int) (DealResult, error) {
	seed := cfg.Seed + int64(i)
	var strategies [cards.NumSeats]player.Strategy
	for seat := range strategies {
		name := cfg.Team0
		if sueca.Team(seat) == 1 {
			name = cfg.Team1
		}
		s, err := player.NewStrategyFromFlag(name, player.Options{
			Rules:   rules,
			Seed:    seed*cards.NumSeats + int64(seat),
			Samples: cfg.Samples,
		})
		if err != nil {
			return DealResult{}, err
		}
		strategies[seat] = s
	}

	dealer := i % cards.NumSeats
	g := sueca.Deal(uuid.NewString(), rand.New(rand.NewSource(seed)), rules, dealer)
	ctx := context.Background()
	for !g.Done() {
		seat := g.NextPlayer()
		card, err := player.Decide(ctx, strategies[seat], rules, g.StateFor(seat))
		if err != nil {
			return DealResult{}, fmt.Errorf("game %s seat %d: %w", g.Id(), seat, err)
		}
		if err := g.PlayCard(seat, card); err != nil {
			return DealResult{}, fmt.Errorf("game %s: %w", g.Id(), err)
		}
	}
	return DealResult{GameId: g.Id(), Dealer: dealer, Points: g.Points()}, nil
}
