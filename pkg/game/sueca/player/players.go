package player

import (
	"fmt"

	"github.com/mpsalisbury/sueca/pkg/cli"
	"github.com/mpsalisbury/sueca/pkg/game/sueca"
)

var StrategyNames = []string{"basic", "random", "search"}

// Creates a flag for specifying the strategy to use.
func AddStrategyFlag(target *string, name string) {
	cli.EnumFlag(target, name, StrategyNames, "Card selection strategy")
}

// Options configure the strategies built by NewStrategyFromFlag.
type Options struct {
	Rules sueca.Rules
	// Seed for the random and search strategies.
	Seed int64
	// Samples per decision for the search strategy; 0 uses DefaultSamples.
	Samples int
}

// Constructs a strategy from a strategy flag value.
func NewStrategyFromFlag(strategyName string, opts Options) (Strategy, error) {
	switch strategyName {
	case "", "basic":
		return NewBasicStrategy(opts.Rules), nil
	case "random":
		return NewRandomStrategy(opts.Seed), nil
	case "search":
		return NewSearchStrategy(opts.Rules, opts.Samples, opts.Seed), nil
	default:
		return nil, fmt.Errorf("invalid strategy %s", strategyName)
	}
}
