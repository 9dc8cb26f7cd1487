package cli

import (
	"flag"
	"fmt"

	"golang.org/x/exp/slices"
)

// EnumFlag registers a string flag on the command line that only accepts
// one of safelist. target keeps its current value as the default.
func EnumFlag(target *string, name string, safelist []string, usage string) {
	EnumVar(flag.CommandLine, target, name, safelist, usage)
}

// EnumVar is EnumFlag for an explicit flag set.
func EnumVar(fs *flag.FlagSet, target *string, name string, safelist []string, usage string) {
	usageWithValues := fmt.Sprintf("%s, must be one of %v (default %q)", usage, safelist, *target)
	fs.Func(name, usageWithValues, func(flagValue string) error {
		if !slices.Contains(safelist, flagValue) {
			return fmt.Errorf("must be one of %v", safelist)
		}
		*target = flagValue
		return nil
	})
}
