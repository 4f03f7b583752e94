package physics

import (
	"fmt"
	"strings"
)

// Strategy selects the particle-particle detection algorithm for a step.
type Strategy uint8

const (
	// AllPairs tests every unordered pair.
	AllPairs Strategy = iota
	// SweepAndPrune sorts by left bound and skips pairs separated on x.
	SweepAndPrune
)

func (s Strategy) String() string {
	switch s {
	case AllPairs:
		return "all-pairs"
	case SweepAndPrune:
		return "sweep-and-prune"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// Strategies lists every known strategy.
func Strategies() []Strategy { return []Strategy{AllPairs, SweepAndPrune} }

// ParseStrategy maps a name to a Strategy. Matching ignores case.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "all-pairs", "allpairs", "pairwise":
		return AllPairs, nil
	case "sweep-and-prune", "sweepandprune", "sap":
		return SweepAndPrune, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
