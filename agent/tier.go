package agent

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTier = errors.New("unknown tier")

// Tier is the difficulty an agent plays at.
type Tier string

const (
	Beginner     Tier = "beginner"
	Intermediate Tier = "intermediate"
	Advanced     Tier = "advanced"
)

var Tiers = []Tier{Beginner, Intermediate, Advanced}

func ParseTier(s string) (Tier, error) {
	tier := Tier(strings.ToLower(strings.TrimSpace(s)))
	switch tier {
	case Beginner, Intermediate, Advanced:
		return tier, nil
	}
	return Beginner, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

func (t Tier) Valid() bool {
	return t == Beginner || t == Intermediate || t == Advanced
}
