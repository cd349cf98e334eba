// Package strategy holds the heuristic decision makers that turn a game
// snapshot into a movement decision. Strategies are registered in an
// explicit compile-time registry so the set of personalities is statically
// known and an unknown name fails before any episode runs.
package strategy

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/snakeduel/engine/rules"
)

// ErrUnknownStrategy is returned by Build for names not in the registry.
var ErrUnknownStrategy = errors.New("strategy: unknown strategy name")

// Strategy maps a game snapshot and an agent id to a movement decision.
// Implementations are pure with respect to the snapshot; the only state
// they touch is their own movement history and PRNG.
type Strategy interface {
	NextMove(state rules.GameState, snakeID int) rules.Direction
}

// Factory builds a strategy drawing any randomness from the given source,
// so a fixed (seed, strategy-pair) reproduces an identical trajectory.
type Factory func(rng *rand.Rand) Strategy

// Registry names, one per archetype.
const (
	NameDirect      = "direct"
	NameBalanced    = "balanced"
	NameAdaptive    = "adaptive"
	NameInterceptor = "interceptor"
	NameNoisy       = "noisy"
)

var registry = map[string]Factory{
	NameDirect:      func(rng *rand.Rand) Strategy { return newDirect(rng) },
	NameBalanced:    func(rng *rand.Rand) Strategy { return newBalanced(rng) },
	NameAdaptive:    func(rng *rand.Rand) Strategy { return newAdaptive(rng) },
	NameInterceptor: func(rng *rand.Rand) Strategy { return newInterceptor(rng) },
	NameNoisy:       func(rng *rand.Rand) Strategy { return newNoisy(rng) },
}

// Build constructs a fresh strategy instance by registry name. The
// instance owns its movement history, so callers must build one per agent
// per episode.
func Build(name string, rng *rand.Rand) (Strategy, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownStrategy, name)
	}
	return factory(rng), nil
}

// Known reports whether name is in the registry.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names lists all registered strategies in a stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
