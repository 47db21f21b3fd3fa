package cfra

import "github.com/Myst4ke/cfra-project/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `cfra`
// package, while still providing a convenient `cfra.Game`, `cfra.Logger`,
// etc. for users.
type (
	Game             = types.Game
	GameStyle        = types.GameStyle
	Capacity         = types.Capacity
	PreferenceEntry  = types.PreferenceEntry
	PreferenceList   = types.PreferenceList
	Colouring        = types.Colouring
	Assignment       = types.Assignment
	CenterHypothesis = types.CenterHypothesis
	State            = types.State
)

// Re-export interfaces from the types subpackage for convenience.
type (
	ColouringSampler = types.ColouringSampler
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export game constructors and capacity helpers.
var (
	NewCapacityGame   = types.NewCapacityGame
	NewPreferenceGame = types.NewPreferenceGame
	Limit             = types.Limit
	Unbounded         = types.Unbounded
)

// VoidActivity is the reserved "opt out" activity.
const VoidActivity = types.VoidActivity

// Re-export GameStyle constants from the types subpackage.
const (
	StyleCapacity   = types.StyleCapacity
	StylePreference = types.StylePreference
)

// Re-export State constants from the types subpackage.
const (
	StateIdle         = types.StateIdle
	StateSelectCenter = types.StateSelectCenter
	StateSelectSubset = types.StateSelectSubset
	StateSample       = types.StateSample
	StateVerify       = types.StateVerify
	StateFound        = types.StateFound
	StateExhausted    = types.StateExhausted
)
