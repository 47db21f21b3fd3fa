package scenario

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Myst4ke/cfra-project/types"
)

// prefPairPattern matches one "(activity, size)" pair of a preference line.
var prefPairPattern = regexp.MustCompile(`\(\s*([^,()]+?)\s*,\s*(\d+)\s*\)`)

// Load reads a scenario file and builds the game it describes.
//
// Files ending in ".yaml" or ".yml" are parsed as YAML, everything else as
// the plain text section format.
//
// Parameters:
//   - path: Scenario file path
//
// Returns:
//   - *types.Game: Validated game model
//   - error: Read error, wrapped ErrInvalidScenario, or game validation error
func Load(path string) (*types.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// section tracks which multi-line block the text parser is inside.
type section int

const (
	sectionNone section = iota
	sectionActivities
	sectionPreferences
)

// Parse builds a game from the plain text scenario format.
//
// The format has four named sections:
//
//	central_player: C
//	leaf_players: L1, L2
//	activities:
//	hiking: 2
//	bus_trip: inf
//	preferences:
//	C: (hiking, 2) > (bus_trip, 1)
//
// The activities section either lists "name: capacity" pairs on following
// lines (capacity a positive integer or the literal "inf"), or declares a
// comma-separated list inline, leaving every activity unbounded. A scenario
// with a preferences section builds a preference-style game; capacities are
// then ignored by the model and only the declared activity order matters.
// Blank lines and lines starting with "#" are skipped.
//
// Parameters:
//   - data: Raw scenario text
//
// Returns:
//   - *types.Game: Validated game model
//   - error: Wrapped ErrInvalidScenario on malformed input, or the game
//     constructor's validation error
func Parse(data []byte) (*types.Game, error) {
	var (
		central    string
		leaves     []string
		activities []string
		caps       = make(map[string]types.Capacity)
		prefs      map[string]types.PreferenceList
		current    = sectionNone
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected \"name: value\", got %q",
				types.ErrInvalidScenario, lineNo, line)
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)

		switch name {
		case "central_player":
			central = value
			current = sectionNone
		case "leaf_players":
			leaves = splitList(value)
			current = sectionNone
		case "activities":
			if value != "" {
				// Inline comma list: every activity unbounded.
				activities = splitList(value)
				current = sectionNone
			} else {
				current = sectionActivities
			}
		case "preferences":
			prefs = make(map[string]types.PreferenceList)
			current = sectionPreferences
		default:
			switch current {
			case sectionActivities:
				cap, err := parseCapacity(value)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: activity %q: %v",
						types.ErrInvalidScenario, lineNo, name, err)
				}
				activities = append(activities, name)
				caps[name] = cap
			case sectionPreferences:
				list, err := parsePreferenceList(value)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: player %q: %v",
						types.ErrInvalidScenario, lineNo, name, err)
				}
				prefs[name] = list
			default:
				return nil, fmt.Errorf("%w: line %d: unknown directive %q",
					types.ErrInvalidScenario, lineNo, name)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidScenario, err)
	}

	if prefs != nil {
		return types.NewPreferenceGame(central, leaves, activities, prefs)
	}

	return types.NewCapacityGame(central, leaves, activities, caps)
}

// splitList splits a comma-separated identifier list, trimming whitespace
// and dropping empty items.
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// parseCapacity parses a capacity value: a positive integer or "inf".
func parseCapacity(value string) (types.Capacity, error) {
	if strings.EqualFold(value, "inf") {
		return types.Unbounded(), nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return types.Capacity{}, fmt.Errorf("capacity must be a positive integer or \"inf\", got %q", value)
	}

	return types.Limit(n), nil
}

// parsePreferenceList parses a "(a, n) > (b, m) > …" preference line.
func parsePreferenceList(value string) (types.PreferenceList, error) {
	if value == "" {
		return types.PreferenceList{}, nil
	}

	matches := prefPairPattern.FindAllStringSubmatch(value, -1)
	if matches == nil {
		return nil, fmt.Errorf("no \"(activity, size)\" pairs in %q", value)
	}

	list := make(types.PreferenceList, 0, len(matches))
	for _, m := range matches {
		size, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("group size in %q: %v", m[0], err)
		}
		list = append(list, types.PreferenceEntry{Activity: strings.TrimSpace(m[1]), GroupSize: size})
	}

	return list, nil
}
