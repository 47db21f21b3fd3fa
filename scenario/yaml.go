package scenario

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Myst4ke/cfra-project/types"
)

// yamlScenario is the YAML rendering of a scenario file.
//
// Activities are a list, not a map, so the declared order survives
// decoding; hypothesis and subset enumeration depend on it.
type yamlScenario struct {
	CentralPlayer string                          `yaml:"centralPlayer"`
	LeafPlayers   []string                        `yaml:"leafPlayers"`
	Activities    []yamlActivity                  `yaml:"activities"`
	Preferences   map[string]types.PreferenceList `yaml:"preferences"`
}

type yamlActivity struct {
	Name     string   `yaml:"name"`
	Capacity capValue `yaml:"capacity"`
}

// capValue decodes a capacity that is either a positive integer or the
// literal "inf". An absent capacity stays unset and means unbounded.
type capValue struct {
	cap types.Capacity
	set bool
}

func (c *capValue) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil && strings.EqualFold(strings.TrimSpace(s), "inf") {
		c.cap = types.Unbounded()
		c.set = true

		return nil
	}

	var n int
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("capacity must be a positive integer or \"inf\": %w", err)
	}
	c.cap = types.Limit(n)
	c.set = true

	return nil
}

// ParseYAML builds a game from the YAML scenario format.
//
// Example:
//
//	centralPlayer: C
//	leafPlayers: [L1, L2]
//	activities:
//	  - name: hiking
//	    capacity: 2
//	  - name: bus_trip
//	    capacity: inf
//
// A document with a preferences mapping builds a preference-style game:
//
//	preferences:
//	  C:
//	    - activity: hiking
//	      groupSize: 2
//
// Parameters:
//   - data: Raw YAML document
//
// Returns:
//   - *types.Game: Validated game model
//   - error: Wrapped ErrInvalidScenario on malformed YAML, or the game
//     constructor's validation error
func ParseYAML(data []byte) (*types.Game, error) {
	var doc yamlScenario
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidScenario, err)
	}

	activities := make([]string, 0, len(doc.Activities))
	caps := make(map[string]types.Capacity, len(doc.Activities))
	for _, a := range doc.Activities {
		activities = append(activities, a.Name)
		if a.Capacity.set {
			caps[a.Name] = a.Capacity.cap
		}
	}

	if doc.Preferences != nil {
		return types.NewPreferenceGame(doc.CentralPlayer, doc.LeafPlayers, activities, doc.Preferences)
	}

	return types.NewCapacityGame(doc.CentralPlayer, doc.LeafPlayers, activities, caps)
}
