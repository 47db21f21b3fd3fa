// Package scenario loads game descriptions from scenario files.
//
// Two formats are supported:
//
//   - The plain text format with named sections (central_player,
//     leaf_players, activities, preferences), parsed by Parse
//   - A YAML rendering of the same model, parsed by ParseYAML
//
// Load dispatches on the file extension (".yaml"/".yml" versus anything
// else) and returns a validated types.Game ready for the search engine.
package scenario
