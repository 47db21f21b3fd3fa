// Package types contains the core types and interfaces shared across the
// cfra library.
//
// The root cfra package re-exports the public surface of this package via
// type aliases, so most users never import it directly. Internal packages
// depend on types instead of the root package to avoid import cycles.
package types
