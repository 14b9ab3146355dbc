// Package vis implements the visualization-tree core: elements, pins, and
// connectors, their mirrored parent/child, pin/target, and projection
// indexes, and the connector-projection algorithm that keeps every
// connector's nearest-common-ancestor parent and per-endpoint projected
// target up to date as the tree is mutated.
//
// The package is single-threaded and cooperative: every mutation runs to
// completion, including any observer callbacks it triggers, before control
// returns to the caller. Nothing in this package suspends, blocks, or is
// safe to call concurrently from multiple goroutines.
package vis
