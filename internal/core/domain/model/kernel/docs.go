// Package kernel contains the shared value objects of the marketplace domain:
// UUID identifiers, Money amounts with exact commission arithmetic, and the
// delivery Zone used to match riders to vendor tasks.
//
// All value objects are immutable and constructed through factory functions
// that validate their invariants. Zero values are invalid and are rejected by
// Validate, which keeps improperly built objects from leaking into aggregates.
package kernel
