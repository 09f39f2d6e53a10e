// Package task provides the delivery task aggregate of the marketplace.
//
// A Task is the assignable unit of delivery work spawned from an accepted
// order. The package enforces the core matching guarantees: the rider
// reference is set exactly once at claim time, status advances strictly
// Pending -> Assigned -> PickedUp -> Delivered, and only the owning rider
// may advance a task. Losing the claim race is an expected outcome surfaced
// as TaskAlreadyClaimedError, distinguishable from real errors.
package task
