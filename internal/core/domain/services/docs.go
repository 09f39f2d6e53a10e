// Package services provides domain services that orchestrate business
// operations across multiple aggregates in the marketplace core. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - StopSequencer: numbers the pickup stops of a multi-vendor checkout group
//   - Capability table: feature gating by vendor category and subscription plan
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
