// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TaskRepoFactory provides access to the task repository within a transaction.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// PaymentRepoFactory provides access to the staged payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages transactions that touch orders together with their
	// staged payment: batch submission and payment reconciliation.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// DispatchUoW manages transactions that spawn delivery tasks from orders.
	// It includes the staged payment repository because the payment row is
	// the lock serializing a checkout group's membership changes.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		TaskRepoFactory
		PaymentRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// ClaimUoW manages transactions for rider claims, which read the rider
	// and conditionally write the task.
	ClaimUoW interface {
		TxManager
		TaskRepoFactory
		RiderRepoFactory
	}

	// ClaimUoWFactory creates new claim unit of work instances.
	ClaimUoWFactory interface {
		Create() ClaimUoW
	}

	// FulfillmentUoW manages transactions that advance a task and, on final
	// delivery, complete its order in the same transaction.
	FulfillmentUoW interface {
		TxManager
		TaskRepoFactory
		OrderRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
