package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrReconcilePaymentCommandIsNotConstructed = errors.New(
		"ReconcilePaymentCommand must be created via NewReconcilePaymentCommand constructor",
	)
	ErrReconcileReferenceIsRequired = errors.New("payment reference is required")
)

// ReconcilePaymentCommand carries a payment gateway's confirmation for a
// staged checkout: the reference the batch was staged under and the amount
// the gateway reports as captured.
type ReconcilePaymentCommand struct { //nolint:recvcheck //using for validation
	reference      string
	reportedAmount kernel.Money

	guard guard.ConstructorGuard
}

// NewReconcilePaymentCommand creates a command to reconcile a gateway
// confirmation against its staged payment.
func NewReconcilePaymentCommand(reference string, reportedAmount kernel.Money) (ReconcilePaymentCommand, error) {
	reconcileCommand := ReconcilePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reconcileCommand.setReference(reference),
		reconcileCommand.setReportedAmount(reportedAmount),
	); err != nil {
		return ReconcilePaymentCommand{}, err
	}

	return reconcileCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcilePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePaymentCommandIsNotConstructed)
}

// Reference returns the gateway correlation reference.
func (c ReconcilePaymentCommand) Reference() string {
	return c.reference
}

// ReportedAmount returns the amount the gateway reports as captured.
func (c ReconcilePaymentCommand) ReportedAmount() kernel.Money {
	return c.reportedAmount
}

func (c *ReconcilePaymentCommand) setReference(reference string) error {
	if reference == "" {
		return ErrReconcileReferenceIsRequired
	}

	c.reference = reference
	return nil
}

func (c *ReconcilePaymentCommand) setReportedAmount(reportedAmount kernel.Money) error {
	if err := reportedAmount.Validate(); err != nil {
		return err
	}

	c.reportedAmount = reportedAmount
	return nil
}
