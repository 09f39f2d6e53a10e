package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
)

func TestNewSubmitOrderBatchCommand(t *testing.T) {
	item, err := commands.NewBatchItem(kernel.NewUUID(), 1, kernel.MustMoney("10.00"))
	require.NoError(t, err)
	vendorOrder, err := commands.NewBatchOrder(kernel.NewUUID(), kernel.ZeroMoney(), []commands.BatchItem{item})
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewSubmitOrderBatchCommand(
			kernel.NewUUID(), "42 Customer Rd", "PAY123", []commands.BatchOrder{vendorOrder})

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "PAY123", cmd.PaymentReference())
		assert.Len(t, cmd.Orders(), 1)
	})

	t.Run("missing delivery address", func(t *testing.T) {
		_, err := commands.NewSubmitOrderBatchCommand(
			kernel.NewUUID(), "", "PAY123", []commands.BatchOrder{vendorOrder})

		assert.ErrorIs(t, err, commands.ErrBatchDeliveryAddressIsRequired)
	})

	t.Run("missing payment reference", func(t *testing.T) {
		_, err := commands.NewSubmitOrderBatchCommand(
			kernel.NewUUID(), "42 Customer Rd", "", []commands.BatchOrder{vendorOrder})

		assert.ErrorIs(t, err, commands.ErrBatchPaymentReferenceIsRequired)
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := commands.NewSubmitOrderBatchCommand(
			kernel.NewUUID(), "42 Customer Rd", "PAY123", nil)

		assert.ErrorIs(t, err, commands.ErrBatchOrdersAreRequired)
	})

	t.Run("zero quantity item", func(t *testing.T) {
		_, err := commands.NewBatchItem(kernel.NewUUID(), 0, kernel.MustMoney("10.00"))

		assert.ErrorIs(t, err, commands.ErrBatchQuantityIsInvalid)
	})

	t.Run("not constructed", func(t *testing.T) {
		var cmd commands.SubmitOrderBatchCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrSubmitOrderBatchCommandIsNotConstructed)
	})
}
