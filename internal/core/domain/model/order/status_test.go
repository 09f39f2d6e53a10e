package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{
	order.Pending, order.Paid, order.Accepted,
	order.Rejected, order.Completed, order.Cancelled,
}

type event struct {
	name  string
	apply func(order.Status) (order.Status, error)
}

func events() []event {
	return []event{
		{"MarkPaid", order.Status.MarkPaid},
		{"Accept", order.Status.Accept},
		{"Reject", order.Status.Reject},
		{"Complete", order.Status.Complete},
		{"Cancel", order.Status.Cancel},
	}
}

// allowed is the complete transition table. Every (state, event) pair absent
// here must fail with ErrInvalidTransition and leave the state unchanged.
var allowed = map[order.Status]map[string]order.Status{
	order.Pending: {
		"MarkPaid": order.Paid,
		"Cancel":   order.Cancelled,
	},
	order.Paid: {
		"Accept": order.Accepted,
		"Reject": order.Rejected,
		"Cancel": order.Cancelled,
	},
	order.Accepted: {
		"Complete": order.Completed,
		"Cancel":   order.Cancelled,
	},
	order.Rejected:  {},
	order.Completed: {},
	order.Cancelled: {},
}

func TestStatus_TransitionTable(t *testing.T) {
	for _, from := range allStatuses {
		for _, ev := range events() {
			t.Run(from.String()+"_"+ev.name, func(t *testing.T) {
				next, err := ev.apply(from)

				if want, ok := allowed[from][ev.name]; ok {
					require.NoError(t, err)
					assert.Equal(t, want, next)
				} else {
					require.Error(t, err)
					assert.ErrorIs(t, err, errs.ErrInvalidTransition)
					assert.Equal(t, order.Status(0), next)
				}
			})
		}
	}
}

func TestStatus_NoTransitionLeavesTerminalState(t *testing.T) {
	for _, terminal := range []order.Status{order.Rejected, order.Completed, order.Cancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, ev := range events() {
			_, err := ev.apply(terminal)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition, "%s on %s", ev.name, terminal)
		}
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses {
		require.NoError(t, s.Validate())
	}
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Paid", order.Paid.String())
	assert.Equal(t, "Accepted", order.Accepted.String())
	assert.Equal(t, "Rejected", order.Rejected.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}
