package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/task"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroupTask(
	t *testing.T,
	createdAt time.Time,
	status task.Status,
	sequence, totalStops int,
) *task.Task {
	t.Helper()

	zone, err := kernel.NewZone("NORTH")
	require.NoError(t, err)

	var riderID *kernel.UUID
	var assignedAt *time.Time
	if status != task.Pending {
		id := kernel.NewUUID()
		riderID = &id
		at := createdAt.Add(time.Minute)
		assignedAt = &at
	}

	tsk, err := task.RestoreTask(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		zone,
		riderID,
		status,
		"10 Vendor St",
		"20 Customer Ave",
		"PAY123",
		sequence,
		totalStops,
		task.Timestamps{CreatedAt: createdAt, AssignedAt: assignedAt},
	)
	require.NoError(t, err)
	return tsk
}

func TestStopSequencer_Sequence(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sequencer := services.NewStopSequencer()

	t.Run("should number fresh group contiguously in creation order", func(t *testing.T) {
		third := newGroupTask(t, base.Add(2*time.Minute), task.Pending, 0, 0)
		first := newGroupTask(t, base, task.Pending, 0, 0)
		second := newGroupTask(t, base.Add(time.Minute), task.Pending, 0, 0)

		err := sequencer.Sequence([]*task.Task{third, first, second})

		require.NoError(t, err)
		assert.Equal(t, 1, first.PickupSequence())
		assert.Equal(t, 2, second.PickupSequence())
		assert.Equal(t, 3, third.PickupSequence())
		for _, tsk := range []*task.Task{first, second, third} {
			assert.Equal(t, 3, tsk.TotalStops())
		}
	})

	t.Run("should keep numbers of claimed tasks when sibling joins", func(t *testing.T) {
		claimed1 := newGroupTask(t, base, task.Assigned, 1, 2)
		claimed2 := newGroupTask(t, base.Add(time.Minute), task.PickedUp, 2, 2)
		late := newGroupTask(t, base.Add(10*time.Minute), task.Pending, 0, 0)

		err := sequencer.Sequence([]*task.Task{claimed1, claimed2, late})

		require.NoError(t, err)
		assert.Equal(t, 1, claimed1.PickupSequence())
		assert.Equal(t, 2, claimed2.PickupSequence())
		assert.Equal(t, 3, late.PickupSequence())

		// group size grew, every task sees the new total
		assert.Equal(t, 3, claimed1.TotalStops())
		assert.Equal(t, 3, claimed2.TotalStops())
		assert.Equal(t, 3, late.TotalStops())
	})

	t.Run("should fill gap left by renumbered pending sibling", func(t *testing.T) {
		claimed := newGroupTask(t, base, task.Assigned, 2, 2)
		pending := newGroupTask(t, base.Add(time.Minute), task.Pending, 1, 2)
		late := newGroupTask(t, base.Add(10*time.Minute), task.Pending, 0, 0)

		err := sequencer.Sequence([]*task.Task{claimed, pending, late})

		require.NoError(t, err)
		assert.Equal(t, 2, claimed.PickupSequence(), "claimed task keeps its number")
		assert.Equal(t, 1, pending.PickupSequence())
		assert.Equal(t, 3, late.PickupSequence())
	})

	t.Run("should produce contiguous sequences without gaps or duplicates", func(t *testing.T) {
		group := []*task.Task{
			newGroupTask(t, base, task.Delivered, 1, 3),
			newGroupTask(t, base.Add(time.Minute), task.Assigned, 3, 3),
			newGroupTask(t, base.Add(2*time.Minute), task.Pending, 2, 3),
			newGroupTask(t, base.Add(3*time.Minute), task.Pending, 0, 0),
			newGroupTask(t, base.Add(4*time.Minute), task.Pending, 0, 0),
		}

		err := sequencer.Sequence(group)

		require.NoError(t, err)
		seen := make(map[int]bool)
		for _, tsk := range group {
			assert.GreaterOrEqual(t, tsk.PickupSequence(), 1)
			assert.LessOrEqual(t, tsk.PickupSequence(), len(group))
			assert.False(t, seen[tsk.PickupSequence()], "duplicate sequence %d", tsk.PickupSequence())
			seen[tsk.PickupSequence()] = true
			assert.Equal(t, len(group), tsk.TotalStops())
		}
	})

	t.Run("should renumber claimed task whose number no longer fits", func(t *testing.T) {
		// group shrank: a claimed task holding sequence 3 in a group of 2
		claimed := newGroupTask(t, base, task.Assigned, 3, 3)
		pending := newGroupTask(t, base.Add(time.Minute), task.Pending, 0, 0)

		err := sequencer.Sequence([]*task.Task{claimed, pending})

		require.NoError(t, err)
		assert.Equal(t, 1, claimed.PickupSequence())
		assert.Equal(t, 2, pending.PickupSequence())
	})

	t.Run("should handle single-task group", func(t *testing.T) {
		solo := newGroupTask(t, base, task.Pending, 0, 0)

		err := sequencer.Sequence([]*task.Task{solo})

		require.NoError(t, err)
		assert.Equal(t, 1, solo.PickupSequence())
		assert.Equal(t, 1, solo.TotalStops())
	})

	t.Run("should accept empty group", func(t *testing.T) {
		assert.NoError(t, sequencer.Sequence(nil))
	})

	t.Run("should be stable across repeated runs", func(t *testing.T) {
		first := newGroupTask(t, base, task.Pending, 0, 0)
		second := newGroupTask(t, base.Add(time.Minute), task.Pending, 0, 0)
		group := []*task.Task{first, second}

		require.NoError(t, sequencer.Sequence(group))
		seq1, seq2 := first.PickupSequence(), second.PickupSequence()

		require.NoError(t, sequencer.Sequence(group))
		assert.Equal(t, seq1, first.PickupSequence())
		assert.Equal(t, seq2, second.PickupSequence())
	})
}
