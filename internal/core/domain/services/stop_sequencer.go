package services

import (
	"sort"

	"marketplace/internal/core/domain/model/task"
)

// StopSequencer is a domain service that numbers the pickup stops of a
// multi-vendor checkout group. All tasks sharing a payment reference form
// one group; each task gets a 1-based pickupSequence and the group size as
// totalStops, so a rider app can present the stops as "stop 2 of 3".
//
// Numbering rules:
//   - sequences within a group are contiguous, 1..len(group), no gaps or
//     duplicates
//   - a task that already progressed past Pending keeps its number; a rider
//     en route must not see their stop renumbered under them
//   - remaining tasks receive the smallest free numbers in creation order,
//     so sequencing is deterministic across re-runs
//   - totalStops is restamped on every task, including the fixed ones
//
// The service mutates the given tasks in memory; persisting the new numbers
// is the caller's job.
type StopSequencer struct{}

// NewStopSequencer creates a new StopSequencer instance.
func NewStopSequencer() StopSequencer {
	return StopSequencer{}
}

// Sequence renumbers a checkout group after its membership changed, for
// example when a vendor requested delivery and a new task joined the group.
//
// Parameters:
//   - group: every task sharing one payment reference, in any order
//
// Returns:
//   - error: validation errors from the tasks, or sequence assignment errors
//
// Tasks past Pending that already hold a sequence are treated as fixed and
// keep their numbers; the rest are sorted by creation time (task ID breaking
// ties) and placed into the lowest numbers still free.
func (s StopSequencer) Sequence(group []*task.Task) error {
	if len(group) == 0 {
		return nil
	}

	for _, t := range group {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	totalStops := len(group)
	taken := make(map[int]bool, totalStops)
	var loose []*task.Task

	for _, t := range group {
		if s.isFixed(t, totalStops, taken) {
			taken[t.PickupSequence()] = true
			continue
		}
		loose = append(loose, t)
	}

	sort.Slice(loose, func(i, j int) bool {
		a, b := loose[i].Timestamps().CreatedAt, loose[j].Timestamps().CreatedAt
		if !a.Equal(b) {
			return a.Before(b)
		}
		return loose[i].ID().String() < loose[j].ID().String()
	})

	next := 1
	for _, t := range loose {
		for taken[next] {
			next++
		}
		if err := t.AssignSequence(next, totalStops); err != nil {
			return err
		}
		taken[next] = true
	}

	for _, t := range group {
		if t.PickupSequence() == 0 || t.TotalStops() == totalStops {
			continue
		}
		if err := t.AssignSequence(t.PickupSequence(), totalStops); err != nil {
			return err
		}
	}

	return nil
}

// isFixed reports whether a task keeps its existing sequence number. A task
// is fixed when a rider already acted on it (status past Pending), it holds
// a number that still fits the group, and no earlier fixed task claimed the
// same number.
func (s StopSequencer) isFixed(t *task.Task, totalStops int, taken map[int]bool) bool {
	if t.Status() == task.Pending {
		return false
	}
	seq := t.PickupSequence()
	return seq >= 1 && seq <= totalStops && !taken[seq]
}
