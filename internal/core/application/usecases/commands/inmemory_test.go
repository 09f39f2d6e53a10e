package commands_test

import (
	"context"
	"sync"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/model/rider"
	"marketplace/internal/core/domain/model/task"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// In-memory repository fakes backing the handler tests. They reproduce the
// conditional-write semantics of the Postgres adapter: updates and claims
// only apply when the committed row still matches the expected state.

type fakeOrderRepo struct {
	mu        sync.Mutex
	orders    map[string]*order.Order
	committed map[string]order.Status
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:    make(map[string]*order.Order),
		committed: make(map[string]order.Status),
	}
}

func (r *fakeOrderRepo) Add(_ context.Context, aggregate *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[aggregate.ID().String()] = aggregate
	r.committed[aggregate.ID().String()] = aggregate.Status()
	return nil
}

func (r *fakeOrderRepo) Update(_ context.Context, aggregate *order.Order, expectedStatus order.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.committed[aggregate.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}
	if current != expectedStatus {
		return errs.NewPreconditionFailedError("order", current.String(), expectedStatus.String())
	}
	r.committed[aggregate.ID().String()] = aggregate.Status()
	return nil
}

func (r *fakeOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return o, nil
}

func (r *fakeOrderRepo) GetByPaymentReference(_ context.Context, reference string) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var batch []*order.Order
	for _, o := range r.orders {
		if o.PaymentReference() == reference {
			batch = append(batch, o)
		}
	}
	return batch, nil
}

func (r *fakeOrderRepo) GetUncompletedByVendor(_ context.Context, vendorID kernel.UUID) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*order.Order
	for _, o := range r.orders {
		if o.VendorID().IsEqual(vendorID) && !r.committed[o.ID().String()].IsTerminal() {
			result = append(result, o)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) committedStatus(id kernel.UUID) order.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.committed[id.String()]
}

// taskRecord is the committed row of a task; Get rebuilds a fresh aggregate
// from it so concurrent handler runs never share mutable task state.
type taskRecord struct {
	id, orderID, vendorID kernel.UUID
	vendorZone            kernel.Zone
	riderID               *kernel.UUID
	status                task.Status
	pickupAddress         string
	deliveryAddress       string
	paymentReference      string
	pickupSequence        int
	totalStops            int
	timestamps            task.Timestamps
}

type fakeTaskRepo struct {
	mu      sync.Mutex
	records map[string]*taskRecord
	byOrder map[string]string
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{
		records: make(map[string]*taskRecord),
		byOrder: make(map[string]string),
	}
}

func recordFromTask(t *task.Task) *taskRecord {
	return &taskRecord{
		id:               t.ID(),
		orderID:          t.OrderID(),
		vendorID:         t.VendorID(),
		vendorZone:       t.VendorZone(),
		riderID:          t.Rider(),
		status:           t.Status(),
		pickupAddress:    t.PickupAddress(),
		deliveryAddress:  t.DeliveryAddress(),
		paymentReference: t.PaymentReference(),
		pickupSequence:   t.PickupSequence(),
		totalStops:       t.TotalStops(),
		timestamps:       t.Timestamps(),
	}
}

func (rec *taskRecord) restore() (*task.Task, error) {
	return task.RestoreTask(
		rec.id, rec.orderID, rec.vendorID, rec.vendorZone,
		rec.riderID, rec.status,
		rec.pickupAddress, rec.deliveryAddress,
		rec.paymentReference, rec.pickupSequence, rec.totalStops,
		rec.timestamps,
	)
}

func (r *fakeTaskRepo) Add(_ context.Context, aggregate *task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byOrder[aggregate.OrderID().String()]; exists {
		return errs.NewPreconditionFailedError("task", "exists", "no task for order")
	}
	r.records[aggregate.ID().String()] = recordFromTask(aggregate)
	r.byOrder[aggregate.OrderID().String()] = aggregate.ID().String()
	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, aggregate *task.Task, expectedStatus task.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[aggregate.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("taskId", aggregate.ID().String())
	}
	if rec.status != expectedStatus {
		return errs.NewPreconditionFailedError("task", rec.status.String(), expectedStatus.String())
	}
	r.records[aggregate.ID().String()] = recordFromTask(aggregate)
	r.byOrder[aggregate.OrderID().String()] = aggregate.ID().String()
	return nil
}

func (r *fakeTaskRepo) UpdateSequence(_ context.Context, aggregate *task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[aggregate.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("taskId", aggregate.ID().String())
	}
	rec.pickupSequence = aggregate.PickupSequence()
	rec.totalStops = aggregate.TotalStops()
	return nil
}

func (r *fakeTaskRepo) Get(_ context.Context, id kernel.UUID) (*task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("taskId", id.String())
	}
	return rec.restore()
}

func (r *fakeTaskRepo) GetByOrderID(_ context.Context, orderID kernel.UUID) (*task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	taskID, ok := r.byOrder[orderID.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
	}
	return r.records[taskID].restore()
}

func (r *fakeTaskRepo) GetByPaymentReference(_ context.Context, reference string) ([]*task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var group []*task.Task
	for _, rec := range r.records {
		if rec.paymentReference != reference {
			continue
		}
		t, err := rec.restore()
		if err != nil {
			return nil, err
		}
		group = append(group, t)
	}
	return group, nil
}

func (r *fakeTaskRepo) Claim(_ context.Context, aggregate *task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[aggregate.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("taskId", aggregate.ID().String())
	}
	if rec.status != task.Pending || rec.riderID != nil {
		return errs.NewTaskAlreadyClaimedError(aggregate.ID().String())
	}
	rec.status = aggregate.Status()
	rec.riderID = aggregate.Rider()
	rec.timestamps = aggregate.Timestamps()
	return nil
}

func (r *fakeTaskRepo) record(id kernel.UUID) *taskRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[id.String()]
}

type fakeRiderRepo struct {
	mu     sync.Mutex
	riders map[string]*rider.Rider
}

func newFakeRiderRepo() *fakeRiderRepo {
	return &fakeRiderRepo{riders: make(map[string]*rider.Rider)}
}

func (r *fakeRiderRepo) Add(_ context.Context, aggregate *rider.Rider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.riders[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakeRiderRepo) Update(_ context.Context, aggregate *rider.Rider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.riders[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakeRiderRepo) Get(_ context.Context, id kernel.UUID) (*rider.Rider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rd, ok := r.riders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("riderId", id.String())
	}
	return rd, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*payment.StagedPayment
	applied  map[string]bool
	locks    map[string]int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments: make(map[string]*payment.StagedPayment),
		applied:  make(map[string]bool),
		locks:    make(map[string]int),
	}
}

func (r *fakePaymentRepo) Add(_ context.Context, aggregate *payment.StagedPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.payments[aggregate.Reference()]; exists {
		return errs.NewPreconditionFailedError("payment", "exists", "unique reference")
	}
	r.payments[aggregate.Reference()] = aggregate
	r.applied[aggregate.Reference()] = aggregate.IsApplied()
	return nil
}

func (r *fakePaymentRepo) GetByReference(_ context.Context, reference string) (*payment.StagedPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[reference]
	if !ok {
		return nil, errs.NewObjectNotFoundError("reference", reference)
	}
	return p, nil
}

// LockByReference counts lock acquisitions; the repo mutex already makes
// the fakes' writes atomic, so tests only assert that handlers take the
// group lock, not that it blocks.
func (r *fakePaymentRepo) LockByReference(_ context.Context, reference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[reference]; !ok {
		return errs.NewObjectNotFoundError("reference", reference)
	}
	r.locks[reference]++
	return nil
}

func (r *fakePaymentRepo) lockCount(reference string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.locks[reference]
}

func (r *fakePaymentRepo) MarkApplied(_ context.Context, aggregate *payment.StagedPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.applied[aggregate.Reference()] {
		return errs.NewPreconditionFailedError("payment", "Applied", "Staged")
	}
	r.applied[aggregate.Reference()] = true
	return nil
}

// fakeUoW satisfies every UoW flavor the handlers compose.
type fakeUoW struct {
	orders   *fakeOrderRepo
	tasks    *fakeTaskRepo
	riders   *fakeRiderRepo
	payments *fakePaymentRepo
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		orders:   newFakeOrderRepo(),
		tasks:    newFakeTaskRepo(),
		riders:   newFakeRiderRepo(),
		payments: newFakePaymentRepo(),
	}
}

func (u *fakeUoW) Begin(context.Context) error    { return nil }
func (u *fakeUoW) Commit(context.Context) error   { return nil }
func (u *fakeUoW) Rollback(context.Context) error { return nil }

func (u *fakeUoW) OrderRepository() ports.OrderRepository     { return u.orders }
func (u *fakeUoW) TaskRepository() ports.TaskRepository       { return u.tasks }
func (u *fakeUoW) RiderRepository() ports.RiderRepository     { return u.riders }
func (u *fakeUoW) PaymentRepository() ports.PaymentRepository { return u.payments }

type fakeUoWFactory struct{ uow *fakeUoW }

func (f fakeUoWFactory) Create() commands.OrderUoW { return f.uow }

type fakeCheckoutUoWFactory struct{ uow *fakeUoW }

func (f fakeCheckoutUoWFactory) Create() commands.CheckoutUoW { return f.uow }

type fakeDispatchUoWFactory struct{ uow *fakeUoW }

func (f fakeDispatchUoWFactory) Create() commands.DispatchUoW { return f.uow }

type fakeClaimUoWFactory struct{ uow *fakeUoW }

func (f fakeClaimUoWFactory) Create() commands.ClaimUoW { return f.uow }

type fakeFulfillmentUoWFactory struct{ uow *fakeUoW }

func (f fakeFulfillmentUoWFactory) Create() commands.FulfillmentUoW { return f.uow }

// recordingPublisher captures change notifications for assertions.
type recordingPublisher struct {
	mu      sync.Mutex
	changes []ports.Change
}

func (p *recordingPublisher) Publish(change ports.Change) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, change)
}

func (p *recordingPublisher) all() []ports.Change {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ports.Change(nil), p.changes...)
}
