package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/task"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderBatchHandler commands.SubmitOrderBatchCommandHandler
	reconcilePaymentHandler commands.ReconcilePaymentCommandHandler
	vendorDecideHandler     commands.VendorDecideOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	requestDeliveryHandler  commands.RequestDeliveryCommandHandler
	claimTaskHandler        commands.ClaimTaskCommandHandler
	advanceTaskHandler      commands.AdvanceTaskCommandHandler

	// Query handlers
	getCandidateTasksHandler queries.GetCandidateTasksQueryHandler
	getVendorOrdersHandler   queries.GetUncompletedVendorOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderBatchHandler commands.SubmitOrderBatchCommandHandler,
	reconcilePaymentHandler commands.ReconcilePaymentCommandHandler,
	vendorDecideHandler commands.VendorDecideOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	requestDeliveryHandler commands.RequestDeliveryCommandHandler,
	claimTaskHandler commands.ClaimTaskCommandHandler,
	advanceTaskHandler commands.AdvanceTaskCommandHandler,
	getCandidateTasksHandler queries.GetCandidateTasksQueryHandler,
	getVendorOrdersHandler queries.GetUncompletedVendorOrdersQueryHandler,
) *Server {
	return &Server{
		submitOrderBatchHandler:  submitOrderBatchHandler,
		reconcilePaymentHandler:  reconcilePaymentHandler,
		vendorDecideHandler:      vendorDecideHandler,
		cancelOrderHandler:       cancelOrderHandler,
		requestDeliveryHandler:   requestDeliveryHandler,
		claimTaskHandler:         claimTaskHandler,
		advanceTaskHandler:       advanceTaskHandler,
		getCandidateTasksHandler: getCandidateTasksHandler,
		getVendorOrdersHandler:   getVendorOrdersHandler,
	}
}

// SubmitOrderBatch handles POST /api/v1/orders/batch - stages a checkout batch.
func (s *Server) SubmitOrderBatch(ctx echo.Context) error {
	var body servers.SubmitOrderBatchJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid customer id")
	}

	batchOrders := make([]commands.BatchOrder, 0, len(body.Orders))
	for _, o := range body.Orders {
		batchOrder, buildErr := buildBatchOrder(o)
		if buildErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+buildErr.Error())
		}
		batchOrders = append(batchOrders, batchOrder)
	}

	cmd, err := commands.NewSubmitOrderBatchCommand(
		customerID, body.DeliveryAddress, body.PaymentReference, batchOrders)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid batch data: "+err.Error())
	}

	orderIDs, err := s.submitOrderBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := servers.OrderBatchCreated{
		OrderIds:         make([]openapi_types.UUID, len(orderIDs)),
		PaymentReference: body.PaymentReference,
	}
	for i, id := range orderIDs {
		response.OrderIds[i] = id.Bytes()
	}

	return ctx.JSON(http.StatusCreated, response)
}

// ReconcilePayment handles POST /api/v1/payments/reconcile - applies a
// payment gateway notification against its staged batch.
func (s *Server) ReconcilePayment(ctx echo.Context) error {
	var body servers.ReconcilePaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	// A failed attempt does not touch the batch; the customer retries
	// against the same staged reference.
	if body.Status != servers.SUCCESS {
		return ctx.NoContent(http.StatusNoContent)
	}

	amount, err := kernel.NewMoneyFromString(body.Amount)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid amount")
	}

	cmd, err := commands.NewReconcilePaymentCommand(body.Reference, amount)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid notification: "+err.Error())
	}

	if err := s.reconcilePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DecideOrder handles POST /api/v1/orders/{orderId}/decision - vendor accepts
// or rejects a paid order.
func (s *Server) DecideOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.DecideOrderParams) error {
	if !vendorCapabilities(params.XVendorCategory, params.XSubscriptionPlan).Has(services.CapManageOrders) {
		return errorResponse(ctx, http.StatusForbidden, "Plan does not allow managing orders")
	}

	var body servers.DecideOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}
	vendorID, err := kernel.UUIDFromBytes(body.VendorId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid vendor id")
	}

	cmd, err := commands.NewVendorDecideOrderCommand(orderID, vendorID, body.Accept)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid decision: "+err.Error())
	}

	if err := s.vendorDecideHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - customer cancels
// before the vendor decided.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.CancelOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}
	customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid customer id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid cancellation: "+err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestDelivery handles POST /api/v1/orders/{orderId}/delivery - vendor
// requests a delivery task for an accepted order.
func (s *Server) RequestDelivery(ctx echo.Context, orderId openapi_types.UUID, params servers.RequestDeliveryParams) error {
	if !vendorCapabilities(params.XVendorCategory, params.XSubscriptionPlan).Has(services.CapRequestDelivery) {
		return errorResponse(ctx, http.StatusForbidden, "Plan does not allow requesting delivery")
	}

	var body servers.RequestDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}
	vendorID, err := kernel.UUIDFromBytes(body.VendorId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid vendor id")
	}
	zone, err := kernel.NewZone(body.VendorZone)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid vendor zone")
	}

	cmd, err := commands.NewRequestDeliveryCommand(orderID, vendorID, zone, body.PickupAddress)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid delivery request: "+err.Error())
	}

	if err := s.requestDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetCandidateTasks handles GET /api/v1/tasks/candidates - lists the
// claimable tasks of one zone.
func (s *Server) GetCandidateTasks(ctx echo.Context, params servers.GetCandidateTasksParams) error {
	zone, err := kernel.NewZone(params.Zone)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid zone")
	}

	query, err := queries.NewGetCandidateTasksQuery(zone)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	tasks, err := s.getCandidateTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve tasks")
	}

	response := make([]servers.DeliveryTask, len(tasks))
	for i, t := range tasks {
		response[i] = servers.DeliveryTask{
			Id:              t.ID.Bytes(),
			OrderId:         t.OrderID.Bytes(),
			PickupAddress:   t.PickupAddress,
			DeliveryAddress: t.DeliveryAddress,
			PickupSequence:  t.PickupSequence,
			TotalStops:      t.TotalStops,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClaimTask handles POST /api/v1/tasks/{taskId}/claim - rider claims a
// pending task. Exactly one concurrent claimant wins.
func (s *Server) ClaimTask(ctx echo.Context, taskId openapi_types.UUID) error {
	var body servers.ClaimTaskJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	taskID, err := kernel.UUIDFromBytes(taskId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid task id")
	}
	riderID, err := kernel.UUIDFromBytes(body.RiderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid rider id")
	}

	cmd, err := commands.NewClaimTaskCommand(taskID, riderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid claim: "+err.Error())
	}

	if err := s.claimTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceTask handles POST /api/v1/tasks/{taskId}/advance - rider reports
// pickup or delivery.
func (s *Server) AdvanceTask(ctx echo.Context, taskId openapi_types.UUID) error {
	var body servers.AdvanceTaskJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	taskID, err := kernel.UUIDFromBytes(taskId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid task id")
	}
	riderID, err := kernel.UUIDFromBytes(body.RiderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid rider id")
	}

	var toStatus task.Status
	switch body.Status {
	case servers.PickedUp:
		toStatus = task.PickedUp
	case servers.Delivered:
		toStatus = task.Delivered
	default:
		return errorResponse(ctx, http.StatusBadRequest, "Invalid target status")
	}

	cmd, err := commands.NewAdvanceTaskCommand(taskID, riderID, toStatus)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid progress report: "+err.Error())
	}

	if err := s.advanceTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetVendorActiveOrders handles GET /api/v1/vendors/{vendorId}/orders/active -
// lists a vendor's non-terminal orders.
func (s *Server) GetVendorActiveOrders(ctx echo.Context, vendorId openapi_types.UUID, params servers.GetVendorActiveOrdersParams) error {
	if !vendorCapabilities(params.XVendorCategory, params.XSubscriptionPlan).Has(services.CapManageOrders) {
		return errorResponse(ctx, http.StatusForbidden, "Plan does not allow managing orders")
	}

	vendorID, err := kernel.UUIDFromBytes(vendorId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid vendor id")
	}

	query, err := queries.NewGetUncompletedVendorOrdersQuery(vendorID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	orders, err := s.getVendorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:               o.ID.Bytes(),
			CustomerId:       o.CustomerID.Bytes(),
			TotalPrice:       o.TotalPrice.String(),
			Status:           o.Status.String(),
			DeliveryAddress:  o.DeliveryAddress,
			PaymentReference: o.PaymentReference,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// buildBatchOrder converts one wire-level vendor order into its command form.
func buildBatchOrder(o servers.BatchOrder) (commands.BatchOrder, error) {
	vendorID, err := kernel.UUIDFromBytes(o.VendorId[:])
	if err != nil {
		return commands.BatchOrder{}, err
	}
	charge, err := kernel.NewMoneyFromString(o.DeliveryCharge)
	if err != nil {
		return commands.BatchOrder{}, err
	}

	items := make([]commands.BatchItem, 0, len(o.Items))
	for _, it := range o.Items {
		productID, idErr := kernel.UUIDFromBytes(it.ProductId[:])
		if idErr != nil {
			return commands.BatchOrder{}, idErr
		}
		price, priceErr := kernel.NewMoneyFromString(it.UnitPrice)
		if priceErr != nil {
			return commands.BatchOrder{}, priceErr
		}
		item, itemErr := commands.NewBatchItem(productID, it.Quantity, price)
		if itemErr != nil {
			return commands.BatchOrder{}, itemErr
		}
		items = append(items, item)
	}

	return commands.NewBatchOrder(vendorID, charge, items)
}

// vendorCapabilities resolves the caller's feature set from the vendor
// headers. Unknown pairs get an empty set, denying every gated action.
func vendorCapabilities(category, plan string) services.CapabilitySet {
	return services.CapabilitiesFor(
		services.VendorCategory(category), services.SubscriptionPlan(plan))
}

// mapDomainError translates application errors into HTTP status codes.
// Claim races get their own code so rider apps can distinguish "someone was
// faster" from a genuine conflict in their own request.
func mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return errorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrPaymentMismatch):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrTaskAlreadyClaimed),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrPreconditionFailed):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}
