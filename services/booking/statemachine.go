package booking

import "eventra/models"

// edge identifies one permitted transition of the booking state machine.
type edge struct {
	from, to models.BookingStatus
}

// actorRule names who may drive an edge.
type actorRule int

const (
	owningProvider actorRule = iota
	requestingCustomer
	customerOrProvider
	systemOnly
)

// transitions is the full edge table of the booking lifecycle. Every status
// not appearing as a from-state here is terminal. A CONFIRMED booking cannot
// be cancelled by either side; its only way out is COMPLETED.
var transitions = map[edge]actorRule{
	{models.StatusPending, models.StatusAcceptedAwaitingPayment}:       owningProvider,
	{models.StatusPending, models.StatusRejected}:                      owningProvider,
	{models.StatusPending, models.StatusCancelled}:                     requestingCustomer,
	{models.StatusAcceptedAwaitingPayment, models.StatusCancelled}:     customerOrProvider,
	{models.StatusAcceptedAwaitingPayment, models.StatusConfirmed}:     systemOnly,
	{models.StatusAcceptedAwaitingPayment, models.StatusPaymentFailed}: systemOnly,
	{models.StatusConfirmed, models.StatusCompleted}:                   owningProvider,
}

// canTransition reports whether the state machine has an edge from one
// status to another, regardless of who drives it.
func canTransition(from, to models.BookingStatus) bool {
	_, ok := transitions[edge{from, to}]
	return ok
}

// canTransitionAs reports whether an edge from one status to another exists
// AND may be driven by a command acting under the given rule. Each command
// names its own rule, so the shared CANCELLED target never lets one side
// drive the other side's cancel command.
func canTransitionAs(from, to models.BookingStatus, as actorRule) bool {
	rule, ok := transitions[edge{from, to}]
	if !ok {
		return false
	}
	return ruleAllows(rule, as)
}

// ruleAllows reports whether a command acting under as may drive an edge
// gated by rule.
func ruleAllows(rule, as actorRule) bool {
	if rule == as {
		return true
	}
	return rule == customerOrProvider && (as == requestingCustomer || as == owningProvider)
}

// satisfies reports whether the actor holds the identity a rule demands on
// this booking. Role alone is not enough; the actor must be the requesting
// customer or the owning provider of this particular booking.
func satisfies(actor models.Actor, b *models.Booking, rule actorRule) bool {
	isCustomer := actor.Role == models.RoleCustomer && actor.ID == b.CustomerID
	isProvider := actor.Role == models.RoleServiceProvider && actor.ID == b.ProviderID

	switch rule {
	case owningProvider:
		return isProvider
	case requestingCustomer:
		return isCustomer
	case customerOrProvider:
		return isCustomer || isProvider
	case systemOnly:
		return actor.Role == models.RoleSystem
	}
	return false
}
