// Package listing provides the ShipmentListing aggregate and its lifecycle
// state machine.
//
// The package includes:
//   - Listing: the aggregate root owning status, courier assignment,
//     route details and the transient visibility score
//   - Status: a closed enum with an exhaustive transition function
//   - Route: a value object for the shipment's origin, destination and
//     receiver details
//
// Key business rules:
//   - Posted → Approved happens only through request arbitration
//   - Approved → Picked → InTransit → Arrived → WaitingConfirmation are
//     courier-driven, status-only steps
//   - WaitingConfirmation → Delivered is the owner's confirmation and is
//     terminal
//   - any non-terminal state can be reopened to Posted, clearing the
//     assignment and pickup time
//   - Requested is a display-only status and is never persisted
package listing
