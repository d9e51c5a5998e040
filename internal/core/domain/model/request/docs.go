// Package request provides the PickupRequest entity used by request
// arbitration.
//
// A pickup request is a courier's bid on an open listing. Requests are
// write-once apart from the single transition Pending → Approved or
// Pending → Rejected; approving one request on a listing rejects every
// other pending competitor in the same atomic unit (single-winner
// semantics, enforced by the ApproveRequest use case).
package request
