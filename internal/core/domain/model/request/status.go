package request

import (
	"fmt"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
)

// Status is the state of a pickup request. Pending is the only state with
// outgoing transitions; Approved and Rejected are final.
type Status int

const (
	// StatusUnknown catches uninitialized values; never valid.
	StatusUnknown Status = iota

	// Pending means the request awaits the sender's arbitration.
	Pending

	// Approved means the request won arbitration. At most one request per
	// listing ever reaches this state.
	Approved

	// Rejected means the request was declined, explicitly or as a cascading
	// loser when a competitor was approved.
	Rejected
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Pending:       "PENDING",
		Approved:      "APPROVED",
		Rejected:      "REJECTED",
	}
}

// StatusFromString parses the wire representation of a request status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid request status", s))
}

// String implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks membership in the defined enum.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid request status", int(s)))
	}
	return nil
}

// Approve transitions Pending to Approved.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return StatusUnknown, ErrRequestNotPending
	}
	return Approved, nil
}

// Reject transitions Pending to Rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return StatusUnknown, ErrRequestNotPending
	}
	return Rejected, nil
}
