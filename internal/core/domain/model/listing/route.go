package listing

import (
	"errors"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/pkg/errs"
)

// Route is a value object describing where a shipment travels and who
// receives it. All fields except the free-form ones are required.
type Route struct {
	pickupCountry string
	destCountry   string
	address       string
	receiverName  string
	receiverPhone string
}

// NewRoute creates a validated Route.
func NewRoute(pickupCountry, destCountry, address, receiverName, receiverPhone string) (Route, error) {
	if err := errors.Join(
		requireField("pickupCountry", pickupCountry),
		requireField("destCountry", destCountry),
		requireField("address", address),
		requireField("receiverName", receiverName),
		requireField("receiverPhone", receiverPhone),
	); err != nil {
		return Route{}, err
	}

	return Route{
		pickupCountry: pickupCountry,
		destCountry:   destCountry,
		address:       address,
		receiverName:  receiverName,
		receiverPhone: receiverPhone,
	}, nil
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Validate rejects the zero-value Route.
func (r Route) Validate() error {
	if r.pickupCountry == "" || r.destCountry == "" || r.address == "" {
		return errs.NewValueIsRequiredError("route must be created via NewRoute")
	}
	return nil
}

// PickupCountry returns the country the item ships from.
func (r Route) PickupCountry() string { return r.pickupCountry }

// DestCountry returns the country the item ships to.
func (r Route) DestCountry() string { return r.destCountry }

// Address returns the drop-off address in the destination country.
func (r Route) Address() string { return r.address }

// ReceiverName returns the name of the person receiving the item.
func (r Route) ReceiverName() string { return r.receiverName }

// ReceiverPhone returns the receiver's contact phone.
func (r Route) ReceiverPhone() string { return r.receiverPhone }
