package http

import "time"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewListing is the request body for posting a shipment.
type NewListing struct {
	OwnerID       string  `json:"owner_id"`
	PickupCountry string  `json:"pickup_country"`
	DestCountry   string  `json:"dest_country"`
	Address       string  `json:"address"`
	ReceiverName  string  `json:"receiver_name"`
	ReceiverPhone string  `json:"receiver_phone"`
	Weight        float64 `json:"weight"`
	Fee           float64 `json:"fee"`
}

// Listing is one marketplace feed row.
type Listing struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	PickupCountry string    `json:"pickup_country"`
	DestCountry   string    `json:"dest_country"`
	Address       string    `json:"address"`
	ReceiverName  string    `json:"receiver_name"`
	Weight        float64   `json:"weight"`
	Fee           float64   `json:"fee"`
	RankingScore  float64   `json:"ranking_score"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewPickupRequest is the request body for a courier's bid.
type NewPickupRequest struct {
	CourierID string `json:"courier_id"`
}

// PickupRequest is one candidate row on a listing.
type PickupRequest struct {
	ID                   string    `json:"id"`
	CourierID            string    `json:"courier_id"`
	CourierName          string    `json:"courier_name"`
	CourierRating        float64   `json:"courier_rating"`
	CompletedDeliveries  int       `json:"completed_deliveries"`
	AverageDeliveryHours float64   `json:"average_delivery_hours"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}

// StatusUpdate is the request body for the listing status endpoint. ActorID
// is the courier for progression steps and the owner for the final
// DELIVERED confirmation.
type StatusUpdate struct {
	ActorID string `json:"actor_id"`
	Status  string `json:"status"`
}

// ReopenListing is the request body for returning a listing to the pool.
type ReopenListing struct {
	OwnerID string `json:"owner_id"`
}

// NewCourier is the request body for courier registration.
type NewCourier struct {
	Name string `json:"name"`
}

// NewGrant is the request body for activating a subscription grant.
type NewGrant struct {
	HolderID string `json:"holder_id"`
	PlanID   string `json:"plan_id"`
}

// Grant is the holder's current entitlement snapshot.
type Grant struct {
	ID             string    `json:"id"`
	PlanName       string    `json:"plan_name"`
	PlanRole       string    `json:"plan_role"`
	IsPremium      bool      `json:"is_premium"`
	RemainingUsage int       `json:"remaining_usage"`
	ExpiresAt      time.Time `json:"expires_at"`
}
