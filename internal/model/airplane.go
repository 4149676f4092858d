package model

// Airplane describes the aircraft assigned to a flight.  Per-class
// capacities are the ceiling for the corresponding available-seat counts on
// a flight; the booking subsystem (not this service) enforces that.
type Airplane struct {
	ID                    uint64 `json:"id"`
	Model                 string `json:"model"`
	RegistrationNumber    string `json:"registration_number"`
	FirstClassCapacity    int    `json:"first_class_capacity"`
	BusinessClassCapacity int    `json:"business_class_capacity"`
	EconomyClassCapacity  int    `json:"economy_class_capacity"`
}
