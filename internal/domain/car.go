// Package domain contains the core data types for the car sharing service.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

// Car is a shareable vehicle in the fleet. Trips reference a car by CarID;
// cars and trips are independent records related only by that foreign key,
// assembled into a combined view by query when needed.
type Car struct {
	ID           int64  `json:"id"`
	Size         string `json:"size"`
	Fuel         string `json:"fuel"`
	Doors        int    `json:"doors"`
	Transmission string `json:"transmission"`
}

// Defaults applied when a car is created or replaced without these fields.
const (
	DefaultFuel         = "electric"
	DefaultTransmission = "auto"
)

// CarFilter holds the optional list filters. Zero values mean "no filter":
// an empty Size skips the equality filter, a MinDoors of zero or less skips
// the lower-bound filter.
type CarFilter struct {
	Size     string
	MinDoors int
}
