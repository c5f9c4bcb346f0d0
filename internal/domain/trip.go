package domain

// Trip is a usage record attached to exactly one car. Start and End are
// minute offsets; End must never precede Start (enforced at creation).
type Trip struct {
	ID          int64  `json:"id"`
	CarID       int64  `json:"car_id"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Description string `json:"description"`
}
