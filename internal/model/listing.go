package model

// Listing represents a single used car in the dealership stock.
// Records are built once at startup and never mutated.
type Listing struct {
	Price    int    `json:"price"`
	Mileage  int    `json:"mileage"`
	Interior string `json:"interior"`
	Details  string `json:"details"`
	Benefits string `json:"benefits"`
}
