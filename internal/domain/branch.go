package domain

// Branch is a pickup/return location. Reference data only.
type Branch struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}
