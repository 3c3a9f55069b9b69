package domain

type VehicleStatus string

const (
	VehicleStatusAvailable    VehicleStatus = "AVAILABLE"
	VehicleStatusReserved     VehicleStatus = "RESERVED"
	VehicleStatusMaintenance  VehicleStatus = "MAINTENANCE"
	VehicleStatusOutOfService VehicleStatus = "OUT_OF_SERVICE"
)

// allowedStatusChanges is the directed graph of permitted vehicle status
// transitions. Reservation creation and cancellation are the only writers of
// AVAILABLE<->RESERVED; the remaining edges belong to fleet maintenance.
var allowedStatusChanges = map[VehicleStatus][]VehicleStatus{
	VehicleStatusAvailable:    {VehicleStatusReserved, VehicleStatusMaintenance, VehicleStatusOutOfService},
	VehicleStatusReserved:     {VehicleStatusAvailable},
	VehicleStatusMaintenance:  {VehicleStatusAvailable, VehicleStatusOutOfService},
	VehicleStatusOutOfService: {VehicleStatusMaintenance},
}

// CanChangeStatus reports whether from -> to is a permitted transition.
// A no-op transition (from == to) is not permitted.
func CanChangeStatus(from, to VehicleStatus) bool {
	for _, s := range allowedStatusChanges[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Vehicle struct {
	ID              int32         `json:"id"`
	Brand           string        `json:"brand"`
	Model           string        `json:"model"`
	Plate           string        `json:"plate"`
	Category        string        `json:"category"`
	DailyPriceCents int32         `json:"daily_price_cents"`
	ImageURL        string        `json:"image_url"`
	Status          VehicleStatus `json:"status"`
	CreatedOn       string        `json:"created_on"`
}
