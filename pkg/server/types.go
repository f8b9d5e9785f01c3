package server

// parkRequest asks for a bay for one vehicle.
type parkRequest struct {
	// Tag is the single-character vehicle type; "D" denotes a disabled
	// vehicle.
	Tag string `json:"tag"`
}

// parkResponse reports the allocated bay.
type parkResponse struct {
	Bay       int `json:"bay"`
	Available int `json:"available"`
}

// unparkRequest frees a bay.
type unparkRequest struct {
	Bay int `json:"bay"`
}

// unparkResponse reports whether a vehicle was removed.
type unparkResponse struct {
	Removed   bool `json:"removed"`
	Available int  `json:"available"`
}

// capacityResponse reports the grid counters.
type capacityResponse struct {
	LaneSize        int `json:"lane_size"`
	Total           int `json:"total"`
	PedestrianExits int `json:"pedestrian_exits"`
	ParkedCars      int `json:"parked_cars"`
	Available       int `json:"available"`
}

// Machine-readable error codes.
const (
	codeNoBayAvailable    = "no_bay_available"
	codeInvalidVehicleTag = "invalid_vehicle_tag"
	codeInvalidBayIndex   = "invalid_bay_index"
	codeBadRequest        = "bad_request"
	codeMethodNotAllowed  = "method_not_allowed"
	codeInternal          = "internal_error"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
