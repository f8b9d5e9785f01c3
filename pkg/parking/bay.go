package parking

// BayState is the state of a single bay in the grid.
type BayState uint8

const (
	// BayFree is an empty general bay.
	BayFree BayState = iota

	// BayOccupied is a general bay holding a vehicle.
	BayOccupied

	// BayDisabledFree is an empty bay reserved for disabled vehicles.
	BayDisabledFree

	// BayDisabledTaken is a disabled-reserved bay holding a vehicle.
	BayDisabledTaken

	// BayPedestrianExit is a fixed walkway bay. It never holds a vehicle
	// and never changes state.
	BayPedestrianExit
)

// Diagram markers for bay states. These are reserved characters: none of
// them except DisabledTag is accepted as a vehicle tag by Engine.Park.
const (
	// MarkerPedestrianExit renders a pedestrian exit.
	MarkerPedestrianExit byte = '='

	// MarkerDisabledFree renders an empty disabled-reserved bay.
	MarkerDisabledFree byte = '@'

	// MarkerDisabledTaken renders an occupied disabled-reserved bay.
	// The same character doubles as the disabled-vehicle tag.
	MarkerDisabledTaken byte = 'D'

	// MarkerFree renders an empty general bay.
	MarkerFree byte = 'U'
)

// DisabledTag is the vehicle tag denoting a disabled vehicle. Parking it
// transitions a BayDisabledFree bay to BayDisabledTaken.
const DisabledTag byte = MarkerDisabledTaken

// Bay is one addressable parking slot.
type Bay struct {
	// State is the current bay state.
	State BayState

	// Tag is the vehicle tag stored at park time. It is meaningful only
	// when State is BayOccupied; disabled-reserved bays render with the
	// fixed MarkerDisabledTaken character instead.
	Tag byte
}

// Marker returns the diagram character for the bay.
func (b Bay) Marker() byte {
	switch b.State {
	case BayPedestrianExit:
		return MarkerPedestrianExit
	case BayDisabledFree:
		return MarkerDisabledFree
	case BayDisabledTaken:
		return MarkerDisabledTaken
	case BayOccupied:
		return b.Tag
	default:
		return MarkerFree
	}
}

// Vacant reports whether the bay can ever accept a vehicle in its current
// state, regardless of vehicle type.
func (b Bay) Vacant() bool {
	return b.State == BayFree || b.State == BayDisabledFree
}

// reservedTag reports whether tag is one of the reserved diagram
// characters that cannot identify a parking vehicle. 'D' is not in the
// set: it is how a disabled vehicle parks.
func reservedTag(tag byte) bool {
	switch tag {
	case MarkerPedestrianExit, MarkerDisabledFree, MarkerFree:
		return true
	}
	return false
}
