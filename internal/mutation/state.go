package mutation

// State is the drag and drop lifecycle:
// idle -> dragging -> committing -> (reverting) -> idle
type State int

const (
	StateIdle State = iota
	StateDragging
	StateCommitting
	StateReverting
)

func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateCommitting:
		return "committing"
	case StateReverting:
		return "reverting"
	default:
		return "idle"
	}
}

// Event drives the controller
type Event interface {
	event()
}

// GestureStart begins dragging an item
type GestureStart struct {
	Payload Payload
}

// DropOnTarget releases the dragged item over a day or bucket
type DropOnTarget struct {
	Target Target
}

// MutationResult reports the outcome of the update call of a gesture
type MutationResult struct {
	GestureID string
	Err       error
}

func (GestureStart) event()   {}
func (DropOnTarget) event()   {}
func (MutationResult) event() {}
