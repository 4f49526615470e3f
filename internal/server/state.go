package server

// State is the lifecycle state of a Server.
type State int32

const (
	StateUnstarted State = iota
	StateStarting
	StateRunning
	StateUnbinding
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateUnbinding:
		return "unbinding"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
