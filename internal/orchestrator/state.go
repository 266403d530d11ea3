package orchestrator

// State tracks where a run is in its lifecycle. Transitions only ever move
// forward: Idle → Running → ShuttingDown → Drained → Reported.
type State int32

const (
	// StateIdle means the runner has been created but Run has not started.
	StateIdle State = iota
	// StateRunning means the producer and the workers are live.
	StateRunning
	// StateShuttingDown means the run window has ended and the pipeline is
	// winding down, but the goroutines have not all been joined yet.
	StateShuttingDown
	// StateDrained means the producer and all workers have been joined.
	StateDrained
	// StateReported means the summary has been computed; terminal.
	StateReported
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateShuttingDown:
		return "ShuttingDown"
	case StateDrained:
		return "Drained"
	case StateReported:
		return "Reported"
	default:
		return "Unknown"
	}
}
