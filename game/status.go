package game

type Phase int

const (
	InProgress Phase = iota
	RoundWon
	// RoundAborted ends a round that hit a fatal pile error.
	RoundAborted
)

func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in progress"
	case RoundWon:
		return "round won"
	case RoundAborted:
		return "round aborted"
	default:
		return "unknown"
	}
}

// Status is the result of one tick.
type Status struct {
	Tick   uint64
	Phase  Phase
	Active int
	// Changed is set when the tick committed an action.
	Changed bool
	// Waiting is set when the active seat has not decided yet.
	Waiting bool
	Winner  int
	Score   int
	Err     error
}
