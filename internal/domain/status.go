package domain

// Status is the lifecycle state of an order row. Owners advance it forward
// only; rows are never deleted.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
)

var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted},
	StatusConfirmed: {StatusPreparing, StatusReady, StatusCompleted},
	StatusPreparing: {StatusReady, StatusCompleted},
	StatusReady:     {StatusCompleted},
	StatusCompleted: {},
}

func (s Status) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether an order may move from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
