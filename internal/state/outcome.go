package state

import "time"

// Status reports whether a classification request is outstanding.
type Status int

const (
	StatusIdle Status = iota
	StatusInFlight
)

func (s Status) String() string {
	if s == StatusInFlight {
		return "in-flight"
	}
	return "idle"
}

// OutcomeKind tags the variants of Outcome.
type OutcomeKind int

const (
	// OutcomeNone means no attempt has completed yet.
	OutcomeNone OutcomeKind = iota
	// OutcomeClassified means the last request returned a verdict.
	OutcomeClassified
	// OutcomeFailed means the last request could not be completed.
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeClassified:
		return "classified"
	case OutcomeFailed:
		return "failed"
	default:
		return "none"
	}
}

// Outcome is the last resolved result of a classification attempt.
// IsSpam is meaningful only for OutcomeClassified. Err is kept for logging
// and never drives what is rendered.
type Outcome struct {
	Kind   OutcomeKind
	IsSpam bool
	Err    error
}

// Classified builds a successful outcome.
func Classified(isSpam bool) Outcome {
	return Outcome{Kind: OutcomeClassified, IsSpam: isSpam}
}

// Failed builds a failed outcome.
func Failed(err error) Outcome {
	return Outcome{Kind: OutcomeFailed, Err: err}
}

// Resolved reports whether the outcome came from a completed attempt.
func (o Outcome) Resolved() bool {
	return o.Kind != OutcomeNone
}

// Ticket identifies one submission from Begin until Complete.
type Ticket struct {
	ID       string
	Text     string
	IssuedAt time.Time
}

// Snapshot is an atomic view of the controller for rendering.
type Snapshot struct {
	Input         string
	Status        Status
	Outcome       Outcome
	LastRequestID string    // in-flight ticket, or the one that produced Outcome
	ResolvedAt    time.Time // zero until the first attempt resolves
}

// InFlight reports whether a request is outstanding.
func (s Snapshot) InFlight() bool {
	return s.Status == StatusInFlight
}

// CanSubmit reports whether the submit affordance is available.
func (s Snapshot) CanSubmit() bool {
	return s.Status == StatusIdle
}
