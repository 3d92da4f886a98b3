package model

// Outcome tells whether a resolve call inserted a new row or found an existing one.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeReused  Outcome = "reused"
)

func (o Outcome) Created() bool { return o == OutcomeCreated }
