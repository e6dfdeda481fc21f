package phasing

import (
	"time"

	"github.com/google/uuid"
)

// State of a single phasing run
type State string

const (
	Seeded    State = "Seeded"
	Expanding State = "Expanding"
	Stuck     State = "Stuck"
	Done      State = "Done"
	Aborted   State = "Aborted"
)

// RequestState of a phasing request submitted to the api
type RequestState string

const (
	Running RequestState = "Running"
	Success RequestState = "Success"
	Error   RequestState = "Error"
)

type PhasingRequest struct {
	Id            uuid.UUID    `json:"id"`
	State         RequestState `json:"state"`
	Message       string       `json:"message"`
	NumGenotypes  int          `json:"numGenotypes"`
	NumHaplotypes int          `json:"numHaplotypes"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func (r *PhasingRequest) IsFinished() bool {
	return r.State == Success || r.State == Error
}
