package walt

import "fmt"

// Stage identifies the part of a run that failed.
type Stage string

// Stages of a run, in order.
const (
	StageLoad      Stage = "load"
	StageTrim      Stage = "trim"
	StageComposite Stage = "composite"
	StageWrite     Stage = "write"
)

// StageError records the stage at which a run failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
