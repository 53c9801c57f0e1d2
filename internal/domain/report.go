package domain

import "time"

type Step string

const (
	StepReadExif        Step = "read_exif"
	StepParseDate       Step = "parse_date"
	StepInspect         Step = "inspect"
	StepCheck           Step = "check"
	StepSetModification Step = "set_modification"
	StepSetCreation     Step = "set_creation"
)

type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusWarn    Status = "warn"
	StatusFailed  Status = "failed"
	StatusPlanned Status = "planned"
)

type StepResult struct {
	Step   Step
	Status Status
	Time   time.Time
	Err    error
}

// Report is the outcome of one sync run for one file.
type Report struct {
	Path       string
	RawDate    string
	Capture    *time.Time
	Modified   *time.Time
	Created    *time.Time
	Consistent bool
	DryRun     bool
	Steps      []StepResult
}

func (r *Report) Record(step Step, status Status, at time.Time, err error) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: status, Time: at, Err: err})
}

// Result returns the recorded result for step, if any.
func (r Report) Result(step Step) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Step == step {
			return s, true
		}
	}
	return StepResult{}, false
}

// Failed reports whether any step failed.
func (r Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Err returns the first step error, or nil.
func (r Report) Err() error {
	for _, s := range r.Steps {
		if s.Err != nil {
			return s.Err
		}
	}
	return nil
}

// Applied reports whether the creation date was written (or would be, in a dry run).
func (r Report) Applied() bool {
	res, ok := r.Result(StepSetCreation)
	return ok && (res.Status == StatusOK || res.Status == StatusPlanned)
}
