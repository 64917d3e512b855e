package entity

import (
	"time"

	"github.com/pkg/errors"
)

// ErrUnknownJob is returned for job names other than dispatch and retention.
var ErrUnknownJob = errors.New("unknown job")

// JobName identifies one of the scheduled processes.
type JobName string

const (
	JobDispatch  JobName = "dispatch"
	JobRetention JobName = "retention"
)

// ParseJobName validates a job name coming from a trigger.
func ParseJobName(name string) (JobName, error) {
	switch JobName(name) {
	case JobDispatch, JobRetention:
		return JobName(name), nil
	default:
		return "", errors.Wrapf(ErrUnknownJob, "%q", name)
	}
}

// DispatchOutcome is what happened to one user in one dispatch run.
type DispatchOutcome struct {
	UserID       string
	Reason       SkipReason
	Sent         bool
	SendFailed   bool
	SuccessCount int
	FailureCount int
	TokensPruned int
	MarkerFailed bool
}

// DispatchReport summarizes a dispatch run.
type DispatchReport struct {
	RunAt          time.Time          `json:"run_at"`
	UsersScanned   int                `json:"users_scanned"`
	UsersSent      int                `json:"users_sent"`
	SendFailures   int                `json:"send_failures"`
	TokensSent     int                `json:"tokens_sent"`
	TokensFailed   int                `json:"tokens_failed"`
	TokensPruned   int                `json:"tokens_pruned"`
	MarkerFailures int                `json:"marker_failures"`
	Skipped        map[SkipReason]int `json:"skipped"`
}

// NewDispatchReport creates an empty report for a run at runAt.
func NewDispatchReport(runAt time.Time) *DispatchReport {
	return &DispatchReport{
		RunAt:   runAt,
		Skipped: make(map[SkipReason]int),
	}
}

// Add folds one user's outcome into the report.
func (r *DispatchReport) Add(outcome DispatchOutcome) {
	r.UsersScanned++
	r.TokensSent += outcome.SuccessCount
	r.TokensFailed += outcome.FailureCount
	r.TokensPruned += outcome.TokensPruned

	switch {
	case outcome.Sent:
		r.UsersSent++
	case outcome.SendFailed:
		r.SendFailures++
	case outcome.Reason != SkipNone:
		r.Skipped[outcome.Reason]++
	}

	if outcome.MarkerFailed {
		r.MarkerFailures++
	}
}

// BatchStats counts write-batch activity.
type BatchStats struct {
	Commits       int `json:"commits"`
	FailedCommits int `json:"failed_commits"`
	Deleted       int `json:"deleted"`
	Dropped       int `json:"dropped"`
}

// Merge adds other into s.
func (s *BatchStats) Merge(other BatchStats) {
	s.Commits += other.Commits
	s.FailedCommits += other.FailedCommits
	s.Deleted += other.Deleted
	s.Dropped += other.Dropped
}

// RetentionReport summarizes a retention run across its three phases.
type RetentionReport struct {
	RunAt time.Time `json:"run_at"`

	UsersEvicted       int `json:"users_evicted"`
	UsersUnreadable    int `json:"users_unreadable"`
	StaleTokensPruned  int `json:"stale_tokens_pruned"`
	TokensProbed       int `json:"tokens_probed"`
	ProbeChunks        int `json:"probe_chunks"`
	ProbeChunksFailed  int `json:"probe_chunks_failed"`
	InvalidTokensFound int `json:"invalid_tokens_found"`

	Eviction   BatchStats `json:"eviction"`
	Pruning    BatchStats `json:"pruning"`
	Validation BatchStats `json:"validation"`
}

// JobRun is the record of one job invocation.
type JobRun struct {
	ID         string           `json:"id"`
	Job        JobName          `json:"job"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Error      string           `json:"error,omitempty"`
	Dispatch   *DispatchReport  `json:"dispatch,omitempty"`
	Retention  *RetentionReport `json:"retention,omitempty"`
}

// Duration is the wall time of the run.
func (r *JobRun) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
