package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// EventTypeWorkflowJob is the only webhook event type this service acts on.
const EventTypeWorkflowJob = "workflow_job"

// JobStatusCompleted is the workflow job status that triggers a sync.
// Other statuses (queued, in_progress, etc.) are valid but irrelevant.
const JobStatusCompleted = "completed"

// WorkflowJob holds the job fields of a workflow_job webhook payload.
type WorkflowJob struct {
	ID         int64
	RunID      int64
	HeadBranch string
	HeadSHA    string
	Status     string
}

// Repository identifies the repository that produced the event.
type Repository struct {
	ID    int64
	Name  string
	Owner string
}

// Sender identifies the GitHub user that triggered the event.
type Sender struct {
	ID    int64
	Login string
}

// WorkflowJobEvent represents a parsed workflow_job webhook event. It is
// constructed once per request from the verified payload and discarded
// after the pipeline completes.
type WorkflowJobEvent struct {
	DeliveryID string // Retrieved from X-GitHub-Delivery header
	Job        WorkflowJob
	Repo       Repository
	Sender     Sender
	ReceivedAt time.Time
}

// Validate checks that all fields required by the sync pipeline are present.
func (e *WorkflowJobEvent) Validate() error {
	switch {
	case e.Job.ID == 0:
		return goerr.New("workflow_job.id is missing")
	case e.Job.RunID == 0:
		return goerr.New("workflow_job.run_id is missing")
	case e.Job.HeadBranch == "":
		return goerr.New("workflow_job.head_branch is missing")
	case e.Job.HeadSHA == "":
		return goerr.New("workflow_job.head_sha is missing")
	case e.Job.Status == "":
		return goerr.New("workflow_job.status is missing")
	case e.Repo.Name == "":
		return goerr.New("repository.name is missing")
	case e.Repo.Owner == "":
		return goerr.New("repository.owner.login is missing")
	case e.Sender.Login == "":
		return goerr.New("sender.login is missing")
	}
	return nil
}

// IsCompleted reports whether the job has finished running.
func (e *WorkflowJobEvent) IsCompleted() bool {
	return e.Job.Status == JobStatusCompleted
}
