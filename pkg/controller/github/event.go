package github

import (
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lima-uam/github-artifact-sync/pkg/domain/model"
)

// ParseWorkflowJobEvent parses a verified webhook body into a domain event.
// The caller must have checked the signature and the X-GitHub-Event header
// before this point: unauthenticated payloads are never parsed.
func ParseWorkflowJobEvent(deliveryID string, body []byte) (*model.WorkflowJobEvent, error) {
	payload, err := github.ParseWebHook(model.EventTypeWorkflowJob, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse webhook payload")
	}

	jobEvent, ok := payload.(*github.WorkflowJobEvent)
	if !ok {
		return nil, goerr.New("payload is not a workflow_job event")
	}

	event, err := extractWorkflowJobEvent(jobEvent)
	if err != nil {
		return nil, err
	}

	event.DeliveryID = deliveryID
	event.ReceivedAt = time.Now()

	return event, nil
}

// extractWorkflowJobEvent maps the SDK payload onto the domain model using
// nil-safe Get*() accessors, then validates the required fields.
func extractWorkflowJobEvent(e *github.WorkflowJobEvent) (*model.WorkflowJobEvent, error) {
	if e.GetWorkflowJob() == nil {
		return nil, goerr.New("missing workflow_job in payload")
	}
	if e.GetRepo() == nil {
		return nil, goerr.New("missing repository in payload")
	}

	job := e.GetWorkflowJob()
	event := &model.WorkflowJobEvent{
		Job: model.WorkflowJob{
			ID:         job.GetID(),
			RunID:      job.GetRunID(),
			HeadBranch: job.GetHeadBranch(),
			HeadSHA:    job.GetHeadSHA(),
			Status:     job.GetStatus(),
		},
		Repo: model.Repository{
			ID:    e.GetRepo().GetID(),
			Name:  e.GetRepo().GetName(),
			Owner: e.GetRepo().GetOwner().GetLogin(),
		},
		Sender: model.Sender{
			ID:    e.GetSender().GetID(),
			Login: e.GetSender().GetLogin(),
		},
	}

	if err := event.Validate(); err != nil {
		return nil, goerr.Wrap(err, "incomplete workflow_job payload")
	}

	return event, nil
}
