package github_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	githubctrl "github.com/lima-uam/github-artifact-sync/pkg/controller/github"
)

func TestParseWorkflowJobEvent(t *testing.T) {
	body := []byte(`{
		"workflow_job": {
			"id": 21,
			"run_id": 42,
			"head_branch": "main",
			"head_sha": "4f2d8ab1c9e03d76b5a21f08c4d9e6570a1b3c2d",
			"status": "completed"
		},
		"repository": {
			"id": 7,
			"name": "widget",
			"owner": {"id": 3, "login": "lima-uam"}
		},
		"sender": {"id": 3, "login": "lima-uam"}
	}`)

	event, err := githubctrl.ParseWorkflowJobEvent("delivery-1", body)
	gt.NoError(t, err)
	gt.Value(t, event.DeliveryID).Equal("delivery-1")
	gt.Value(t, event.Job.ID).Equal(int64(21))
	gt.Value(t, event.Job.RunID).Equal(int64(42))
	gt.Value(t, event.Job.HeadBranch).Equal("main")
	gt.Value(t, event.Job.HeadSHA).Equal("4f2d8ab1c9e03d76b5a21f08c4d9e6570a1b3c2d")
	gt.Value(t, event.Job.Status).Equal("completed")
	gt.Value(t, event.Repo.Name).Equal("widget")
	gt.Value(t, event.Repo.Owner).Equal("lima-uam")
	gt.Value(t, event.Sender.Login).Equal("lima-uam")
	gt.Value(t, event.ReceivedAt.IsZero()).Equal(false)
}

func TestParseWorkflowJobEvent_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed JSON",
			body: `{"workflow_job": `,
		},
		{
			name: "missing workflow_job",
			body: `{"repository": {"name": "widget", "owner": {"login": "x"}}, "sender": {"login": "x"}}`,
		},
		{
			name: "missing repository",
			body: `{"workflow_job": {"id": 1, "run_id": 2, "head_branch": "main", "head_sha": "abc", "status": "completed"}}`,
		},
		{
			name: "missing run_id",
			body: `{
				"workflow_job": {"id": 1, "head_branch": "main", "head_sha": "abc", "status": "completed"},
				"repository": {"id": 7, "name": "widget", "owner": {"id": 3, "login": "x"}},
				"sender": {"id": 3, "login": "x"}
			}`,
		},
		{
			name: "missing sender login",
			body: `{
				"workflow_job": {"id": 1, "run_id": 2, "head_branch": "main", "head_sha": "abc", "status": "completed"},
				"repository": {"id": 7, "name": "widget", "owner": {"id": 3, "login": "x"}}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := githubctrl.ParseWorkflowJobEvent("delivery-1", []byte(tt.body))
			gt.Error(t, err)
		})
	}
}
