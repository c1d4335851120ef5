package interfaces

import (
	"context"

	"github.com/lima-uam/github-artifact-sync/pkg/domain/model"
)

// SyncUseCase defines the artifact sync pipeline invoked per webhook event
type SyncUseCase interface {
	// ProcessWorkflowJob runs the sync pipeline for a completed workflow job
	// event and returns the terminal outcome. The returned error carries the
	// failure detail for non-OK outcomes; it is nil for no-op outcomes.
	ProcessWorkflowJob(ctx context.Context, event *model.WorkflowJobEvent) (model.Outcome, error)
}
