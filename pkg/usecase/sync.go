package usecase

import (
	"context"
	"mime"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lima-uam/github-artifact-sync/pkg/domain/interfaces"
	"github.com/lima-uam/github-artifact-sync/pkg/domain/model"
)

const zipContentType = "application/zip"

// SyncTarget holds the per-instance sync policy: which branch and artifact
// name to watch, and where to install. Immutable after construction.
type SyncTarget struct {
	Branch          string
	Artifact        string
	OutputTemplate  string
	SymlinkTemplate string // optional; empty disables symlink publication
}

type syncUseCase struct {
	githubClient interfaces.GitHubClient
	target       SyncTarget
}

// NewSync creates a new instance of SyncUseCase
func NewSync(githubClient interfaces.GitHubClient, target SyncTarget) interfaces.SyncUseCase {
	return &syncUseCase{
		githubClient: githubClient,
		target:       target,
	}
}

// ProcessWorkflowJob runs the sync pipeline for one workflow_job event:
// status and branch filtering, artifact lookup, download, and installation.
// Evaluation is strictly sequential and terminates at the first outcome.
func (uc *syncUseCase) ProcessWorkflowJob(ctx context.Context, event *model.WorkflowJobEvent) (model.Outcome, error) {
	logger := ctxlog.From(ctx)

	if !event.IsCompleted() {
		logger.Info("the workflow job is not completed yet, ignoring it",
			"status", event.Job.Status,
			"job_id", event.Job.ID,
		)
		return model.OutcomeSkippedStatus, nil
	}

	if event.Job.HeadBranch != uc.target.Branch {
		logger.Info("the workflow job ran on an untracked branch, ignoring it",
			"head_branch", event.Job.HeadBranch,
			"target_branch", uc.target.Branch,
		)
		return model.OutcomeSkippedBranch, nil
	}

	logger.Info("the workflow job has been completed, querying for run artifacts",
		"owner", event.Repo.Owner,
		"repo", event.Repo.Name,
		"run_id", event.Job.RunID,
	)

	artifacts, err := uc.githubClient.ListRunArtifacts(ctx, event.Repo.Owner, event.Repo.Name, event.Job.RunID)
	if err != nil {
		return model.OutcomeUpstreamFailed, goerr.Wrap(err, "failed to query run artifacts")
	}

	// First match in upstream list order. If a run carries multiple
	// artifacts with the same name, upstream ordering decides.
	artifact := selectArtifact(artifacts, uc.target.Artifact)
	if artifact == nil {
		logger.Info("no matching artifact found, nothing to do",
			"artifact", uc.target.Artifact,
			"count", len(artifacts),
		)
		return model.OutcomeNoArtifact, nil
	}

	logger.Info("found matching artifact, downloading it",
		"artifact_id", artifact.ID,
		"name", artifact.Name,
		"url", artifact.ArchiveDownloadURL,
	)

	archive, err := uc.githubClient.DownloadArtifact(ctx, event.Repo.Owner, event.Repo.Name, artifact.ID)
	if err != nil {
		return model.OutcomeDownloadFailed, goerr.Wrap(err, "failed to download artifact archive")
	}

	if !isZipContentType(archive.ContentType) {
		return model.OutcomeBadContentType, goerr.New("artifact download is not a zip archive",
			goerr.V("content_type", archive.ContentType),
			goerr.V("artifact_id", artifact.ID),
		)
	}

	return uc.install(ctx, archive, event.Job.HeadSHA)
}

func selectArtifact(artifacts []*model.Artifact, name string) *model.Artifact {
	for _, a := range artifacts {
		if a.Name == name {
			return a
		}
	}
	return nil
}

func isZipContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.EqualFold(mediaType, zipContentType)
}
