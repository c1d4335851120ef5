package interfaces

import (
	"context"

	"github.com/lima-uam/github-artifact-sync/pkg/domain/model"
)

// GitHubClient defines operations for interacting with the GitHub API
type GitHubClient interface {
	// ListRunArtifacts lists the artifacts produced by a workflow run
	ListRunArtifacts(ctx context.Context, owner, repo string, runID int64) ([]*model.Artifact, error)

	// DownloadArtifact downloads the zip archive of an artifact
	DownloadArtifact(ctx context.Context, owner, repo string, artifactID int64) (*model.ArtifactArchive, error)
}
