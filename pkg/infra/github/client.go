package github

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lima-uam/github-artifact-sync/pkg/domain/interfaces"
	"github.com/lima-uam/github-artifact-sync/pkg/domain/model"
	"github.com/lima-uam/github-artifact-sync/pkg/domain/types"
)

// downloadTimeout bounds both the artifact list call and the archive
// download so a stalled upstream cannot hold a request goroutine forever.
const downloadTimeout = 60 * time.Second

type client struct {
	githubClient *github.Client
}

// Option is a functional option for client configuration
type Option func(*client) error

// WithBaseURL overrides the GitHub API base URL. Intended for tests.
func WithBaseURL(rawURL string) Option {
	return func(c *client) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("url", rawURL))
		}
		c.githubClient.BaseURL = u
		return nil
	}
}

// NewClient creates a new GitHub client authenticated with a bearer token
func NewClient(token string, opts ...Option) (interfaces.GitHubClient, error) {
	if token == "" {
		return nil, goerr.New("GitHub API token is empty")
	}

	httpClient := &http.Client{Timeout: downloadTimeout}
	githubClient := github.NewClient(httpClient).WithAuthToken(token)
	githubClient.UserAgent = "github-artifact-sync/" + types.Version

	c := &client{githubClient: githubClient}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ListRunArtifacts lists the artifacts produced by a workflow run. Any
// transport failure, non-2xx status or schema mismatch surfaces as a single
// opaque error; the caller does not distinguish between them.
func (c *client) ListRunArtifacts(ctx context.Context, owner, repo string, runID int64) ([]*model.Artifact, error) {
	list, _, err := c.githubClient.Actions.ListWorkflowRunArtifacts(ctx, owner, repo, runID, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workflow run artifacts",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("run_id", runID))
	}

	artifacts := make([]*model.Artifact, 0, len(list.Artifacts))
	for _, a := range list.Artifacts {
		artifacts = append(artifacts, &model.Artifact{
			ID:                 a.GetID(),
			Name:               a.GetName(),
			ArchiveDownloadURL: a.GetArchiveDownloadURL(),
		})
	}

	return artifacts, nil
}

// DownloadArtifact downloads the zip archive of an artifact and returns the
// raw bytes along with the response content type.
func (c *client) DownloadArtifact(ctx context.Context, owner, repo string, artifactID int64) (*model.ArtifactArchive, error) {
	// Resolve the archive download URL, following up to 3 redirects
	u, _, err := c.githubClient.Actions.DownloadArtifact(ctx, owner, repo, artifactID, 3)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve artifact download URL",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("artifact_id", artifactID))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download request", goerr.V("url", u.String()))
	}

	// Reuse the authenticated transport of the API client
	httpClient := &http.Client{
		Transport: c.githubClient.Client().Transport,
		Timeout:   downloadTimeout,
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download artifact archive", goerr.V("url", u.String()))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected status code for artifact download",
			goerr.V("status", resp.StatusCode), goerr.V("url", u.String()))
	}

	// The whole archive is buffered in memory. Acceptable for the build
	// artifacts this service targets; large artifacts would need streaming.
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read artifact archive body")
	}

	return &model.ArtifactArchive{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
