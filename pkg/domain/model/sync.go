package model

import "net/http"

// Outcome is the terminal state of one sync pipeline run. Every request
// ends in exactly one outcome; there is no retry loop, redelivery is the
// webhook sender's responsibility.
type Outcome string

const (
	// OutcomeSkippedStatus: the job has not completed yet.
	OutcomeSkippedStatus Outcome = "skipped_status"
	// OutcomeSkippedBranch: the job ran on a branch this instance does not track.
	OutcomeSkippedBranch Outcome = "skipped_branch"
	// OutcomeNoArtifact: the run produced no artifact with the configured name.
	OutcomeNoArtifact Outcome = "no_artifact"
	// OutcomeUpstreamFailed: the artifact list call failed or returned garbage.
	OutcomeUpstreamFailed Outcome = "upstream_failed"
	// OutcomeDownloadFailed: the archive download failed.
	OutcomeDownloadFailed Outcome = "download_failed"
	// OutcomeBadContentType: the download response is not a zip archive.
	OutcomeBadContentType Outcome = "bad_content_type"
	// OutcomeExtractFailed: path resolution or archive extraction failed.
	OutcomeExtractFailed Outcome = "extract_failed"
	// OutcomeSymlinkFailed: extraction succeeded but symlink publication failed.
	OutcomeSymlinkFailed Outcome = "symlink_failed"
	// OutcomeInstalled: the artifact was extracted and published.
	OutcomeInstalled Outcome = "installed"
)

// OK reports whether the outcome is a non-failure terminal state.
func (o Outcome) OK() bool {
	switch o {
	case OutcomeSkippedStatus, OutcomeSkippedBranch, OutcomeNoArtifact, OutcomeInstalled:
		return true
	}
	return false
}

// HTTPStatus maps the outcome to the response code returned to the webhook
// sender. No-op and success outcomes are both 204: the sender gets no more
// detail than "accepted"; failure detail is operator-visible in logs only.
func (o Outcome) HTTPStatus() int {
	if o.OK() {
		return http.StatusNoContent
	}
	return http.StatusInternalServerError
}
