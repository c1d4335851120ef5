package model

// Artifact is the upstream-reported metadata of a workflow run artifact.
type Artifact struct {
	ID                 int64
	Name               string
	ArchiveDownloadURL string
}

// ArtifactArchive is a downloaded artifact archive held in memory for the
// duration of one request. ContentType carries the response header used to
// confirm the body is a zip before extraction.
type ArtifactArchive struct {
	Data        []byte
	ContentType string
}
