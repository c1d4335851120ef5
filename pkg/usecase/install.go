package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lima-uam/github-artifact-sync/pkg/domain/model"
	"github.com/lima-uam/github-artifact-sync/pkg/utils/pathtmpl"
)

// install extracts the downloaded archive into the resolved output
// directory and, if configured, atomically republishes the symlink.
// Extraction uses overwrite semantics so replaying the same event is safe.
func (uc *syncUseCase) install(ctx context.Context, archive *model.ArtifactArchive, headSHA string) (model.Outcome, error) {
	logger := ctxlog.From(ctx)

	outputDir, err := pathtmpl.Resolve(uc.target.OutputTemplate, headSHA)
	if err != nil {
		return model.OutcomeExtractFailed, goerr.Wrap(err, "failed to resolve output path template")
	}

	if err := extractZip(archive.Data, outputDir); err != nil {
		return model.OutcomeExtractFailed, goerr.Wrap(err, "failed to extract artifact archive",
			goerr.V("output_dir", outputDir))
	}

	logger.Info("extracted artifact archive",
		"output_dir", outputDir,
		"size_bytes", len(archive.Data),
	)

	if uc.target.SymlinkTemplate == "" {
		return model.OutcomeInstalled, nil
	}

	symlinkPath, err := pathtmpl.Resolve(uc.target.SymlinkTemplate, headSHA)
	if err != nil {
		return model.OutcomeSymlinkFailed, goerr.Wrap(err, "failed to resolve symlink path template")
	}
	if symlinkPath == outputDir {
		return model.OutcomeSymlinkFailed, goerr.New("symlink path equals output path",
			goerr.V("path", symlinkPath))
	}

	if err := replaceSymlink(outputDir, symlinkPath); err != nil {
		// Extraction succeeded but publication failed: a distinct,
		// diagnosable state for operators.
		return model.OutcomeSymlinkFailed, goerr.Wrap(err, "failed to publish symlink",
			goerr.V("symlink", symlinkPath), goerr.V("target", outputDir))
	}

	logger.Info("published latest symlink",
		"symlink", symlinkPath,
		"target", outputDir,
	)

	return model.OutcomeInstalled, nil
}

// extractZip extracts zipData into destDir, creating intermediate
// directories as needed. All entry paths are validated against directory
// escape before any entry is written.
func extractZip(zipData []byte, destDir string) error {
	zipReader, err := zip.NewReader(bytes.NewReader(zipData), int64(len(zipData)))
	if err != nil {
		return goerr.Wrap(err, "failed to open zip archive")
	}

	for _, file := range zipReader.File {
		if _, err := entryDestPath(file.Name, destDir); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", destDir))
	}

	for _, file := range zipReader.File {
		if err := extractFile(file, destDir); err != nil {
			return goerr.Wrap(err, "failed to extract file", goerr.V("file", file.Name))
		}
	}

	return nil
}

// entryDestPath resolves an archive entry name inside destDir, rejecting
// entries that would escape it via path traversal.
func entryDestPath(name, destDir string) (string, error) {
	destPath := filepath.Join(destDir, name)
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", goerr.New("zip entry escapes output directory",
			goerr.V("entry", name), goerr.V("dest", destPath))
	}
	return destPath, nil
}

// extractFile extracts a single entry to the destination directory,
// overwriting any existing file at the same path.
func extractFile(file *zip.File, destDir string) error {
	destPath, err := entryDestPath(file.Name, destDir)
	if err != nil {
		return err
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(destPath, file.FileInfo().Mode())
	}

	rc, err := file.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open entry in zip")
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return goerr.Wrap(err, "failed to create parent directories",
			goerr.V("dir", filepath.Dir(destPath)))
	}

	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.FileInfo().Mode())
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("path", destPath))
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, rc); err != nil {
		return goerr.Wrap(err, "failed to copy entry content", goerr.V("path", destPath))
	}

	return nil
}

// replaceSymlink atomically points symlinkPath at target. The new link is
// created under a request-local temporary name and renamed over the final
// name, so a concurrent reader never observes a missing or half-made link.
func replaceSymlink(target, symlinkPath string) error {
	if err := os.MkdirAll(filepath.Dir(symlinkPath), 0755); err != nil {
		return goerr.Wrap(err, "failed to create symlink parent directory")
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", symlinkPath, os.Getpid())
	if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
		return goerr.Wrap(err, "failed to clear stale temporary symlink", goerr.V("path", tmpPath))
	}

	if err := os.Symlink(target, tmpPath); err != nil {
		return goerr.Wrap(err, "failed to create temporary symlink", goerr.V("path", tmpPath))
	}

	if err := os.Rename(tmpPath, symlinkPath); err != nil {
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to rename symlink into place", goerr.V("path", symlinkPath))
	}

	return nil
}
