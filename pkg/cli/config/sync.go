package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lima-uam/github-artifact-sync/pkg/utils/pathtmpl"
)

// Sync holds the artifact sync target configuration
type Sync struct {
	Branch          string
	Artifact        string
	OutputTemplate  string
	SymlinkTemplate string
}

// Flags returns CLI flags for sync configuration
func (c *Sync) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Branch whose workflow jobs trigger a sync",
			Value:       "main",
			Destination: &c.Branch,
			Sources:     cli.EnvVars("GH_ARTIFACT_SYNC_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "artifact",
			Usage:       "Name of the workflow artifact to sync",
			Required:    true,
			Destination: &c.Artifact,
			Sources:     cli.EnvVars("GH_ARTIFACT_SYNC_ARTIFACT"),
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Output directory template, e.g. /deploy/" + pathtmpl.Placeholder,
			Required:    true,
			Destination: &c.OutputTemplate,
			Sources:     cli.EnvVars("GH_ARTIFACT_SYNC_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        "symlink",
			Usage:       "Optional symlink template repointed at the newest extraction",
			Destination: &c.SymlinkTemplate,
			Sources:     cli.EnvVars("GH_ARTIFACT_SYNC_SYMLINK"),
		},
	}
}

// Validate checks the sync configuration at startup. An invalid target is a
// configuration error and fatal at boot, never a per-request fault.
func (c *Sync) Validate() error {
	// Resolve with a plausible hash so template errors surface at startup
	const probeSHA = "0000000000000000000000000000000000000000"

	output, err := pathtmpl.Resolve(c.OutputTemplate, probeSHA)
	if err != nil {
		return goerr.Wrap(err, "invalid output template")
	}

	if c.SymlinkTemplate == "" {
		return nil
	}

	symlink, err := pathtmpl.Resolve(c.SymlinkTemplate, probeSHA)
	if err != nil {
		return goerr.Wrap(err, "invalid symlink template")
	}
	if symlink == output {
		return goerr.New("symlink template must differ from output template",
			goerr.V("template", c.SymlinkTemplate))
	}

	return nil
}
