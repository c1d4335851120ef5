package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub credentials configuration
type GitHub struct {
	WebhookSecret string
	Token         string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "webhook-secret",
			Usage:       "Shared secret for webhook signature verification",
			Required:    true,
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars("GH_ARTIFACT_SYNC_SECRET"),
		},
		&cli.StringFlag{
			Name:        "token",
			Usage:       "GitHub API token for artifact access",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("GH_ARTIFACT_SYNC_TOKEN"),
		},
	}
}
