package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lima-uam/github-artifact-sync/pkg/cli/config"
)

func TestSync_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Sync
		wantErr bool
	}{
		{
			name: "valid with symlink",
			cfg: config.Sync{
				Branch:          "main",
				Artifact:        "app",
				OutputTemplate:  "/deploy/{HEAD_SHA}",
				SymlinkTemplate: "/deploy/latest",
			},
		},
		{
			name: "valid without symlink",
			cfg: config.Sync{
				Branch:         "main",
				Artifact:       "app",
				OutputTemplate: "/deploy/{HEAD_SHA}",
			},
		},
		{
			name: "empty output template",
			cfg: config.Sync{
				Branch:   "main",
				Artifact: "app",
			},
			wantErr: true,
		},
		{
			name: "traversal in output template",
			cfg: config.Sync{
				Branch:         "main",
				Artifact:       "app",
				OutputTemplate: "/deploy/../etc/{HEAD_SHA}",
			},
			wantErr: true,
		},
		{
			name: "symlink equals output",
			cfg: config.Sync{
				Branch:          "main",
				Artifact:        "app",
				OutputTemplate:  "/deploy/{HEAD_SHA}",
				SymlinkTemplate: "/deploy/{HEAD_SHA}",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}
