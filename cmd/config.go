package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/catalog/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the embedded example configuration to the --config path.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("%s Wrote %s\n", okStyle.Render("✓"), path)
}
