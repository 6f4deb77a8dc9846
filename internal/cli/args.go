package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/spvc/pkg/spvc"
)

// RequireShaderDir validates that exactly one shader_dir argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
// It never touches the filesystem.
func RequireShaderDir(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <shader_dir>

Usage: %s

Example:
  %s ./data/shaders/glsl`, spvc.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", spvc.ErrUsage, len(args))
	}
	return nil
}
