package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spvc <shader_dir>",
	Short: "Batch-compile GLSL shaders to SPIR-V",
	Long: `spvc compiles every shader source directly inside <shader_dir> to SPIR-V
by running an external compiler (glslc by default) once per file:

  glslc <shader_dir>/<name>.<stage> -o <shader_dir>/<name>.<stage>.spv

Files are selected by their final extension: vert, frag, comp, geom, tesc, tese.
Subdirectories are not searched. Files whose name contains "raytracing_" are
skipped; they are compiled online at runtime.

Compiler diagnostics are shown as-is. A summary lists every shader that failed.

Exit Codes:
  0  - Batch completed (some shaders may have failed; see --strict)
  1  - General error
  2  - CLI usage error (missing <shader_dir>, invalid flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration (spvc.yaml or flag values)
  13 - One or more shaders failed and --strict was set
  14 - <shader_dir> does not exist or is not a directory`,
	Args:         RequireShaderDir,
	RunE:         runCompile,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	registerCompileFlags(rootCmd)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
