package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/spvc/internal/compiler"
	"github.com/vvka-141/spvc/internal/config"
	"github.com/vvka-141/spvc/internal/files/scanner"
	"github.com/vvka-141/spvc/internal/logging"
	"github.com/vvka-141/spvc/internal/report"
	"github.com/vvka-141/spvc/internal/services"
	"github.com/vvka-141/spvc/internal/tui"
	"github.com/vvka-141/spvc/pkg/spvc"
)

type compileFlagValues struct {
	compiler     string
	timeout      time.Duration
	strict       bool
	verifyOutput bool
}

var compileFlags compileFlagValues

func registerCompileFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&compileFlags.compiler, "compiler", "",
		"Shader compiler executable, resolved via PATH\n"+
			"Precedence: --compiler > $"+spvc.CompilerEnvVar+" > spvc.yaml > "+spvc.DefaultCompiler)
	cmd.Flags().DurationVar(&compileFlags.timeout, "timeout", 0,
		"Per-shader compile timeout (0 = no limit)\n"+
			"A shader that exceeds it counts as failed\n"+
			"Examples: 30s, 2m")
	cmd.Flags().BoolVar(&compileFlags.strict, "strict", false,
		"Exit with code 13 when any shader fails to compile\n"+
			"By default the batch exits 0 and only reports failures")
	cmd.Flags().BoolVar(&compileFlags.verifyOutput, "verify-output", false,
		"Treat a shader as failed unless its .spv output starts with the SPIR-V magic number")
}

// buildBatchConfig resolves the batch configuration from flags, environment
// and spvc.yaml, in that order of precedence.
// targetDir must already have been validated.
func buildBatchConfig(cmd *cobra.Command, targetDir string, logger spvc.Logger, verbose bool) (spvc.BatchConfig, error) {
	_ = godotenv.Load()

	cfg := spvc.BatchConfig{
		TargetDir: targetDir,
		Compiler:  spvc.DefaultCompiler,
		Verbose:   verbose,
	}

	projectCfg, err := config.Load(targetDir)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return spvc.BatchConfig{}, fmt.Errorf("failed to load %s: %w: %w", config.ConfigFileName, err, spvc.ErrInvalidConfig)
	}
	if projectCfg != nil {
		logger.Verbose("Using %s from %s", config.ConfigFileName, targetDir)
		if projectCfg.Compiler != "" {
			cfg.Compiler = projectCfg.Compiler
		}
		timeout, err := projectCfg.TimeoutDuration()
		if err != nil {
			return spvc.BatchConfig{}, fmt.Errorf("%s: %w: %w", config.ConfigFileName, err, spvc.ErrInvalidConfig)
		}
		cfg.Timeout = timeout
		if projectCfg.Strict != nil {
			cfg.Strict = *projectCfg.Strict
		}
		if projectCfg.VerifyOutput != nil {
			cfg.VerifyOutput = *projectCfg.VerifyOutput
		}
	}

	if env := os.Getenv(spvc.CompilerEnvVar); env != "" {
		cfg.Compiler = env
	}

	flags := cmd.Flags()
	if flags.Changed("compiler") && compileFlags.compiler != "" {
		cfg.Compiler = compileFlags.compiler
	}
	if flags.Changed("timeout") {
		cfg.Timeout = compileFlags.timeout
	}
	if flags.Changed("strict") {
		cfg.Strict = compileFlags.strict
	}
	if flags.Changed("verify-output") {
		cfg.VerifyOutput = compileFlags.verifyOutput
	}

	logger.Verbose("Batch configuration:")
	logger.Verbose("  Target: %s", cfg.TargetDir)
	logger.Verbose("  Compiler: %s", cfg.Compiler)
	logger.Verbose("  Timeout: %s", cfg.Timeout)
	logger.Verbose("  Strict: %t", cfg.Strict)
	logger.Verbose("  Verify output: %t", cfg.VerifyOutput)

	if err := cfg.Validate(); err != nil {
		return spvc.BatchConfig{}, err
	}
	return cfg, nil
}

func runCompile(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	targetDir := args[0]
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)

	fileScanner := scanner.NewScanner()
	if err := fileScanner.ValidateTarget(targetDir); err != nil {
		return err
	}

	cfg, err := buildBatchConfig(cmd, targetDir, logger, verbose)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals (Ctrl+C, SIGTERM): stop launching new compiles
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			logger.Info("\n[INTERRUPT] Received interrupt signal, cancelling batch...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runBatch(ctx, cmd, cfg, fileScanner, logger)
}

// runBatch compiles the batch described by cfg and writes the report to the
// command's stdout. A partial summary from an interrupted run is still reported.
func runBatch(ctx context.Context, cmd *cobra.Command, cfg spvc.BatchConfig, fileScanner spvc.ShaderScanner, logger spvc.Logger) error {
	glslc := compiler.New(cfg.Compiler,
		compiler.WithTimeout(cfg.Timeout),
		compiler.WithOutputVerification(cfg.VerifyOutput),
		compiler.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		compiler.WithLogger(logger),
	)
	batch := services.NewBatchService(fileScanner, glslc, logger)

	summary, runErr := batch.Run(ctx, cfg)
	if summary != nil {
		var opts []report.Option
		if !tui.IsStyled() {
			opts = append(opts, report.Plain())
		}
		if err := report.New(cmd.OutOrStdout(), opts...).Write(summary); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return runErr
}
