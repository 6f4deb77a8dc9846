package compiler

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/vvka-141/spvc/internal/files/filesystem"
	"github.com/vvka-141/spvc/internal/logging"
	"github.com/vvka-141/spvc/pkg/spvc"
)

// waitDelay bounds how long Wait blocks on output pipes after the process
// has been killed by a timeout or cancellation.
const waitDelay = 500 * time.Millisecond

// ErrNotSPIRV indicates the compiler exited 0 but the output is not a SPIR-V module.
var ErrNotSPIRV = errors.New("output is not a SPIR-V module")

// GLSLC invokes a glslc-compatible compiler.
type GLSLC struct {
	bin          string
	timeout      time.Duration
	verifyOutput bool
	stdout       io.Writer
	stderr       io.Writer
	fsProvider   filesystem.FileSystemProvider
	logger       spvc.Logger
}

// Option is a functional option for configuring GLSLC.
type Option func(*GLSLC)

// WithTimeout bounds each invocation. Zero or negative disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(g *GLSLC) {
		g.timeout = d
	}
}

// WithOutputVerification enables the SPIR-V magic check on successful runs.
func WithOutputVerification(enabled bool) Option {
	return func(g *GLSLC) {
		g.verifyOutput = enabled
	}
}

// WithOutput redirects the compiler's stdout and stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(g *GLSLC) {
		g.stdout = stdout
		g.stderr = stderr
	}
}

// WithFileSystem sets the provider used to read compiled outputs.
func WithFileSystem(p filesystem.FileSystemProvider) Option {
	return func(g *GLSLC) {
		g.fsProvider = p
	}
}

// WithLogger sets the logger for per-invocation diagnostics.
func WithLogger(l spvc.Logger) Option {
	return func(g *GLSLC) {
		g.logger = l
	}
}

// New creates a compiler runner for bin. An empty bin means spvc.DefaultCompiler.
// By default the child inherits this process's stdout and stderr.
func New(bin string, opts ...Option) *GLSLC {
	if bin == "" {
		bin = spvc.DefaultCompiler
	}
	g := &GLSLC{
		bin:        bin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		fsProvider: filesystem.NewOSFileSystem(),
		logger:     logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Bin returns the configured executable.
func (g *GLSLC) Bin() string {
	return g.bin
}

// Args returns the compiler arguments for a candidate, excluding the executable.
// Relative paths beginning with '-' are prefixed with "./" so the compiler
// does not read them as flags.
func Args(c spvc.Candidate) []string {
	src := c.Path
	if strings.HasPrefix(src, "-") {
		src = "./" + src
	}
	return []string{src, "-o", src + spvc.OutputExtension}
}

// Compile runs the compiler once and classifies the outcome.
func (g *GLSLC) Compile(ctx context.Context, c spvc.Candidate) spvc.CompileResult {
	runCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	args := Args(c)
	cmd := exec.CommandContext(runCtx, g.bin, args...)
	cmd.Stdout = g.stdout
	cmd.Stderr = g.stderr
	cmd.WaitDelay = waitDelay

	g.logger.Verbose("%s %s", g.bin, strings.Join(args, " "))

	start := time.Now()
	err := cmd.Run()
	result := spvc.CompileResult{
		Candidate: c,
		Duration:  time.Since(start),
	}

	if err != nil {
		result.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}

		switch {
		case g.timeout > 0 && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
			err = fmt.Errorf("timed out after %s: %w", g.timeout, context.DeadlineExceeded)
		case result.ExitCode > 0:
			err = nil
		}

		result.Err = &spvc.CompilationFailure{Path: c.Path, ExitCode: result.ExitCode, Err: err}
		g.logger.Verbose("%s failed (exit %d) after %s", c.Path, result.ExitCode, result.Duration)
		return result
	}

	if g.verifyOutput {
		if verr := g.verify(c.OutputPath()); verr != nil {
			result.Err = &spvc.CompilationFailure{Path: c.Path, ExitCode: 0, Err: verr}
			g.logger.Verbose("%s produced invalid output: %v", c.Path, verr)
			return result
		}
	}

	g.logger.Verbose("%s compiled in %s", c.Path, result.Duration)
	return result
}

// verify checks that path starts with the SPIR-V magic word in either byte order.
func (g *GLSLC) verify(path string) error {
	data, err := g.fsProvider.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !IsSPIRV(data) {
		return fmt.Errorf("%s: %w", path, ErrNotSPIRV)
	}
	return nil
}

// IsSPIRV reports whether data begins with the SPIR-V magic number.
func IsSPIRV(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return binary.LittleEndian.Uint32(data) == spvc.SPIRVMagic ||
		binary.BigEndian.Uint32(data) == spvc.SPIRVMagic
}

var _ spvc.Compiler = (*GLSLC)(nil)
