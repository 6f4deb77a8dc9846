package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vvka-141/spvc/pkg/spvc"
)

// BatchService implements the spvc.BatchDriver interface.
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance
// when the injected compiler writes to shared outputs.
type BatchService struct {
	scanner  spvc.ShaderScanner
	compiler spvc.Compiler
	logger   spvc.Logger
}

// NewBatchService creates a new BatchService with all dependencies injected.
// Panics on nil dependencies.
func NewBatchService(scanner spvc.ShaderScanner, compiler spvc.Compiler, logger spvc.Logger) *BatchService {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if compiler == nil {
		panic("compiler cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &BatchService{
		scanner:  scanner,
		compiler: compiler,
		logger:   logger,
	}
}

// Run validates the target, compiles every candidate sequentially in
// discovery order and returns the summary.
//
// A failing candidate never stops the batch. The returned error is non-nil only for:
//   - invalid configuration or target path (summary is nil)
//   - context cancellation between invocations (partial summary)
//   - strict mode with at least one failure (full summary)
func (s *BatchService) Run(ctx context.Context, config spvc.BatchConfig) (*spvc.BatchSummary, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := s.scanner.ValidateTarget(config.TargetDir); err != nil {
		return nil, err
	}

	candidates, err := s.scanner.ScanDirectory(config.TargetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", config.TargetDir, err)
	}

	summary := spvc.NewBatchSummary(config.TargetDir)
	summary.Planned = len(candidates)
	s.logger.Verbose("Run %s: %d shader(s) in %s", summary.RunID, len(candidates), config.TargetDir)

	for i, c := range candidates {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("batch interrupted after %d of %d shader(s): %w", i, len(candidates), err)
		}

		s.logger.Verbose("[%d/%d] %s (%s)", i+1, len(candidates), c.Path, c.Stage)
		result := s.compiler.Compile(ctx, c)
		summary.Add(result)

		// Exit-status failures already printed their own diagnostics.
		var failure *spvc.CompilationFailure
		if errors.As(result.Err, &failure) && failure.Err != nil {
			s.logger.Error("%v", result.Err)
		}
	}

	if config.Strict && summary.Failed() {
		return summary, fmt.Errorf("%d shader(s) could not be compiled: %w", len(summary.FailedPaths()), spvc.ErrCompilationFailed)
	}

	return summary, nil
}

var _ spvc.BatchDriver = (*BatchService)(nil)
