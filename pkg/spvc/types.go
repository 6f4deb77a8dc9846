package spvc

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stage identifies the pipeline stage a shader source targets.
// The value is the literal file extension without the leading dot.
type Stage string

const (
	StageVertex         Stage = "vert"
	StageFragment       Stage = "frag"
	StageCompute        Stage = "comp"
	StageGeometry       Stage = "geom"
	StageTessControl    Stage = "tesc"
	StageTessEvaluation Stage = "tese"
)

// Stages lists every stage the batch driver compiles.
var Stages = []Stage{
	StageVertex,
	StageFragment,
	StageCompute,
	StageGeometry,
	StageTessControl,
	StageTessEvaluation,
}

// StageForExtension returns the stage for a bare extension ("vert", not ".vert").
// Matching is case-sensitive.
func StageForExtension(ext string) (Stage, bool) {
	for _, s := range Stages {
		if string(s) == ext {
			return s, true
		}
	}
	return "", false
}

// Candidate is a shader source selected for compilation.
type Candidate struct {
	// Path is the target directory joined with Name.
	Path string

	// Name is the base filename.
	Name string

	// Stage is derived from the final extension of Name.
	Stage Stage
}

// OutputPath returns where the compiler writes the SPIR-V module.
func (c Candidate) OutputPath() string {
	return c.Path + OutputExtension
}

// CompileResult records the outcome of a single compiler invocation.
type CompileResult struct {
	Candidate Candidate

	// ExitCode is the compiler's exit status, or -1 if it never started
	// or was terminated by a signal.
	ExitCode int

	// Err is nil on success. On failure it wraps ErrCompilationFailed.
	Err error

	Duration time.Duration
}

// Succeeded reports whether the invocation is classified as a success.
func (r CompileResult) Succeeded() bool {
	return r.Err == nil
}

// BatchConfig controls a single batch run.
type BatchConfig struct {
	// TargetDir is the directory whose direct children are scanned.
	TargetDir string

	// Compiler is the executable name or path. Empty means DefaultCompiler.
	Compiler string

	// Timeout bounds each invocation. Zero disables the limit.
	Timeout time.Duration

	// Strict makes the run return ErrCompilationFailed when any shader failed.
	Strict bool

	// VerifyOutput requires each output file to start with SPIRVMagic.
	VerifyOutput bool

	Verbose bool
}

// Validate checks the config for values that can never work.
func (c *BatchConfig) Validate() error {
	var errs []error

	if c.TargetDir == "" {
		errs = append(errs, fmt.Errorf("target directory is required: %w", ErrUsage))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// BatchSummary is the aggregate outcome of a batch run.
type BatchSummary struct {
	RunID     uuid.UUID
	TargetDir string

	// Planned is the number of candidates discovered for the run.
	Planned int

	// Results holds one entry per candidate in attempt order.
	Results []CompileResult
}

// NewBatchSummary creates an empty summary with a fresh run ID.
func NewBatchSummary(targetDir string) *BatchSummary {
	return &BatchSummary{
		RunID:     uuid.New(),
		TargetDir: targetDir,
	}
}

// Add appends a result.
func (s *BatchSummary) Add(r CompileResult) {
	s.Results = append(s.Results, r)
}

// FailedPaths returns the paths of failed candidates in attempt order.
func (s *BatchSummary) FailedPaths() []string {
	var paths []string
	for _, r := range s.Results {
		if !r.Succeeded() {
			paths = append(paths, r.Candidate.Path)
		}
	}
	return paths
}

// NotAttempted returns how many planned candidates were never compiled,
// which is non-zero only for an interrupted run.
func (s *BatchSummary) NotAttempted() int {
	if n := s.Planned - len(s.Results); n > 0 {
		return n
	}
	return 0
}

// Failed reports whether at least one candidate failed.
func (s *BatchSummary) Failed() bool {
	for _, r := range s.Results {
		if !r.Succeeded() {
			return true
		}
	}
	return false
}
