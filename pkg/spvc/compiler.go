package spvc

import "context"

// Compiler turns one shader source into a SPIR-V module.
type Compiler interface {
	// Compile runs the external compiler for a single candidate.
	// It never returns an error: failures are reported in the result.
	Compile(ctx context.Context, c Candidate) CompileResult
}

// BatchDriver runs the discover, compile, report pipeline.
type BatchDriver interface {
	// Run validates the target, compiles every candidate sequentially and
	// returns the summary. Fatal errors (invalid path, cancellation) are
	// returned before or instead of a summary.
	Run(ctx context.Context, config BatchConfig) (*BatchSummary, error)
}
