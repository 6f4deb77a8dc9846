package spvc_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/spvc/pkg/spvc"
)

func TestStageForExtension(t *testing.T) {
	for _, s := range spvc.Stages {
		got, ok := spvc.StageForExtension(string(s))
		assert.True(t, ok, "stage %s", s)
		assert.Equal(t, s, got)
	}

	for _, ext := range []string{"VERT", "Frag", "glsl", "txt", "", ".vert", "rgen"} {
		_, ok := spvc.StageForExtension(ext)
		assert.False(t, ok, "extension %q should not map to a stage", ext)
	}
}

func TestCandidate_OutputPath(t *testing.T) {
	c := spvc.Candidate{Path: "shaders/mesh.vert", Name: "mesh.vert", Stage: spvc.StageVertex}
	assert.Equal(t, "shaders/mesh.vert.spv", c.OutputPath())
}

func TestBatchConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := spvc.BatchConfig{TargetDir: "shaders"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing target", func(t *testing.T) {
		cfg := spvc.BatchConfig{}
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, spvc.ErrUsage))
	})

	t.Run("negative timeout", func(t *testing.T) {
		cfg := spvc.BatchConfig{TargetDir: "shaders", Timeout: -time.Second}
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, spvc.ErrInvalidConfig))
	})
}

func TestBatchSummary(t *testing.T) {
	s := spvc.NewBatchSummary("shaders")
	assert.NotEqual(t, uuid.Nil, s.RunID)
	assert.False(t, s.Failed())
	assert.Empty(t, s.FailedPaths())

	s.Add(spvc.CompileResult{Candidate: spvc.Candidate{Path: "shaders/a.vert"}})
	s.Add(spvc.CompileResult{Candidate: spvc.Candidate{Path: "shaders/b.frag"}, ExitCode: 1, Err: spvc.ErrCompilationFailed})
	s.Add(spvc.CompileResult{Candidate: spvc.Candidate{Path: "shaders/c.comp"}, ExitCode: 2, Err: spvc.ErrCompilationFailed})

	assert.True(t, s.Failed())
	assert.Equal(t, []string{"shaders/b.frag", "shaders/c.comp"}, s.FailedPaths())
	assert.True(t, s.Results[0].Succeeded())
	assert.False(t, s.Results[1].Succeeded())
}

func TestNewBatchSummary_UniqueRunIDs(t *testing.T) {
	a := spvc.NewBatchSummary("x")
	b := spvc.NewBatchSummary("x")
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestBatchSummary_NotAttempted(t *testing.T) {
	s := spvc.NewBatchSummary("shaders")
	assert.Equal(t, 0, s.NotAttempted())

	s.Planned = 3
	s.Add(spvc.CompileResult{Candidate: spvc.Candidate{Path: "shaders/a.vert"}})
	assert.Equal(t, 2, s.NotAttempted())

	s.Add(spvc.CompileResult{Candidate: spvc.Candidate{Path: "shaders/b.frag"}})
	s.Add(spvc.CompileResult{Candidate: spvc.Candidate{Path: "shaders/c.comp"}})
	assert.Equal(t, 0, s.NotAttempted())
}
