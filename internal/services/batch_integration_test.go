package services

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/spvc/internal/compiler"
	"github.com/vvka-141/spvc/internal/files/scanner"
	"github.com/vvka-141/spvc/internal/logging"
	testhelpers "github.com/vvka-141/spvc/internal/testing"
	"github.com/vvka-141/spvc/pkg/spvc"
)

func TestBatchService_WithFakeCompiler(t *testing.T) {
	fake := testhelpers.NewFakeCompiler(t)
	dir := t.TempDir()
	testhelpers.WriteShaders(t, dir,
		"a.vert", "b_fail.frag", "notes.txt", "raytracing_foo.vert", "c.comp")

	var stdout, stderr bytes.Buffer
	svc := NewBatchService(
		scanner.NewScanner(),
		compiler.New(fake.Path, compiler.WithOutput(&stdout, &stderr)),
		logging.NewNullLogger(),
	)

	summary, err := svc.Run(context.Background(), spvc.BatchConfig{TargetDir: dir})
	require.NoError(t, err)

	calls := fake.Invocations(t)
	require.Len(t, calls, 3)
	var attempted []string
	for _, c := range calls {
		require.Len(t, c, 3)
		assert.Equal(t, "-o", c[1])
		assert.Equal(t, c[0]+".spv", c[2])
		attempted = append(attempted, filepath.Base(c[0]))
	}
	assert.ElementsMatch(t, []string{"a.vert", "b_fail.frag", "c.comp"}, attempted)

	assert.Equal(t, []string{filepath.Join(dir, "b_fail.frag")}, summary.FailedPaths())
	assert.FileExists(t, filepath.Join(dir, "a.vert.spv"))
	assert.FileExists(t, filepath.Join(dir, "c.comp.spv"))
	assert.NoFileExists(t, filepath.Join(dir, "raytracing_foo.vert.spv"))
	assert.Contains(t, stderr.String(), "fake failure")
}

func TestBatchService_FailureOrderMatchesAttemptOrder(t *testing.T) {
	fake := testhelpers.NewFakeCompiler(t)
	dir := t.TempDir()
	testhelpers.WriteShaders(t, dir, "x_fail.vert", "y_fail.frag", "z_fail.comp")

	var stdout, stderr bytes.Buffer
	svc := NewBatchService(
		scanner.NewScanner(),
		compiler.New(fake.Path, compiler.WithOutput(&stdout, &stderr)),
		logging.NewNullLogger(),
	)

	summary, err := svc.Run(context.Background(), spvc.BatchConfig{TargetDir: dir})
	require.NoError(t, err)

	var attempted []string
	for _, c := range fake.Invocations(t) {
		attempted = append(attempted, c[0])
	}
	assert.Equal(t, attempted, summary.FailedPaths())
}
