package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/spvc/internal/files/filesystem"
	"github.com/vvka-141/spvc/pkg/spvc"
)

// Scanner validates target directories and discovers shader candidates.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new scanner over the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
	}
}

// ValidateTarget checks that path exists and is a directory.
// The returned error is a *spvc.InvalidPathError.
func (s *Scanner) ValidateTarget(path string) error {
	info, err := s.fsProvider.Stat(path)
	if err != nil {
		reason := "cannot be accessed"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "does not exist"
		}
		return &spvc.InvalidPathError{Path: path, Reason: reason, Err: err}
	}
	if !info.IsDir() {
		return &spvc.InvalidPathError{Path: path, Reason: "not a directory"}
	}
	return nil
}

// ScanDirectory lists the direct children of dir and returns the eligible
// shader sources in listing order. No sorting is applied.
func (s *Scanner) ScanDirectory(dir string) ([]spvc.Candidate, error) {
	if err := s.ValidateTarget(dir); err != nil {
		return nil, err
	}

	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var candidates []spvc.Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		stage, ok := Classify(name)
		if !ok {
			continue
		}
		candidates = append(candidates, spvc.Candidate{
			Path:  filepath.Join(dir, name),
			Name:  name,
			Stage: stage,
		})
	}

	return candidates, nil
}

// Classify reports whether a filename is a batch-compilable shader and, if so,
// its stage. The final dot-delimited field must be a known stage suffix
// (case-sensitive) and the name must not carry the ray-tracing marker.
// A name without a dot is its own final field, so a file named "vert" qualifies.
func Classify(name string) (spvc.Stage, bool) {
	if IsRayTracing(name) {
		return "", false
	}
	return spvc.StageForExtension(name[strings.LastIndexByte(name, '.')+1:])
}

// IsRayTracing reports whether a filename is reserved for the runtime
// ray-tracing compilation path.
func IsRayTracing(name string) bool {
	return strings.Contains(name, spvc.RayTracingMarker)
}

// Verify Scanner implements the interface at compile time
var _ spvc.ShaderScanner = (*Scanner)(nil)
