package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/vvka-141/spvc/pkg/spvc"
)

type mockScanner struct {
	validateErr   error
	candidates    []spvc.Candidate
	scanErr       error
	validateCalls int
	scanCalls     int
}

func (m *mockScanner) ValidateTarget(_ string) error {
	m.validateCalls++
	return m.validateErr
}

func (m *mockScanner) ScanDirectory(_ string) ([]spvc.Candidate, error) {
	m.scanCalls++
	return m.candidates, m.scanErr
}

// mockCompiler fails every candidate whose path is listed in exitCodes.
// Paths listed in errs fail with that error and exit code -1.
type mockCompiler struct {
	exitCodes map[string]int
	errs      map[string]error
	calls     []string
	onCompile func(c spvc.Candidate)
}

func (m *mockCompiler) Compile(_ context.Context, c spvc.Candidate) spvc.CompileResult {
	m.calls = append(m.calls, c.Path)
	if m.onCompile != nil {
		m.onCompile(c)
	}
	if err, ok := m.errs[c.Path]; ok {
		return spvc.CompileResult{
			Candidate: c,
			ExitCode:  -1,
			Err:       &spvc.CompilationFailure{Path: c.Path, ExitCode: -1, Err: err},
		}
	}
	code := m.exitCodes[c.Path]
	result := spvc.CompileResult{Candidate: c, ExitCode: code}
	if code != 0 {
		result.Err = &spvc.CompilationFailure{Path: c.Path, ExitCode: code}
	}
	return result
}

type mockLogger struct {
	mu       sync.Mutex
	messages []string
	errors   []string
}

func (m *mockLogger) record(format string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, format)
}

func (m *mockLogger) Verbose(format string, _ ...interface{}) { m.record(format) }
func (m *mockLogger) Info(format string, _ ...interface{})    { m.record(format) }
func (m *mockLogger) Error(format string, args ...interface{}) {
	m.record(format)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, fmt.Sprintf(format, args...))
}
