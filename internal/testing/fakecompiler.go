package testing

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// FakeCompilerScript stands in for glslc. It is driven by the source filename:
//
//	*fail*    prints a diagnostic to stderr and exits 1
//	*exit3*   exits 3 without output
//	*badout*  exits 0 but writes a file that is not SPIR-V
//	*sleep*   sleeps for 5 seconds without writing output
//	otherwise writes the SPIR-V magic word to the output path and exits 0
//
// Every invocation appends its arguments, '|'-terminated, to invocations.log
// next to the script.
const FakeCompilerScript = `#!/bin/sh
log="$(dirname "$0")/invocations.log"
for a in "$@"; do printf '%s|' "$a" >> "$log"; done
echo >> "$log"
src="$1"
out="$3"
case "$(basename "$src")" in
  *fail*) echo "$src:1: error: fake failure" >&2; exit 1 ;;
  *exit3*) exit 3 ;;
  *badout*) printf 'not spirv' > "$out"; exit 0 ;;
  *sleep*) exec sleep 5 ;;
esac
printf '\003\002\043\007' > "$out"
exit 0
`

// FakeCompiler is an executable shell script installed in a temp directory.
type FakeCompiler struct {
	Path    string
	logPath string
}

// NewFakeCompiler writes FakeCompilerScript into a fresh temp dir.
// Skips the test on platforms without /bin/sh.
func NewFakeCompiler(t testing.TB) *FakeCompiler {
	t.Helper()
	SkipWithoutShell(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "glslc")
	if err := os.WriteFile(path, []byte(FakeCompilerScript), 0755); err != nil {
		t.Fatalf("failed to write fake compiler: %v", err)
	}
	return &FakeCompiler{Path: path, logPath: filepath.Join(dir, "invocations.log")}
}

// Invocations returns the argument lists the fake compiler received, in order.
func (f *FakeCompiler) Invocations(t testing.TB) [][]string {
	t.Helper()
	data, err := os.ReadFile(f.logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("failed to read invocation log: %v", err)
	}

	var calls [][]string
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if line == "" {
			continue
		}
		calls = append(calls, strings.Split(strings.TrimSuffix(line, "|"), "|"))
	}
	return calls
}

// SkipWithoutShell skips tests that execute shell scripts.
func SkipWithoutShell(t testing.TB) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake compiler requires /bin/sh")
	}
}

// WriteShaders creates empty shader sources in dir.
func WriteShaders(t testing.TB, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("#version 450\nvoid main() {}\n"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}
