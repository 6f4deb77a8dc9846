// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The batch driver only ever stats the target directory, lists its direct
// children and, when output verification is enabled, reads compiled modules.
// FileSystemProvider captures exactly that surface.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
