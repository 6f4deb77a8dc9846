// Package scanner provides target validation and shader discovery.
//
// The scanner package is responsible for:
//   - Rejecting target paths that are missing or are not directories
//   - Listing the direct children of the target (no recursion)
//   - Selecting files whose final extension is a shader stage suffix
//   - Skipping ray-tracing shaders, which are compiled at runtime instead
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
