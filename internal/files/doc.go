// Package files groups the shader-file sub-packages:
//   - filesystem: filesystem abstraction (OS and in-memory)
//   - scanner: target validation and shader candidate discovery
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/spvc/internal/files/filesystem"
//	    "github.com/vvka-141/spvc/internal/files/scanner"
//	)
//
//	fileScanner := scanner.NewScanner()
//	candidates, err := fileScanner.ScanDirectory("./data/shaders/glsl")
//
//	// Tests use an in-memory tree
//	mem := filesystem.NewMemoryFileSystem("/shaders")
//	mem.AddFile("/shaders/mesh.vert", "#version 450")
//	candidates, err = scanner.NewScannerWithFS(mem).ScanDirectory("/shaders")
package files
