// Package compiler runs the external shader compiler for one candidate at a time.
//
// The compiler is invoked as an argument list, never through a shell:
//
//	glslc <source> -o <source>.spv
//
// Its stdout and stderr are passed through unmodified. Classification looks
// only at the exit status, plus an optional check that the output starts
// with the SPIR-V magic word.
package compiler
