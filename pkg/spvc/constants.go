package spvc

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Batch completed (individual shaders may still have failed)
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration or flag values
	ExitCompilationFailed = 13 // One or more shaders failed and --strict was set
	ExitInvalidPath       = 14 // Target path missing or not a directory
)

const (
	// DefaultCompiler is the shader compiler executable looked up on PATH.
	DefaultCompiler = "glslc"

	// CompilerEnvVar overrides the compiler when --compiler is not given.
	CompilerEnvVar = "SPVC_COMPILER"

	// OutputExtension is appended to each source path to form its output path.
	OutputExtension = ".spv"

	// RayTracingMarker marks shaders that are compiled online at runtime.
	// Any filename containing it is skipped by the batch driver.
	RayTracingMarker = "raytracing_"

	// SPIRVMagic is the first word of every SPIR-V module.
	SPIRVMagic uint32 = 0x07230203

	// ReportHeader opens every summary printed after a batch.
	ReportHeader = "-------- Compilation result --------"

	// ReportSuccess is printed when no shader failed.
	ReportSuccess = "SUCCESS: All shaders compiled to SPIR-V"
)
