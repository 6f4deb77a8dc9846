package spvc

// ShaderScanner discovers shader sources in a target directory.
type ShaderScanner interface {
	// ValidateTarget checks that path exists and is a directory.
	// Errors wrap ErrInvalidPath.
	ValidateTarget(path string) error

	// ScanDirectory lists the direct children of dir and returns every
	// eligible shader candidate in listing order.
	ScanDirectory(dir string) ([]Candidate, error)
}
