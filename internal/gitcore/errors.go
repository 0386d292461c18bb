package gitcore

import "errors"

// Sentinel errors for the error kinds this engine distinguishes. Callers use
// errors.Is to test for a specific kind after a wrapped error bubbles up.
var (
	ErrNotARepository  = errors.New("not a pygit repository")
	ErrPathNotFound    = errors.New("path not found")
	ErrInvalidPathKind = errors.New("path is neither a regular file nor a directory")
	ErrObjectMissing   = errors.New("object not found")
	ErrObjectCorrupt   = errors.New("object is corrupt")
	ErrMalformedIndex  = errors.New("malformed index")
	ErrUnbornBranch    = errors.New("branch has no commits yet")
	ErrBranchNotFound  = errors.New("branch not found")
	ErrMessageRequired = errors.New("commit message required")
)
