package disposition

// Compile-time check that sentinelError implements the error interface.
var _ error = sentinelError("")

// sentinelError is an immutable error backed by a string constant. Unlike
// errors.New it can be declared const, so consumers cannot reassign it, and
// being comparable it matches through wrapped chains with errors.Is.
type sentinelError string

// Error implements the error interface.
func (e sentinelError) Error() string {
	return string(e)
}

// ErrUnsupported is returned by every operation on platforms where the
// kernel signal-disposition table cannot be manipulated directly (anything
// other than Linux on a non-MIPS architecture).
const ErrUnsupported = sentinelError("signal dispositions are not controllable on this platform")
