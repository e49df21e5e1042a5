//go:build !linux || mips || mipsle || mips64 || mips64le

package disposition

import "golang.org/x/sys/unix"

// Record is a placeholder on platforms without direct rt_sigaction access.
// It carries no state; every operation fails with ErrUnsupported.
type Record struct{}

// Supported reports that direct disposition control is unavailable.
func Supported() bool {
	return false
}

// IsDefault always reports false: no disposition was ever captured.
func (r Record) IsDefault() bool {
	return false
}

// Get returns ErrUnsupported.
func Get(unix.Signal) (Record, error) {
	return Record{}, ErrUnsupported
}

// Install returns ErrUnsupported.
func Install(unix.Signal, Record) (Record, error) {
	return Record{}, ErrUnsupported
}

// InstallDefault returns ErrUnsupported.
func InstallDefault(unix.Signal) (Record, error) {
	return Record{}, ErrUnsupported
}

// Restore returns ErrUnsupported.
func Restore(unix.Signal, Record) error {
	return ErrUnsupported
}
