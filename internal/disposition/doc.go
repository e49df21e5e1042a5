// Package disposition reads and writes the kernel signal dispositions of the
// current process via rt_sigaction(2).
//
// os/signal deliberately hides the kernel's view of signal handling: it
// cannot report what disposition a signal had before the Go runtime started,
// and signal.Reset only ever reinstalls the runtime's own handler. Restoring
// a pre-existing disposition byte-for-byte therefore requires talking to the
// kernel directly. Records are treated as opaque images: captured, held
// unmodified, and written back verbatim.
//
// Only Linux on non-MIPS architectures is supported. MIPS uses a different
// struct sigaction layout and a larger _NSIG, so it is excluded together
// with every other platform; there, all functions return ErrUnsupported and
// Supported reports false.
package disposition
