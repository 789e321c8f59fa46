package helpers

import "os"

// DefaultFileMode is the permission used by Save when it creates a file.
const DefaultFileMode os.FileMode = 0o644

type options struct {
	logger *Logger
	perm   os.FileMode
}

// Option configures Load and Save.
type Option func(*options)

// WithLogger configures the logger for file operations.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithFileMode sets the permission bits Save uses for new files. Existing
// files keep their mode.
func WithFileMode(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

func newOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
		perm:   DefaultFileMode,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
