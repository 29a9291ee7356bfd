package tagrm

import (
	"fmt"
	"time"
)

const (
	// DefaultTimeout bounds every single backend invocation.
	DefaultTimeout = 5 * time.Second

	// DefaultRemote is the remote tags are deleted from.
	DefaultRemote = "origin"
)

// Mode selects the grouping strategy.
type Mode uint8

const (
	// ModeNone means no grouping was requested; Validate rejects it.
	ModeNone Mode = iota
	// ModeBeta groups beta tags by branch.
	ModeBeta
	// ModeRelease lists SemVer release tags.
	ModeRelease
)

// String returns a stable textual representation for Mode.
func (m Mode) String() string {
	switch m {
	case ModeBeta:
		return "beta"
	case ModeRelease:
		return "release"
	default:
		return "none"
	}
}

// Options configures a Session.
type Options struct {
	// Filter keeps only tags containing this substring. Empty keeps all.
	Filter string

	// Remote to delete tags from. Empty means DefaultRemote.
	Remote string

	// Timeout per backend invocation. Zero means DefaultTimeout.
	Timeout time.Duration

	// Mode picks beta or release grouping.
	Mode Mode

	// AutoConfirm skips the Yes/Back/No confirmation.
	AutoConfirm bool
}

// DefaultOptions returns the default remote and timeout. Mode is left as
// ModeNone; callers must pick one before Validate accepts the options.
func DefaultOptions() Options {
	return Options{
		Remote:  DefaultRemote,
		Timeout: DefaultTimeout,
	}
}

// Validate reports an unusable configuration.
func (o Options) Validate() error {
	if o.Mode != ModeBeta && o.Mode != ModeRelease {
		return fmt.Errorf("invalid mode %q: one of beta or release is required", o.Mode)
	}

	if o.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", o.Timeout)
	}

	return nil
}

// normalized returns a copy with implicit defaults applied.
func (o Options) normalized() Options {
	out := o

	if out.Remote == "" {
		out.Remote = DefaultRemote
	}

	if out.Timeout == 0 {
		out.Timeout = DefaultTimeout
	}

	return out
}
