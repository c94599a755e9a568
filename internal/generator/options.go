package generator

import (
	"errors"
	"time"

	"algovanity/internal/account"
)

// ErrInvalidWorkerCount means the requested worker count resolved to
// zero, which would make the search a no-op.
var ErrInvalidWorkerCount = errors.New("cannot have worker count set to 0")

type Options struct {
	Prefix string // target address prefix, A-Z2-7 only
	Output string // path of the JSON result array
	Number uint64 // stop after this many matches; 0 = run until cancelled
	// Workers sets the worker count. Positive values are used verbatim,
	// negative values leave that many cores unused. Zero is rejected.
	Workers int

	StatusEvery time.Duration // progress refresh interval, default 2s

	// Trial overrides the keypair source; nil means account.Generate.
	// Used in tests.
	Trial func() (account.Account, error)
}

// ResolveWorkers turns the user-facing worker setting into an actual
// goroutine count given the number of available cores.
func ResolveWorkers(requested, cores int) (int, error) {
	if requested < 0 {
		n := cores + requested
		if n < 1 {
			n = 1
		}
		return n, nil
	}
	if requested == 0 {
		return 0, ErrInvalidWorkerCount
	}
	return requested, nil
}
