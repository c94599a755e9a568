package prefix

import (
	"errors"
	"fmt"
	"strings"

	"algovanity/internal/account"
)

// ErrInvalidPrefix means the requested prefix can never match a real
// address, so a search over it would run forever.
var ErrInvalidPrefix = errors.New("invalid prefix")

// Validate accepts a prefix iff it is non-empty, no longer than an
// address, and made of upper case letters A-Z and digits 2-7 only.
func Validate(p string) error {
	if p == "" {
		return fmt.Errorf("%w: must not be empty", ErrInvalidPrefix)
	}
	if len(p) > account.AddressLen {
		return fmt.Errorf("%w: %d characters is longer than an address", ErrInvalidPrefix, len(p))
	}
	for i := 0; i < len(p); i++ {
		c := p[i]
		if (c >= 'A' && c <= 'Z') || (c >= '2' && c <= '7') {
			continue
		}
		return fmt.Errorf("%w: can only contain upper case letters A-Z and numbers 2-7, got %q", ErrInvalidPrefix, string(c))
	}
	return nil
}

// Matcher tests addresses against a validated prefix. Safe for
// concurrent use; it is read-only after construction.
type Matcher struct {
	prefix string
}

func New(p string) (Matcher, error) {
	if err := Validate(p); err != nil {
		return Matcher{}, err
	}
	return Matcher{prefix: p}, nil
}

func (m Matcher) Prefix() string { return m.prefix }

func (m Matcher) Matches(addr string) bool {
	return strings.HasPrefix(addr, m.prefix)
}
