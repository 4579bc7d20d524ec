package types

import (
	"regexp"
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	// ChainIDSeparator separates the chain name from its rolling revision suffix in a native chain ID
	ChainIDSeparator = "-"

	// MinChainIdentityLength is the minimum length of a chain identity
	MinChainIdentityLength = 3

	// MaxChainIdentityLength is the maximum length of a chain identity
	MaxChainIdentityLength = 20
)

// IsValidChainIdentity matches lowercase alphabetic segments joined by single separators
var IsValidChainIdentity = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`).MatchString

// ChainIdentity is the canonical, revision independent name of a chain. It is used as the key
// for all per counterparty state.
type ChainIdentity string

// ChainIdentityFromChainID derives the chain identity from a native chain ID by truncating it at
// the last separator, so that "juno-1" and "juno-2" resolve to the same identity "juno".
func ChainIdentityFromChainID(chainID string) ChainIdentity {
	name := strings.ToLower(strings.TrimSpace(chainID))
	if i := strings.LastIndex(name, ChainIDSeparator); i > 0 {
		name = name[:i]
	}

	return ChainIdentity(name)
}

// ParseChainIdentity parses and validates the provided chain identity string
func ParseChainIdentity(s string) (ChainIdentity, error) {
	chain := ChainIdentity(s)
	if err := chain.Validate(); err != nil {
		return "", err
	}

	return chain, nil
}

// Validate performs basic validation of the chain identity
func (c ChainIdentity) Validate() error {
	if len(c) < MinChainIdentityLength || len(c) > MaxChainIdentityLength {
		return sdkerrors.Wrapf(
			ErrInvalidChainIdentity,
			"chain identity %q must be %d-%d characters in length", c, MinChainIdentityLength, MaxChainIdentityLength,
		)
	}

	if !IsValidChainIdentity(string(c)) {
		return sdkerrors.Wrapf(
			ErrInvalidChainIdentity,
			"chain identity %q must contain lowercase letters separated by %q", c, ChainIDSeparator,
		)
	}

	return nil
}

// String implements fmt.Stringer
func (c ChainIdentity) String() string {
	return string(c)
}
