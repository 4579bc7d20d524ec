package types

import (
	"fmt"
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	// LocalTrace is the trace of an account that was created on the chain it lives on
	LocalTrace = "local"

	// TraceSeparator joins the chains an account was provisioned through
	TraceSeparator = ">"

	// AccountSequenceSeparator separates the account trace from its sequence
	AccountSequenceSeparator = "-"

	// MaxTraceLength is the maximum number of hops an account trace may contain
	MaxTraceLength = 6
)

// AccountID uniquely identifies an Account across chains. Trace lists the chains the account was
// provisioned through, oldest first, and is empty for an account local to the chain.
type AccountID struct {
	Trace    []ChainIdentity `json:"trace,omitempty" yaml:"trace"`
	Sequence uint32          `json:"seq" yaml:"seq"`
}

// NewLocalAccountID returns the identifier of a local account with the given sequence
func NewLocalAccountID(sequence uint32) AccountID {
	return AccountID{Sequence: sequence}
}

// NewRemoteAccountID returns the identifier of an account provisioned through the given trace
func NewRemoteAccountID(trace []ChainIdentity, sequence uint32) AccountID {
	return AccountID{Trace: trace, Sequence: sequence}
}

// IsLocal returns true if the account was created on the chain it lives on
func (id AccountID) IsLocal() bool {
	return len(id.Trace) == 0
}

// RemoteOn returns the identifier the account receives once it is provisioned on a host chain,
// reached from the provided origin chain.
func (id AccountID) RemoteOn(origin ChainIdentity) AccountID {
	trace := make([]ChainIdentity, 0, len(id.Trace)+1)
	trace = append(trace, id.Trace...)
	trace = append(trace, origin)

	return AccountID{Trace: trace, Sequence: id.Sequence}
}

// TraceString returns the string representation of the account trace
func (id AccountID) TraceString() string {
	if id.IsLocal() {
		return LocalTrace
	}

	hops := make([]string, len(id.Trace))
	for i, chain := range id.Trace {
		hops[i] = chain.String()
	}

	return strings.Join(hops, TraceSeparator)
}

// String returns the canonical string form of the account id, e.g. "local-7" or "juno>osmosis-7"
func (id AccountID) String() string {
	return fmt.Sprintf("%s%s%d", id.TraceString(), AccountSequenceSeparator, id.Sequence)
}

// Equal returns true if both account ids are identical
func (id AccountID) Equal(other AccountID) bool {
	return id.String() == other.String()
}

// Validate performs basic validation of the account id
func (id AccountID) Validate() error {
	if len(id.Trace) > MaxTraceLength {
		return sdkerrors.Wrapf(ErrInvalidAccountID, "account trace cannot exceed %d hops", MaxTraceLength)
	}

	for _, chain := range id.Trace {
		if err := chain.Validate(); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAccountID, "invalid account trace: %s", err)
		}
	}

	return nil
}

// ParseAccountID parses the canonical string form of an account id
func ParseAccountID(s string) (AccountID, error) {
	i := strings.LastIndex(s, AccountSequenceSeparator)
	if i <= 0 {
		return AccountID{}, sdkerrors.Wrapf(ErrInvalidAccountID, "failed to parse account id %q", s)
	}

	seq, err := strconv.ParseUint(s[i+1:], 10, 32)
	if err != nil {
		return AccountID{}, sdkerrors.Wrapf(ErrInvalidAccountID, "failed to parse account sequence (%s)", s[i+1:])
	}

	var id AccountID
	id.Sequence = uint32(seq)

	if trace := s[:i]; trace != LocalTrace {
		for _, hop := range strings.Split(trace, TraceSeparator) {
			id.Trace = append(id.Trace, ChainIdentity(hop))
		}
	}

	if err := id.Validate(); err != nil {
		return AccountID{}, err
	}

	return id, nil
}

// GenerateAddress returns an sdk.AccAddress derived from the host module address, the origin
// chain and the origin account id. The same inputs always produce the same address.
func GenerateAddress(hostModuleName string, origin ChainIdentity, account AccountID) sdk.AccAddress {
	return sdk.AccAddress(address.Module(hostModuleName, []byte(fmt.Sprintf("%s/%s", origin, account))))
}

// GenerateProxyAddress returns the address on the host chain that represents the relay endpoint
// of the provided client chain. Funds moved by the token transfer primitive land here.
func GenerateProxyAddress(hostModuleName string, origin ChainIdentity) sdk.AccAddress {
	return sdk.AccAddress(address.Module(hostModuleName, []byte(fmt.Sprintf("proxy/%s", origin))))
}
