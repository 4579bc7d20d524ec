package types

import (
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Acknowledgement is written by the host dispatcher for every received packet. Exactly one of
// Result or Error is set.
type Acknowledgement struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// NewResultAcknowledgement returns a successful acknowledgement carrying the action result
func NewResultAcknowledgement(result ActionResult) Acknowledgement {
	bz, err := json.Marshal(result)
	if err != nil {
		panic(err)
	}

	return Acknowledgement{Result: sdk.MustSortJSON(bz)}
}

// NewErrorAcknowledgement returns an error acknowledgement. Only the ABCI code and the redacted
// log of the error are included, so that the acknowledgement is deterministic.
func NewErrorAcknowledgement(err error) Acknowledgement {
	_, code, log := sdkerrors.ABCIInfo(err, false)

	return Acknowledgement{
		Error: fmt.Sprintf("ABCI code: %d: %s", code, log),
	}
}

// Success returns true if the acknowledgement carries a result
func (ack Acknowledgement) Success() bool {
	return len(ack.Result) > 0
}

// ValidateBasic performs basic validation of the acknowledgement
func (ack Acknowledgement) ValidateBasic() error {
	switch {
	case len(ack.Result) > 0 && ack.Error != "":
		return sdkerrors.Wrap(ErrInvalidAcknowledgement, "acknowledgement cannot contain both a result and an error")
	case len(ack.Result) == 0 && strings.TrimSpace(ack.Error) == "":
		return sdkerrors.Wrap(ErrInvalidAcknowledgement, "acknowledgement must contain a result or an error")
	default:
		return nil
	}
}

// Acknowledgement returns the sorted JSON bytes of the acknowledgement
func (ack Acknowledgement) Acknowledgement() []byte {
	bz, err := json.Marshal(ack)
	if err != nil {
		panic(err)
	}

	return sdk.MustSortJSON(bz)
}

// DecodeAcknowledgement unmarshals and validates acknowledgement bytes
func DecodeAcknowledgement(bz []byte) (Acknowledgement, error) {
	var ack Acknowledgement
	if err := json.Unmarshal(bz, &ack); err != nil {
		return Acknowledgement{}, sdkerrors.Wrapf(ErrInvalidAcknowledgement, "cannot unmarshal acknowledgement: %s", err)
	}

	if err := ack.ValidateBasic(); err != nil {
		return Acknowledgement{}, err
	}

	return ack, nil
}

// ActionResult is the action specific payload of a successful acknowledgement
type ActionResult struct {
	CreateRemoteAccount *CreateRemoteAccountResult `json:"create_remote_account,omitempty" yaml:"create_remote_account,omitempty"`
	Dispatch            *DispatchResult            `json:"dispatch,omitempty" yaml:"dispatch,omitempty"`
	Query               *QueryResult               `json:"query,omitempty" yaml:"query,omitempty"`
	Fund                *FundResult                `json:"fund,omitempty" yaml:"fund,omitempty"`
	Register            *RegisterResult            `json:"register,omitempty" yaml:"register,omitempty"`
}

// CreateRemoteAccountResult reports the remote account resolved for the origin account
type CreateRemoteAccountResult struct {
	Address   string    `json:"address"`
	AccountID AccountID `json:"account_id"`
}

// InstructionResult is the output of a single executed instruction
type InstructionResult struct {
	Data json.RawMessage `json:"data,omitempty"`
}

// DispatchResult holds the per instruction results, in instruction order
type DispatchResult struct {
	Results []InstructionResult `json:"results"`
}

// QueryResult holds the raw query responses, in request order
type QueryResult struct {
	Results []json.RawMessage `json:"results"`
}

// FundResult reports the account that was credited
type FundResult struct {
	Address string `json:"address"`
}

// RegisterResult is returned by the host when a client registers its infrastructure
type RegisterResult struct {
	HostAddress  string `json:"host_address"`
	ProxyAddress string `json:"proxy_address"`
}

// DecodeActionResult unmarshals the result carried by a successful acknowledgement
func DecodeActionResult(bz []byte) (ActionResult, error) {
	var result ActionResult
	if err := json.Unmarshal(bz, &result); err != nil {
		return ActionResult{}, sdkerrors.Wrapf(ErrInvalidAcknowledgement, "cannot unmarshal action result: %s", err)
	}

	return result, nil
}

// ResultKind mirrors the outcomes the transport can report for a packet
type ResultKind string

const (
	ResultKindSuccess ResultKind = "success"
	ResultKindError   ResultKind = "error"
	ResultKindTimeout ResultKind = "timeout"
)

// AcknowledgementResult is the outcome of a sent action as observed by the client dispatcher
type AcknowledgementResult struct {
	Kind   ResultKind    `json:"kind" yaml:"kind"`
	Result *ActionResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewSuccessResult returns a successful AcknowledgementResult
func NewSuccessResult(result ActionResult) AcknowledgementResult {
	return AcknowledgementResult{Kind: ResultKindSuccess, Result: &result}
}

// NewErrorResult returns a failed AcknowledgementResult
func NewErrorResult(msg string) AcknowledgementResult {
	return AcknowledgementResult{Kind: ResultKindError, Error: msg}
}

// NewTimeoutResult returns a timed out AcknowledgementResult
func NewTimeoutResult() AcknowledgementResult {
	return AcknowledgementResult{Kind: ResultKindTimeout}
}

// ResultFromAcknowledgement converts a received acknowledgement into an AcknowledgementResult
func ResultFromAcknowledgement(ack Acknowledgement) (AcknowledgementResult, error) {
	if !ack.Success() {
		return NewErrorResult(ack.Error), nil
	}

	result, err := DecodeActionResult(ack.Result)
	if err != nil {
		return AcknowledgementResult{}, err
	}

	return NewSuccessResult(result), nil
}
