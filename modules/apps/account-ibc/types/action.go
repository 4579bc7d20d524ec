package types

import (
	"encoding/json"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ActionKind names the variant carried by an Action
type ActionKind string

const (
	ActionKindUnspecified         ActionKind = ""
	ActionKindCreateRemoteAccount ActionKind = "create_remote_account"
	ActionKindDispatch            ActionKind = "dispatch"
	ActionKindQuery               ActionKind = "query"
	ActionKindFund                ActionKind = "fund"
	ActionKindRecoverFunds        ActionKind = "recover_funds"
	ActionKindRegister            ActionKind = "register"
)

const (
	// MaxInstructions is the maximum number of instructions a single dispatch may carry
	MaxInstructions = 64
	// MaxQueryRequests is the maximum number of requests a single query may carry
	MaxQueryRequests = 64
	// MaxNameLength is the maximum length of a remote account name
	MaxNameLength = 128
	// MaxDescriptionLength is the maximum length of a remote account description
	MaxDescriptionLength = 1024
)

// Action is the closed set of operations an Account may request on a remote chain.
// Exactly one field must be set.
type Action struct {
	CreateRemoteAccount *CreateRemoteAccountAction `json:"create_remote_account,omitempty" yaml:"create_remote_account,omitempty"`
	Dispatch            *DispatchAction            `json:"dispatch,omitempty" yaml:"dispatch,omitempty"`
	Query               *QueryAction               `json:"query,omitempty" yaml:"query,omitempty"`
	Fund                *FundAction                `json:"fund,omitempty" yaml:"fund,omitempty"`
	RecoverFunds        *RecoverFundsAction        `json:"recover_funds,omitempty" yaml:"recover_funds,omitempty"`
	Register            *RegisterAction            `json:"register,omitempty" yaml:"register,omitempty"`
}

// CreateRemoteAccountAction requests the creation of the remote Account
type CreateRemoteAccountAction struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// Instruction is a single message executed by an Account against one of its modules
type Instruction struct {
	Module string          `json:"module"`
	Msg    json.RawMessage `json:"msg"`
}

// DispatchAction executes the instructions as the remote Account
type DispatchAction struct {
	Instructions []Instruction `json:"instructions"`
}

// QueryRequest is a single read only request served by one of an Account's modules
type QueryRequest struct {
	Module string          `json:"module"`
	Msg    json.RawMessage `json:"msg"`
}

// QueryAction runs read only requests against the remote Account
type QueryAction struct {
	Requests []QueryRequest `json:"requests"`
}

// FundAction credits assets moved by the token transfer primitive to the remote Account
type FundAction struct {
	Assets sdk.Coins `json:"assets"`
}

// RecoverFundsAction rescues assets stranded on a remote Account. Only the host chain operator may
// perform it, and only when no healthy channel to the origin chain exists.
type RecoverFundsAction struct {
	Recipient string    `json:"recipient"`
	Assets    sdk.Coins `json:"assets,omitempty"`
}

// RegisterAction is sent by the client dispatcher when infrastructure is registered so that the
// host can confirm the relay endpoint it trusts and report the client's proxy address.
type RegisterAction struct {
	RelayEndpoint string `json:"relay_endpoint"`
}

// NewCreateRemoteAccountAction returns an Action creating the remote account
func NewCreateRemoteAccountAction(name, description, link string) Action {
	return Action{CreateRemoteAccount: &CreateRemoteAccountAction{Name: name, Description: description, Link: link}}
}

// NewDispatchAction returns an Action executing the provided instructions
func NewDispatchAction(instructions ...Instruction) Action {
	return Action{Dispatch: &DispatchAction{Instructions: instructions}}
}

// NewQueryAction returns an Action running the provided read only requests
func NewQueryAction(requests ...QueryRequest) Action {
	return Action{Query: &QueryAction{Requests: requests}}
}

// NewFundAction returns an Action crediting the provided assets
func NewFundAction(assets sdk.Coins) Action {
	return Action{Fund: &FundAction{Assets: assets}}
}

// NewRecoverFundsAction returns an Action rescuing assets to the recipient
func NewRecoverFundsAction(recipient string, assets sdk.Coins) Action {
	return Action{RecoverFunds: &RecoverFundsAction{Recipient: recipient, Assets: assets}}
}

// NewRegisterAction returns the Action used by the infrastructure registration handshake
func NewRegisterAction(relayEndpoint string) Action {
	return Action{Register: &RegisterAction{RelayEndpoint: relayEndpoint}}
}

// Kind returns the kind of the single variant set, or ActionKindUnspecified when zero or more than
// one variant is set.
func (a Action) Kind() ActionKind {
	var (
		kind ActionKind
		set  int
	)

	if a.CreateRemoteAccount != nil {
		kind, set = ActionKindCreateRemoteAccount, set+1
	}
	if a.Dispatch != nil {
		kind, set = ActionKindDispatch, set+1
	}
	if a.Query != nil {
		kind, set = ActionKindQuery, set+1
	}
	if a.Fund != nil {
		kind, set = ActionKindFund, set+1
	}
	if a.RecoverFunds != nil {
		kind, set = ActionKindRecoverFunds, set+1
	}
	if a.Register != nil {
		kind, set = ActionKindRegister, set+1
	}

	if set != 1 {
		return ActionKindUnspecified
	}

	return kind
}

// IsAccountAction returns true if the action targets a remote Account and therefore requires the
// account to exist on the host.
func (a Action) IsAccountAction() bool {
	switch a.Kind() {
	case ActionKindCreateRemoteAccount, ActionKindDispatch, ActionKindQuery, ActionKindFund:
		return true
	default:
		return false
	}
}

// ValidateBasic performs stateless validation of the action
func (a Action) ValidateBasic() error {
	switch a.Kind() {
	case ActionKindCreateRemoteAccount:
		return a.CreateRemoteAccount.ValidateBasic()
	case ActionKindDispatch:
		return a.Dispatch.ValidateBasic()
	case ActionKindQuery:
		return a.Query.ValidateBasic()
	case ActionKindFund:
		return a.Fund.ValidateBasic()
	case ActionKindRecoverFunds:
		return a.RecoverFunds.ValidateBasic()
	case ActionKindRegister:
		return a.Register.ValidateBasic()
	default:
		return sdkerrors.Wrap(ErrInvalidAction, "action must contain exactly one variant")
	}
}

// ValidateBasic performs stateless validation. An empty name is allowed, the host then names the
// remote account after its account id.
func (a CreateRemoteAccountAction) ValidateBasic() error {
	if a.Name != "" && strings.TrimSpace(a.Name) == "" {
		return sdkerrors.Wrap(ErrInvalidAction, "remote account name cannot be blank")
	}

	if len(a.Name) > MaxNameLength {
		return sdkerrors.Wrapf(ErrInvalidAction, "remote account name cannot exceed %d characters", MaxNameLength)
	}

	if len(a.Description) > MaxDescriptionLength {
		return sdkerrors.Wrapf(ErrInvalidAction, "remote account description cannot exceed %d characters", MaxDescriptionLength)
	}

	return nil
}

// ValidateBasic performs stateless validation
func (a DispatchAction) ValidateBasic() error {
	if len(a.Instructions) == 0 {
		return sdkerrors.Wrap(ErrInvalidAction, "dispatch must contain at least one instruction")
	}

	if len(a.Instructions) > MaxInstructions {
		return sdkerrors.Wrapf(ErrInvalidAction, "dispatch cannot contain more than %d instructions", MaxInstructions)
	}

	for i, instruction := range a.Instructions {
		if strings.TrimSpace(instruction.Module) == "" {
			return sdkerrors.Wrapf(ErrInvalidAction, "instruction %d has an empty module", i)
		}
	}

	return nil
}

// ValidateBasic performs stateless validation
func (a QueryAction) ValidateBasic() error {
	if len(a.Requests) == 0 {
		return sdkerrors.Wrap(ErrInvalidAction, "query must contain at least one request")
	}

	if len(a.Requests) > MaxQueryRequests {
		return sdkerrors.Wrapf(ErrInvalidAction, "query cannot contain more than %d requests", MaxQueryRequests)
	}

	for i, request := range a.Requests {
		if strings.TrimSpace(request.Module) == "" {
			return sdkerrors.Wrapf(ErrInvalidAction, "query request %d has an empty module", i)
		}
	}

	return nil
}

// ValidateBasic performs stateless validation
func (a FundAction) ValidateBasic() error {
	if !a.Assets.IsValid() || a.Assets.Empty() {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidCoins, "invalid fund assets %s", a.Assets)
	}

	return nil
}

// ValidateBasic performs stateless validation
func (a RecoverFundsAction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(a.Recipient); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid recovery recipient: %s", err)
	}

	if !a.Assets.IsValid() {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidCoins, "invalid recovery assets %s", a.Assets)
	}

	return nil
}

// ValidateBasic performs stateless validation
func (a RegisterAction) ValidateBasic() error {
	if strings.TrimSpace(a.RelayEndpoint) == "" {
		return sdkerrors.Wrap(ErrInvalidAction, "relay endpoint cannot be empty")
	}

	return nil
}
