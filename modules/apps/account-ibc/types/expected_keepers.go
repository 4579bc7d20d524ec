package types

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// AccountKeeper defines the expected account keeper
type AccountKeeper interface {
	GetAccount(ctx sdk.Context, addr sdk.AccAddress) authtypes.AccountI
	NewAccountWithAddress(ctx sdk.Context, addr sdk.AccAddress) authtypes.AccountI
	SetAccount(ctx sdk.Context, acc authtypes.AccountI)
}

// BankKeeper defines the expected bank keeper
type BankKeeper interface {
	SendCoins(ctx sdk.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetAllBalances(ctx sdk.Context, addr sdk.AccAddress) sdk.Coins
}

// TransferKeeper defines the token transfer primitive used to move funds to a counterparty chain
type TransferKeeper interface {
	Transfer(ctx sdk.Context, sender sdk.AccAddress, destination ChainIdentity, receiver string, token sdk.Coin) error
}

// AccountManager defines the Account system on the host chain. Execute returns an error wrapping
// ErrTransientExecution for failures that may succeed when attempted again.
type AccountManager interface {
	InitializeAccount(ctx sdk.Context, addr sdk.AccAddress, id AccountID, info CreateRemoteAccountAction) error
	Execute(ctx sdk.Context, addr sdk.AccAddress, instructions []Instruction) ([]InstructionResult, error)
	Query(ctx sdk.Context, addr sdk.AccAddress, requests []QueryRequest) ([]json.RawMessage, error)
}

// ModuleRegistry defines the local module permission system. A module is authorized for an
// account when it is installed on it.
type ModuleRegistry interface {
	IsAuthorized(ctx sdk.Context, caller string, account AccountID) bool
	AccountAddress(ctx sdk.Context, account AccountID) (sdk.AccAddress, bool)
}

// ICS4Wrapper defines the transport primitive used to emit packets
type ICS4Wrapper interface {
	SendPacket(ctx sdk.Context, packet Packet) error
}

// CallbackHandler is implemented by modules that want to be told the outcome of the actions they
// sent with a correlation token.
type CallbackHandler interface {
	OnActionCallback(ctx sdk.Context, callback Callback) error
}

// CallbackRouter resolves the handler of a caller module
type CallbackRouter interface {
	GetRoute(module string) (CallbackHandler, bool)
}
