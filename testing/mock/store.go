package mock

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	// ModuleName is the codespace and store key of the mock primitives
	ModuleName = "mock"

	// StoreKey is the store shared by all mock primitives of a test chain
	StoreKey = ModuleName
)

var (
	ErrUnknownModule        = sdkerrors.Register(ModuleName, 2, "unknown account module")
	ErrInstructionFailed    = sdkerrors.Register(ModuleName, 3, "instruction failed")
	ErrAccountInitialized   = sdkerrors.Register(ModuleName, 4, "account already initialized")
	ErrAccountUninitialized = sdkerrors.Register(ModuleName, 5, "account not initialized")
	ErrCallbackRejected     = sdkerrors.Register(ModuleName, 6, "callback rejected")
	ErrTransportFailure     = sdkerrors.Register(ModuleName, 7, "transport failure")
)

var cdc = codec.NewLegacyAmino()

const (
	balancePrefix  = "balances/"
	accountPrefix  = "accounts/"
	instancePrefix = "instances/"
	counterPrefix  = "counters/"
	outboxPrefix   = "outbox/"
	callbackPrefix = "callbacks/"
)

var outboxSequenceKey = []byte("outboxSequence")
