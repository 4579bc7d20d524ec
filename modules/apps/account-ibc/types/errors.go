package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	ErrInvalidChainIdentity        = sdkerrors.Register(ModuleName, 2, "invalid chain identity")
	ErrInvalidAccountID            = sdkerrors.Register(ModuleName, 3, "invalid account id")
	ErrUnknownInfrastructure       = sdkerrors.Register(ModuleName, 4, "unknown infrastructure")
	ErrUnauthorized                = sdkerrors.Register(ModuleName, 5, "unauthorized")
	ErrInvalidAction               = sdkerrors.Register(ModuleName, 6, "invalid action")
	ErrInvalidPacketData           = sdkerrors.Register(ModuleName, 7, "invalid packet data")
	ErrInvalidAcknowledgement      = sdkerrors.Register(ModuleName, 8, "invalid acknowledgement")
	ErrUntrustedEndpoint           = sdkerrors.Register(ModuleName, 9, "untrusted relay endpoint")
	ErrInvalidHost                 = sdkerrors.Register(ModuleName, 10, "packet not addressed to this host")
	ErrTransientExecution          = sdkerrors.Register(ModuleName, 11, "transient execution failure")
	ErrExecutionFailed             = sdkerrors.Register(ModuleName, 12, "action execution failed")
	ErrRemoteAccountNotFound       = sdkerrors.Register(ModuleName, 13, "remote account not found")
	ErrAccountAlreadyExists        = sdkerrors.Register(ModuleName, 14, "account already exists at generated address")
	ErrChannelActive               = sdkerrors.Register(ModuleName, 15, "channel to counterparty is still active")
	ErrInvalidChannelTransition    = sdkerrors.Register(ModuleName, 16, "invalid channel lifecycle transition")
	ErrHandshakeIncomplete         = sdkerrors.Register(ModuleName, 17, "infrastructure handshake incomplete")
	ErrControllerSubModuleDisabled = sdkerrors.Register(ModuleName, 18, "client submodule is disabled")
	ErrHostSubModuleDisabled       = sdkerrors.Register(ModuleName, 19, "host submodule is disabled")
	ErrInvalidRetries              = sdkerrors.Register(ModuleName, 20, "invalid retry budget")
	ErrCallbackPanic               = sdkerrors.Register(ModuleName, 21, "callback panicked")
	ErrCallbackHandlerNotFound     = sdkerrors.Register(ModuleName, 22, "callback handler not found")
	ErrInvalidGenesis              = sdkerrors.Register(ModuleName, 23, "invalid genesis state")
	ErrUnknownRequest              = sdkerrors.Register(ModuleName, 24, "unknown request")
	ErrChannelClosed               = sdkerrors.Register(ModuleName, 25, "channel to counterparty is closed")
)
