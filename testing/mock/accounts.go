package mock

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// account modules understood by the mock Account system
const (
	// CounterModule increments a per account counter: {"increment":{"by":N}}, queried with {"get":{}}
	CounterModule = "counter"
	// FailingModule always fails
	FailingModule = "failing"
	// FlakyModule fails transiently while failures remain, then increments the counter by one
	FlakyModule = "flaky"
	// PanicModule panics
	PanicModule = "panic"
)

var _ types.AccountManager = AccountSystem{}

// CounterMsg is the message understood by the counter module
type CounterMsg struct {
	Increment *IncrementMsg `json:"increment,omitempty"`
	Get       *struct{}     `json:"get,omitempty"`
}

// IncrementMsg increments the counter of the account
type IncrementMsg struct {
	By uint64 `json:"by"`
}

// CounterResponse is returned by the counter module
type CounterResponse struct {
	Count uint64 `json:"count"`
}

// AccountInfo is stored for every initialized account
type AccountInfo struct {
	ID          types.AccountID `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Link        string          `json:"link"`
}

// flakyState lives outside the store so that it survives discarded branches
type flakyState struct {
	remaining int
	attempts  int
}

// AccountSystem is a KV backed Account system with a handful of built in modules
type AccountSystem struct {
	key   sdk.StoreKey
	flaky *flakyState
}

// NewAccountSystem creates a new mock AccountSystem
func NewAccountSystem(key sdk.StoreKey) AccountSystem {
	return AccountSystem{key: key, flaky: &flakyState{}}
}

// SetFlakyFailures sets how many flaky instructions fail transiently before one succeeds
func (a AccountSystem) SetFlakyFailures(n int) {
	a.flaky.remaining = n
	a.flaky.attempts = 0
}

// FlakyAttempts returns how many flaky instructions were executed since the last SetFlakyFailures
func (a AccountSystem) FlakyAttempts() int {
	return a.flaky.attempts
}

// InitializeAccount implements types.AccountManager
func (a AccountSystem) InitializeAccount(ctx sdk.Context, addr sdk.AccAddress, id types.AccountID, info types.CreateRemoteAccountAction) error {
	if a.IsInitialized(ctx, addr) {
		return sdkerrors.Wrap(ErrAccountInitialized, addr.String())
	}

	bz, err := json.Marshal(AccountInfo{ID: id, Name: info.Name, Description: info.Description, Link: info.Link})
	if err != nil {
		return err
	}

	ctx.KVStore(a.key).Set([]byte(instancePrefix+addr.String()), bz)

	return nil
}

// IsInitialized returns true if an account was initialized at the address
func (a AccountSystem) IsInitialized(ctx sdk.Context, addr sdk.AccAddress) bool {
	return ctx.KVStore(a.key).Has([]byte(instancePrefix + addr.String()))
}

// GetAccountInfo returns the information the account was initialized with
func (a AccountSystem) GetAccountInfo(ctx sdk.Context, addr sdk.AccAddress) (AccountInfo, bool) {
	bz := ctx.KVStore(a.key).Get([]byte(instancePrefix + addr.String()))
	if len(bz) == 0 {
		return AccountInfo{}, false
	}

	var info AccountInfo
	if err := json.Unmarshal(bz, &info); err != nil {
		panic(err)
	}

	return info, true
}

// GetCount returns the counter of the account
func (a AccountSystem) GetCount(ctx sdk.Context, addr sdk.AccAddress) uint64 {
	bz := ctx.KVStore(a.key).Get([]byte(counterPrefix + addr.String()))
	if len(bz) == 0 {
		return 0
	}

	return sdk.BigEndianToUint64(bz)
}

func (a AccountSystem) setCount(ctx sdk.Context, addr sdk.AccAddress, count uint64) {
	ctx.KVStore(a.key).Set([]byte(counterPrefix+addr.String()), sdk.Uint64ToBigEndian(count))
}

// Execute implements types.AccountManager
func (a AccountSystem) Execute(ctx sdk.Context, addr sdk.AccAddress, instructions []types.Instruction) ([]types.InstructionResult, error) {
	if !a.IsInitialized(ctx, addr) {
		return nil, sdkerrors.Wrap(ErrAccountUninitialized, addr.String())
	}

	results := make([]types.InstructionResult, 0, len(instructions))
	for i, instruction := range instructions {
		data, err := a.execute(ctx, addr, instruction)
		if err != nil {
			return nil, sdkerrors.Wrapf(err, "instruction %d", i)
		}

		results = append(results, types.InstructionResult{Data: data})
	}

	return results, nil
}

func (a AccountSystem) execute(ctx sdk.Context, addr sdk.AccAddress, instruction types.Instruction) (json.RawMessage, error) {
	switch instruction.Module {
	case CounterModule:
		var msg CounterMsg
		if err := json.Unmarshal(instruction.Msg, &msg); err != nil || msg.Increment == nil {
			return nil, sdkerrors.Wrapf(ErrInstructionFailed, "invalid counter message %s", instruction.Msg)
		}

		return a.increment(ctx, addr, msg.Increment.By)
	case FailingModule:
		return nil, sdkerrors.Wrap(ErrInstructionFailed, "failing module")
	case FlakyModule:
		a.flaky.attempts++
		if a.flaky.remaining > 0 {
			a.flaky.remaining--
			return nil, sdkerrors.Wrap(types.ErrTransientExecution, "flaky module")
		}

		return a.increment(ctx, addr, 1)
	case PanicModule:
		panic(fmt.Sprintf("panic module executed for %s", addr))
	default:
		return nil, sdkerrors.Wrap(ErrUnknownModule, instruction.Module)
	}
}

func (a AccountSystem) increment(ctx sdk.Context, addr sdk.AccAddress, by uint64) (json.RawMessage, error) {
	count := a.GetCount(ctx, addr) + by
	a.setCount(ctx, addr, count)

	return json.Marshal(CounterResponse{Count: count})
}

// Query implements types.AccountManager
func (a AccountSystem) Query(ctx sdk.Context, addr sdk.AccAddress, requests []types.QueryRequest) ([]json.RawMessage, error) {
	if !a.IsInitialized(ctx, addr) {
		return nil, sdkerrors.Wrap(ErrAccountUninitialized, addr.String())
	}

	responses := make([]json.RawMessage, 0, len(requests))
	for i, request := range requests {
		if request.Module != CounterModule {
			return nil, sdkerrors.Wrapf(ErrUnknownModule, "query %d: %s", i, request.Module)
		}

		bz, err := json.Marshal(CounterResponse{Count: a.GetCount(ctx, addr)})
		if err != nil {
			return nil, err
		}

		responses = append(responses, bz)
	}

	return responses, nil
}

// IncrementInstruction returns a counter instruction incrementing by the given amount
func IncrementInstruction(by uint64) types.Instruction {
	bz, err := json.Marshal(CounterMsg{Increment: &IncrementMsg{By: by}})
	if err != nil {
		panic(err)
	}

	return types.Instruction{Module: CounterModule, Msg: bz}
}

// GetCountRequest returns a counter query request
func GetCountRequest() types.QueryRequest {
	return types.QueryRequest{Module: CounterModule, Msg: json.RawMessage(`{"get":{}}`)}
}
