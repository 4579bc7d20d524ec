package mock

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// CallbackBehavior controls how the mock callback handler answers
type CallbackBehavior int

const (
	CallbackSucceed CallbackBehavior = iota
	CallbackFail
	CallbackPanic
)

var _ types.CallbackHandler = CallbackHandler{}

// CallbackHandler stores every callback it receives in the mock store before answering according
// to its behavior, so discarded callbacks leave no record.
type CallbackHandler struct {
	key      sdk.StoreKey
	module   string
	behavior *CallbackBehavior
}

// NewCallbackHandler creates a new mock CallbackHandler for the caller module
func NewCallbackHandler(key sdk.StoreKey, module string) CallbackHandler {
	return CallbackHandler{key: key, module: module, behavior: new(CallbackBehavior)}
}

// SetBehavior changes how subsequent callbacks are answered
func (h CallbackHandler) SetBehavior(behavior CallbackBehavior) {
	*h.behavior = behavior
}

// OnActionCallback implements types.CallbackHandler
func (h CallbackHandler) OnActionCallback(ctx sdk.Context, callback types.Callback) error {
	bz, err := json.Marshal(callback)
	if err != nil {
		return err
	}

	store := ctx.KVStore(h.key)
	key := append([]byte(fmt.Sprintf("%s%s/", callbackPrefix, h.module)), sdk.Uint64ToBigEndian(callback.Sequence)...)
	store.Set(key, bz)

	countKey := h.deliveryCountKey(callback.Sequence)
	store.Set(countKey, sdk.Uint64ToBigEndian(h.DeliveryCount(ctx, callback.Sequence)+1))

	switch *h.behavior {
	case CallbackFail:
		return sdkerrors.Wrapf(ErrCallbackRejected, "sequence %d", callback.Sequence)
	case CallbackPanic:
		panic(fmt.Sprintf("callback for sequence %d panicked", callback.Sequence))
	default:
		return nil
	}
}

// Callbacks returns the callbacks recorded for the module, in sequence order
func (h CallbackHandler) Callbacks(ctx sdk.Context) []types.Callback {
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(h.key), []byte(fmt.Sprintf("%s%s/", callbackPrefix, h.module)))
	defer iterator.Close()

	var callbacks []types.Callback
	for ; iterator.Valid(); iterator.Next() {
		var callback types.Callback
		if err := json.Unmarshal(iterator.Value(), &callback); err != nil {
			panic(err)
		}

		callbacks = append(callbacks, callback)
	}

	return callbacks
}

// DeliveryCount returns how many times a callback for the sequence was recorded
func (h CallbackHandler) DeliveryCount(ctx sdk.Context, sequence uint64) uint64 {
	bz := ctx.KVStore(h.key).Get(h.deliveryCountKey(sequence))
	if len(bz) == 0 {
		return 0
	}

	return sdk.BigEndianToUint64(bz)
}

func (h CallbackHandler) deliveryCountKey(sequence uint64) []byte {
	return append([]byte(fmt.Sprintf("%scount/%s/", callbackPrefix, h.module)), sdk.Uint64ToBigEndian(sequence)...)
}
