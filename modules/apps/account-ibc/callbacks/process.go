package callbacks

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// ProcessCallback executes the callbackExecutor on a branched context and writes its state changes
// only if it returns no error. A panic raised by the executor is recovered and returned as an error
// wrapping types.ErrCallbackPanic, the branch is discarded in that case as well.
func ProcessCallback(ctx sdk.Context, callback types.Callback, callbackExecutor func(sdk.Context) error) (err error) {
	cachedCtx, writeFn := ctx.CacheContext()
	cachedCtx = cachedCtx.WithEventManager(sdk.NewEventManager())

	defer func() {
		if r := recover(); r != nil {
			err = sdkerrors.Wrapf(types.ErrCallbackPanic, "callback for sequence %d of %s panicked with: %v", callback.Sequence, callback.Caller, r)
		}
	}()

	if err = callbackExecutor(cachedCtx); err != nil {
		return err
	}

	writeFn()
	ctx.EventManager().EmitEvents(cachedCtx.EventManager().Events())

	return nil
}

// DeliverCallback routes the callback to the handler registered for its caller module and runs it
// through ProcessCallback.
func DeliverCallback(ctx sdk.Context, router types.CallbackRouter, callback types.Callback) error {
	if router == nil {
		return sdkerrors.Wrapf(types.ErrCallbackHandlerNotFound, "no callback router configured for %s", callback.Caller)
	}

	handler, ok := router.GetRoute(callback.Caller)
	if !ok {
		return sdkerrors.Wrapf(types.ErrCallbackHandlerNotFound, "no callback handler registered for %s", callback.Caller)
	}

	return ProcessCallback(ctx, callback, func(cachedCtx sdk.Context) error {
		return handler.OnActionCallback(cachedCtx, callback)
	})
}
