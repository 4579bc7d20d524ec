package keeper

import (
	metrics "github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// HandlePacket executes the action sent by the account of the origin chain and returns its result.
// Actions targeting the remote account provision it first when it does not exist. The caller is
// responsible for discarding all state changes when an error is returned.
func (k Keeper) HandlePacket(
	ctx sdk.Context, origin types.ChainIdentity, account types.AccountID, action types.Action, retries uint32,
) (*types.ActionResult, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	if err := action.ValidateBasic(); err != nil {
		return nil, err
	}

	var (
		record types.RemoteAccountRecord
		err    error
	)

	if action.IsAccountAction() {
		var info types.CreateRemoteAccountAction
		if action.CreateRemoteAccount != nil {
			info = *action.CreateRemoteAccount
		}

		if record, err = k.getOrCreateRemoteAccount(ctx, origin, account, info); err != nil {
			return nil, err
		}
	}

	switch action.Kind() {
	case types.ActionKindCreateRemoteAccount:
		return &types.ActionResult{
			CreateRemoteAccount: &types.CreateRemoteAccountResult{Address: record.Address, AccountID: record.AccountID},
		}, nil
	case types.ActionKindDispatch:
		return k.dispatch(ctx, record, action.Dispatch.Instructions, retries)
	case types.ActionKindQuery:
		return k.query(ctx, record, action.Query.Requests)
	case types.ActionKindFund:
		return k.fund(ctx, record, action.Fund.Assets)
	case types.ActionKindRecoverFunds:
		return nil, sdkerrors.Wrap(types.ErrUnauthorized, "funds can only be recovered by the host authority")
	case types.ActionKindRegister:
		return k.register(ctx, origin, *action.Register)
	default:
		return nil, sdkerrors.Wrapf(types.ErrInvalidAction, "unsupported action kind %q", action.Kind())
	}
}

// dispatch executes the instructions as the remote account. Each attempt runs on its own branch of
// the context. Transient failures are attempted again while the retry budget, capped by the
// MaxRetries param, allows it. Any other failure is returned immediately.
func (k Keeper) dispatch(ctx sdk.Context, record types.RemoteAccountRecord, instructions []types.Instruction, retries uint32) (*types.ActionResult, error) {
	addr, err := sdk.AccAddressFromBech32(record.Address)
	if err != nil {
		return nil, err
	}

	if maxRetries := k.GetMaxRetries(ctx); retries > maxRetries {
		retries = maxRetries
	}

	var lastErr error
	for attempt := uint32(0); attempt <= retries; attempt++ {
		cacheCtx, writeFn := ctx.CacheContext()
		cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

		results, err := k.accountManager.Execute(cacheCtx, addr, instructions)
		if err == nil {
			writeFn()
			ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())

			return &types.ActionResult{Dispatch: &types.DispatchResult{Results: results}}, nil
		}

		if !sdkerrors.IsOf(err, types.ErrTransientExecution) {
			return nil, sdkerrors.Wrapf(err, "dispatch failed on attempt %d", attempt+1)
		}

		lastErr = err
		k.Logger(ctx).Info("dispatch attempt failed", "address", record.Address, "attempt", attempt+1, "retries", retries, "error", err.Error())

		telemetry.IncrCounterWithLabels(
			[]string{"account-ibc", types.HostSubModuleName, "dispatch_retry"},
			1,
			[]metrics.Label{telemetry.NewLabel(types.LabelChain, record.OriginChain.String())},
		)
	}

	return nil, sdkerrors.Wrapf(types.ErrExecutionFailed, "retry budget of %d exhausted: %s", retries, lastErr)
}

// query runs the requests against the remote account. The requests run on a branch of the context
// that is never written.
func (k Keeper) query(ctx sdk.Context, record types.RemoteAccountRecord, requests []types.QueryRequest) (*types.ActionResult, error) {
	addr, err := sdk.AccAddressFromBech32(record.Address)
	if err != nil {
		return nil, err
	}

	cacheCtx, _ := ctx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	responses, err := k.accountManager.Query(cacheCtx, addr, requests)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "query failed")
	}

	return &types.ActionResult{Query: &types.QueryResult{Results: responses}}, nil
}

// fund reports the remote account the transferred assets are credited to. The transfers are
// addressed to the remote account itself, so they credit it whether they arrive before or after
// this packet.
func (k Keeper) fund(ctx sdk.Context, record types.RemoteAccountRecord, assets sdk.Coins) (*types.ActionResult, error) {
	k.Logger(ctx).Debug("remote account funded", "address", record.Address, "assets", assets.String())

	return &types.ActionResult{Fund: &types.FundResult{Address: record.Address}}, nil
}

// register answers the registration handshake of a client chain with the host address and the
// proxy address representing that client on this chain.
func (k Keeper) register(ctx sdk.Context, origin types.ChainIdentity, action types.RegisterAction) (*types.ActionResult, error) {
	if !k.IsTrustedEndpoint(ctx, origin, action.RelayEndpoint) {
		return nil, sdkerrors.Wrapf(types.ErrUntrustedEndpoint, "relay endpoint %s is not trusted for %s", action.RelayEndpoint, origin)
	}

	k.Logger(ctx).Info("client registered", "chain", origin, "relay-endpoint", action.RelayEndpoint)

	return &types.ActionResult{
		Register: &types.RegisterResult{
			HostAddress:  k.GetHostAddress().String(),
			ProxyAddress: k.GetProxyAddress(origin).String(),
		},
	}, nil
}
