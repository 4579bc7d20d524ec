package keeper

import (
	metrics "github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/callbacks"
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// SendAction sends the action on behalf of the account to the host of the provided chain and
// returns the sequence that identifies it until its outcome is known. The caller must be
// authorized for the account by the module registry. A nil retries uses the DefaultRetries param.
// When a correlation token is provided, the outcome is delivered to the caller module's callback
// handler exactly once.
func (k Keeper) SendAction(
	ctx sdk.Context, caller string, account types.AccountID, chain types.ChainIdentity,
	action types.Action, correlationToken []byte, retries *uint32,
) (uint64, error) {
	if !k.IsClientEnabled(ctx) {
		return 0, types.ErrControllerSubModuleDisabled
	}

	if err := k.validateCounterparty(ctx, chain); err != nil {
		return 0, err
	}

	if err := account.Validate(); err != nil {
		return 0, err
	}

	if err := action.ValidateBasic(); err != nil {
		return 0, err
	}

	kind := action.Kind()
	switch kind {
	case types.ActionKindRegister, types.ActionKindRecoverFunds:
		return 0, sdkerrors.Wrapf(types.ErrUnauthorized, "%s actions cannot be sent by modules", kind)
	}

	if !k.registry.IsAuthorized(ctx, caller, account) {
		return 0, sdkerrors.Wrapf(types.ErrUnauthorized, "module %s is not authorized for account %s", caller, account)
	}

	link, found := k.GetActiveInfrastructure(ctx, chain)
	if !found {
		return 0, sdkerrors.Wrapf(types.ErrUnknownInfrastructure, "no active infrastructure for %s", chain)
	}

	budget := k.GetDefaultRetries(ctx)
	if retries != nil {
		budget = *retries
	}

	data := types.NewPacketData(chain, budget, account, correlationToken, action)
	if err := data.ValidateBasic(); err != nil {
		return 0, err
	}

	// transfers, sequence and pending action are only written once the packet is sent
	cacheCtx, writeFn := ctx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	if kind == types.ActionKindFund {
		if err := k.transferFunds(cacheCtx, account, link, action.Fund.Assets); err != nil {
			return 0, err
		}
	}

	pending := types.PendingAction{
		Caller:           caller,
		Account:          account,
		CorrelationToken: correlationToken,
		Chain:            chain,
		Kind:             kind,
	}

	sequence, err := k.sendPacket(cacheCtx, link, pending, data)
	if err != nil {
		return 0, err
	}

	writeFn()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())

	k.Logger(ctx).Info("action sent", "sequence", sequence, "chain", chain, "kind", kind, "caller", caller, "account", account.String())

	return sequence, nil
}

// OnAcknowledgement resolves the pending action stored under the provided sequence with the
// provided result. The pending action is removed before its callback runs, so an acknowledgement
// delivered twice resolves the action once. An unknown sequence is a no-op.
func (k Keeper) OnAcknowledgement(ctx sdk.Context, sequence uint64, result types.AcknowledgementResult) error {
	if err := validateResult(result); err != nil {
		return err
	}

	pending, found := k.takePendingAction(ctx, sequence)
	if !found {
		k.Logger(ctx).Debug("ignoring acknowledgement for unknown sequence", "sequence", sequence, "result", result.Kind)
		return nil
	}

	if pending.Kind == types.ActionKindRegister {
		k.confirmInfrastructure(ctx, pending.Chain, result)
	}

	EmitActionAcknowledgedEvent(ctx, pending, result)

	defer func() {
		telemetry.IncrCounterWithLabels(
			[]string{"account-ibc", types.ControllerSubModuleName, "acknowledgement"},
			1,
			[]metrics.Label{
				telemetry.NewLabel(types.LabelChain, pending.Chain.String()),
				telemetry.NewLabel(types.LabelActionKind, string(pending.Kind)),
				telemetry.NewLabel(types.LabelResultKind, string(result.Kind)),
			},
		)
	}()

	k.Logger(ctx).Info("action acknowledged", "sequence", sequence, "chain", pending.Chain, "kind", pending.Kind, "result", result.Kind)

	if pending.HasCallback() {
		k.deliverCallback(ctx, pending, result)
	}

	return nil
}

// OnTimeout resolves the pending action stored under the provided sequence as timed out
func (k Keeper) OnTimeout(ctx sdk.Context, sequence uint64) error {
	return k.OnAcknowledgement(ctx, sequence, types.NewTimeoutResult())
}

// deliverCallback hands the outcome to the caller module. A failing or panicking handler does not
// revert the resolution of the action, its state changes are discarded.
func (k Keeper) deliverCallback(ctx sdk.Context, pending types.PendingAction, result types.AcknowledgementResult) {
	callback := types.NewCallback(pending, result)

	err := callbacks.DeliverCallback(ctx, k.callbackRouter, callback)
	if err != nil {
		k.Logger(ctx).Error("action callback failed", "sequence", callback.Sequence, "caller", callback.Caller, "error", err.Error())
	}

	EmitActionCallbackEvent(ctx, callback, err)
}

// sendPacket assigns the next sequence, emits the packet through the transport and stores the
// pending action.
func (k Keeper) sendPacket(ctx sdk.Context, link types.InfrastructureLink, pending types.PendingAction, data types.PacketData) (uint64, error) {
	sequence := k.allocateSequence(ctx)
	pending.Sequence = sequence

	packet := types.NewPacket(sequence, k.LocalChain(ctx), link.RelayEndpoint, link.Chain, link.RemoteHost, data.GetBytes())
	if err := k.ics4Wrapper.SendPacket(ctx, packet); err != nil {
		return 0, err
	}

	k.SetPendingAction(ctx, pending)

	EmitActionSentEvent(ctx, pending)

	defer func() {
		telemetry.IncrCounterWithLabels(
			[]string{"account-ibc", types.ControllerSubModuleName, "send"},
			1,
			[]metrics.Label{
				telemetry.NewLabel(types.LabelChain, link.Chain.String()),
				telemetry.NewLabel(types.LabelActionKind, string(pending.Kind)),
			},
		)
	}()

	return sequence, nil
}

// transferFunds moves the assets from the account to the address its remote account has on the
// counterparty chain using the token transfer primitive. The address is deterministic, so the
// transfers and the fund packet may be delivered in any order.
func (k Keeper) transferFunds(ctx sdk.Context, account types.AccountID, link types.InfrastructureLink, assets sdk.Coins) error {
	if !link.HandshakeComplete() {
		return sdkerrors.Wrapf(types.ErrHandshakeIncomplete, "remote proxy on %s is not known yet", link.Chain)
	}

	sender, found := k.registry.AccountAddress(ctx, account)
	if !found {
		return sdkerrors.Wrapf(types.ErrInvalidAccountID, "account %s has no local address", account)
	}

	receiver := k.GetRemoteAddress(ctx, account).String()
	for _, coin := range assets {
		if err := k.transferKeeper.Transfer(ctx, sender, link.Chain, receiver, coin); err != nil {
			return sdkerrors.Wrapf(err, "failed to transfer %s to %s", coin, link.Chain)
		}

		if coin.Amount.IsInt64() {
			telemetry.SetGaugeWithLabels(
				[]string{"tx", "msg", "account-ibc", "fund"},
				float32(coin.Amount.Int64()),
				[]metrics.Label{telemetry.NewLabel(types.LabelDenom, coin.Denom)},
			)
		}
	}

	return nil
}

func validateResult(result types.AcknowledgementResult) error {
	switch result.Kind {
	case types.ResultKindSuccess:
		if result.Result == nil {
			return sdkerrors.Wrap(types.ErrInvalidAcknowledgement, "success result must carry an action result")
		}
	case types.ResultKindError, types.ResultKindTimeout:
	default:
		return sdkerrors.Wrapf(types.ErrInvalidAcknowledgement, "unknown result kind %q", result.Kind)
	}

	return nil
}
