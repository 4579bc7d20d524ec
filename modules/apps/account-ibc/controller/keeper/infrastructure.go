package keeper

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// RegisterInfrastructure establishes or replaces the infrastructure link to the provided chain and
// sends the register packet that completes the two sided handshake. The remote proxy of the link is
// only known once the success acknowledgement of that packet is received.
func (k Keeper) RegisterInfrastructure(ctx sdk.Context, authority string, chain types.ChainIdentity, remoteHost, relayEndpoint string) (uint64, error) {
	if err := k.validateAuthority(authority); err != nil {
		return 0, err
	}

	if !k.IsClientEnabled(ctx) {
		return 0, types.ErrControllerSubModuleDisabled
	}

	if err := k.validateCounterparty(ctx, chain); err != nil {
		return 0, err
	}

	if strings.TrimSpace(remoteHost) == "" {
		return 0, sdkerrors.Wrap(types.ErrUnknownInfrastructure, "remote host cannot be empty")
	}

	if strings.TrimSpace(relayEndpoint) == "" {
		return 0, sdkerrors.Wrap(types.ErrUnknownInfrastructure, "relay endpoint cannot be empty")
	}

	// the link is only replaced once the register packet is sent
	cacheCtx, writeFn := ctx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	link := types.NewInfrastructureLink(chain, relayEndpoint, remoteHost)
	k.SetInfrastructure(cacheCtx, link)

	EmitInfrastructureEvent(cacheCtx, types.EventTypeInfrastructureRegistered, link)

	pending := types.PendingAction{
		Caller: types.ControllerSubModuleName,
		Chain:  chain,
		Kind:   types.ActionKindRegister,
	}
	data := types.NewPacketData(chain, 0, types.AccountID{}, nil, types.NewRegisterAction(relayEndpoint))

	sequence, err := k.sendPacket(cacheCtx, link, pending, data)
	if err != nil {
		return 0, err
	}

	writeFn()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())

	k.Logger(ctx).Info("infrastructure registered", "chain", chain, "remote-host", remoteHost, "relay-endpoint", relayEndpoint, "sequence", sequence)

	return sequence, nil
}

// RemoveInfrastructure deactivates the infrastructure link to the provided chain. The record is
// kept with its addresses cleared.
func (k Keeper) RemoveInfrastructure(ctx sdk.Context, authority string, chain types.ChainIdentity) error {
	if err := k.validateAuthority(authority); err != nil {
		return err
	}

	link, found := k.GetActiveInfrastructure(ctx, chain)
	if !found {
		return sdkerrors.Wrapf(types.ErrUnknownInfrastructure, "no active infrastructure for %s", chain)
	}

	removed := types.InfrastructureLink{Chain: link.Chain}
	k.SetInfrastructure(ctx, removed)

	EmitInfrastructureEvent(ctx, types.EventTypeInfrastructureRemoved, link)
	k.Logger(ctx).Info("infrastructure removed", "chain", chain)

	return nil
}

// confirmInfrastructure records the remote proxy reported by the host in a register acknowledgement.
// Results coming from a host other than the one currently linked are ignored.
func (k Keeper) confirmInfrastructure(ctx sdk.Context, chain types.ChainIdentity, result types.AcknowledgementResult) {
	if result.Kind != types.ResultKindSuccess || result.Result == nil || result.Result.Register == nil {
		k.Logger(ctx).Error("infrastructure registration failed", "chain", chain, "result", result.Kind, "error", result.Error)
		return
	}

	link, found := k.GetActiveInfrastructure(ctx, chain)
	if !found {
		k.Logger(ctx).Info("ignoring registration result for inactive infrastructure", "chain", chain)
		return
	}

	register := result.Result.Register
	if register.HostAddress != link.RemoteHost {
		k.Logger(ctx).Error("ignoring registration result from unexpected host", "chain", chain, "expected", link.RemoteHost, "got", register.HostAddress)
		return
	}

	link.RemoteProxy = register.ProxyAddress
	k.SetInfrastructure(ctx, link)

	EmitInfrastructureEvent(ctx, types.EventTypeInfrastructureConfirmed, link)
	k.Logger(ctx).Info("infrastructure confirmed", "chain", chain, "remote-proxy", link.RemoteProxy)
}

func (k Keeper) validateAuthority(authority string) error {
	if authority != k.authority {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", k.authority, authority)
	}

	return nil
}

// validateCounterparty checks that the chain identity is well formed and not the local chain
func (k Keeper) validateCounterparty(ctx sdk.Context, chain types.ChainIdentity) error {
	if err := chain.Validate(); err != nil {
		return err
	}

	if chain == k.LocalChain(ctx) {
		return sdkerrors.Wrapf(types.ErrInvalidChainIdentity, "%s is the local chain", chain)
	}

	return nil
}
