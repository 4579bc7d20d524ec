package keeper

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// RegisterClientEndpoint trusts the relay endpoint for packets coming from the provided client chain,
// replacing any endpoint trusted before.
func (k Keeper) RegisterClientEndpoint(ctx sdk.Context, authority string, chain types.ChainIdentity, endpoint string) error {
	if err := k.validateAuthority(authority); err != nil {
		return err
	}

	if err := chain.Validate(); err != nil {
		return err
	}

	if chain == k.LocalChain(ctx) {
		return sdkerrors.Wrapf(types.ErrInvalidChainIdentity, "%s is the local chain", chain)
	}

	if strings.TrimSpace(endpoint) == "" {
		return sdkerrors.Wrap(types.ErrUntrustedEndpoint, "endpoint cannot be empty")
	}

	k.SetClientEndpoint(ctx, chain, endpoint)

	EmitClientEndpointEvent(ctx, types.EventTypeClientEndpointRegistered, chain, endpoint)
	k.Logger(ctx).Info("client endpoint registered", "chain", chain, "endpoint", endpoint)

	return nil
}

// RemoveClientEndpoint stops trusting packets coming from the provided client chain
func (k Keeper) RemoveClientEndpoint(ctx sdk.Context, authority string, chain types.ChainIdentity) error {
	if err := k.validateAuthority(authority); err != nil {
		return err
	}

	endpoint, found := k.GetClientEndpoint(ctx, chain)
	if !found {
		return sdkerrors.Wrapf(types.ErrUntrustedEndpoint, "no endpoint registered for %s", chain)
	}

	store := ctx.KVStore(k.storeKey)
	store.Delete(types.KeyClientEndpoint(chain))

	EmitClientEndpointEvent(ctx, types.EventTypeClientEndpointRemoved, chain, endpoint)
	k.Logger(ctx).Info("client endpoint removed", "chain", chain)

	return nil
}
