package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// IsHostEnabled retrieves the host enabled boolean from the paramstore.
// True is returned if the host submodule is enabled.
func (k Keeper) IsHostEnabled(ctx sdk.Context) bool {
	var res bool
	k.paramSpace.Get(ctx, types.KeyHostEnabled, &res)
	return res
}

// GetMaxRetries retrieves the cap applied to the retry budget carried by packets
func (k Keeper) GetMaxRetries(ctx sdk.Context) uint32 {
	var res uint32
	k.paramSpace.Get(ctx, types.KeyMaxRetries, &res)
	return res
}

// GetParams returns the total set of the host submodule parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.HostParams {
	return types.NewHostParams(k.IsHostEnabled(ctx), k.GetMaxRetries(ctx))
}

// SetParams sets the total set of the host submodule parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.HostParams) {
	k.paramSpace.SetParamSet(ctx, &params)
}
