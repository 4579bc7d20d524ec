package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// IsClientEnabled retrieves the client enabled boolean from the paramstore.
// True is returned if the client submodule is enabled.
func (k Keeper) IsClientEnabled(ctx sdk.Context) bool {
	var res bool
	k.paramSpace.Get(ctx, types.KeyClientEnabled, &res)
	return res
}

// GetDefaultRetries retrieves the retry budget attached to actions sent without an explicit one
func (k Keeper) GetDefaultRetries(ctx sdk.Context) uint32 {
	var res uint32
	k.paramSpace.Get(ctx, types.KeyDefaultRetries, &res)
	return res
}

// GetParams returns the total set of the client submodule parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.ControllerParams {
	return types.NewControllerParams(k.IsClientEnabled(ctx), k.GetDefaultRetries(ctx))
}

// SetParams sets the total set of the client submodule parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.ControllerParams) {
	k.paramSpace.SetParamSet(ctx, &params)
}
