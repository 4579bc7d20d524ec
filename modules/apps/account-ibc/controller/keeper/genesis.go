package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// InitGenesis initializes the account ibc client submodule's state from a provided genesis state
func InitGenesis(ctx sdk.Context, keeper Keeper, state types.ControllerGenesisState) {
	for _, link := range state.Infrastructures {
		keeper.SetInfrastructure(ctx, link)
	}

	for _, pending := range state.PendingActions {
		keeper.SetPendingAction(ctx, pending)
	}

	keeper.SetNextSequence(ctx, state.NextSequence)
	keeper.SetParams(ctx, state.Params)
}

// ExportGenesis returns the account ibc client submodule's exported genesis
func ExportGenesis(ctx sdk.Context, keeper Keeper) types.ControllerGenesisState {
	return types.NewControllerGenesisState(
		keeper.GetParams(ctx),
		keeper.GetAllInfrastructures(ctx),
		keeper.GetAllPendingActions(ctx),
		keeper.GetNextSequence(ctx),
	)
}
