package accountibc

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	controllerkeeper "github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/controller/keeper"
	hostkeeper "github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/host/keeper"
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// InitGenesis initializes the account ibc application state from a provided genesis state
func InitGenesis(ctx sdk.Context, controllerKeeper *controllerkeeper.Keeper, hostKeeper *hostkeeper.Keeper, state types.GenesisState) {
	if controllerKeeper != nil {
		controllerkeeper.InitGenesis(ctx, *controllerKeeper, state.ControllerGenesisState)
	}

	if hostKeeper != nil {
		hostkeeper.InitGenesis(ctx, *hostKeeper, state.HostGenesisState)
	}
}

// ExportGenesis returns the account ibc application exported genesis
func ExportGenesis(ctx sdk.Context, controllerKeeper *controllerkeeper.Keeper, hostKeeper *hostkeeper.Keeper) *types.GenesisState {
	controllerGenesisState := types.DefaultControllerGenesis()
	if controllerKeeper != nil {
		controllerGenesisState = controllerkeeper.ExportGenesis(ctx, *controllerKeeper)
	}

	hostGenesisState := types.DefaultHostGenesis()
	if hostKeeper != nil {
		hostGenesisState = hostkeeper.ExportGenesis(ctx, *hostKeeper)
	}

	return types.NewGenesisState(controllerGenesisState, hostGenesisState)
}
