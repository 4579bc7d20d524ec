package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// InitGenesis initializes the account ibc host submodule's state from a provided genesis state
func InitGenesis(ctx sdk.Context, keeper Keeper, state types.HostGenesisState) {
	for _, endpoint := range state.ClientEndpoints {
		keeper.SetClientEndpoint(ctx, endpoint.Chain, endpoint.Endpoint)
	}

	for _, record := range state.RemoteAccounts {
		keeper.SetRemoteAccount(ctx, record)
	}

	for _, channel := range state.ChannelStates {
		keeper.SetChannelLifecycle(ctx, channel)
	}

	keeper.SetParams(ctx, state.Params)
}

// ExportGenesis returns the account ibc host submodule's exported genesis
func ExportGenesis(ctx sdk.Context, keeper Keeper) types.HostGenesisState {
	return types.NewHostGenesisState(
		keeper.GetParams(ctx),
		keeper.GetAllClientEndpoints(ctx),
		keeper.GetAllRemoteAccounts(ctx),
		keeper.GetAllChannelLifecycles(ctx),
	)
}
