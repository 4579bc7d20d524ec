package accountibc

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	controllerkeeper "github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/controller/keeper"
	hostkeeper "github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/host/keeper"
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// NewQuerier routes legacy queries to the client or host submodule querier
func NewQuerier(controllerKeeper *controllerkeeper.Keeper, hostKeeper *hostkeeper.Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	var controllerQuerier, hostQuerier sdk.Querier
	if controllerKeeper != nil {
		controllerQuerier = controllerkeeper.NewQuerier(*controllerKeeper, legacyQuerierCdc)
	}
	if hostKeeper != nil {
		hostQuerier = hostkeeper.NewQuerier(*hostKeeper, legacyQuerierCdc)
	}

	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		if len(path) == 0 {
			return nil, sdkerrors.Wrap(types.ErrUnknownRequest, "empty query path")
		}

		switch path[0] {
		case types.QueryControllerParams, types.QueryInfrastructure, types.QueryInfrastructures,
			types.QueryPendingAction, types.QueryPendingActions:
			if controllerQuerier == nil {
				return nil, types.ErrControllerSubModuleDisabled
			}
			return controllerQuerier(ctx, path, req)
		case types.QueryHostParams, types.QueryRemoteAccount, types.QueryRemoteAccounts,
			types.QueryClientEndpoints, types.QueryChannelStates:
			if hostQuerier == nil {
				return nil, types.ErrHostSubModuleDisabled
			}
			return hostQuerier(ctx, path, req)
		default:
			return nil, sdkerrors.Wrapf(types.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}
	}
}
