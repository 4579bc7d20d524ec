package keeper

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// NewQuerier returns a legacy querier for the account ibc host submodule
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		var res interface{}

		switch path[0] {
		case types.QueryHostParams:
			res = k.GetParams(ctx)
		case types.QueryRemoteAccount:
			var params types.QueryRemoteAccountParams
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}

			record, found := k.GetRemoteAccount(ctx, params.Chain, params.Account)
			if !found {
				return nil, sdkerrors.Wrapf(types.ErrRemoteAccountNotFound, "no remote account for %s/%s", params.Chain, params.Account)
			}
			res = record
		case types.QueryRemoteAccounts:
			res = k.GetAllRemoteAccounts(ctx)
		case types.QueryClientEndpoints:
			res = k.GetAllClientEndpoints(ctx)
		case types.QueryChannelStates:
			res = k.GetAllChannelLifecycles(ctx)
		default:
			return nil, sdkerrors.Wrapf(types.ErrUnknownRequest, "unknown %s query endpoint: %s", types.HostSubModuleName, path[0])
		}

		bz, err := codec.MarshalJSONIndent(legacyQuerierCdc, res)
		if err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
		}

		return bz, nil
	}
}
