package keeper

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// NewQuerier returns a legacy querier for the account ibc client submodule
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		switch path[0] {
		case types.QueryControllerParams:
			return marshalResponse(legacyQuerierCdc, k.GetParams(ctx))
		case types.QueryInfrastructure:
			return queryInfrastructure(ctx, req, k, legacyQuerierCdc)
		case types.QueryInfrastructures:
			return marshalResponse(legacyQuerierCdc, k.GetAllInfrastructures(ctx))
		case types.QueryPendingAction:
			return queryPendingAction(ctx, req, k, legacyQuerierCdc)
		case types.QueryPendingActions:
			return marshalResponse(legacyQuerierCdc, k.GetAllPendingActions(ctx))
		default:
			return nil, sdkerrors.Wrapf(types.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ControllerSubModuleName, path[0])
		}
	}
}

func queryInfrastructure(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryInfrastructureParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}

	link, found := k.GetInfrastructure(ctx, params.Chain)
	if !found {
		return nil, sdkerrors.Wrapf(types.ErrUnknownInfrastructure, "no infrastructure for %s", params.Chain)
	}

	return marshalResponse(legacyQuerierCdc, link)
}

func queryPendingAction(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryPendingActionParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}

	pending, found := k.GetPendingAction(ctx, params.Sequence)
	if !found {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrNotFound, "no pending action with sequence %d", params.Sequence)
	}

	return marshalResponse(legacyQuerierCdc, pending)
}

func marshalResponse(legacyQuerierCdc *codec.LegacyAmino, o interface{}) ([]byte, error) {
	bz, err := codec.MarshalJSONIndent(legacyQuerierCdc, o)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}

	return bz, nil
}
