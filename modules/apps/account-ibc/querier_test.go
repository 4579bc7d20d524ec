package accountibc_test

import (
	abci "github.com/tendermint/tendermint/abci/types"

	accountibc "github.com/abstract-accounts/account-ibc/modules/apps/account-ibc"
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

func (suite *AccountIBCTestSuite) TestQuerierRouting() {
	ctx := suite.chainA.GetContext()
	querier := suite.chainA.AppModule.LegacyQuerierHandler(types.ModuleCdc)

	bz, err := querier(ctx, []string{types.QueryControllerParams}, abci.RequestQuery{})
	suite.Require().NoError(err)

	var controllerParams types.ControllerParams
	suite.Require().NoError(types.ModuleCdc.UnmarshalJSON(bz, &controllerParams))
	suite.Require().Equal(suite.chainA.ControllerKeeper.GetParams(ctx), controllerParams)

	bz, err = querier(ctx, []string{types.QueryHostParams}, abci.RequestQuery{})
	suite.Require().NoError(err)

	var hostParams types.HostParams
	suite.Require().NoError(types.ModuleCdc.UnmarshalJSON(bz, &hostParams))
	suite.Require().Equal(suite.chainA.HostKeeper.GetParams(ctx), hostParams)

	bz, err = querier(ctx, []string{types.QueryInfrastructure}, abci.RequestQuery{
		Data: types.ModuleCdc.MustMarshalJSON(types.NewQueryInfrastructureParams(suite.chainB.Identity)),
	})
	suite.Require().NoError(err)

	var link types.InfrastructureLink
	suite.Require().NoError(types.ModuleCdc.UnmarshalJSON(bz, &link))
	suite.Require().Equal(suite.path.EndpointA.InfrastructureLink(), link)

	_, err = querier(ctx, []string{}, abci.RequestQuery{})
	suite.Require().ErrorIs(err, types.ErrUnknownRequest)

	_, err = querier(ctx, []string{"unknown"}, abci.RequestQuery{})
	suite.Require().ErrorIs(err, types.ErrUnknownRequest)
}

func (suite *AccountIBCTestSuite) TestQuerierWithoutSubmodule() {
	ctx := suite.chainA.GetContext()

	hostOnly := accountibc.NewQuerier(nil, &suite.chainA.HostKeeper, types.ModuleCdc)
	_, err := hostOnly(ctx, []string{types.QueryPendingActions}, abci.RequestQuery{})
	suite.Require().ErrorIs(err, types.ErrControllerSubModuleDisabled)

	_, err = hostOnly(ctx, []string{types.QueryClientEndpoints}, abci.RequestQuery{})
	suite.Require().NoError(err)

	controllerOnly := accountibc.NewQuerier(&suite.chainA.ControllerKeeper, nil, types.ModuleCdc)
	_, err = controllerOnly(ctx, []string{types.QueryRemoteAccounts}, abci.RequestQuery{})
	suite.Require().ErrorIs(err, types.ErrHostSubModuleDisabled)
}
