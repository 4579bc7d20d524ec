package keeper_test

import (
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/controller/keeper"
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
	ibctesting "github.com/abstract-accounts/account-ibc/testing"
)

func (suite *KeeperTestSuite) TestInitGenesis() {
	genesisState := types.NewControllerGenesisState(
		types.NewControllerParams(true, 2),
		[]types.InfrastructureLink{
			{
				Chain:         "osmosis",
				RelayEndpoint: suite.chainA.ControllerKeeper.GetRelayEndpoint().String(),
				RemoteHost:    suite.chainB.HostKeeper.GetHostAddress().String(),
				RemoteProxy:   suite.chainB.HostKeeper.GetProxyAddress("juno").String(),
				Active:        true,
			},
			{Chain: "terra"},
		},
		[]types.PendingAction{
			{Sequence: 3, Caller: ibctesting.CallerModule, Account: types.NewLocalAccountID(1), CorrelationToken: []byte("token"), Chain: "osmosis", Kind: types.ActionKindDispatch},
		},
		7,
	)

	ctx := suite.chainA.GetContext()
	keeper.InitGenesis(ctx, suite.chainA.ControllerKeeper, genesisState)

	suite.Require().Equal(genesisState.Params, suite.chainA.ControllerKeeper.GetParams(ctx))
	suite.Require().Equal(uint64(7), suite.chainA.ControllerKeeper.GetNextSequence(ctx))

	pending, found := suite.chainA.ControllerKeeper.GetPendingAction(ctx, 3)
	suite.Require().True(found)
	suite.Require().Equal(genesisState.PendingActions[0], pending)

	link, found := suite.chainA.ControllerKeeper.GetActiveInfrastructure(ctx, "osmosis")
	suite.Require().True(found)
	suite.Require().True(link.HandshakeComplete())

	suite.Require().Equal(genesisState, keeper.ExportGenesis(ctx, suite.chainA.ControllerKeeper))
}

func (suite *KeeperTestSuite) TestExportGenesis() {
	path := suite.SetupPath()
	account, _ := suite.chainA.CreateAccount(1)

	sequence, err := path.EndpointA.SendAction(account, types.NewCreateRemoteAccountAction("treasury", "", ""), nil, nil)
	suite.Require().NoError(err)

	genesisState := keeper.ExportGenesis(suite.chainA.GetContext(), suite.chainA.ControllerKeeper)
	suite.Require().NoError(genesisState.Validate())

	suite.Require().Equal(types.DefaultControllerParams(), genesisState.Params)
	suite.Require().Len(genesisState.Infrastructures, 1)
	suite.Require().Len(genesisState.PendingActions, 1)
	suite.Require().Equal(sequence, genesisState.PendingActions[0].Sequence)
	suite.Require().Equal(sequence+1, genesisState.NextSequence)
}
