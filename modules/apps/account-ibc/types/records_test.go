package types_test

import (
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

func (suite *TypesTestSuite) TestInfrastructureLinkHandshake() {
	link := types.NewInfrastructureLink("osmosis", TestOwnerAddress, TestOwnerAddress)
	suite.Require().True(link.Active)
	suite.Require().False(link.HandshakeComplete())

	link.RemoteProxy = TestOwnerAddress
	suite.Require().True(link.HandshakeComplete())

	link.Active = false
	suite.Require().False(link.HandshakeComplete())
}

func (suite *TypesTestSuite) TestChannelLifecycleTransitions() {
	testCases := []struct {
		from    types.ChannelState
		to      types.ChannelState
		expPass bool
	}{
		{types.ChannelStateOpen, types.ChannelStateClosing, true},
		{types.ChannelStateOpen, types.ChannelStateClosed, true},
		{types.ChannelStateClosing, types.ChannelStateClosed, true},
		{types.ChannelStateOpen, types.ChannelStateOpen, false},
		{types.ChannelStateClosing, types.ChannelStateOpen, false},
		{types.ChannelStateClosed, types.ChannelStateOpen, false},
		{types.ChannelStateClosed, types.ChannelStateClosing, false},
		{types.ChannelStateClosed, types.ChannelStateClosed, false},
	}

	for _, tc := range testCases {
		channel := types.ChannelLifecycle{Chain: "juno", ChannelID: "channel-0", State: tc.from}
		suite.Require().Equal(tc.expPass, channel.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}

	suite.Require().True(types.ChannelLifecycle{State: types.ChannelStateOpen}.IsHealthy())
	suite.Require().True(types.ChannelLifecycle{State: types.ChannelStateClosing}.IsHealthy())
	suite.Require().False(types.ChannelLifecycle{State: types.ChannelStateClosed}.IsHealthy())
}

func (suite *TypesTestSuite) TestPendingActionHasCallback() {
	pending := types.PendingAction{Sequence: 1, Caller: "swapper", Chain: "osmosis"}
	suite.Require().False(pending.HasCallback())

	pending.CorrelationToken = []byte("token")
	suite.Require().True(pending.HasCallback())
}
