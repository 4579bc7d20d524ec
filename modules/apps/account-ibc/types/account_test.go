package types_test

import (
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

func (suite *TypesTestSuite) TestAccountIDString() {
	local := types.NewLocalAccountID(7)
	suite.Require().True(local.IsLocal())
	suite.Require().Equal("local-7", local.String())

	remote := local.RemoteOn("juno")
	suite.Require().False(remote.IsLocal())
	suite.Require().Equal("juno-7", remote.String())

	twoHops := remote.RemoteOn("osmosis")
	suite.Require().Equal("juno>osmosis-7", twoHops.String())

	// RemoteOn must not alias the trace of the receiver
	suite.Require().Len(remote.Trace, 1)
}

func (suite *TypesTestSuite) TestParseAccountID() {
	testCases := []struct {
		name     string
		input    string
		expected types.AccountID
		expPass  bool
	}{
		{"local account", "local-7", types.NewLocalAccountID(7), true},
		{"remote account", "juno-3", types.NewRemoteAccountID([]types.ChainIdentity{"juno"}, 3), true},
		{"multi hop account", "juno>cosmos-hub-0", types.NewRemoteAccountID([]types.ChainIdentity{"juno", "cosmos-hub"}, 0), true},
		{"missing sequence", "local", types.AccountID{}, false},
		{"invalid sequence", "local-abc", types.AccountID{}, false},
		{"sequence overflow", "local-4294967296", types.AccountID{}, false},
		{"invalid hop", "Juno-1", types.AccountID{}, false},
		{"empty", "", types.AccountID{}, false},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			id, err := types.ParseAccountID(tc.input)

			if tc.expPass {
				suite.Require().NoError(err)
				suite.Require().True(tc.expected.Equal(id))
				suite.Require().Equal(tc.input, id.String())
			} else {
				suite.Require().Error(err)
			}
		})
	}
}

func (suite *TypesTestSuite) TestAccountIDValidate() {
	trace := make([]types.ChainIdentity, types.MaxTraceLength+1)
	for i := range trace {
		trace[i] = "juno"
	}

	suite.Require().NoError(types.NewLocalAccountID(1).Validate())
	suite.Require().ErrorIs(types.NewRemoteAccountID(trace, 1).Validate(), types.ErrInvalidAccountID)
	suite.Require().ErrorIs(types.NewRemoteAccountID([]types.ChainIdentity{"x"}, 1).Validate(), types.ErrInvalidAccountID)
}

func (suite *TypesTestSuite) TestGenerateAddress() {
	account := types.NewLocalAccountID(1)

	addr := types.GenerateAddress(types.HostSubModuleName, "juno", account)
	suite.Require().NotEmpty(addr)

	// deterministic
	suite.Require().Equal(addr, types.GenerateAddress(types.HostSubModuleName, "juno", account))

	// distinct per origin chain and per account
	suite.Require().NotEqual(addr, types.GenerateAddress(types.HostSubModuleName, "osmosis", account))
	suite.Require().NotEqual(addr, types.GenerateAddress(types.HostSubModuleName, "juno", types.NewLocalAccountID(2)))
	suite.Require().NotEqual(addr, types.GenerateAddress(types.HostSubModuleName, "juno", account.RemoteOn("osmosis")))

	// proxy addresses never collide with account addresses
	suite.Require().NotEqual(addr, types.GenerateProxyAddress(types.HostSubModuleName, "juno"))
}
