package types_test

import (
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

func (suite *TypesTestSuite) TestChainIdentityFromChainID() {
	testCases := []struct {
		chainID  string
		expChain types.ChainIdentity
	}{
		{"juno-1", "juno"},
		{"juno-2", "juno"},
		{"osmosis-1", "osmosis"},
		{"Osmosis-1", "osmosis"},
		{"cosmos-hub-4", "cosmos-hub"},
		{"terra", "terra"},
	}

	for _, tc := range testCases {
		suite.Require().Equal(tc.expChain, types.ChainIdentityFromChainID(tc.chainID), tc.chainID)
	}
}

func (suite *TypesTestSuite) TestChainIdentityValidate() {
	testCases := []struct {
		name    string
		chain   types.ChainIdentity
		expPass bool
	}{
		{"success", "juno", true},
		{"success with separator", "cosmos-hub", true},
		{"too short", "ab", false},
		{"too long", "averyveryverylongchainname", false},
		{"uppercase", "Juno", false},
		{"digits", "juno1", false},
		{"trailing separator", "juno-", false},
		{"double separator", "cosmos--hub", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			_, err := types.ParseChainIdentity(string(tc.chain))

			if tc.expPass {
				suite.Require().NoError(err)
			} else {
				suite.Require().Error(err)
				suite.Require().ErrorIs(err, types.ErrInvalidChainIdentity)
			}
		})
	}
}
