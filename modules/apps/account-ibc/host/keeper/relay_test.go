package keeper_test

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
	"github.com/abstract-accounts/account-ibc/testing/mock"
)

func (suite *KeeperTestSuite) TestHandlePacket() {
	var (
		origin  types.ChainIdentity
		account types.AccountID
		action  types.Action
		retries uint32
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{"success: create remote account", func() {}, nil},
		{"success: dispatch provisions the account", func() {
			action = types.NewDispatchAction(mock.IncrementInstruction(2))
		}, nil},
		{"success: query", func() {
			action = types.NewQueryAction(mock.GetCountRequest())
		}, nil},
		{"success: fund before the transfers arrive", func() {
			action = types.NewFundAction(sdk.NewCoins(sdk.NewInt64Coin("stake", 50)))
		}, nil},
		{"success: fund after the transfers arrived", func() {
			coins := sdk.NewCoins(sdk.NewInt64Coin("stake", 50))
			suite.Require().NoError(suite.chainB.BankKeeper.MintCoins(suite.chainB.GetContext(), types.GenerateAddress(types.HostSubModuleName, origin, account), coins))

			action = types.NewFundAction(coins)
		}, nil},
		{"success: register trusted endpoint", func() {
			endpoint := suite.chainA.ControllerKeeper.GetRelayEndpoint().String()
			suite.chainB.HostKeeper.SetClientEndpoint(suite.chainB.GetContext(), origin, endpoint)

			action = types.NewRegisterAction(endpoint)
		}, nil},
		{"invalid origin", func() {
			origin = "J"
		}, types.ErrInvalidChainIdentity},
		{"invalid action", func() {
			action = types.Action{}
		}, types.ErrInvalidAction},
		{"fund with invalid assets", func() {
			action = types.NewFundAction(sdk.Coins{sdk.Coin{Denom: "stake", Amount: sdk.NewInt(-1)}})
		}, sdkerrors.ErrInvalidCoins},
		{"dispatch fails", func() {
			action = types.NewDispatchAction(types.Instruction{Module: mock.FailingModule, Msg: json.RawMessage(`{}`)})
		}, mock.ErrInstructionFailed},
		{"dispatch to unknown module", func() {
			action = types.NewDispatchAction(types.Instruction{Module: "unknown", Msg: json.RawMessage(`{}`)})
		}, mock.ErrUnknownModule},
		{"query unknown module", func() {
			action = types.NewQueryAction(types.QueryRequest{Module: "unknown", Msg: json.RawMessage(`{}`)})
		}, mock.ErrUnknownModule},
		{"recover funds sent by packet", func() {
			action = types.NewRecoverFundsAction(suite.chainB.Authority.String(), nil)
		}, types.ErrUnauthorized},
		{"register untrusted endpoint", func() {
			action = types.NewRegisterAction(suite.chainA.ControllerKeeper.GetRelayEndpoint().String())
		}, types.ErrUntrustedEndpoint},
		{"used account exists at the generated address", func() {
			ctx := suite.chainB.GetContext()
			acc := suite.chainB.AccountKeeper.NewAccountWithAddress(ctx, types.GenerateAddress(types.HostSubModuleName, origin, account))
			suite.Require().NoError(acc.SetSequence(3))
			suite.chainB.AccountKeeper.SetAccount(ctx, acc)
		}, types.ErrAccountAlreadyExists},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			origin = suite.chainA.Identity
			account = types.NewLocalAccountID(1)
			action = types.NewCreateRemoteAccountAction("treasury", "swap treasury", "https://example.com")
			retries = 0

			tc.malleate()

			ctx := suite.chainB.GetContext()
			result, err := suite.chainB.HostKeeper.HandlePacket(ctx, origin, account, action, retries)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().NotNil(result)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Nil(result)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestHandlePacketResults() {
	origin := suite.chainA.Identity
	account := types.NewLocalAccountID(1)
	addr := types.GenerateAddress(types.HostSubModuleName, origin, account)

	ctx := suite.chainB.GetContext()

	// create
	result, err := suite.chainB.HostKeeper.HandlePacket(ctx, origin, account, types.NewCreateRemoteAccountAction("treasury", "", ""), 0)
	suite.Require().NoError(err)
	suite.Require().Equal(&types.CreateRemoteAccountResult{Address: addr.String(), AccountID: account.RemoteOn(origin)}, result.CreateRemoteAccount)

	// dispatch
	result, err = suite.chainB.HostKeeper.HandlePacket(ctx, origin, account, types.NewDispatchAction(mock.IncrementInstruction(2), mock.IncrementInstruction(3)), 0)
	suite.Require().NoError(err)
	suite.Require().Len(result.Dispatch.Results, 2)
	suite.Require().JSONEq(`{"count":2}`, string(result.Dispatch.Results[0].Data))
	suite.Require().JSONEq(`{"count":5}`, string(result.Dispatch.Results[1].Data))
	suite.Require().Equal(uint64(5), suite.chainB.AccountSystem.GetCount(ctx, addr))

	// query
	result, err = suite.chainB.HostKeeper.HandlePacket(ctx, origin, account, types.NewQueryAction(mock.GetCountRequest()), 0)
	suite.Require().NoError(err)
	suite.Require().Len(result.Query.Results, 1)
	suite.Require().JSONEq(`{"count":5}`, string(result.Query.Results[0]))

	// fund
	result, err = suite.chainB.HostKeeper.HandlePacket(ctx, origin, account, types.NewFundAction(sdk.NewCoins(sdk.NewInt64Coin("stake", 50))), 0)
	suite.Require().NoError(err)
	suite.Require().Equal(&types.FundResult{Address: addr.String()}, result.Fund)

	// register
	endpoint := suite.chainA.ControllerKeeper.GetRelayEndpoint().String()
	suite.chainB.HostKeeper.SetClientEndpoint(ctx, origin, endpoint)

	result, err = suite.chainB.HostKeeper.HandlePacket(ctx, origin, types.AccountID{}, types.NewRegisterAction(endpoint), 0)
	suite.Require().NoError(err)
	suite.Require().Equal(&types.RegisterResult{
		HostAddress:  suite.chainB.HostKeeper.GetHostAddress().String(),
		ProxyAddress: suite.chainB.HostKeeper.GetProxyAddress(origin).String(),
	}, result.Register)

	// register does not provision an account
	_, found := suite.chainB.HostKeeper.GetRemoteAccount(ctx, origin, types.AccountID{})
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestDispatchRetries() {
	testCases := []struct {
		name        string
		failures    int
		retries     uint32
		maxRetries  uint32
		expPass     bool
		expAttempts int
	}{
		{"success on first attempt", 0, 0, types.MaxRetries, true, 1},
		{"success after transient failures", 2, 2, types.MaxRetries, true, 3},
		{"success with unused budget", 1, 5, types.MaxRetries, true, 2},
		{"budget exhausted", 3, 2, types.MaxRetries, false, 3},
		{"no retries", 1, 0, types.MaxRetries, false, 1},
		{"budget capped by host", 3, 5, 1, false, 2},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			ctx := suite.chainB.GetContext()
			suite.chainB.HostKeeper.SetParams(ctx, types.NewHostParams(true, tc.maxRetries))
			suite.chainB.AccountSystem.SetFlakyFailures(tc.failures)

			origin := suite.chainA.Identity
			account := types.NewLocalAccountID(1)
			action := types.NewDispatchAction(types.Instruction{Module: mock.FlakyModule, Msg: json.RawMessage(`{}`)})

			result, err := suite.chainB.HostKeeper.HandlePacket(ctx, origin, account, action, tc.retries)

			suite.Require().Equal(tc.expAttempts, suite.chainB.AccountSystem.FlakyAttempts())

			addr := types.GenerateAddress(types.HostSubModuleName, origin, account)
			if tc.expPass {
				suite.Require().NoError(err)
				suite.Require().Len(result.Dispatch.Results, 1)

				// failed attempts leave no trace
				suite.Require().Equal(uint64(1), suite.chainB.AccountSystem.GetCount(ctx, addr))
			} else {
				suite.Require().ErrorIs(err, types.ErrExecutionFailed)
				suite.Require().Equal(uint64(0), suite.chainB.AccountSystem.GetCount(ctx, addr))
			}
		})
	}
}

func (suite *KeeperTestSuite) TestDispatchPartialFailureReverts() {
	origin := suite.chainA.Identity
	account := types.NewLocalAccountID(1)
	addr := types.GenerateAddress(types.HostSubModuleName, origin, account)

	ctx := suite.chainB.GetContext()
	_, err := suite.chainB.HostKeeper.HandlePacket(ctx, origin, account, types.NewCreateRemoteAccountAction("treasury", "", ""), 0)
	suite.Require().NoError(err)

	action := types.NewDispatchAction(
		mock.IncrementInstruction(1),
		types.Instruction{Module: mock.FailingModule, Msg: json.RawMessage(`{}`)},
	)

	_, err = suite.chainB.HostKeeper.HandlePacket(ctx, origin, account, action, 3)
	suite.Require().ErrorIs(err, mock.ErrInstructionFailed)

	// the first instruction is reverted along with the failing one
	suite.Require().Equal(uint64(0), suite.chainB.AccountSystem.GetCount(ctx, addr))
}
