package accountibc_test

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
	ibctesting "github.com/abstract-accounts/account-ibc/testing"
	"github.com/abstract-accounts/account-ibc/testing/mock"
)

func (suite *AccountIBCTestSuite) remoteAddress(account types.AccountID) sdk.AccAddress {
	record, found := suite.chainB.GetRemoteAccount(suite.chainA, account)
	suite.Require().True(found)

	addr, err := sdk.AccAddressFromBech32(record.Address)
	suite.Require().NoError(err)

	return addr
}

func (suite *AccountIBCTestSuite) callbackFor(sequence uint64) types.Callback {
	for _, callback := range suite.chainA.Callbacks.Callbacks(suite.chainA.GetContext()) {
		if callback.Sequence == sequence {
			return callback
		}
	}

	suite.FailNow(fmt.Sprintf("no callback for sequence %d", sequence))
	return types.Callback{}
}

func (suite *AccountIBCTestSuite) TestCreateDispatchAndCallback() {
	account, _ := suite.chainA.CreateAccount(1)

	create, err := suite.path.EndpointA.SendAction(account, types.NewCreateRemoteAccountAction("treasury", "juno treasury", ""), []byte("create"), nil)
	suite.Require().NoError(err)
	dispatch, err := suite.path.EndpointA.SendAction(account, types.NewDispatchAction(mock.IncrementInstruction(3)), []byte("dispatch"), nil)
	suite.Require().NoError(err)
	suite.Require().Greater(dispatch, create)

	acks := suite.coordinator.RelayAll(suite.chainA, suite.chainB)
	suite.Require().Len(acks, 2)
	for _, ack := range acks {
		suite.Require().True(ack.Success(), ack.Error)
	}

	addr := suite.remoteAddress(account)
	suite.Require().Equal(uint64(3), suite.chainB.AccountSystem.GetCount(suite.chainB.GetContext(), addr))
	suite.Require().Len(mock.Logged(suite.chainB.Logger.InfoLogs, "remote account provisioned"), 1)

	info, found := suite.chainB.AccountSystem.GetAccountInfo(suite.chainB.GetContext(), addr)
	suite.Require().True(found)
	suite.Require().Equal("treasury", info.Name)
	suite.Require().Equal(account.RemoteOn(suite.chainA.Identity), info.ID)

	callback := suite.callbackFor(create)
	suite.Require().Equal(types.ResultKindSuccess, callback.Result.Kind)
	suite.Require().Equal([]byte("create"), callback.CorrelationToken)
	suite.Require().Equal(addr.String(), callback.Result.Result.CreateRemoteAccount.Address)

	callback = suite.callbackFor(dispatch)
	suite.Require().Equal(types.ResultKindSuccess, callback.Result.Kind)
	suite.Require().Len(callback.Result.Result.Dispatch.Results, 1)

	var res mock.CounterResponse
	suite.Require().NoError(json.Unmarshal(callback.Result.Result.Dispatch.Results[0].Data, &res))
	suite.Require().Equal(uint64(3), res.Count)

	suite.Require().Empty(suite.chainA.ControllerKeeper.GetAllPendingActions(suite.chainA.GetContext()))
}

func (suite *AccountIBCTestSuite) TestProvisioningIsIdempotent() {
	account, _ := suite.chainA.CreateAccount(1)

	const creations = 3
	for i := 0; i < creations; i++ {
		_, err := suite.path.EndpointA.SendAction(account, types.NewCreateRemoteAccountAction("", "", ""), nil, nil)
		suite.Require().NoError(err)
	}

	acks := suite.coordinator.RelayAll(suite.chainA, suite.chainB)
	suite.Require().Len(acks, creations)
	for _, ack := range acks[1:] {
		suite.Require().Equal(acks[0], ack)
	}

	records := suite.chainB.HostKeeper.GetAllRemoteAccounts(suite.chainB.GetContext())
	suite.Require().Len(records, 1)
	suite.Require().Equal(suite.remoteAddress(account).String(), records[0].Address)
	suite.Require().Equal(fmt.Sprintf("Remote account %s", account.RemoteOn(suite.chainA.Identity)), records[0].Name)
}

func (suite *AccountIBCTestSuite) TestDuplicateAcknowledgementCallsBackOnce() {
	account, _ := suite.chainA.CreateAccount(1)

	sequence, err := suite.path.EndpointA.SendAction(account, types.NewDispatchAction(mock.IncrementInstruction(1)), []byte("token"), nil)
	suite.Require().NoError(err)

	packets := suite.chainA.PendingPackets()
	suite.Require().Len(packets, 1)
	packet := packets[0]

	ack := suite.coordinator.DeliverPacket(suite.chainB, packet)
	suite.Require().True(ack.Success())

	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.coordinator.AcknowledgePacket(suite.chainA, packet, ack))
	}

	suite.Require().Equal(uint64(1), suite.chainA.Callbacks.DeliveryCount(suite.chainA.GetContext(), sequence))

	// a timeout reported after the acknowledgement is ignored
	suite.Require().NoError(suite.chainA.ControllerModule.OnTimeoutPacket(suite.chainA.GetContext(), packet))
	suite.Require().Equal(uint64(1), suite.chainA.Callbacks.DeliveryCount(suite.chainA.GetContext(), sequence))
}

func (suite *AccountIBCTestSuite) TestOutOfOrderDelivery() {
	account, _ := suite.chainA.CreateAccount(1)

	create, err := suite.path.EndpointA.SendAction(account, types.NewCreateRemoteAccountAction("treasury", "", ""), []byte("create"), nil)
	suite.Require().NoError(err)
	dispatch, err := suite.path.EndpointA.SendAction(account, types.NewDispatchAction(mock.IncrementInstruction(2)), []byte("dispatch"), nil)
	suite.Require().NoError(err)

	// the dispatch arrives first and provisions the account, the create resolves to the same account
	acks := suite.coordinator.RelayAllInReverse(suite.chainA, suite.chainB)
	suite.Require().Len(acks, 2)

	addr := suite.remoteAddress(account)
	suite.Require().Equal(uint64(2), suite.chainB.AccountSystem.GetCount(suite.chainB.GetContext(), addr))

	suite.Require().Equal(types.ResultKindSuccess, suite.callbackFor(dispatch).Result.Kind)

	callback := suite.callbackFor(create)
	suite.Require().Equal(types.ResultKindSuccess, callback.Result.Kind)
	suite.Require().Equal(addr.String(), callback.Result.Result.CreateRemoteAccount.Address)
}

func (suite *AccountIBCTestSuite) TestFailedDispatchIsAtomic() {
	account, _ := suite.chainA.CreateAccount(1)

	failing := types.Instruction{Module: mock.FailingModule, Msg: json.RawMessage(`{}`)}
	sequence, err := suite.path.EndpointA.SendAction(account, types.NewDispatchAction(mock.IncrementInstruction(5), failing), []byte("token"), nil)
	suite.Require().NoError(err)

	suite.chainB.Logger.Reset()

	acks := suite.coordinator.RelayAll(suite.chainA, suite.chainB)
	suite.Require().Len(acks, 1)
	suite.Require().False(acks[0].Success())
	suite.Require().Len(mock.Logged(suite.chainB.Logger.ErrorLogs, "account ibc packet failed"), 1)

	// neither the increment nor the lazy provisioning survived
	_, found := suite.chainB.GetRemoteAccount(suite.chainA, account)
	suite.Require().False(found)

	addr := types.GenerateAddress(types.HostSubModuleName, suite.chainA.Identity, account)
	suite.Require().Zero(suite.chainB.AccountSystem.GetCount(suite.chainB.GetContext(), addr))

	callback := suite.callbackFor(sequence)
	suite.Require().Equal(types.ResultKindError, callback.Result.Kind)
	suite.Require().Equal(acks[0].Error, callback.Result.Error)
}

func (suite *AccountIBCTestSuite) TestFundThenDispatch() {
	account, addr := suite.chainA.CreateAccount(1)
	assets := sdk.NewCoins(sdk.NewInt64Coin(ibctesting.DefaultDenom, 1000))

	_, err := suite.path.EndpointA.SendAction(account, types.NewFundAction(assets), []byte("fund"), nil)
	suite.Require().NoError(err)

	outbox := suite.chainA.Outbox()
	suite.Require().Len(outbox, 2)
	suite.Require().NotNil(outbox[0].Transfer)
	suite.Require().NotNil(outbox[1].Packet)

	suite.coordinator.RelayAll(suite.chainA, suite.chainB)

	remote := suite.remoteAddress(account)
	ctxA, ctxB := suite.chainA.GetContext(), suite.chainB.GetContext()
	suite.Require().Equal(ibctesting.DefaultBalance.Sub(assets).String(), suite.chainA.BankKeeper.GetAllBalances(ctxA, addr).String())
	suite.Require().Equal(assets.String(), suite.chainB.BankKeeper.GetAllBalances(ctxB, remote).String())
	suite.Require().True(suite.chainB.BankKeeper.GetAllBalances(ctxB, suite.chainB.HostKeeper.GetProxyAddress(suite.chainA.Identity)).IsZero())

	sequence, err := suite.path.EndpointA.SendAction(account, types.NewQueryAction(mock.GetCountRequest()), []byte("query"), nil)
	suite.Require().NoError(err)
	suite.coordinator.RelayAll(suite.chainA, suite.chainB)

	callback := suite.callbackFor(sequence)
	suite.Require().Equal(types.ResultKindSuccess, callback.Result.Kind)
	suite.Require().Len(callback.Result.Result.Query.Results, 1)
}

func (suite *AccountIBCTestSuite) TestFundPacketBeforeTransfers() {
	account, addr := suite.chainA.CreateAccount(1)
	assets := sdk.NewCoins(sdk.NewInt64Coin(ibctesting.DefaultDenom, 1000))

	sequence, err := suite.path.EndpointA.SendAction(account, types.NewFundAction(assets), []byte("fund"), nil)
	suite.Require().NoError(err)

	// the fund packet is delivered before the token transfer
	acks := suite.coordinator.RelayAllInReverse(suite.chainA, suite.chainB)
	suite.Require().Len(acks, 1)
	suite.Require().True(acks[0].Success(), acks[0].Error)

	remote := suite.remoteAddress(account)
	suite.Require().Equal(suite.chainA.ControllerKeeper.GetRemoteAddress(suite.chainA.GetContext(), account), remote)

	ctxA, ctxB := suite.chainA.GetContext(), suite.chainB.GetContext()
	suite.Require().Equal(ibctesting.DefaultBalance.Sub(assets).String(), suite.chainA.BankKeeper.GetAllBalances(ctxA, addr).String())
	suite.Require().Equal(assets.String(), suite.chainB.BankKeeper.GetAllBalances(ctxB, remote).String())
	suite.Require().True(suite.chainB.BankKeeper.GetAllBalances(ctxB, suite.chainB.HostKeeper.GetProxyAddress(suite.chainA.Identity)).IsZero())

	callback := suite.callbackFor(sequence)
	suite.Require().Equal(types.ResultKindSuccess, callback.Result.Kind)
	suite.Require().Equal(remote.String(), callback.Result.Result.Fund.Address)
}

func (suite *AccountIBCTestSuite) TestTransfersBeforeProvisioning() {
	account, _ := suite.chainA.CreateAccount(1)
	assets := sdk.NewCoins(sdk.NewInt64Coin(ibctesting.DefaultDenom, 1000))

	_, err := suite.path.EndpointA.SendAction(account, types.NewFundAction(assets), nil, nil)
	suite.Require().NoError(err)

	// only the transfer arrives, the fund packet times out
	outbox := suite.chainA.Outbox()
	suite.Require().Len(outbox, 2)
	_, err = suite.coordinator.RelayEntry(suite.chainA, suite.chainB, outbox[0])
	suite.Require().NoError(err)
	suite.Require().NoError(suite.coordinator.TimeoutEntry(suite.chainA, outbox[1]))

	_, found := suite.chainB.GetRemoteAccount(suite.chainA, account)
	suite.Require().False(found)

	// the next account action provisions the account holding the transferred tokens
	_, err = suite.path.EndpointA.SendAction(account, types.NewCreateRemoteAccountAction("treasury", "", ""), nil, nil)
	suite.Require().NoError(err)
	acks := suite.coordinator.RelayAll(suite.chainA, suite.chainB)
	suite.Require().Len(acks, 1)
	suite.Require().True(acks[0].Success(), acks[0].Error)

	suite.Require().Equal(assets.String(), suite.chainB.BankKeeper.GetAllBalances(suite.chainB.GetContext(), suite.remoteAddress(account)).String())
}

func (suite *AccountIBCTestSuite) TestInterleavedOutcomes() {
	account, _ := suite.chainA.CreateAccount(1)

	first, err := suite.path.EndpointA.SendAction(account, types.NewDispatchAction(mock.IncrementInstruction(1)), []byte("t1"), nil)
	suite.Require().NoError(err)
	second, err := suite.path.EndpointA.SendAction(account, types.NewDispatchAction(mock.IncrementInstruction(2)), []byte("t2"), nil)
	suite.Require().NoError(err)

	outbox := suite.chainA.Outbox()
	suite.Require().Len(outbox, 2)

	// the second action times out before the first one is acknowledged
	suite.Require().NoError(suite.coordinator.TimeoutEntry(suite.chainA, outbox[1]))
	ack, err := suite.coordinator.RelayEntry(suite.chainA, suite.chainB, outbox[0])
	suite.Require().NoError(err)
	suite.Require().True(ack.Success(), ack.Error)

	callbacks := suite.chainA.Callbacks.Callbacks(suite.chainA.GetContext())
	suite.Require().Len(callbacks, 2)

	timedOut := suite.callbackFor(second)
	suite.Require().Equal([]byte("t2"), timedOut.CorrelationToken)
	suite.Require().Equal(types.ResultKindTimeout, timedOut.Result.Kind)

	succeeded := suite.callbackFor(first)
	suite.Require().Equal([]byte("t1"), succeeded.CorrelationToken)
	suite.Require().Equal(types.ResultKindSuccess, succeeded.Result.Kind)
	suite.Require().JSONEq(`{"count":1}`, string(succeeded.Result.Result.Dispatch.Results[0].Data))

	suite.Require().Empty(suite.chainA.ControllerKeeper.GetAllPendingActions(suite.chainA.GetContext()))
}

func (suite *AccountIBCTestSuite) TestRecoverFundsAfterChannelClose() {
	account, _ := suite.chainA.CreateAccount(1)
	assets := sdk.NewCoins(sdk.NewInt64Coin(ibctesting.DefaultDenom, 1000))
	recipient := sdk.AccAddress([]byte("recipient___________"))

	_, err := suite.path.EndpointA.SendAction(account, types.NewFundAction(assets), nil, nil)
	suite.Require().NoError(err)
	suite.coordinator.RelayAll(suite.chainA, suite.chainB)

	recoverFunds := func() error {
		return suite.chainB.HostKeeper.RecoverFunds(
			suite.chainB.GetContext(), suite.chainB.Authority.String(),
			suite.chainA.Identity, account, recipient.String(), nil,
		)
	}

	suite.Require().ErrorIs(recoverFunds(), types.ErrChannelActive)

	suite.Require().NoError(suite.path.EndpointB.CloseChannel())

	// packets from the closed channel are rejected
	_, err = suite.path.EndpointA.SendAction(account, types.NewDispatchAction(mock.IncrementInstruction(1)), nil, nil)
	suite.Require().NoError(err)
	acks := suite.coordinator.RelayAll(suite.chainA, suite.chainB)
	suite.Require().Len(acks, 1)
	suite.Require().False(acks[0].Success())

	suite.Require().NoError(recoverFunds())

	ctx := suite.chainB.GetContext()
	suite.Require().Equal(assets.String(), suite.chainB.BankKeeper.GetAllBalances(ctx, recipient).String())
	suite.Require().True(suite.chainB.BankKeeper.GetAllBalances(ctx, suite.remoteAddress(account)).IsZero())

	// the channel cannot be reopened once closed
	suite.Require().ErrorIs(suite.path.EndpointB.OpenChannel(), types.ErrInvalidChannelTransition)
}

func (suite *AccountIBCTestSuite) TestTimeoutCallsBack() {
	account, _ := suite.chainA.CreateAccount(1)

	sequence, err := suite.path.EndpointA.SendAction(account, types.NewDispatchAction(mock.IncrementInstruction(1)), []byte("token"), nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.coordinator.TimeoutNextPacket(suite.chainA))
	suite.Require().Empty(suite.chainA.Outbox())

	callback := suite.callbackFor(sequence)
	suite.Require().Equal(types.ResultKindTimeout, callback.Result.Kind)
	suite.Require().Nil(callback.Result.Result)

	_, found := suite.chainB.GetRemoteAccount(suite.chainA, account)
	suite.Require().False(found)
}

func (suite *AccountIBCTestSuite) TestBidirectional() {
	accountA, _ := suite.chainA.CreateAccount(1)
	accountB, _ := suite.chainB.CreateAccount(1)

	_, err := suite.path.EndpointA.SendAction(accountA, types.NewDispatchAction(mock.IncrementInstruction(1)), nil, nil)
	suite.Require().NoError(err)
	_, err = suite.path.EndpointB.SendAction(accountB, types.NewDispatchAction(mock.IncrementInstruction(2)), nil, nil)
	suite.Require().NoError(err)

	suite.coordinator.RelayAll(suite.chainA, suite.chainB)
	suite.coordinator.RelayAll(suite.chainB, suite.chainA)

	recordOnB, found := suite.chainB.GetRemoteAccount(suite.chainA, accountA)
	suite.Require().True(found)
	recordOnA, found := suite.chainA.GetRemoteAccount(suite.chainB, accountB)
	suite.Require().True(found)

	// the same local sequence on both chains maps to different remote accounts
	suite.Require().NotEqual(recordOnA.Address, recordOnB.Address)
}
