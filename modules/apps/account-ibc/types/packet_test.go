package types_test

import (
	"encoding/json"
	"strings"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

func (suite *TypesTestSuite) TestPacketDataValidateBasic() {
	var data types.PacketData

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{"success", func() {}, nil},
		{"success with maximum retries", func() { data.Retries = types.MaxRetries }, nil},
		{"invalid destination", func() { data.DestinationChain = "J" }, types.ErrInvalidPacketData},
		{"retries above maximum", func() { data.Retries = types.MaxRetries + 1 }, types.ErrInvalidRetries},
		{"invalid account", func() { data.Account = types.NewRemoteAccountID([]types.ChainIdentity{"x"}, 1) }, types.ErrInvalidAccountID},
		{"correlation token too long", func() {
			data.CorrelationToken = []byte(strings.Repeat("a", types.MaxCorrelationTokenLength+1))
		}, types.ErrInvalidPacketData},
		{"invalid action", func() { data.Action = types.Action{} }, types.ErrInvalidAction},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			data = types.NewPacketData("osmosis", 0, types.NewLocalAccountID(1), []byte("token"), types.NewCreateRemoteAccountAction("treasury", "", ""))

			tc.malleate()

			err := data.ValidateBasic()
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *TypesTestSuite) TestPacketDataEncoding() {
	data := types.NewPacketData("osmosis", 2, types.NewLocalAccountID(1), []byte("token"), types.NewDispatchAction(
		types.Instruction{Module: "counter", Msg: json.RawMessage(`{"increment":{"by":1}}`)},
	))

	bz := data.GetBytes()

	// keys are sorted so the encoding is deterministic
	suite.Require().True(strings.HasPrefix(string(bz), `{"account":`))

	decoded, err := types.DecodePacketData(bz)
	suite.Require().NoError(err)
	suite.Require().Equal(data.GetBytes(), decoded.GetBytes())
	suite.Require().Equal(types.ActionKindDispatch, decoded.Action.Kind())

	// unknown fields are ignored
	decoded, err = types.DecodePacketData([]byte(`{"destination_chain":"osmosis","retries":0,"account":{"seq":1},"action":{"register":{"relay_endpoint":"addr"}},"memo":"hello"}`))
	suite.Require().NoError(err)
	suite.Require().Equal(types.ActionKindRegister, decoded.Action.Kind())

	_, err = types.DecodePacketData([]byte("not json"))
	suite.Require().ErrorIs(err, types.ErrInvalidPacketData)
}

func (suite *TypesTestSuite) TestPacketValidateBasic() {
	var packet types.Packet

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{"success", func() {}, true},
		{"zero sequence", func() { packet.Sequence = 0 }, false},
		{"invalid source chain", func() { packet.SourceChain = "" }, false},
		{"invalid destination chain", func() { packet.DestinationChain = "Osmosis" }, false},
		{"empty data", func() { packet.Data = nil }, false},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			packet = types.NewPacket(1, "juno", TestOwnerAddress, "osmosis", TestOwnerAddress, []byte("{}"))

			tc.malleate()

			err := packet.ValidateBasic()
			if tc.expPass {
				suite.Require().NoError(err)
			} else {
				suite.Require().Error(err)
			}
		})
	}
}
