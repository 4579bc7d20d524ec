package types_test

import (
	"encoding/json"
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

func (suite *TypesTestSuite) TestAcknowledgement() {
	testCases := []struct {
		name       string
		ack        types.Acknowledgement
		expSuccess bool
		expPass    bool
	}{
		{"success result", types.NewResultAcknowledgement(types.ActionResult{Fund: &types.FundResult{Address: TestOwnerAddress}}), true, true},
		{"error", types.NewErrorAcknowledgement(types.ErrRemoteAccountNotFound), false, true},
		{"empty", types.Acknowledgement{}, false, false},
		{"blank error", types.Acknowledgement{Error: "  "}, false, false},
		{"result and error", types.Acknowledgement{Result: json.RawMessage(`{}`), Error: "failed"}, true, false},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			suite.Require().Equal(tc.expSuccess, tc.ack.Success())

			err := tc.ack.ValidateBasic()
			if tc.expPass {
				suite.Require().NoError(err)

				decoded, err := types.DecodeAcknowledgement(tc.ack.Acknowledgement())
				suite.Require().NoError(err)
				suite.Require().Equal(tc.ack.Acknowledgement(), decoded.Acknowledgement())
			} else {
				suite.Require().Error(err)

				_, err := types.DecodeAcknowledgement(tc.ack.Acknowledgement())
				suite.Require().ErrorIs(err, types.ErrInvalidAcknowledgement)
			}
		})
	}
}

func (suite *TypesTestSuite) TestNewErrorAcknowledgement() {
	err := sdkerrors.Wrap(types.ErrRemoteAccountNotFound, "juno-1")
	ack := types.NewErrorAcknowledgement(err)

	suite.Require().False(ack.Success())
	suite.Require().Equal(fmt.Sprintf("ABCI code: %d: %s", types.ErrRemoteAccountNotFound.ABCICode(), err.Error()), ack.Error)

	// errors not registered with the sdk are redacted
	ack = types.NewErrorAcknowledgement(fmt.Errorf("sensitive detail"))
	suite.Require().NotContains(ack.Error, "sensitive detail")
}

func (suite *TypesTestSuite) TestResultFromAcknowledgement() {
	expected := types.ActionResult{Register: &types.RegisterResult{HostAddress: TestOwnerAddress, ProxyAddress: TestOwnerAddress}}

	result, err := types.ResultFromAcknowledgement(types.NewResultAcknowledgement(expected))
	suite.Require().NoError(err)
	suite.Require().Equal(types.ResultKindSuccess, result.Kind)
	suite.Require().Equal(expected, *result.Result)

	result, err = types.ResultFromAcknowledgement(types.NewErrorAcknowledgement(types.ErrUnauthorized))
	suite.Require().NoError(err)
	suite.Require().Equal(types.ResultKindError, result.Kind)
	suite.Require().Nil(result.Result)
	suite.Require().NotEmpty(result.Error)

	_, err = types.ResultFromAcknowledgement(types.Acknowledgement{Result: json.RawMessage(`[1,2]`)})
	suite.Require().ErrorIs(err, types.ErrInvalidAcknowledgement)

	suite.Require().Equal(types.ResultKindTimeout, types.NewTimeoutResult().Kind)
}
