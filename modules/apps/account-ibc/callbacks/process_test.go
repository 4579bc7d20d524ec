package callbacks_test

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/callbacks"
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
	ibctesting "github.com/abstract-accounts/account-ibc/testing"
	"github.com/abstract-accounts/account-ibc/testing/mock"
)

var testKey = []byte("callback-written")

func (suite *CallbacksTestSuite) TestProcessCallback() {
	var executor func(sdk.Context) error

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
		expPanic bool
	}{
		{"success", func() {}, true, false},
		{"executor returns error", func() {
			executor = func(ctx sdk.Context) error {
				ctx.KVStore(suite.chainA.StoreKey(mock.StoreKey)).Set(testKey, []byte{1})
				return fmt.Errorf("callback failed")
			}
		}, false, false},
		{"executor panics", func() {
			executor = func(ctx sdk.Context) error {
				ctx.KVStore(suite.chainA.StoreKey(mock.StoreKey)).Set(testKey, []byte{1})
				panic("boom")
			}
		}, false, true},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			executor = func(ctx sdk.Context) error {
				ctx.KVStore(suite.chainA.StoreKey(mock.StoreKey)).Set(testKey, []byte{1})
				ctx.EventManager().EmitEvent(sdk.NewEvent("callback_executed"))
				return nil
			}

			tc.malleate()

			ctx := suite.chainA.GetContext()
			err := callbacks.ProcessCallback(ctx, newCallback(1, ibctesting.CallerModule), executor)

			written := ctx.KVStore(suite.chainA.StoreKey(mock.StoreKey)).Has(testKey)
			if tc.expPass {
				suite.Require().NoError(err)
				suite.Require().True(written)
				suite.Require().Len(ctx.EventManager().Events(), 1)
			} else {
				suite.Require().Error(err)
				suite.Require().Equal(tc.expPanic, sdkerrors.IsOf(err, types.ErrCallbackPanic))
				suite.Require().False(written)
				suite.Require().Empty(ctx.EventManager().Events())
			}
		})
	}
}

func (suite *CallbacksTestSuite) TestDeliverCallback() {
	testCases := []struct {
		name     string
		caller   string
		behavior mock.CallbackBehavior
		expErr   error
		expCount uint64
	}{
		{"success", ibctesting.CallerModule, mock.CallbackSucceed, nil, 1},
		{"handler rejects", ibctesting.CallerModule, mock.CallbackFail, mock.ErrCallbackRejected, 0},
		{"handler panics", ibctesting.CallerModule, mock.CallbackPanic, types.ErrCallbackPanic, 0},
		{"unknown caller", "lender", mock.CallbackSucceed, types.ErrCallbackHandlerNotFound, 0},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			suite.chainA.Callbacks.SetBehavior(tc.behavior)

			ctx := suite.chainA.GetContext()
			err := callbacks.DeliverCallback(ctx, suite.chainA.CallbackRouter, newCallback(1, tc.caller))

			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}

			// state written by a failing handler is discarded
			suite.Require().Equal(tc.expCount, suite.chainA.Callbacks.DeliveryCount(ctx, 1))
		})
	}
}
