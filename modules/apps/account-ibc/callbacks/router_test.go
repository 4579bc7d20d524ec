package callbacks_test

import (
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/callbacks"
)

func (suite *CallbacksTestSuite) TestRouter() {
	var router *callbacks.Router

	handler := suite.chainA.Callbacks

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{"success", func() {
			router.AddRoute("swapper", handler)
		}, true},
		{"chained routes", func() {
			router.AddRoute("swapper", handler).AddRoute("lender", handler)
		}, true},
		{"sealed router", func() {
			router.Seal()
			router.AddRoute("swapper", handler)
		}, false},
		{"seal twice", func() {
			router.Seal()
			router.Seal()
		}, false},
		{"non alphanumeric module", func() {
			router.AddRoute("swap-per", handler)
		}, false},
		{"duplicate route", func() {
			router.AddRoute("swapper", handler)
			router.AddRoute("swapper", handler)
		}, false},
		{"nil handler", func() {
			router.AddRoute("swapper", nil)
		}, false},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			router = callbacks.NewRouter()

			if tc.expPass {
				suite.Require().NotPanics(tc.malleate)
				suite.Require().True(router.HasRoute("swapper"))

				route, ok := router.GetRoute("swapper")
				suite.Require().True(ok)
				suite.Require().Equal(handler, route)
			} else {
				suite.Require().Panics(tc.malleate)
			}
		})
	}
}

func (suite *CallbacksTestSuite) TestRouterSealed() {
	router := callbacks.NewRouter()
	suite.Require().False(router.Sealed())

	router.Seal()
	suite.Require().True(router.Sealed())

	_, ok := router.GetRoute("swapper")
	suite.Require().False(ok)
}
