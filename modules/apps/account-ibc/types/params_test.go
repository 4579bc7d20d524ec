package types_test

import (
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

func (suite *TypesTestSuite) TestParamsValidate() {
	suite.Require().NoError(types.DefaultControllerParams().Validate())
	suite.Require().NoError(types.DefaultHostParams().Validate())

	suite.Require().NoError(types.NewControllerParams(false, types.MaxRetries).Validate())
	suite.Require().Error(types.NewControllerParams(true, types.MaxRetries+1).Validate())

	suite.Require().NoError(types.NewHostParams(false, 0).Validate())
	suite.Require().Error(types.NewHostParams(true, types.MaxRetries+1).Validate())

	suite.Require().Contains(types.DefaultHostParams().String(), "max_retries: 5")
}
