package keeper

import (
	"fmt"

	metrics "github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// getOrCreateRemoteAccount returns the remote account provisioned for the origin account, creating
// it at its deterministic address when it does not exist yet. An existing record is never
// overwritten, so provisioning twice yields the same account.
func (k Keeper) getOrCreateRemoteAccount(
	ctx sdk.Context, origin types.ChainIdentity, account types.AccountID, info types.CreateRemoteAccountAction,
) (types.RemoteAccountRecord, error) {
	if record, found := k.GetRemoteAccount(ctx, origin, account); found {
		return record, nil
	}

	addr := types.GenerateAddress(types.HostSubModuleName, origin, account)

	// an account may already exist at the address if funds were sent to it before provisioning
	if acc := k.accountKeeper.GetAccount(ctx, addr); acc != nil {
		if acc.GetPubKey() != nil || acc.GetSequence() != 0 {
			return types.RemoteAccountRecord{}, sdkerrors.Wrapf(types.ErrAccountAlreadyExists, "existing account for %s has been used", addr)
		}
	} else {
		k.accountKeeper.SetAccount(ctx, k.accountKeeper.NewAccountWithAddress(ctx, addr))
	}

	if info.Name == "" {
		info.Name = defaultAccountName(origin, account)
	}

	record := types.NewRemoteAccountRecord(origin, account, addr, info)
	if err := k.accountManager.InitializeAccount(ctx, addr, record.AccountID, info); err != nil {
		return types.RemoteAccountRecord{}, sdkerrors.Wrapf(err, "failed to initialize remote account for %s/%s", origin, account)
	}

	k.SetRemoteAccount(ctx, record)

	EmitRemoteAccountProvisionedEvent(ctx, record)
	k.Logger(ctx).Info("remote account provisioned", "chain", origin, "origin-account", account.String(), "address", record.Address)

	defer func() {
		telemetry.IncrCounterWithLabels(
			[]string{"account-ibc", types.HostSubModuleName, "provision"},
			1,
			[]metrics.Label{telemetry.NewLabel(types.LabelChain, origin.String())},
		)
	}()

	return record, nil
}

func defaultAccountName(origin types.ChainIdentity, account types.AccountID) string {
	return fmt.Sprintf("Remote account %s", account.RemoteOn(origin))
}
