package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// RecoverFunds moves assets held by the remote account of the origin account to the recipient.
// It is only allowed once the channel to the origin chain is closed, or when no channel was ever
// recorded. Empty assets recover the whole balance.
func (k Keeper) RecoverFunds(
	ctx sdk.Context, authority string, origin types.ChainIdentity, account types.AccountID,
	recipient string, assets sdk.Coins,
) error {
	if err := k.validateAuthority(authority); err != nil {
		return err
	}

	if channel, found := k.GetChannelLifecycle(ctx, origin); found && channel.State != types.ChannelStateClosed {
		return sdkerrors.Wrapf(types.ErrChannelActive, "channel %s to %s is %s", channel.ChannelID, origin, channel.State)
	}

	record, found := k.GetRemoteAccount(ctx, origin, account)
	if !found {
		return sdkerrors.Wrapf(types.ErrRemoteAccountNotFound, "no remote account for %s/%s", origin, account)
	}

	action := types.RecoverFundsAction{Recipient: recipient, Assets: assets}
	if err := action.ValidateBasic(); err != nil {
		return err
	}

	addr, err := sdk.AccAddressFromBech32(record.Address)
	if err != nil {
		return err
	}

	recovered, err := k.sendAll(ctx, addr, recipient, assets)
	if err != nil {
		return err
	}

	EmitFundsRecoveredEvent(ctx, origin, record.OriginAccount.String(), record.Address, recipient, recovered)
	k.Logger(ctx).Info("funds recovered", "chain", origin, "origin-account", account.String(), "recipient", recipient, "amount", recovered.String())

	return nil
}

// RecoverProxyFunds moves assets held by the proxy address of the origin chain to the recipient.
// Tokens only reach the proxy when a client addresses it directly, no remote account owns them.
// Empty assets recover the whole balance.
func (k Keeper) RecoverProxyFunds(
	ctx sdk.Context, authority string, origin types.ChainIdentity, recipient string, assets sdk.Coins,
) error {
	if err := k.validateAuthority(authority); err != nil {
		return err
	}

	if err := origin.Validate(); err != nil {
		return err
	}

	action := types.RecoverFundsAction{Recipient: recipient, Assets: assets}
	if err := action.ValidateBasic(); err != nil {
		return err
	}

	proxy := k.GetProxyAddress(origin)

	recovered, err := k.sendAll(ctx, proxy, recipient, assets)
	if err != nil {
		return err
	}

	EmitFundsRecoveredEvent(ctx, origin, "", proxy.String(), recipient, recovered)
	k.Logger(ctx).Info("proxy funds recovered", "chain", origin, "proxy", proxy.String(), "recipient", recipient, "amount", recovered.String())

	return nil
}

// sendAll sends the assets from the address to the recipient, or its whole balance when assets is
// empty, and returns what was sent.
func (k Keeper) sendAll(ctx sdk.Context, from sdk.AccAddress, recipient string, assets sdk.Coins) (sdk.Coins, error) {
	if assets.Empty() {
		assets = k.bankKeeper.GetAllBalances(ctx, from)
		if assets.Empty() {
			return nil, sdkerrors.Wrapf(sdkerrors.ErrInsufficientFunds, "%s holds no funds", from)
		}
	}

	to, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return nil, err
	}

	if err := k.bankKeeper.SendCoins(ctx, from, to, assets); err != nil {
		return nil, err
	}

	return assets, nil
}
