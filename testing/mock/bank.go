package mock

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// BankKeeper keeps balances in the mock store so that they follow the branching of the context
type BankKeeper struct {
	key sdk.StoreKey
}

// NewBankKeeper creates a new mock BankKeeper
func NewBankKeeper(key sdk.StoreKey) BankKeeper {
	return BankKeeper{key: key}
}

func balancePrefixKey(addr sdk.AccAddress) []byte {
	return []byte(balancePrefix + addr.String() + "/")
}

// GetBalance returns the balance of a single denomination
func (k BankKeeper) GetBalance(ctx sdk.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	bz := ctx.KVStore(k.key).Get(append(balancePrefixKey(addr), denom...))
	if len(bz) == 0 {
		return sdk.NewCoin(denom, sdk.ZeroInt())
	}

	amount, ok := sdk.NewIntFromString(string(bz))
	if !ok {
		panic("invalid stored balance")
	}

	return sdk.NewCoin(denom, amount)
}

// GetAllBalances returns all non zero balances of the address
func (k BankKeeper) GetAllBalances(ctx sdk.Context, addr sdk.AccAddress) sdk.Coins {
	prefix := balancePrefixKey(addr)
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(k.key), prefix)
	defer iterator.Close()

	var coins []sdk.Coin
	for ; iterator.Valid(); iterator.Next() {
		amount, ok := sdk.NewIntFromString(string(iterator.Value()))
		if !ok {
			panic("invalid stored balance")
		}

		coins = append(coins, sdk.NewCoin(string(iterator.Key()[len(prefix):]), amount))
	}

	return sdk.NewCoins(coins...)
}

func (k BankKeeper) setBalance(ctx sdk.Context, addr sdk.AccAddress, coin sdk.Coin) {
	store := ctx.KVStore(k.key)
	key := append(balancePrefixKey(addr), coin.Denom...)

	if coin.IsZero() {
		store.Delete(key)
		return
	}

	store.Set(key, []byte(coin.Amount.String()))
}

// MintCoins credits the address with newly created coins
func (k BankKeeper) MintCoins(ctx sdk.Context, addr sdk.AccAddress, amt sdk.Coins) error {
	if !amt.IsValid() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, amt.String())
	}

	for _, coin := range amt {
		k.setBalance(ctx, addr, k.GetBalance(ctx, addr, coin.Denom).Add(coin))
	}

	return nil
}

// SendCoins moves coins between two addresses
func (k BankKeeper) SendCoins(ctx sdk.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if !amt.IsValid() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, amt.String())
	}

	for _, coin := range amt {
		balance := k.GetBalance(ctx, fromAddr, coin.Denom)
		if balance.IsLT(coin) {
			return sdkerrors.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", balance, coin)
		}

		k.setBalance(ctx, fromAddr, balance.Sub(coin))
		k.setBalance(ctx, toAddr, k.GetBalance(ctx, toAddr, coin.Denom).Add(coin))
	}

	return nil
}
