package mock

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// AccountKeeper records which addresses hold an auth account and their sequence
type AccountKeeper struct {
	key sdk.StoreKey
}

// NewAccountKeeper creates a new mock AccountKeeper
func NewAccountKeeper(key sdk.StoreKey) AccountKeeper {
	return AccountKeeper{key: key}
}

// GetAccount returns the account stored at the address, nil if there is none
func (k AccountKeeper) GetAccount(ctx sdk.Context, addr sdk.AccAddress) authtypes.AccountI {
	bz := ctx.KVStore(k.key).Get([]byte(accountPrefix + addr.String()))
	if len(bz) == 0 {
		return nil
	}

	acc := authtypes.NewBaseAccountWithAddress(addr)
	if err := acc.SetSequence(sdk.BigEndianToUint64(bz)); err != nil {
		panic(err)
	}

	return acc
}

// NewAccountWithAddress returns a new account for the address without storing it
func (AccountKeeper) NewAccountWithAddress(_ sdk.Context, addr sdk.AccAddress) authtypes.AccountI {
	return authtypes.NewBaseAccountWithAddress(addr)
}

// SetAccount stores the account
func (k AccountKeeper) SetAccount(ctx sdk.Context, acc authtypes.AccountI) {
	ctx.KVStore(k.key).Set([]byte(accountPrefix+acc.GetAddress().String()), sdk.Uint64ToBigEndian(acc.GetSequence()))
}
