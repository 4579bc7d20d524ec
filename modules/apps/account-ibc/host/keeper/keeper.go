package keeper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// Keeper defines the account ibc host keeper
type Keeper struct {
	storeKey   sdk.StoreKey
	cdc        *codec.LegacyAmino
	paramSpace paramtypes.Subspace

	accountKeeper  types.AccountKeeper
	bankKeeper     types.BankKeeper
	accountManager types.AccountManager

	// the address allowed to manage trusted client endpoints and recover funds
	authority string
}

// NewKeeper creates a new account ibc host Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino, key sdk.StoreKey, paramSpace paramtypes.Subspace,
	accountKeeper types.AccountKeeper, bankKeeper types.BankKeeper,
	accountManager types.AccountManager, authority string,
) Keeper {
	if strings.TrimSpace(authority) == "" {
		panic(errors.New("authority must be non-empty"))
	}

	// set KeyTable if it has not already been set
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.HostParamKeyTable())
	}

	return Keeper{
		storeKey:       key,
		cdc:            cdc,
		paramSpace:     paramSpace,
		accountKeeper:  accountKeeper,
		bankKeeper:     bankKeeper,
		accountManager: accountManager,
		authority:      authority,
	}
}

// Logger returns the application logger, scoped to the associated module
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s-%s", types.ModuleName, types.HostSubModuleName))
}

// GetAuthority returns the address allowed to manage trusted client endpoints and recover funds
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetHostAddress returns the address clients address their packets to
func (Keeper) GetHostAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.HostSubModuleName)
}

// GetProxyAddress returns the address representing the relay endpoint of the provided client chain
func (Keeper) GetProxyAddress(origin types.ChainIdentity) sdk.AccAddress {
	return types.GenerateProxyAddress(types.HostSubModuleName, origin)
}

// LocalChain returns the chain identity of the chain the keeper runs on
func (Keeper) LocalChain(ctx sdk.Context) types.ChainIdentity {
	return types.ChainIdentityFromChainID(ctx.ChainID())
}

// GetClientEndpoint returns the relay endpoint trusted for the provided client chain
func (k Keeper) GetClientEndpoint(ctx sdk.Context, chain types.ChainIdentity) (string, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyClientEndpoint(chain))
	if len(bz) == 0 {
		return "", false
	}

	return string(bz), true
}

// SetClientEndpoint stores the relay endpoint trusted for the provided client chain
func (k Keeper) SetClientEndpoint(ctx sdk.Context, chain types.ChainIdentity, endpoint string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyClientEndpoint(chain), []byte(endpoint))
}

// IsTrustedEndpoint returns true if the endpoint is the one registered for the client chain
func (k Keeper) IsTrustedEndpoint(ctx sdk.Context, chain types.ChainIdentity, endpoint string) bool {
	trusted, found := k.GetClientEndpoint(ctx, chain)
	return found && trusted == endpoint
}

// GetAllClientEndpoints returns all trusted client endpoints
func (k Keeper) GetAllClientEndpoints(ctx sdk.Context) []types.ClientEndpoint {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.ClientEndpointKeyPrefix+"/"))
	defer iterator.Close()

	var endpoints []types.ClientEndpoint
	for ; iterator.Valid(); iterator.Next() {
		keySplit := strings.Split(string(iterator.Key()), "/")

		endpoints = append(endpoints, types.ClientEndpoint{
			Chain:    types.ChainIdentity(keySplit[1]),
			Endpoint: string(iterator.Value()),
		})
	}

	return endpoints
}

// GetRemoteAccount returns the remote account record provisioned for the origin account
func (k Keeper) GetRemoteAccount(ctx sdk.Context, origin types.ChainIdentity, account types.AccountID) (types.RemoteAccountRecord, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyRemoteAccount(origin, account))
	if len(bz) == 0 {
		return types.RemoteAccountRecord{}, false
	}

	var record types.RemoteAccountRecord
	k.cdc.MustUnmarshal(bz, &record)

	return record, true
}

// SetRemoteAccount stores the provided remote account record
func (k Keeper) SetRemoteAccount(ctx sdk.Context, record types.RemoteAccountRecord) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyRemoteAccount(record.OriginChain, record.OriginAccount), k.cdc.MustMarshal(&record))
}

// GetAllRemoteAccounts returns all remote account records
func (k Keeper) GetAllRemoteAccounts(ctx sdk.Context) []types.RemoteAccountRecord {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.RemoteAccountKeyPrefix+"/"))
	defer iterator.Close()

	var records []types.RemoteAccountRecord
	for ; iterator.Valid(); iterator.Next() {
		var record types.RemoteAccountRecord
		k.cdc.MustUnmarshal(iterator.Value(), &record)

		records = append(records, record)
	}

	return records
}

// GetChannelLifecycle returns the channel lifecycle record of the provided client chain
func (k Keeper) GetChannelLifecycle(ctx sdk.Context, chain types.ChainIdentity) (types.ChannelLifecycle, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyChannelState(chain))
	if len(bz) == 0 {
		return types.ChannelLifecycle{}, false
	}

	var channel types.ChannelLifecycle
	k.cdc.MustUnmarshal(bz, &channel)

	return channel, true
}

// SetChannelLifecycle stores the provided channel lifecycle record
func (k Keeper) SetChannelLifecycle(ctx sdk.Context, channel types.ChannelLifecycle) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyChannelState(channel.Chain), k.cdc.MustMarshal(&channel))
}

// GetAllChannelLifecycles returns all channel lifecycle records
func (k Keeper) GetAllChannelLifecycles(ctx sdk.Context) []types.ChannelLifecycle {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.ChannelStateKeyPrefix+"/"))
	defer iterator.Close()

	var channels []types.ChannelLifecycle
	for ; iterator.Valid(); iterator.Next() {
		var channel types.ChannelLifecycle
		k.cdc.MustUnmarshal(iterator.Value(), &channel)

		channels = append(channels, channel)
	}

	return channels
}

func (k Keeper) validateAuthority(authority string) error {
	if authority != k.authority {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", k.authority, authority)
	}

	return nil
}
