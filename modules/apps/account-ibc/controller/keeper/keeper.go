package keeper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// Keeper defines the account ibc client (controller) keeper
type Keeper struct {
	storeKey   sdk.StoreKey
	cdc        *codec.LegacyAmino
	paramSpace paramtypes.Subspace

	ics4Wrapper    types.ICS4Wrapper
	transferKeeper types.TransferKeeper
	registry       types.ModuleRegistry
	callbackRouter types.CallbackRouter

	// the address allowed to manage infrastructure links
	authority string
}

// NewKeeper creates a new account ibc client Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino, key sdk.StoreKey, paramSpace paramtypes.Subspace,
	ics4Wrapper types.ICS4Wrapper, transferKeeper types.TransferKeeper,
	registry types.ModuleRegistry, callbackRouter types.CallbackRouter, authority string,
) Keeper {
	if strings.TrimSpace(authority) == "" {
		panic(errors.New("authority must be non-empty"))
	}

	// set KeyTable if it has not already been set
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.ControllerParamKeyTable())
	}

	return Keeper{
		storeKey:       key,
		cdc:            cdc,
		paramSpace:     paramSpace,
		ics4Wrapper:    ics4Wrapper,
		transferKeeper: transferKeeper,
		registry:       registry,
		callbackRouter: callbackRouter,
		authority:      authority,
	}
}

// WithICS4Wrapper sets the ICS4Wrapper. This function may be used after
// the keepers creation to set the transport the packets are sent through.
func (k *Keeper) WithICS4Wrapper(wrapper types.ICS4Wrapper) {
	k.ics4Wrapper = wrapper
}

// Logger returns the application logger, scoped to the associated module
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s-%s", types.ModuleName, types.ControllerSubModuleName))
}

// GetAuthority returns the address allowed to manage infrastructure links
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetRelayEndpoint returns the address of the local relay endpoint. Hosts trust packets whose
// source endpoint matches the address registered for this chain.
func (Keeper) GetRelayEndpoint() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ControllerSubModuleName)
}

// LocalChain returns the chain identity of the chain the keeper runs on
func (Keeper) LocalChain(ctx sdk.Context) types.ChainIdentity {
	return types.ChainIdentityFromChainID(ctx.ChainID())
}

// GetRemoteAddress returns the address hosts assign to the remote account of the provided local
// account. Tokens sent to it before the remote account is provisioned are picked up by it.
func (k Keeper) GetRemoteAddress(ctx sdk.Context, account types.AccountID) sdk.AccAddress {
	return types.GenerateAddress(types.HostSubModuleName, k.LocalChain(ctx), account)
}

// GetInfrastructure returns the infrastructure link registered for the provided chain
func (k Keeper) GetInfrastructure(ctx sdk.Context, chain types.ChainIdentity) (types.InfrastructureLink, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyInfrastructure(chain))
	if len(bz) == 0 {
		return types.InfrastructureLink{}, false
	}

	var link types.InfrastructureLink
	k.cdc.MustUnmarshal(bz, &link)

	return link, true
}

// GetActiveInfrastructure returns the infrastructure link for the provided chain if it is active
func (k Keeper) GetActiveInfrastructure(ctx sdk.Context, chain types.ChainIdentity) (types.InfrastructureLink, bool) {
	link, found := k.GetInfrastructure(ctx, chain)
	if !found || !link.Active {
		return types.InfrastructureLink{}, false
	}

	return link, true
}

// SetInfrastructure stores the provided infrastructure link, keyed by its chain
func (k Keeper) SetInfrastructure(ctx sdk.Context, link types.InfrastructureLink) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyInfrastructure(link.Chain), k.cdc.MustMarshal(&link))
}

// GetAllInfrastructures returns all stored infrastructure links, active or not
func (k Keeper) GetAllInfrastructures(ctx sdk.Context) []types.InfrastructureLink {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.InfrastructureKeyPrefix+"/"))
	defer iterator.Close()

	var links []types.InfrastructureLink
	for ; iterator.Valid(); iterator.Next() {
		var link types.InfrastructureLink
		k.cdc.MustUnmarshal(iterator.Value(), &link)

		links = append(links, link)
	}

	return links
}

// GetNextSequence returns the sequence the next sent action will be assigned
func (k Keeper) GetNextSequence(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.NextSequenceKey)
	if len(bz) == 0 {
		return 1
	}

	return sdk.BigEndianToUint64(bz)
}

// SetNextSequence sets the sequence the next sent action will be assigned
func (k Keeper) SetNextSequence(ctx sdk.Context, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.NextSequenceKey, sdk.Uint64ToBigEndian(sequence))
}

// allocateSequence returns the next sequence and increments the stored counter
func (k Keeper) allocateSequence(ctx sdk.Context) uint64 {
	sequence := k.GetNextSequence(ctx)
	k.SetNextSequence(ctx, sequence+1)

	return sequence
}

// GetPendingAction returns the pending action stored under the provided sequence
func (k Keeper) GetPendingAction(ctx sdk.Context, sequence uint64) (types.PendingAction, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyPendingAction(sequence))
	if len(bz) == 0 {
		return types.PendingAction{}, false
	}

	var pending types.PendingAction
	k.cdc.MustUnmarshal(bz, &pending)

	return pending, true
}

// SetPendingAction stores the provided pending action, keyed by its sequence
func (k Keeper) SetPendingAction(ctx sdk.Context, pending types.PendingAction) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyPendingAction(pending.Sequence), k.cdc.MustMarshal(&pending))
}

// takePendingAction removes and returns the pending action stored under the provided sequence.
// A second call for the same sequence reports not found.
func (k Keeper) takePendingAction(ctx sdk.Context, sequence uint64) (types.PendingAction, bool) {
	pending, found := k.GetPendingAction(ctx, sequence)
	if !found {
		return types.PendingAction{}, false
	}

	store := ctx.KVStore(k.storeKey)
	store.Delete(types.KeyPendingAction(sequence))

	return pending, true
}

// GetAllPendingActions returns all pending actions in sequence order
func (k Keeper) GetAllPendingActions(ctx sdk.Context) []types.PendingAction {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.PendingActionKeyPrefix+"/"))
	defer iterator.Close()

	var actions []types.PendingAction
	for ; iterator.Valid(); iterator.Next() {
		var pending types.PendingAction
		k.cdc.MustUnmarshal(iterator.Value(), &pending)

		actions = append(actions, pending)
	}

	return actions
}
