package mock

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

var (
	_ types.ICS4Wrapper    = Transport{}
	_ types.TransferKeeper = Transport{}
)

// TokenTransfer is a token transfer waiting to be relayed
type TokenTransfer struct {
	Sender      string              `json:"sender"`
	Destination types.ChainIdentity `json:"destination"`
	Receiver    string              `json:"receiver"`
	Token       sdk.Coin            `json:"token"`
}

// OutboxEntry is a packet or a token transfer waiting to be relayed. Entries are relayed in the
// order they were emitted unless a test reorders them.
type OutboxEntry struct {
	Index    uint64         `json:"index"`
	Packet   *types.Packet  `json:"packet,omitempty"`
	Transfer *TokenTransfer `json:"transfer,omitempty"`
}

// Transport keeps emitted packets and token transfers in the mock store of the sending chain.
// Entries emitted by a context that is later discarded are discarded with it.
type Transport struct {
	key  sdk.StoreKey
	bank BankKeeper
	fail *bool
}

// NewTransport creates a new mock Transport
func NewTransport(key sdk.StoreKey, bank BankKeeper) Transport {
	return Transport{key: key, bank: bank, fail: new(bool)}
}

// SetFailure makes subsequent sends fail until it is reset
func (t Transport) SetFailure(fail bool) {
	*t.fail = fail
}

// EscrowAddress returns the address holding the tokens transferred to the destination chain
func EscrowAddress(destination types.ChainIdentity) sdk.AccAddress {
	return authtypes.NewModuleAddress("escrow/" + destination.String())
}

// SendPacket implements types.ICS4Wrapper
func (t Transport) SendPacket(ctx sdk.Context, packet types.Packet) error {
	if *t.fail {
		return sdkerrors.Wrap(ErrTransportFailure, "cannot send packet")
	}

	if err := packet.ValidateBasic(); err != nil {
		return err
	}

	t.enqueue(ctx, OutboxEntry{Packet: &packet})

	return nil
}

// Transfer implements types.TransferKeeper. The tokens are escrowed on the sending chain and minted
// to the receiver once relayed.
func (t Transport) Transfer(ctx sdk.Context, sender sdk.AccAddress, destination types.ChainIdentity, receiver string, token sdk.Coin) error {
	if *t.fail {
		return sdkerrors.Wrap(ErrTransportFailure, "cannot transfer tokens")
	}

	if err := t.bank.SendCoins(ctx, sender, EscrowAddress(destination), sdk.NewCoins(token)); err != nil {
		return err
	}

	t.enqueue(ctx, OutboxEntry{
		Transfer: &TokenTransfer{
			Sender:      sender.String(),
			Destination: destination,
			Receiver:    receiver,
			Token:       token,
		},
	})

	return nil
}

func (t Transport) enqueue(ctx sdk.Context, entry OutboxEntry) {
	store := ctx.KVStore(t.key)

	var index uint64
	if bz := store.Get(outboxSequenceKey); len(bz) != 0 {
		index = sdk.BigEndianToUint64(bz)
	}
	store.Set(outboxSequenceKey, sdk.Uint64ToBigEndian(index+1))

	entry.Index = index
	store.Set(append([]byte(outboxPrefix), sdk.Uint64ToBigEndian(index)...), cdc.MustMarshal(&entry))
}

// Outbox returns the entries waiting to be relayed, oldest first
func (t Transport) Outbox(ctx sdk.Context) []OutboxEntry {
	iterator := sdk.KVStorePrefixIterator(ctx.KVStore(t.key), []byte(outboxPrefix))
	defer iterator.Close()

	var entries []OutboxEntry
	for ; iterator.Valid(); iterator.Next() {
		var entry OutboxEntry
		cdc.MustUnmarshal(iterator.Value(), &entry)

		entries = append(entries, entry)
	}

	return entries
}

// Remove deletes a relayed entry from the outbox
func (t Transport) Remove(ctx sdk.Context, index uint64) {
	ctx.KVStore(t.key).Delete(append([]byte(outboxPrefix), sdk.Uint64ToBigEndian(index)...))
}
