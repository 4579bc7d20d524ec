package ibctesting

import (
	"fmt"
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	paramskeeper "github.com/cosmos/cosmos-sdk/x/params/keeper"
	paramstypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/stretchr/testify/require"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	accountibc "github.com/abstract-accounts/account-ibc/modules/apps/account-ibc"
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/callbacks"
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/controller"
	controllerkeeper "github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/controller/keeper"
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/host"
	hostkeeper "github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/host/keeper"
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
	"github.com/abstract-accounts/account-ibc/testing/mock"
)

const (
	// CallerModule is the local module sending actions in tests. It receives their callbacks.
	CallerModule = "swapper"

	// DefaultDenom is the denomination minted to test accounts
	DefaultDenom = "stake"
)

var (
	// DefaultBalance is minted to every account created with CreateAccount
	DefaultBalance = sdk.NewCoins(sdk.NewInt64Coin(DefaultDenom, 1_000_000))

	globalStartTime = time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
)

// TestChain is a testing struct that wraps the account ibc keepers of a single chain, their
// stores and the mock primitives they depend on.
type TestChain struct {
	t *testing.T

	Coordinator *Coordinator
	ChainID     string
	Identity    types.ChainIdentity
	CMS         sdk.CommitMultiStore
	Header      tmproto.Header
	Authority   sdk.AccAddress

	keys map[string]*sdk.KVStoreKey

	ControllerKeeper controllerkeeper.Keeper
	HostKeeper       hostkeeper.Keeper
	ControllerModule controller.IBCModule
	HostModule       host.IBCModule
	AppModule        accountibc.AppModule
	CallbackRouter   *callbacks.Router

	BankKeeper    mock.BankKeeper
	AccountKeeper mock.AccountKeeper
	AccountSystem mock.AccountSystem
	Registry      *mock.Registry
	Transport     mock.Transport
	Callbacks     mock.CallbackHandler
	Logger        *mock.MockLogger
}

// NewTestChain initializes a new test chain with default genesis state
func NewTestChain(t *testing.T, coord *Coordinator, chainID string) *TestChain {
	t.Helper()

	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db)

	keys := sdk.NewKVStoreKeys(types.ControllerStoreKey, types.HostStoreKey, paramstypes.StoreKey, mock.StoreKey)
	tkeys := sdk.NewTransientStoreKeys(paramstypes.TStoreKey)

	for _, key := range keys {
		cms.MountStoreWithDB(key, sdk.StoreTypeIAVL, db)
	}
	for _, key := range tkeys {
		cms.MountStoreWithDB(key, sdk.StoreTypeTransient, nil)
	}
	require.NoError(t, cms.LoadLatestVersion())

	paramsKeeper := paramskeeper.NewKeeper(
		codec.NewProtoCodec(codectypes.NewInterfaceRegistry()), codec.NewLegacyAmino(),
		keys[paramstypes.StoreKey], tkeys[paramstypes.TStoreKey],
	)

	chain := &TestChain{
		t:           t,
		Coordinator: coord,
		ChainID:     chainID,
		Identity:    types.ChainIdentityFromChainID(chainID),
		CMS:         cms,
		Header: tmproto.Header{
			ChainID: chainID,
			Height:  1,
			Time:    globalStartTime,
		},
		Authority: authtypes.NewModuleAddress("gov"),
		Registry:  mock.NewRegistry(),
		Logger:    mock.NewMockLogger(),
		keys:      keys,
	}

	mockKey := keys[mock.StoreKey]
	chain.BankKeeper = mock.NewBankKeeper(mockKey)
	chain.AccountKeeper = mock.NewAccountKeeper(mockKey)
	chain.AccountSystem = mock.NewAccountSystem(mockKey)
	chain.Transport = mock.NewTransport(mockKey, chain.BankKeeper)
	chain.Callbacks = mock.NewCallbackHandler(mockKey, CallerModule)

	chain.CallbackRouter = callbacks.NewRouter()
	chain.CallbackRouter.AddRoute(CallerModule, chain.Callbacks)
	chain.CallbackRouter.Seal()

	chain.ControllerKeeper = controllerkeeper.NewKeeper(
		types.ModuleCdc, keys[types.ControllerStoreKey], paramsKeeper.Subspace(types.ControllerSubModuleName),
		chain.Transport, chain.Transport, chain.Registry, chain.CallbackRouter, chain.Authority.String(),
	)
	chain.HostKeeper = hostkeeper.NewKeeper(
		types.ModuleCdc, keys[types.HostStoreKey], paramsKeeper.Subspace(types.HostSubModuleName),
		chain.AccountKeeper, chain.BankKeeper, chain.AccountSystem, chain.Authority.String(),
	)

	chain.ControllerModule = controller.NewIBCModule(chain.ControllerKeeper)
	chain.HostModule = host.NewIBCModule(chain.HostKeeper)
	chain.AppModule = accountibc.NewAppModule(&chain.ControllerKeeper, &chain.HostKeeper)

	accountibc.InitGenesis(chain.GetContext(), &chain.ControllerKeeper, &chain.HostKeeper, *types.DefaultGenesis())

	return chain
}

// GetContext returns a new context writing directly to the chain's stores. Every call has its own
// event manager, all calls share the chain's logger.
func (chain *TestChain) GetContext() sdk.Context {
	return sdk.NewContext(chain.CMS, chain.Header, false, chain.Logger)
}

// StoreKey returns the store key mounted under the given name
func (chain *TestChain) StoreKey(name string) *sdk.KVStoreKey {
	key, ok := chain.keys[name]
	require.True(chain.t, ok, "store %s is not mounted", name)

	return key
}

// NextBlock commits the stores and moves the header to the next height
func (chain *TestChain) NextBlock() {
	chain.CMS.Commit()

	chain.Header.Height++
	chain.Header.Time = chain.Header.Time.Add(5 * time.Second)
}

// AccountAddress returns the local address used for the account in tests
func AccountAddress(account types.AccountID) sdk.AccAddress {
	return authtypes.NewModuleAddress(fmt.Sprintf("account/%s", account))
}

// CreateAccount registers a local account with the given sequence, installs CallerModule on it and
// funds it with DefaultBalance.
func (chain *TestChain) CreateAccount(sequence uint32) (types.AccountID, sdk.AccAddress) {
	account := types.NewLocalAccountID(sequence)
	addr := AccountAddress(account)

	chain.Registry.RegisterAccount(account, addr)
	chain.Registry.InstallModule(account, CallerModule)
	require.NoError(chain.t, chain.BankKeeper.MintCoins(chain.GetContext(), addr, DefaultBalance))

	return account, addr
}

// GetRemoteAccount returns the remote account the host of this chain provisioned for the account of
// the origin chain.
func (chain *TestChain) GetRemoteAccount(origin *TestChain, account types.AccountID) (types.RemoteAccountRecord, bool) {
	return chain.HostKeeper.GetRemoteAccount(chain.GetContext(), origin.Identity, account)
}

// Outbox returns the packets and transfers waiting to be relayed from this chain
func (chain *TestChain) Outbox() []mock.OutboxEntry {
	return chain.Transport.Outbox(chain.GetContext())
}

// PendingPackets returns the packets waiting to be relayed from this chain, oldest first
func (chain *TestChain) PendingPackets() []types.Packet {
	var packets []types.Packet
	for _, entry := range chain.Outbox() {
		if entry.Packet != nil {
			packets = append(packets, *entry.Packet)
		}
	}

	return packets
}
