package mock

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

var _ types.ModuleRegistry = (*Registry)(nil)

// Registry is an in memory module registry. Tests configure it before sending actions.
type Registry struct {
	installed map[string]map[string]bool
	addresses map[string]sdk.AccAddress
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		installed: make(map[string]map[string]bool),
		addresses: make(map[string]sdk.AccAddress),
	}
}

// RegisterAccount records the local address of the account
func (r *Registry) RegisterAccount(account types.AccountID, addr sdk.AccAddress) {
	r.addresses[account.String()] = addr
}

// InstallModule authorizes the module to act on behalf of the account
func (r *Registry) InstallModule(account types.AccountID, module string) {
	modules, ok := r.installed[account.String()]
	if !ok {
		modules = make(map[string]bool)
		r.installed[account.String()] = modules
	}

	modules[module] = true
}

// UninstallModule revokes the authorization of the module
func (r *Registry) UninstallModule(account types.AccountID, module string) {
	delete(r.installed[account.String()], module)
}

// IsAuthorized implements types.ModuleRegistry
func (r *Registry) IsAuthorized(_ sdk.Context, caller string, account types.AccountID) bool {
	return r.installed[account.String()][caller]
}

// AccountAddress implements types.ModuleRegistry
func (r *Registry) AccountAddress(_ sdk.Context, account types.AccountID) (sdk.AccAddress, bool) {
	addr, ok := r.addresses[account.String()]
	return addr, ok
}
