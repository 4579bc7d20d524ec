package callbacks

import (
	"errors"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

var _ types.CallbackRouter = (*Router)(nil)

// Router maps a caller module name to the handler receiving the outcome of the actions that module
// sent with a correlation token.
type Router struct {
	routes map[string]types.CallbackHandler
	sealed bool
}

// NewRouter returns an empty callback router
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]types.CallbackHandler),
	}
}

// Seal prevents the Router from any subsequent route handlers to be registered.
// Seal will panic if called more than once.
func (rtr *Router) Seal() {
	if rtr.sealed {
		panic(errors.New("router already sealed"))
	}
	rtr.sealed = true
}

// Sealed returns a boolean signifying if the Router is sealed or not.
func (rtr Router) Sealed() bool {
	return rtr.sealed
}

// AddRoute adds the CallbackHandler for a given module name. It returns the Router
// so AddRoute calls can be linked. It will panic if the Router is sealed.
func (rtr *Router) AddRoute(module string, handler types.CallbackHandler) *Router {
	if rtr.sealed {
		panic(fmt.Errorf("router sealed; cannot register %s route callbacks", module))
	}
	if !sdk.IsAlphaNumeric(module) {
		panic(errors.New("route expressions can only contain alphanumeric characters"))
	}
	if rtr.HasRoute(module) {
		panic(fmt.Errorf("route %s has already been registered", module))
	}
	if handler == nil {
		panic(fmt.Errorf("no callback handler provided for %s", module))
	}

	rtr.routes[module] = handler
	return rtr
}

// HasRoute returns true if the Router has a handler registered for the given module.
func (rtr *Router) HasRoute(module string) bool {
	_, ok := rtr.routes[module]
	return ok
}

// GetRoute returns the CallbackHandler registered for the given module.
func (rtr *Router) GetRoute(module string) (types.CallbackHandler, bool) {
	handler, ok := rtr.routes[module]
	return handler, ok
}
