package types

import (
	"fmt"

	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
	yaml "gopkg.in/yaml.v2"
)

const (
	// DefaultClientEnabled is the default value for the client enabled param
	DefaultClientEnabled = true
	// DefaultRetries is the retry budget attached to actions sent without an explicit one
	DefaultRetries uint32 = 0

	// DefaultHostEnabled is the default value for the host enabled param
	DefaultHostEnabled = true
	// DefaultMaxRetries is the default cap applied by the host to the retries a packet carries
	DefaultMaxRetries uint32 = MaxRetries
)

var (
	// KeyClientEnabled is the store key for the ClientEnabled param
	KeyClientEnabled = []byte("ClientEnabled")
	// KeyDefaultRetries is the store key for the DefaultRetries param
	KeyDefaultRetries = []byte("DefaultRetries")
	// KeyHostEnabled is the store key for the HostEnabled param
	KeyHostEnabled = []byte("HostEnabled")
	// KeyMaxRetries is the store key for the MaxRetries param
	KeyMaxRetries = []byte("MaxRetries")
)

var (
	_ paramtypes.ParamSet = (*ControllerParams)(nil)
	_ paramtypes.ParamSet = (*HostParams)(nil)
)

// ControllerParams defines the set of on-chain client (controller) submodule parameters
type ControllerParams struct {
	ClientEnabled  bool   `json:"client_enabled" yaml:"client_enabled"`
	DefaultRetries uint32 `json:"default_retries" yaml:"default_retries"`
}

// ControllerParamKeyTable type declaration for parameters
func ControllerParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&ControllerParams{})
}

// NewControllerParams creates a new parameter configuration for the client submodule
func NewControllerParams(enabled bool, defaultRetries uint32) ControllerParams {
	return ControllerParams{
		ClientEnabled:  enabled,
		DefaultRetries: defaultRetries,
	}
}

// DefaultControllerParams is the default parameter configuration for the client submodule
func DefaultControllerParams() ControllerParams {
	return NewControllerParams(DefaultClientEnabled, DefaultRetries)
}

// Validate validates all client submodule parameters
func (p ControllerParams) Validate() error {
	if err := validateEnabledType(p.ClientEnabled); err != nil {
		return err
	}

	return validateRetries(p.DefaultRetries)
}

// ParamSetPairs implements params.ParamSet
func (p *ControllerParams) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyClientEnabled, &p.ClientEnabled, validateEnabledType),
		paramtypes.NewParamSetPair(KeyDefaultRetries, &p.DefaultRetries, validateRetries),
	}
}

// String implements the Stringer interface
func (p ControllerParams) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// HostParams defines the set of on-chain host submodule parameters
type HostParams struct {
	HostEnabled bool   `json:"host_enabled" yaml:"host_enabled"`
	MaxRetries  uint32 `json:"max_retries" yaml:"max_retries"`
}

// HostParamKeyTable type declaration for parameters
func HostParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&HostParams{})
}

// NewHostParams creates a new parameter configuration for the host submodule
func NewHostParams(enabled bool, maxRetries uint32) HostParams {
	return HostParams{
		HostEnabled: enabled,
		MaxRetries:  maxRetries,
	}
}

// DefaultHostParams is the default parameter configuration for the host submodule
func DefaultHostParams() HostParams {
	return NewHostParams(DefaultHostEnabled, DefaultMaxRetries)
}

// Validate validates all host submodule parameters
func (p HostParams) Validate() error {
	if err := validateEnabledType(p.HostEnabled); err != nil {
		return err
	}

	return validateRetries(p.MaxRetries)
}

// ParamSetPairs implements params.ParamSet
func (p *HostParams) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyHostEnabled, &p.HostEnabled, validateEnabledType),
		paramtypes.NewParamSetPair(KeyMaxRetries, &p.MaxRetries, validateRetries),
	}
}

// String implements the Stringer interface
func (p HostParams) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

func validateEnabledType(i interface{}) error {
	_, ok := i.(bool)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	return nil
}

func validateRetries(i interface{}) error {
	retries, ok := i.(uint32)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	if retries > MaxRetries {
		return fmt.Errorf("retries cannot exceed %d, got %d", MaxRetries, retries)
	}

	return nil
}
