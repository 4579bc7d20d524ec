package types

import (
	yaml "gopkg.in/yaml.v2"
)

// Callback is delivered to the caller module once the outcome of an action is known. The token is
// echoed verbatim so that one handler can multiplex many in flight actions.
type Callback struct {
	Sequence         uint64                `json:"sequence" yaml:"sequence"`
	Chain            ChainIdentity         `json:"chain" yaml:"chain"`
	Caller           string                `json:"caller" yaml:"caller"`
	Account          AccountID             `json:"account" yaml:"account"`
	CorrelationToken []byte                `json:"correlation_token" yaml:"correlation_token"`
	Result           AcknowledgementResult `json:"result" yaml:"result"`
}

// NewCallback creates the callback for a resolved pending action
func NewCallback(pending PendingAction, result AcknowledgementResult) Callback {
	return Callback{
		Sequence:         pending.Sequence,
		Chain:            pending.Chain,
		Caller:           pending.Caller,
		Account:          pending.Account,
		CorrelationToken: pending.CorrelationToken,
		Result:           result,
	}
}

// String implements fmt.Stringer
func (c Callback) String() string {
	out, _ := yaml.Marshal(c)
	return string(out)
}
