package types

// account ibc events
const (
	EventTypeActionSent               = "action_sent"
	EventTypeActionAcknowledged       = "action_acknowledged"
	EventTypeActionCallback           = "action_callback"
	EventTypeRemoteAccountProvisioned = "remote_account_provisioned"
	EventTypeInfrastructureRegistered = "infrastructure_registered"
	EventTypeInfrastructureRemoved    = "infrastructure_removed"
	EventTypeInfrastructureConfirmed  = "infrastructure_confirmed"
	EventTypeClientEndpointRegistered = "client_endpoint_registered"
	EventTypeClientEndpointRemoved    = "client_endpoint_removed"
	EventTypeChannelState             = "channel_state"
	EventTypeFundsRecovered           = "funds_recovered"
	EventTypePacket                   = "account_ibc_packet"

	AttributeKeySequence        = "sequence"
	AttributeKeyChain           = "chain"
	AttributeKeyActionKind      = "action_kind"
	AttributeKeyCaller          = "caller"
	AttributeKeyAccountID       = "account_id"
	AttributeKeyOriginAccountID = "origin_account_id"
	AttributeKeyAddress         = "address"
	AttributeKeyResultKind      = "result_kind"
	AttributeKeyCallbackResult  = "callback_result"
	AttributeKeyCallbackError   = "callback_error"
	AttributeKeyRelayEndpoint   = "relay_endpoint"
	AttributeKeyRemoteHost      = "remote_host"
	AttributeKeyRemoteProxy     = "remote_proxy"
	AttributeKeyEndpoint        = "endpoint"
	AttributeKeyChannelID       = "channel_id"
	AttributeKeyChannelState    = "channel_state"
	AttributeKeyRecipient       = "recipient"
	AttributeKeyAmount          = "amount"
	AttributeKeyAckSuccess      = "success"
	AttributeKeyAckError        = "error"

	AttributeValueCategory = ModuleName

	CallbackResultSuccess = "success"
	CallbackResultFailure = "failure"
)

// telemetry labels
const (
	LabelChain      = "chain"
	LabelActionKind = "action_kind"
	LabelResultKind = "result_kind"
	LabelOutcome    = "outcome"
	LabelDenom      = "denom"
)
