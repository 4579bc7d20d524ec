package host

import (
	metrics "github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/host/keeper"
	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// IBCModule implements the transport callbacks of the account ibc host submodule
type IBCModule struct {
	keeper keeper.Keeper
}

// NewIBCModule creates a new IBCModule given the keeper
func NewIBCModule(k keeper.Keeper) IBCModule {
	return IBCModule{
		keeper: k,
	}
}

// OnChanOpenConfirm records the channel as the open channel of the client chain
func (im IBCModule) OnChanOpenConfirm(ctx sdk.Context, chain types.ChainIdentity, channelID string) error {
	return im.keeper.OpenChannel(ctx, chain, channelID)
}

// OnChanCloseInit moves the channel of the client chain to CLOSING
func (im IBCModule) OnChanCloseInit(ctx sdk.Context, chain types.ChainIdentity, channelID string) error {
	return im.keeper.BeginCloseChannel(ctx, chain, channelID)
}

// OnChanCloseConfirm moves the channel of the client chain to CLOSED
func (im IBCModule) OnChanCloseConfirm(ctx sdk.Context, chain types.ChainIdentity, channelID string) error {
	return im.keeper.ConfirmCloseChannel(ctx, chain, channelID)
}

// OnRecvPacket executes the action carried by the packet and returns the acknowledgement to write.
// State changes are committed only if the action succeeds. An acknowledgement is returned in
// every case, failures are reported as error acknowledgements.
func (im IBCModule) OnRecvPacket(ctx sdk.Context, packet types.Packet) types.Acknowledgement {
	logger := im.keeper.Logger(ctx)

	kind, result, err := im.recvPacket(ctx, packet)

	var ack types.Acknowledgement
	if err != nil {
		ack = types.NewErrorAcknowledgement(err)
		logger.Error("account ibc packet failed", "chain", packet.SourceChain, "sequence", packet.Sequence, "kind", kind, "error", err.Error())
	} else {
		ack = types.NewResultAcknowledgement(*result)
		logger.Info("account ibc packet executed", "chain", packet.SourceChain, "sequence", packet.Sequence, "kind", kind)
	}

	keeper.EmitPacketEvent(ctx, packet, kind, ack)

	defer func() {
		telemetry.IncrCounterWithLabels(
			[]string{"account-ibc", types.HostSubModuleName, "packet"},
			1,
			[]metrics.Label{
				telemetry.NewLabel(types.LabelChain, packet.SourceChain.String()),
				telemetry.NewLabel(types.LabelActionKind, string(kind)),
				telemetry.NewLabel(types.LabelOutcome, outcome(ack)),
			},
		)
	}()

	return ack
}

func (im IBCModule) recvPacket(ctx sdk.Context, packet types.Packet) (types.ActionKind, *types.ActionResult, error) {
	if !im.keeper.IsHostEnabled(ctx) {
		return types.ActionKindUnspecified, nil, types.ErrHostSubModuleDisabled
	}

	if err := packet.ValidateBasic(); err != nil {
		return types.ActionKindUnspecified, nil, err
	}

	local := im.keeper.LocalChain(ctx)
	if packet.DestinationChain != local || packet.DestinationHost != im.keeper.GetHostAddress().String() {
		return types.ActionKindUnspecified, nil, sdkerrors.Wrapf(types.ErrInvalidHost, "packet addressed to %s/%s", packet.DestinationChain, packet.DestinationHost)
	}

	if !im.keeper.IsTrustedEndpoint(ctx, packet.SourceChain, packet.SourceEndpoint) {
		return types.ActionKindUnspecified, nil, sdkerrors.Wrapf(types.ErrUntrustedEndpoint, "endpoint %s is not trusted for %s", packet.SourceEndpoint, packet.SourceChain)
	}

	if channel, found := im.keeper.GetChannelLifecycle(ctx, packet.SourceChain); found && channel.State == types.ChannelStateClosed {
		return types.ActionKindUnspecified, nil, sdkerrors.Wrapf(types.ErrChannelClosed, "channel %s to %s", channel.ChannelID, packet.SourceChain)
	}

	data, err := types.DecodePacketData(packet.Data)
	if err != nil {
		return types.ActionKindUnspecified, nil, err
	}

	kind := data.Action.Kind()

	if err := data.ValidateBasic(); err != nil {
		return kind, nil, err
	}

	if data.DestinationChain != local {
		return kind, nil, sdkerrors.Wrapf(types.ErrInvalidHost, "packet data addressed to %s", data.DestinationChain)
	}

	result, err := im.handlePacket(ctx, packet.SourceChain, data)
	return kind, result, err
}

// handlePacket runs the host dispatcher on a branch of the context and commits it on success.
// A panic during execution is converted into an error.
func (im IBCModule) handlePacket(ctx sdk.Context, origin types.ChainIdentity, data types.PacketData) (result *types.ActionResult, err error) {
	cacheCtx, writeFn := ctx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	defer func() {
		if r := recover(); r != nil {
			im.keeper.Logger(ctx).Error("account ibc packet execution panicked", "chain", origin, "panic", r)

			result = nil
			err = sdkerrors.Wrap(types.ErrExecutionFailed, "action execution panicked")
		}
	}()

	result, err = im.keeper.HandlePacket(cacheCtx, origin, data.Account, data.Action, data.Retries)
	if err != nil {
		return nil, err
	}

	writeFn()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())

	return result, nil
}

func outcome(ack types.Acknowledgement) string {
	if ack.Success() {
		return string(types.ResultKindSuccess)
	}

	return string(types.ResultKindError)
}
