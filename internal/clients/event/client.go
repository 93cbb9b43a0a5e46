package event

import (
	"context"
	"fmt"
	"strings"

	"go-zeropool-dictionary/internal/chain"
	"go-zeropool-dictionary/internal/messages"
	"go-zeropool-dictionary/internal/models"
	"go-zeropool-dictionary/internal/types"
	"go-zeropool-dictionary/internal/types/support"

	"github.com/itering/substrate-api-rpc/util"
)

// EventClient reads the System.Events storage of blocks into event rows
type EventClient struct {
	storage chain.StorageReader
}

func NewEventClient(storage chain.StorageReader) *EventClient {
	return &EventClient{storage: storage}
}

// ProcessBlock decodes the events of a block with extrinsicCount extrinsics
// and reports the outcome of every extrinsic that emitted one
func (client *EventClient) ProcessBlock(
	ctx context.Context,
	decoder Decoder,
	blockHeight int,
	blockHash string,
	extrinsicCount int,
) ([]models.Event, Outcomes, error) {
	key, err := decoder.StorageKey("System", "Events")
	if err != nil {
		return nil, nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(client.ProcessBlock),
			err,
			messages.EVENT_FAILED_TO_FETCH,
			blockHeight,
		)
	}
	raw, err := client.storage.GetStorage(ctx, key, blockHash)
	if err != nil {
		return nil, nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(client.ProcessBlock),
			err,
			messages.EVENT_FAILED_TO_FETCH,
			blockHeight,
		)
	}
	if raw == "" {
		return nil, Outcomes{}, nil
	}

	events, err := decoder.DecodeEvents(blockHeight, util.HexToBytes(raw))
	if err != nil {
		return nil, nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(client.ProcessBlock),
			err,
			messages.EVENT_DECODE_FAILED,
			blockHeight,
		)
	}

	rows := make([]models.Event, 0, len(events))
	outcomes := Outcomes{}
	for _, evt := range events {
		module, name, ok := strings.Cut(evt.Name, ".")
		if !ok {
			return nil, nil, messages.NewDictionaryMessage(
				messages.LOG_LEVEL_ERROR,
				messages.GetComponent(client.ProcessBlock),
				nil,
				messages.EVENT_FIELD_FAILED,
				"name "+evt.Name,
				blockHeight,
			)
		}
		row, err := models.NewEvent(evt.ID, strings.ToLower(module), name, int64(blockHeight))
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)

		if evt.ExtrinsicIndex == nil {
			continue
		}
		idx := *evt.ExtrinsicIndex
		if idx < 0 || idx >= extrinsicCount {
			messages.NewDictionaryMessage(
				messages.LOG_LEVEL_WARNING,
				"",
				nil,
				messages.EVENT_UNKNOWN_EXTRINSIC,
				evt.ID,
				blockHeight,
				idx,
			).ConsoleLog()
			continue
		}
		if success, ok := outcome(support.WithEvent(decoder, evt), fmt.Sprintf("%d-%d", blockHeight, idx)); ok {
			outcomes[idx] = success
		}
	}
	return rows, outcomes, nil
}

// outcome reads the extrinsic result carried by a System.ExtrinsicSuccess or
// System.ExtrinsicFailed event. ok is false for every other event.
func outcome(ctx support.EventContext, extrinsicId string) (success, ok bool) {
	switch ctx.Event().Name {
	case extrinsicSuccessEvent:
		_, err := types.NewSystemExtrinsicSuccessEvent(ctx)
		return err == nil, err == nil
	case extrinsicFailedEvent:
	default:
		return false, false
	}

	reason, err := failureReason(ctx)
	if err != nil {
		messages.NewDictionaryMessage(
			messages.LOG_LEVEL_WARNING,
			messages.GetComponent(outcome),
			err,
			messages.EVENT_FAILED_TO_READ_INFO,
			ctx.Event().ID,
		).ConsoleLog()
		return false, true
	}
	if reason != "" {
		messages.NewDictionaryMessage(
			messages.LOG_LEVEL_INFO,
			"",
			nil,
			messages.EVENT_EXTRINSIC_FAILED,
			extrinsicId,
			reason,
		).ConsoleLog()
	}
	return false, true
}

// failureReason renders the dispatch error of a System.ExtrinsicFailed event,
// empty when the event layout is not known
func failureReason(ctx support.EventContext) (string, error) {
	failed, err := types.NewSystemExtrinsicFailedEvent(ctx)
	if err != nil {
		return "", err
	}
	if !failed.IsV1() {
		return "", nil
	}
	value, err := failed.AsV1()
	if err != nil {
		return "", err
	}
	return value.Error.String(), nil
}
