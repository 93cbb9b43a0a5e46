package extrinsic

import (
	"fmt"
	"strings"

	"go-zeropool-dictionary/internal/chain"
	"go-zeropool-dictionary/internal/messages"
	"go-zeropool-dictionary/internal/models"
	"go-zeropool-dictionary/internal/types"
	"go-zeropool-dictionary/internal/types/support"
	v1 "go-zeropool-dictionary/internal/types/v1"
)

// ExtrinsicClient turns block bodies into extrinsic rows
type ExtrinsicClient struct {
	ss58Prefix uint16
}

func NewExtrinsicClient(ss58Prefix uint16) *ExtrinsicClient {
	return &ExtrinsicClient{ss58Prefix: ss58Prefix}
}

// ProcessBlock decodes the hex encoded extrinsics of a block. Every row is
// successful until ApplyOutcomes sees the block events.
func (client *ExtrinsicClient) ProcessBlock(decoder Decoder, blockHeight int, rawExtrinsics []string) ([]models.Extrinsic, error) {
	rows := make([]models.Extrinsic, 0, len(rawExtrinsics))
	for idx, rawExtrinsic := range rawExtrinsics {
		id := fmt.Sprintf("%d-%d", blockHeight, idx)
		decoded, err := decoder.DecodeExtrinsic(id, rawExtrinsic)
		if err != nil {
			return nil, messages.NewDictionaryMessage(
				messages.LOG_LEVEL_ERROR,
				messages.GetComponent(client.ProcessBlock),
				err,
				messages.EXTRINSIC_DECODE_FAILED,
				idx,
				blockHeight,
			)
		}

		module, call, ok := strings.Cut(decoded.Call.Name, ".")
		if !ok {
			return nil, messages.NewDictionaryMessage(
				messages.LOG_LEVEL_ERROR,
				messages.GetComponent(client.ProcessBlock),
				nil,
				messages.EXTRINSIC_FIELD_FAILED,
				"call "+decoded.Call.Name,
				blockHeight,
			)
		}

		row, err := models.NewExtrinsic(
			id,
			txHash(decoded.Hash),
			strings.ToLower(module),
			call,
			int64(blockHeight),
			true,
			decoded.Signed,
		)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)

		client.logSudo(decoder, blockHeight, idx, decoded)
	}
	return rows, nil
}

// ApplyOutcomes marks the extrinsics whose index maps to false as failed
func ApplyOutcomes(rows []models.Extrinsic, outcomes map[int]bool) {
	for i := range rows {
		if success, ok := outcomes[i]; ok {
			rows[i].Success = success
		}
	}
}

// logSudo reports the call dispatched by a sudo extrinsic
func (client *ExtrinsicClient) logSudo(decoder Decoder, blockHeight, idx int, decoded chain.Extrinsic) {
	var (
		dispatched string
		err        error
	)
	ctx := support.WithCall(decoder, decoded.Call)
	switch decoded.Call.Name {
	case sudoCall:
		dispatched, err = client.sudoTarget(ctx)
	case sudoAsCall:
		dispatched, err = client.sudoAsTarget(ctx)
	default:
		return
	}
	if err != nil {
		messages.NewDictionaryMessage(
			messages.LOG_LEVEL_WARNING,
			messages.GetComponent(client.logSudo),
			err,
			EXTRINSIC_SUDO_DECODE_FAILED,
			decoded.Call.ID,
		).ConsoleLog()
		return
	}
	if dispatched == "" {
		return
	}
	messages.NewDictionaryMessage(
		messages.LOG_LEVEL_INFO,
		"",
		nil,
		messages.EXTRINSIC_SUDO_CALL,
		blockHeight,
		idx,
		dispatched,
	).ConsoleLog()
}

func (client *ExtrinsicClient) sudoTarget(ctx support.CallContext) (string, error) {
	call, err := types.NewSudoSudoCall(ctx)
	if err != nil {
		return "", err
	}
	if !call.IsV1() {
		return "", nil
	}
	sudo, err := call.AsV1()
	if err != nil {
		return "", err
	}
	return sudo.Call.Name(), nil
}

func (client *ExtrinsicClient) sudoAsTarget(ctx support.CallContext) (string, error) {
	call, err := types.NewSudoSudoAsCall(ctx)
	if err != nil {
		return "", err
	}
	if !call.IsV1() {
		return "", nil
	}
	sudo, err := call.AsV1()
	if err != nil {
		return "", err
	}
	return sudo.Call.Name() + " as " + client.address(sudo.Who), nil
}

// address renders an account lookup source, as SS58 when it holds a public key
func (client *ExtrinsicClient) address(who v1.LookupSource) string {
	if who.Kind == v1.LookupSourceKindIndex {
		return fmt.Sprintf("index %d", who.Index)
	}
	if address, err := chain.SS58(who.Value, client.ss58Prefix); err == nil {
		return address
	}
	return who.Value.Hex()
}

func txHash(hash string) string {
	if hash == "" || strings.HasPrefix(hash, "0x") {
		return hash
	}
	return "0x" + hash
}
