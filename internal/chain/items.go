package chain

import (
	"encoding/json"
	"fmt"

	"go-zeropool-dictionary/internal/types/support"

	scalecodec "github.com/itering/scale.go"
	"github.com/itering/scale.go/types"
	"github.com/itering/substrate-api-rpc/util"
	"github.com/pkg/errors"
)

const (
	extrinsicCallModuleField = "call_module"
	extrinsicFunctionField   = "call_module_function"
	extrinsicParamsField     = "params"
	extrinsicHashField       = "extrinsic_hash"
	extrinsicSignatureField  = "signature"

	eventModuleField    = "module_id"
	eventIdField        = "event_id"
	eventParamsField    = "params"
	eventExtrinsicField = "extrinsic_idx"
	eventPhaseField     = "phase"
)

// Extrinsic is a decoded extrinsic of a block body
type Extrinsic struct {
	Call   support.Call
	Hash   string
	Signed bool
}

// DecodeBody splits a SCALE encoded block body into hex encoded extrinsics
func DecodeBody(raw []byte) (extrinsics []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("scale: decode body: %v", r)
		}
	}()

	decoder := types.ScaleDecoder{}
	decoder.Init(types.ScaleBytes{Data: raw}, nil)
	body, ok := decoder.ProcessAndUpdateData("Vec<Bytes>").([]interface{})
	if !ok {
		return nil, errors.New("scale: body is not a list")
	}
	for i, item := range body {
		extrinsic, ok := item.(string)
		if !ok {
			return nil, errors.Errorf("scale: body item %d is %T", i, item)
		}
		extrinsics = append(extrinsics, extrinsic)
	}
	return extrinsics, nil
}

// DecodeExtrinsic decodes a hex encoded extrinsic of this runtime version
func (c *Chain) DecodeExtrinsic(id, rawExtrinsic string) (extrinsic Extrinsic, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("scale: decode extrinsic %s: %v", id, r)
		}
	}()

	decoder := scalecodec.ExtrinsicDecoder{}
	decoder.Init(types.ScaleBytes{Data: util.HexToBytes(rawExtrinsic)}, &types.ScaleDecoderOption{Metadata: c.metadata, Spec: c.specVersion})
	decoder.Process()
	return NewExtrinsic(id, decoder.Value)
}

// DecodeEvents decodes the raw value of System.Events into one item per event
func (c *Chain) DecodeEvents(blockHeight int, rawEvents []byte) (events []support.Event, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("scale: decode events of block %d: %v", blockHeight, r)
		}
	}()

	decoder := scalecodec.EventsDecoder{}
	decoder.Init(types.ScaleBytes{Data: rawEvents}, &types.ScaleDecoderOption{Metadata: c.metadata, Spec: c.specVersion})
	decoder.Process()

	records, ok := decoder.Value.([]interface{})
	if !ok {
		return nil, errors.Errorf("scale: events of block %d are %T", blockHeight, decoder.Value)
	}
	events = make([]support.Event, 0, len(records))
	for i, record := range records {
		event, err := NewEvent(fmt.Sprintf("%d-%d", blockHeight, i), record)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// NewExtrinsic builds an extrinsic from ExtrinsicDecoder output
func NewExtrinsic(id string, decoded interface{}) (Extrinsic, error) {
	generic, err := genericOf(decoded)
	if err != nil {
		return Extrinsic{}, err
	}
	fields, ok := generic.(map[string]interface{})
	if !ok {
		return Extrinsic{}, errors.Errorf("extrinsic %s: unexpected %T", id, decoded)
	}

	module, ok := fields[extrinsicCallModuleField].(string)
	if !ok {
		return Extrinsic{}, errors.Errorf("extrinsic %s: missing %s", id, extrinsicCallModuleField)
	}
	function, ok := fields[extrinsicFunctionField].(string)
	if !ok {
		return Extrinsic{}, errors.Errorf("extrinsic %s: missing %s", id, extrinsicFunctionField)
	}

	args := map[string]interface{}{}
	for _, arg := range argList(fields[extrinsicParamsField]) {
		args[arg.Name] = normalize(arg.Value)
	}
	rawArgs, err := json.Marshal(args)
	if err != nil {
		return Extrinsic{}, errors.Wrapf(err, "extrinsic %s", id)
	}

	var signed bool
	switch signature := fields[extrinsicSignatureField].(type) {
	case nil:
	case string:
		signed = signature != ""
	default:
		signed = true
	}
	hash, _ := fields[extrinsicHashField].(string)
	return Extrinsic{
		Call:   support.Call{ID: id, Name: module + "." + function, Args: rawArgs},
		Hash:   hash,
		Signed: signed,
	}, nil
}

// NewEvent builds an event from one EventsDecoder record
func NewEvent(id string, decoded interface{}) (support.Event, error) {
	generic, err := genericOf(decoded)
	if err != nil {
		return support.Event{}, err
	}
	fields, ok := generic.(map[string]interface{})
	if !ok {
		return support.Event{}, errors.Errorf("event %s: unexpected %T", id, decoded)
	}

	module, ok := fields[eventModuleField].(string)
	if !ok {
		return support.Event{}, errors.Errorf("event %s: missing %s", id, eventModuleField)
	}
	name, ok := fields[eventIdField].(string)
	if !ok {
		return support.Event{}, errors.Errorf("event %s: missing %s", id, eventIdField)
	}

	params, _ := fields[eventParamsField].([]interface{})
	values := make([]interface{}, 0, len(params))
	for _, param := range params {
		p, ok := param.(map[string]interface{})
		if !ok {
			continue
		}
		value, ok := p["value"]
		if !ok {
			value = p["Value"]
		}
		values = append(values, normalize(value))
	}

	var args interface{}
	switch len(values) {
	case 0:
	case 1:
		args = values[0]
	default:
		args = values
	}
	rawArgs, err := json.Marshal(args)
	if err != nil {
		return support.Event{}, errors.Wrapf(err, "event %s", id)
	}

	event := support.Event{ID: id, Name: module + "." + name, Args: rawArgs}
	// only the ApplyExtrinsic phase (0) carries an extrinsic index
	if phase, ok := fields[eventPhaseField].(json.Number); !ok || phase.String() != "0" {
		return event, nil
	}
	if index, ok := fields[eventExtrinsicField].(json.Number); ok {
		if i, err := index.Int64(); err == nil {
			extrinsic := int(i)
			event.ExtrinsicIndex = &extrinsic
		}
	}
	return event, nil
}
