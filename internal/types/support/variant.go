package support

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// KindKey names the discriminant of an encoded variant
const KindKey = "__kind"

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrTupleArity     = errors.New("unexpected tuple arity")
)

// DecodeVariant splits an encoded sum type into its kind and payload.
//
// Accepted shapes are {"__kind": K, "value": V}, {"__kind": K, field: ...}
// for struct variants, {K: V} and the bare string "K". The payload is nil
// for variants without data.
func DecodeVariant(data []byte) (string, json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return "", nil, errors.New("variant: empty value")
	}

	if data[0] == '"' {
		var kind string
		if err := json.Unmarshal(data, &kind); err != nil {
			return "", nil, errors.Wrap(err, "variant")
		}
		return kind, nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", nil, errors.Wrap(err, "variant")
	}

	rawKind, tagged := fields[KindKey]
	if !tagged {
		if len(fields) != 1 {
			return "", nil, errors.Errorf("variant: expected a single kind, got %d keys", len(fields))
		}
		for kind, value := range fields {
			return kind, nullToNil(value), nil
		}
	}

	var kind string
	if err := json.Unmarshal(rawKind, &kind); err != nil {
		return "", nil, errors.Wrap(err, "variant kind")
	}
	delete(fields, KindKey)
	if value, ok := fields["value"]; ok && len(fields) == 1 {
		return kind, nullToNil(value), nil
	}
	if len(fields) == 0 {
		return kind, nil, nil
	}
	value, err := json.Marshal(fields)
	if err != nil {
		return "", nil, errors.Wrap(err, "variant")
	}
	return kind, value, nil
}

// EncodeVariant renders {"__kind": kind, "value": value}, omitting value when nil
func EncodeVariant(kind string, value interface{}) ([]byte, error) {
	if value == nil {
		return json.Marshal(map[string]string{KindKey: kind})
	}
	return json.Marshal(struct {
		Kind  string      `json:"__kind"`
		Value interface{} `json:"value"`
	}{kind, value})
}

// EncodeStructVariant renders the fields of value inline next to the kind
func EncodeStructVariant(kind string, value interface{}) ([]byte, error) {
	fields := map[string]json.RawMessage{}
	if value != nil {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, errors.Wrapf(err, "variant %s is not a struct", kind)
		}
	}
	rawKind, _ := json.Marshal(kind)
	fields[KindKey] = rawKind
	return json.Marshal(fields)
}

// DecodeInto unmarshals a variant payload, rejecting a missing one
func DecodeInto(kind string, value json.RawMessage, out interface{}) error {
	if value == nil {
		return errors.Errorf("variant %s: missing value", kind)
	}
	return errors.Wrapf(json.Unmarshal(value, out), "variant %s", kind)
}

func UnknownVariant(typeName, kind string) error {
	return errors.Wrapf(ErrUnknownVariant, "%s: %q", typeName, kind)
}

// DecodeTuple unmarshals a JSON array into the given positional fields
func DecodeTuple(data []byte, fields ...interface{}) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.Wrap(err, "tuple")
	}
	if len(items) != len(fields) {
		return errors.Wrapf(ErrTupleArity, "want %d items, got %d", len(fields), len(items))
	}
	for i, item := range items {
		if err := json.Unmarshal(item, fields[i]); err != nil {
			return errors.Wrapf(err, "tuple item %d", i)
		}
	}
	return nil
}

func EncodeTuple(fields ...interface{}) ([]byte, error) {
	return json.Marshal(fields)
}

func nullToNil(value json.RawMessage) json.RawMessage {
	if string(bytes.TrimSpace(value)) == "null" {
		return nil
	}
	return value
}
