package support

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Null is the unit type of calls and events that carry no fields
type Null struct{}

func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (*Null) UnmarshalJSON([]byte) error {
	return nil
}

// Result is a dispatch outcome, either Ok(Value) or Err(Err)
type Result[T, E any] struct {
	Ok    bool
	Value T
	Err   E
}

func OkResult[T, E any](value T) Result[T, E] {
	return Result[T, E]{Ok: true, Value: value}
}

func ErrResult[T, E any](err E) Result[T, E] {
	return Result[T, E]{Err: err}
}

func (r Result[T, E]) IsOk() bool {
	return r.Ok
}

func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	if r.Ok {
		return EncodeVariant("Ok", r.Value)
	}
	return EncodeVariant("Err", r.Err)
}

func (r *Result[T, E]) UnmarshalJSON(data []byte) error {
	kind, value, err := DecodeVariant(data)
	if err != nil {
		return err
	}

	var decoded Result[T, E]
	switch kind {
	case "Ok":
		decoded.Ok = true
		if value != nil {
			if err := json.Unmarshal(value, &decoded.Value); err != nil {
				return errors.Wrap(err, "result ok")
			}
		}
	case "Err":
		if value != nil {
			if err := json.Unmarshal(value, &decoded.Err); err != nil {
				return errors.Wrap(err, "result err")
			}
		}
	default:
		return UnknownVariant("Result", kind)
	}
	*r = decoded
	return nil
}
