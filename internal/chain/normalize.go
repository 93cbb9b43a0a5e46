package chain

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"

	"go-zeropool-dictionary/internal/types/support"

	"github.com/pkg/errors"
)

// toJSON renders scale.go decoder output in the shape the runtime types
// unmarshal from: nested calls become {"__kind": pallet, "value": {"__kind":
// call, args...}} and camelCase struct fields become snake_case. Numbers
// keep their exact literal.
func toJSON(value interface{}) (json.RawMessage, error) {
	generic, err := genericOf(value)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(normalize(generic))
	return out, errors.Wrap(err, "normalize")
}

func genericOf(value interface{}) (interface{}, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "normalize: encode")
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var generic interface{}
	if err := decoder.Decode(&generic); err != nil {
		return nil, errors.Wrap(err, "normalize: decode")
	}
	return generic, nil
}

func normalize(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		if call, ok := nestedCall(v); ok {
			return call
		}
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[snakeCase(key)] = normalize(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	}
	return value
}

type namedArg struct {
	Name  string
	Value interface{}
}

func nestedCall(v map[string]interface{}) (map[string]interface{}, bool) {
	module, ok := v["call_module"].(string)
	if !ok {
		return nil, false
	}
	var function string
	for _, key := range []string{"call_function", "call_name", "call_module_function"} {
		if name, ok := v[key].(string); ok {
			function = name
			break
		}
	}
	if function == "" {
		return nil, false
	}

	var rawArgs interface{}
	for _, key := range []string{"call_args", "params"} {
		if args, ok := v[key]; ok {
			rawArgs = args
			break
		}
	}
	args := map[string]interface{}{support.KindKey: function}
	for _, arg := range argList(rawArgs) {
		args[arg.Name] = normalize(arg.Value)
	}
	return map[string]interface{}{support.KindKey: module, "value": args}, true
}

func argList(raw interface{}) []namedArg {
	items, _ := raw.([]interface{})
	out := make([]namedArg, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := fields["name"].(string)
		if name == "" {
			name, _ = fields["Name"].(string)
		}
		value, ok := fields["value"]
		if !ok {
			value = fields["Value"]
		}
		out = append(out, namedArg{Name: name, Value: value})
	}
	return out
}

// snakeCase converts camelCase field names. Names starting with an upper case
// letter are enum variants and stay as they are.
func snakeCase(name string) string {
	if name == "" || !unicode.IsLower(rune(name[0])) {
		return name
	}
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
