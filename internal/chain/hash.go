package chain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Type hashes are the sha256 of the compact json definition of a type, with
// nested types referenced by their own hash:
//
//	{"primitive":"U32"}
//	{"compact":<hash>}
//	{"sequence":<hash>}
//	{"array":{"len":32,"type":<hash>}}
//	{"tuple":[<hash>,...]}
//	{"option":<hash>}
//
// Calls hash their named fields, events their unnamed ones, constants the
// value type. Types the metadata only names are hashed by that name.

type typeField struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type"`
}

type fieldsDef struct {
	Fields []typeField `json:"fields"`
}

type arrayDef struct {
	Len  int    `json:"len"`
	Type string `json:"type"`
}

type storageDef struct {
	Modifier string   `json:"modifier"`
	Hashers  []string `json:"hashers"`
	Keys     []string `json:"keys"`
	Value    string   `json:"value"`
}

var primitives = map[string]string{
	"bool": "Bool", "str": "Str", "char": "Char",
	"u8": "U8", "u16": "U16", "u32": "U32", "u64": "U64", "u128": "U128", "u256": "U256",
	"i8": "I8", "i16": "I16", "i32": "I32", "i64": "I64", "i128": "I128", "i256": "I256",
}

// aliases are the runtime type names that resolve to a plain type
var aliases = map[string]string{
	"Bytes":       "Vec<u8>",
	"BlockNumber": "u32",
	"Balance":     "u128",
	"Moment":      "u64",
	"Index":       "u32",
	"Weight":      "u64",
	"RefCount":    "u32",
	"SetId":       "u64",
	"Text":        "Vec<u8>",
	"Key":         "Vec<u8>",
	"StorageKey":  "Vec<u8>",
	"Data":        "Vec<u8>",
}

var arrayType = regexp.MustCompile(`^\[(.+);(\d+)\]$`)

func callHash(c callView) string {
	fields := make([]typeField, len(c.Args))
	for i, arg := range c.Args {
		fields[i] = typeField{Name: strings.TrimPrefix(arg.Name, "_"), Type: typeHash(arg.Type)}
	}
	return hashDef(fieldsDef{Fields: fields})
}

func eventHash(e eventView) string {
	fields := make([]typeField, len(e.Args))
	for i, arg := range e.Args {
		fields[i] = typeField{Type: typeHash(arg)}
	}
	return hashDef(fieldsDef{Fields: fields})
}

func constantHash(c constantView) string {
	return typeHash(c.Type)
}

func storageHash(l storageLayout) string {
	def := storageDef{
		Modifier: l.modifier,
		Hashers:  append([]string{}, l.hashers...),
		Keys:     make([]string, len(l.keys)),
		Value:    typeHash(l.value),
	}
	for i, key := range l.keys {
		def.Keys[i] = typeHash(key)
	}
	return hashDef(def)
}

func typeHash(t string) string {
	return hashDef(typeDef(canonicalType(t)))
}

func typeDef(t string) interface{} {
	if alias, ok := aliases[t]; ok {
		t = alias
	}
	if primitive, ok := primitives[t]; ok {
		return map[string]string{"primitive": primitive}
	}
	if inner, ok := generic(t, "Compact"); ok {
		return map[string]string{"compact": typeHash(inner)}
	}
	if inner, ok := generic(t, "Vec"); ok {
		return map[string]string{"sequence": typeHash(inner)}
	}
	if inner, ok := generic(t, "Option"); ok {
		return map[string]string{"option": typeHash(inner)}
	}
	if m := arrayType.FindStringSubmatch(t); m != nil {
		n, _ := strconv.Atoi(m[2])
		return map[string]arrayDef{"array": {Len: n, Type: typeHash(m[1])}}
	}
	if strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")") {
		elems := splitTop(t[1 : len(t)-1])
		hashes := make([]string, len(elems))
		for i, elem := range elems {
			hashes[i] = typeHash(elem)
		}
		return map[string][]string{"tuple": hashes}
	}
	return map[string]string{"name": t}
}

// generic returns the parameter of name<...>
func generic(t, name string) (string, bool) {
	if !strings.HasPrefix(t, name+"<") || !strings.HasSuffix(t, ">") {
		return "", false
	}
	return t[len(name)+1 : len(t)-1], true
}

// splitTop splits a comma separated list, ignoring commas nested in <>, () or []
func splitTop(list string) []string {
	if list == "" {
		return nil
	}
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range list {
		switch r {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, list[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, list[start:])
}

func hashDef(def interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// definitions are plain maps and structs of strings
	_ = enc.Encode(def)
	sum := sha256.Sum256(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return hex.EncodeToString(sum[:])
}

var qualifiedPath = regexp.MustCompile(`<[^<>]* as [^<>]*>::`)

// canonicalType drops whitespace and the T:: and <X as Trait>:: qualifiers
// that differ between metadata versions for the same type.
func canonicalType(t string) string {
	t = strings.Join(strings.Fields(t), " ")
	t = qualifiedPath.ReplaceAllString(t, "")
	t = strings.ReplaceAll(t, "T::", "")
	return strings.ReplaceAll(t, " ", "")
}
