package chain

import (
	"encoding/json"

	"github.com/itering/scale.go/types"
	"github.com/pkg/errors"
)

// metadataView is the part of the decoded runtime metadata the adapter
// indexes. It is read from the JSON form of types.MetadataStruct.
type metadataView struct {
	Modules []moduleView `json:"modules"`
}

type moduleView struct {
	Name      string         `json:"name"`
	Prefix    string         `json:"prefix"`
	Storage   []storageView  `json:"storage"`
	Calls     []callView     `json:"calls"`
	Events    []eventView    `json:"events"`
	Constants []constantView `json:"constants"`
}

type callView struct {
	Name string    `json:"name"`
	Args []argView `json:"args"`
}

type argView struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type eventView struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
}

type constantView struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"constants_value"`
}

type storageView struct {
	Name     string          `json:"name"`
	Modifier string          `json:"modifier"`
	Type     storageTypeView `json:"type"`
	Fallback string          `json:"fallback"`
}

type storageTypeView struct {
	Origin        string       `json:"origin"`
	PlainType     *string      `json:"plain_type"`
	MapType       *mapTypeView `json:"map_type"`
	DoubleMapType *mapTypeView `json:"double_map_type"`
	NMapType      *nMapView    `json:"n_map_type"`
}

type mapTypeView struct {
	Hasher     string `json:"hasher"`
	Key        string `json:"key"`
	Key2       string `json:"key2"`
	Key2Hasher string `json:"key2Hasher"`
	Value      string `json:"value"`
}

type nMapView struct {
	Hashers []string `json:"hashers"`
	KeyVec  []string `json:"key_vec"`
	Value   string   `json:"value"`
}

// storageLayout is the normalized shape of any storage entry
type storageLayout struct {
	modifier string
	hashers  []string
	keys     []string
	value    string
	fallback string
}

func (s storageView) layout() (storageLayout, error) {
	l := storageLayout{modifier: s.Modifier, fallback: s.Fallback}
	t := s.Type
	switch {
	case t.PlainType != nil:
		l.value = *t.PlainType
	case t.MapType != nil:
		l.hashers = []string{t.MapType.Hasher}
		l.keys = []string{t.MapType.Key}
		l.value = t.MapType.Value
	case t.DoubleMapType != nil:
		l.hashers = []string{t.DoubleMapType.Hasher, t.DoubleMapType.Key2Hasher}
		l.keys = []string{t.DoubleMapType.Key, t.DoubleMapType.Key2}
		l.value = t.DoubleMapType.Value
	case t.NMapType != nil:
		if len(t.NMapType.Hashers) != len(t.NMapType.KeyVec) {
			return l, errors.Errorf("storage %s: %d hashers for %d keys", s.Name, len(t.NMapType.Hashers), len(t.NMapType.KeyVec))
		}
		l.hashers = t.NMapType.Hashers
		l.keys = t.NMapType.KeyVec
		l.value = t.NMapType.Value
	default:
		return l, errors.Errorf("storage %s: unsupported type %q", s.Name, t.Origin)
	}
	return l, nil
}

func viewOf(metadata *types.MetadataStruct) (metadataView, error) {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return metadataView{}, errors.Wrap(err, "metadata: encode")
	}
	return parseView(raw)
}

func parseView(raw []byte) (metadataView, error) {
	var wrapper struct {
		Metadata metadataView `json:"metadata"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return metadataView{}, errors.Wrap(err, "metadata: decode")
	}
	if len(wrapper.Metadata.Modules) == 0 {
		return metadataView{}, errors.New("metadata: no modules")
	}
	return wrapper.Metadata, nil
}
