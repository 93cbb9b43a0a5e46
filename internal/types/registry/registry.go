// Package registry holds the known type hashes of every runtime item, keyed by
// item kind, qualified name and version.
package registry

import (
	_ "embed"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindCall     Kind = "calls"
	KindEvent    Kind = "events"
	KindConstant Kind = "constants"
	KindStorage  Kind = "storage"
)

var Kinds = []Kind{KindCall, KindEvent, KindConstant, KindStorage}

//go:embed registry.yaml
var defaultTable []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Registry maps kind -> qualified name -> "v<N>" -> hash
type Registry struct {
	table map[Kind]map[string]map[string]string
}

// Default returns the table compiled into the binary. It panics if the
// embedded table is malformed.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = Parse(defaultTable)
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultRegistry
}

func New() *Registry {
	return &Registry{table: map[Kind]map[string]map[string]string{}}
}

func Parse(data []byte) (*Registry, error) {
	var raw map[Kind]map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "registry: decode")
	}

	r := New()
	for kind, items := range raw {
		if !validKind(kind) {
			return nil, errors.Errorf("registry: unknown kind %q", kind)
		}
		for name, versions := range items {
			for version, hash := range versions {
				v, err := parseVersion(version)
				if err != nil {
					return nil, errors.Wrapf(err, "registry: %s %s", kind, name)
				}
				r.Set(kind, name, v, hash)
			}
		}
	}
	return r, nil
}

func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "registry: read")
	}
	return Parse(data)
}

func (r *Registry) Set(kind Kind, name string, version int, hash string) {
	items, ok := r.table[kind]
	if !ok {
		items = map[string]map[string]string{}
		r.table[kind] = items
	}
	versions, ok := items[name]
	if !ok {
		versions = map[string]string{}
		items[name] = versions
	}
	versions[versionKey(version)] = strings.TrimPrefix(strings.ToLower(hash), "0x")
}

// Hash returns the type hash an item must have to be treated as the given version
func (r *Registry) Hash(kind Kind, name string, version int) (string, bool) {
	hash, ok := r.table[kind][name][versionKey(version)]
	return hash, ok
}

// Versions lists the known versions of an item in ascending order
func (r *Registry) Versions(kind Kind, name string) []int {
	var versions []int
	for key := range r.table[kind][name] {
		if v, err := parseVersion(key); err == nil {
			versions = append(versions, v)
		}
	}
	sort.Ints(versions)
	return versions
}

func (r *Registry) Names(kind Kind) []string {
	names := make([]string, 0, len(r.table[kind]))
	for name := range r.table[kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode writes the table back as YAML, sorted by kind then name
func (r *Registry) Encode() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, kind := range Kinds {
		items := &yaml.Node{Kind: yaml.MappingNode}
		for _, name := range r.Names(kind) {
			versions := &yaml.Node{Kind: yaml.MappingNode}
			for _, v := range r.Versions(kind, name) {
				hash, _ := r.Hash(kind, name, v)
				versions.Content = append(versions.Content, scalar(versionKey(v)), scalar(hash))
			}
			items.Content = append(items.Content, scalar(name), versions)
		}
		root.Content = append(root.Content, scalar(string(kind)), items)
	}

	out, err := yaml.Marshal(root)
	return out, errors.Wrap(err, "registry: encode")
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func validKind(kind Kind) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func versionKey(version int) string {
	return "v" + strconv.Itoa(version)
}

func parseVersion(key string) (int, error) {
	if !strings.HasPrefix(key, "v") {
		return 0, errors.Errorf("invalid version %q", key)
	}
	v, err := strconv.Atoi(key[1:])
	if err != nil || v < 1 {
		return 0, errors.Errorf("invalid version %q", key)
	}
	return v, nil
}

type Status string

const (
	StatusMatch   Status = "match"
	StatusChanged Status = "changed"
	StatusMissing Status = "missing"
)

// Check is the state of one known item in a live registry
type Check struct {
	Kind   Kind
	Name   string
	Status Status
}

// Compare reports, for every item known at version, whether live has it with
// the same hash at liveVersion
func (r *Registry) Compare(version int, live *Registry, liveVersion int) []Check {
	var checks []Check
	for _, kind := range Kinds {
		for _, name := range r.Names(kind) {
			known, ok := r.Hash(kind, name, version)
			if !ok {
				continue
			}
			status := StatusMatch
			if hash, ok := live.Hash(kind, name, liveVersion); !ok {
				status = StatusMissing
			} else if hash != known {
				status = StatusChanged
			}
			checks = append(checks, Check{Kind: kind, Name: name, Status: status})
		}
	}
	return checks
}

// Item names one runtime item
type Item struct {
	Kind Kind
	Name string
}

// ErrStale is returned by Require when live no longer carries a known hash
var ErrStale = errors.New("registry: hashes do not match the runtime")

// Require checks that every item of items is known at version and has the
// same hash in live at liveVersion. The error lists the items that do not.
func (r *Registry) Require(version int, live *Registry, liveVersion int, items ...Item) error {
	var failed []string
	for _, item := range items {
		known, ok := r.Hash(item.Kind, item.Name, version)
		if !ok {
			failed = append(failed, string(item.Kind)+" "+item.Name+" unknown")
			continue
		}
		hash, ok := live.Hash(item.Kind, item.Name, liveVersion)
		switch {
		case !ok:
			failed = append(failed, string(item.Kind)+" "+item.Name+" "+string(StatusMissing))
		case hash != known:
			failed = append(failed, string(item.Kind)+" "+item.Name+" "+string(StatusChanged))
		}
	}
	if len(failed) > 0 {
		return errors.Wrap(ErrStale, strings.Join(failed, ", "))
	}
	return nil
}
