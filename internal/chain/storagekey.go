package chain

import (
	"encoding/binary"
	"encoding/hex"

	"go-zeropool-dictionary/internal/types/support"

	"github.com/OneOfOne/xxhash"
	"github.com/itering/substrate-api-rpc/hasher"
	"github.com/pkg/errors"
)

var ErrUnsupportedHasher = errors.New("unsupported storage hasher")

// StorageKey returns the hex key of a storage entry: twox128(prefix) ++
// twox128(item) ++ the hashed SCALE encoding of every key.
func StorageKey(prefix, item string, hashers, keyTypes []string, keys ...interface{}) (string, error) {
	if len(keys) != len(hashers) {
		return "", errors.Errorf("storage %s.%s: expected %d keys, got %d", prefix, item, len(hashers), len(keys))
	}

	out := append(hasher.HashByCryptoName([]byte(prefix), "Twox128"), hasher.HashByCryptoName([]byte(item), "Twox128")...)
	for i, key := range keys {
		encoded, err := encodeKey(keyTypes[i], key)
		if err != nil {
			return "", errors.Wrapf(err, "storage %s.%s key %d", prefix, item, i)
		}
		hashed, err := hashKey(hashers[i], encoded)
		if err != nil {
			return "", err
		}
		out = append(out, hashed...)
	}
	return "0x" + hex.EncodeToString(out), nil
}

// libraryHashers are the key hashers hasher.HashByCryptoName implements
var libraryHashers = map[string]bool{
	"Blake2_128Concat": true,
	"Twox64Concat":     true,
	"Identity":         true,
	"Blake2_128":       true,
	"Blake2_256":       true,
	"Twox128":          true,
}

func hashKey(name string, data []byte) ([]byte, error) {
	switch {
	case libraryHashers[name]:
		return hasher.HashByCryptoName(data, name), nil
	case name == "Twox256":
		return twox(32, data), nil
	}
	return nil, errors.Wrap(ErrUnsupportedHasher, name)
}

// twox concatenates little endian xxhash64 digests seeded 0, 1, ... up to
// size bytes. HashByCryptoName cuts Twox256 to 128 bits.
func twox(size int, data []byte) []byte {
	out := make([]byte, 0, size)
	for seed := uint64(0); len(out) < size; seed++ {
		out = binary.LittleEndian.AppendUint64(out, xxhash.Checksum64S(data, seed))
	}
	return out
}

// encodeKey SCALE encodes the key kinds storage maps use: fixed width
// integers, byte strings and fixed byte arrays (account ids, hashes).
func encodeKey(keyType string, key interface{}) ([]byte, error) {
	var raw []byte
	switch k := key.(type) {
	case uint8:
		return []byte{k}, nil
	case uint16:
		return binary.LittleEndian.AppendUint16(nil, k), nil
	case uint32:
		return binary.LittleEndian.AppendUint32(nil, k), nil
	case uint64:
		return binary.LittleEndian.AppendUint64(nil, k), nil
	case support.Bytes:
		raw = k
	case []byte:
		raw = k
	case string:
		b, err := support.BytesFromHex(k)
		if err != nil {
			return nil, err
		}
		raw = b
	default:
		return nil, errors.Errorf("unsupported key %T for %s", key, keyType)
	}

	if isByteVector(keyType) {
		return append(compactLength(len(raw)), raw...), nil
	}
	return raw, nil
}

func isByteVector(keyType string) bool {
	t := canonicalType(keyType)
	return t == "Vec<u8>" || t == "Bytes"
}

func compactLength(n int) []byte {
	switch {
	case n < 1<<6:
		return []byte{byte(n) << 2}
	case n < 1<<14:
		return binary.LittleEndian.AppendUint16(nil, uint16(n)<<2|0b01)
	case n < 1<<30:
		return binary.LittleEndian.AppendUint32(nil, uint32(n)<<2|0b10)
	}
	b := binary.LittleEndian.AppendUint64(nil, uint64(n))
	for len(b) > 4 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return append([]byte{byte(len(b)-4)<<2 | 0b11}, b...)
}
