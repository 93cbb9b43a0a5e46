package chain

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

const ss58Prefix = "SS58PRE"

// SS58 renders a public key as an address of the network with the given prefix
func SS58(publicKey []byte, network uint16) (string, error) {
	if len(publicKey) != 32 {
		return "", errors.Errorf("ss58: want a 32 byte key, got %d bytes", len(publicKey))
	}

	var data []byte
	switch {
	case network < 64:
		data = []byte{byte(network)}
	case network < 16384:
		data = []byte{
			byte((network&0b1111_1100)>>2) | 0b0100_0000,
			byte(network>>8) | byte(network&0b11)<<6,
		}
	default:
		return "", errors.Errorf("ss58: invalid network prefix %d", network)
	}
	data = append(data, publicKey...)

	checksum := blake2b.Sum512(append([]byte(ss58Prefix), data...))
	return base58.Encode(append(data, checksum[:2]...)), nil
}
