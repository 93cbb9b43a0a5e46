package extrinsic

import (
	"go-zeropool-dictionary/internal/chain"
	"go-zeropool-dictionary/internal/types/support"
)

const (
	sudoCall   = "Sudo.sudo"
	sudoAsCall = "Sudo.sudo_as"

	// messages
	EXTRINSICS_NO_PREVIOUS_WORK             = "No previous extrinsic indexing was made"
	EXTRINSIC_FAILED_TO_RETRIEVE_LAST_BLOCK = "Failed to retrieve last block from previous indexing"
	EXTRINSIC_SUDO_DECODE_FAILED            = "Failed to decode sudo call %s"
)

// Decoder decodes the extrinsics of one runtime version
type Decoder interface {
	support.Chain
	DecodeExtrinsic(id, rawExtrinsic string) (chain.Extrinsic, error)
}
