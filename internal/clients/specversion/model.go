package specversion

import (
	"go-zeropool-dictionary/internal/messages"
)

type (
	SpecVersionRange struct {
		SpecVersion int `json:"spec_version"`
		First       int `json:"first"` //first block for a spec version
		Last        int `json:"last"`  //last block for a spec version
	}

	SpecVersionRangeList []SpecVersionRange
)

// FillLast fills the last block height for each spec version range
func (specVersionRangeList SpecVersionRangeList) FillLast(lastIndexedBlock int) {
	listLen := len(specVersionRangeList)
	if listLen == 0 {
		return
	}
	for idx := 0; idx < listLen-1; idx++ {
		specVersionRangeList[idx].Last = specVersionRangeList[idx+1].First - 1
	}
	specVersionRangeList[listLen-1].Last = lastIndexedBlock
}

// GetSpecVersionForBlock receives a block height and returns it's spec version range
func (specVersionRangeList SpecVersionRangeList) GetSpecVersionForBlock(blockHeight int) (*SpecVersionRange, error) {
	for idx, spec := range specVersionRangeList {
		if blockHeight >= spec.First && blockHeight <= spec.Last {
			return &specVersionRangeList[idx], nil
		}
	}
	return nil, messages.NewDictionaryMessage(
		messages.LOG_LEVEL_ERROR,
		messages.GetComponent(specVersionRangeList.GetSpecVersionForBlock),
		nil,
		messages.SPEC_VERSION_WRONG_BLOCK,
		blockHeight,
	)
}
