package v1

import (
	"go-zeropool-dictionary/internal/types/support"
)

type SystemFillBlockCall struct {
	Ratio uint32 `json:"ratio"`
}

type SystemRemarkCall struct {
	Remark support.Bytes `json:"remark"`
}

type SystemSetHeapPagesCall struct {
	Pages uint64 `json:"pages"`
}

type SystemSetCodeCall struct {
	Code support.Bytes `json:"code"`
}

type SystemSetCodeWithoutChecksCall struct {
	Code support.Bytes `json:"code"`
}

type SystemSetChangesTrieConfigCall struct {
	ChangesTrieConfig *ChangesTrieConfiguration `json:"changes_trie_config"`
}

type SystemSetStorageCall struct {
	Items [][2]support.Bytes `json:"items"`
}

type SystemKillStorageCall struct {
	Keys []support.Bytes `json:"keys"`
}

type SystemKillPrefixCall struct {
	Prefix  support.Bytes `json:"prefix"`
	Subkeys uint32        `json:"subkeys"`
}

type TimestampSetCall struct {
	Now uint64 `json:"now"`
}

type GrandpaReportEquivocationCall struct {
	EquivocationProof GrandpaEquivocationProof `json:"equivocation_proof"`
	KeyOwnerProof     KeyOwnerProof            `json:"key_owner_proof"`
}

type GrandpaReportEquivocationUnsignedCall struct {
	EquivocationProof GrandpaEquivocationProof `json:"equivocation_proof"`
	KeyOwnerProof     KeyOwnerProof            `json:"key_owner_proof"`
}

type GrandpaNoteStalledCall struct {
	Delay                    uint32 `json:"delay"`
	BestFinalizedBlockNumber uint32 `json:"best_finalized_block_number"`
}

type BalancesTransferCall struct {
	Dest  LookupSource `json:"dest"`
	Value support.U128 `json:"value"`
}

type BalancesSetBalanceCall struct {
	Who         LookupSource `json:"who"`
	NewFree     support.U128 `json:"new_free"`
	NewReserved support.U128 `json:"new_reserved"`
}

type BalancesForceTransferCall struct {
	Source LookupSource `json:"source"`
	Dest   LookupSource `json:"dest"`
	Value  support.U128 `json:"value"`
}

type BalancesTransferKeepAliveCall struct {
	Dest  LookupSource `json:"dest"`
	Value support.U128 `json:"value"`
}

type SudoSudoCall struct {
	Call Call `json:"call"`
}

type SudoSudoUncheckedWeightCall struct {
	Call   Call   `json:"call"`
	Weight uint64 `json:"weight"`
}

type SudoSetKeyCall struct {
	New LookupSource `json:"new"`
}

type SudoSudoAsCall struct {
	Who  LookupSource `json:"who"`
	Call Call         `json:"call"`
}

type ZeropoolSetVkCall struct {
	Vkb support.Bytes `json:"vkb"`
}

type ZeropoolTestGroth16VerifyCall struct {
	Jproofinput support.Bytes `json:"jproofinput"`
}

const (
	CallKindSystem                   = "System"
	CallKindRandomnessCollectiveFlip = "RandomnessCollectiveFlip"
	CallKindTimestamp                = "Timestamp"
	CallKindGrandpa                  = "Grandpa"
	CallKindBalances                 = "Balances"
	CallKindSudo                     = "Sudo"
	CallKindZeropool                 = "Zeropool"
)

// Call is a dispatchable call of any pallet. RandomnessCollectiveFlip has no
// calls, so it never carries a value.
type Call struct {
	Kind      string
	System    *SystemCall
	Timestamp *TimestampCall
	Grandpa   *GrandpaCall
	Balances  *BalancesCall
	Sudo      *SudoCall
	Zeropool  *ZeropoolCall
}

func (c *Call) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := Call{Kind: kind}
	switch kind {
	case CallKindSystem:
		decoded.System = &SystemCall{}
		err = support.DecodeInto(kind, value, decoded.System)
	case CallKindTimestamp:
		decoded.Timestamp = &TimestampCall{}
		err = support.DecodeInto(kind, value, decoded.Timestamp)
	case CallKindGrandpa:
		decoded.Grandpa = &GrandpaCall{}
		err = support.DecodeInto(kind, value, decoded.Grandpa)
	case CallKindBalances:
		decoded.Balances = &BalancesCall{}
		err = support.DecodeInto(kind, value, decoded.Balances)
	case CallKindSudo:
		decoded.Sudo = &SudoCall{}
		err = support.DecodeInto(kind, value, decoded.Sudo)
	case CallKindZeropool:
		decoded.Zeropool = &ZeropoolCall{}
		err = support.DecodeInto(kind, value, decoded.Zeropool)
	default:
		return support.UnknownVariant("Call", kind)
	}
	*c = decoded
	return err
}

func (c Call) MarshalJSON() ([]byte, error) {
	switch {
	case c.System != nil:
		return support.EncodeVariant(c.Kind, c.System)
	case c.Timestamp != nil:
		return support.EncodeVariant(c.Kind, c.Timestamp)
	case c.Grandpa != nil:
		return support.EncodeVariant(c.Kind, c.Grandpa)
	case c.Balances != nil:
		return support.EncodeVariant(c.Kind, c.Balances)
	case c.Sudo != nil:
		return support.EncodeVariant(c.Kind, c.Sudo)
	case c.Zeropool != nil:
		return support.EncodeVariant(c.Kind, c.Zeropool)
	}
	return support.EncodeVariant(c.Kind, nil)
}

// Name returns the qualified name of the call, e.g. "Balances.transfer"
func (c Call) Name() string {
	switch {
	case c.System != nil:
		return c.Kind + "." + c.System.Kind
	case c.Timestamp != nil:
		return c.Kind + "." + c.Timestamp.Kind
	case c.Grandpa != nil:
		return c.Kind + "." + c.Grandpa.Kind
	case c.Balances != nil:
		return c.Kind + "." + c.Balances.Kind
	case c.Sudo != nil:
		return c.Kind + "." + c.Sudo.Kind
	case c.Zeropool != nil:
		return c.Kind + "." + c.Zeropool.Kind
	}
	return c.Kind
}

const (
	SystemCallFillBlock            = "fill_block"
	SystemCallRemark               = "remark"
	SystemCallSetHeapPages         = "set_heap_pages"
	SystemCallSetCode              = "set_code"
	SystemCallSetCodeWithoutChecks = "set_code_without_checks"
	SystemCallSetChangesTrieConfig = "set_changes_trie_config"
	SystemCallSetStorage           = "set_storage"
	SystemCallKillStorage          = "kill_storage"
	SystemCallKillPrefix           = "kill_prefix"
	SystemCallSuicide              = "suicide"
)

type SystemCall struct {
	Kind                 string
	FillBlock            *SystemFillBlockCall
	Remark               *SystemRemarkCall
	SetHeapPages         *SystemSetHeapPagesCall
	SetCode              *SystemSetCodeCall
	SetCodeWithoutChecks *SystemSetCodeWithoutChecksCall
	SetChangesTrieConfig *SystemSetChangesTrieConfigCall
	SetStorage           *SystemSetStorageCall
	KillStorage          *SystemKillStorageCall
	KillPrefix           *SystemKillPrefixCall
}

func (c *SystemCall) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := SystemCall{Kind: kind}
	switch kind {
	case SystemCallFillBlock:
		decoded.FillBlock = &SystemFillBlockCall{}
		err = support.DecodeInto(kind, value, decoded.FillBlock)
	case SystemCallRemark:
		decoded.Remark = &SystemRemarkCall{}
		err = support.DecodeInto(kind, value, decoded.Remark)
	case SystemCallSetHeapPages:
		decoded.SetHeapPages = &SystemSetHeapPagesCall{}
		err = support.DecodeInto(kind, value, decoded.SetHeapPages)
	case SystemCallSetCode:
		decoded.SetCode = &SystemSetCodeCall{}
		err = support.DecodeInto(kind, value, decoded.SetCode)
	case SystemCallSetCodeWithoutChecks:
		decoded.SetCodeWithoutChecks = &SystemSetCodeWithoutChecksCall{}
		err = support.DecodeInto(kind, value, decoded.SetCodeWithoutChecks)
	case SystemCallSetChangesTrieConfig:
		decoded.SetChangesTrieConfig = &SystemSetChangesTrieConfigCall{}
		err = support.DecodeInto(kind, value, decoded.SetChangesTrieConfig)
	case SystemCallSetStorage:
		decoded.SetStorage = &SystemSetStorageCall{}
		err = support.DecodeInto(kind, value, decoded.SetStorage)
	case SystemCallKillStorage:
		decoded.KillStorage = &SystemKillStorageCall{}
		err = support.DecodeInto(kind, value, decoded.KillStorage)
	case SystemCallKillPrefix:
		decoded.KillPrefix = &SystemKillPrefixCall{}
		err = support.DecodeInto(kind, value, decoded.KillPrefix)
	case SystemCallSuicide:
	default:
		return support.UnknownVariant("SystemCall", kind)
	}
	*c = decoded
	return err
}

func (c SystemCall) MarshalJSON() ([]byte, error) {
	switch {
	case c.FillBlock != nil:
		return support.EncodeStructVariant(c.Kind, c.FillBlock)
	case c.Remark != nil:
		return support.EncodeStructVariant(c.Kind, c.Remark)
	case c.SetHeapPages != nil:
		return support.EncodeStructVariant(c.Kind, c.SetHeapPages)
	case c.SetCode != nil:
		return support.EncodeStructVariant(c.Kind, c.SetCode)
	case c.SetCodeWithoutChecks != nil:
		return support.EncodeStructVariant(c.Kind, c.SetCodeWithoutChecks)
	case c.SetChangesTrieConfig != nil:
		return support.EncodeStructVariant(c.Kind, c.SetChangesTrieConfig)
	case c.SetStorage != nil:
		return support.EncodeStructVariant(c.Kind, c.SetStorage)
	case c.KillStorage != nil:
		return support.EncodeStructVariant(c.Kind, c.KillStorage)
	case c.KillPrefix != nil:
		return support.EncodeStructVariant(c.Kind, c.KillPrefix)
	}
	return support.EncodeVariant(c.Kind, nil)
}

const (
	TimestampCallSet = "set"
)

type TimestampCall struct {
	Kind string
	Set  *TimestampSetCall
}

func (c *TimestampCall) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := TimestampCall{Kind: kind}
	switch kind {
	case TimestampCallSet:
		decoded.Set = &TimestampSetCall{}
		err = support.DecodeInto(kind, value, decoded.Set)
	default:
		return support.UnknownVariant("TimestampCall", kind)
	}
	*c = decoded
	return err
}

func (c TimestampCall) MarshalJSON() ([]byte, error) {
	switch {
	case c.Set != nil:
		return support.EncodeStructVariant(c.Kind, c.Set)
	}
	return support.EncodeVariant(c.Kind, nil)
}

const (
	GrandpaCallReportEquivocation         = "report_equivocation"
	GrandpaCallReportEquivocationUnsigned = "report_equivocation_unsigned"
	GrandpaCallNoteStalled                = "note_stalled"
)

type GrandpaCall struct {
	Kind                       string
	ReportEquivocation         *GrandpaReportEquivocationCall
	ReportEquivocationUnsigned *GrandpaReportEquivocationUnsignedCall
	NoteStalled                *GrandpaNoteStalledCall
}

func (c *GrandpaCall) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := GrandpaCall{Kind: kind}
	switch kind {
	case GrandpaCallReportEquivocation:
		decoded.ReportEquivocation = &GrandpaReportEquivocationCall{}
		err = support.DecodeInto(kind, value, decoded.ReportEquivocation)
	case GrandpaCallReportEquivocationUnsigned:
		decoded.ReportEquivocationUnsigned = &GrandpaReportEquivocationUnsignedCall{}
		err = support.DecodeInto(kind, value, decoded.ReportEquivocationUnsigned)
	case GrandpaCallNoteStalled:
		decoded.NoteStalled = &GrandpaNoteStalledCall{}
		err = support.DecodeInto(kind, value, decoded.NoteStalled)
	default:
		return support.UnknownVariant("GrandpaCall", kind)
	}
	*c = decoded
	return err
}

func (c GrandpaCall) MarshalJSON() ([]byte, error) {
	switch {
	case c.ReportEquivocation != nil:
		return support.EncodeStructVariant(c.Kind, c.ReportEquivocation)
	case c.ReportEquivocationUnsigned != nil:
		return support.EncodeStructVariant(c.Kind, c.ReportEquivocationUnsigned)
	case c.NoteStalled != nil:
		return support.EncodeStructVariant(c.Kind, c.NoteStalled)
	}
	return support.EncodeVariant(c.Kind, nil)
}

const (
	BalancesCallTransfer          = "transfer"
	BalancesCallSetBalance        = "set_balance"
	BalancesCallForceTransfer     = "force_transfer"
	BalancesCallTransferKeepAlive = "transfer_keep_alive"
)

type BalancesCall struct {
	Kind              string
	Transfer          *BalancesTransferCall
	SetBalance        *BalancesSetBalanceCall
	ForceTransfer     *BalancesForceTransferCall
	TransferKeepAlive *BalancesTransferKeepAliveCall
}

func (c *BalancesCall) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := BalancesCall{Kind: kind}
	switch kind {
	case BalancesCallTransfer:
		decoded.Transfer = &BalancesTransferCall{}
		err = support.DecodeInto(kind, value, decoded.Transfer)
	case BalancesCallSetBalance:
		decoded.SetBalance = &BalancesSetBalanceCall{}
		err = support.DecodeInto(kind, value, decoded.SetBalance)
	case BalancesCallForceTransfer:
		decoded.ForceTransfer = &BalancesForceTransferCall{}
		err = support.DecodeInto(kind, value, decoded.ForceTransfer)
	case BalancesCallTransferKeepAlive:
		decoded.TransferKeepAlive = &BalancesTransferKeepAliveCall{}
		err = support.DecodeInto(kind, value, decoded.TransferKeepAlive)
	default:
		return support.UnknownVariant("BalancesCall", kind)
	}
	*c = decoded
	return err
}

func (c BalancesCall) MarshalJSON() ([]byte, error) {
	switch {
	case c.Transfer != nil:
		return support.EncodeStructVariant(c.Kind, c.Transfer)
	case c.SetBalance != nil:
		return support.EncodeStructVariant(c.Kind, c.SetBalance)
	case c.ForceTransfer != nil:
		return support.EncodeStructVariant(c.Kind, c.ForceTransfer)
	case c.TransferKeepAlive != nil:
		return support.EncodeStructVariant(c.Kind, c.TransferKeepAlive)
	}
	return support.EncodeVariant(c.Kind, nil)
}

const (
	SudoCallSudo                = "sudo"
	SudoCallSudoUncheckedWeight = "sudo_unchecked_weight"
	SudoCallSetKey              = "set_key"
	SudoCallSudoAs              = "sudo_as"
)

type SudoCall struct {
	Kind                string
	Sudo                *SudoSudoCall
	SudoUncheckedWeight *SudoSudoUncheckedWeightCall
	SetKey              *SudoSetKeyCall
	SudoAs              *SudoSudoAsCall
}

func (c *SudoCall) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := SudoCall{Kind: kind}
	switch kind {
	case SudoCallSudo:
		decoded.Sudo = &SudoSudoCall{}
		err = support.DecodeInto(kind, value, decoded.Sudo)
	case SudoCallSudoUncheckedWeight:
		decoded.SudoUncheckedWeight = &SudoSudoUncheckedWeightCall{}
		err = support.DecodeInto(kind, value, decoded.SudoUncheckedWeight)
	case SudoCallSetKey:
		decoded.SetKey = &SudoSetKeyCall{}
		err = support.DecodeInto(kind, value, decoded.SetKey)
	case SudoCallSudoAs:
		decoded.SudoAs = &SudoSudoAsCall{}
		err = support.DecodeInto(kind, value, decoded.SudoAs)
	default:
		return support.UnknownVariant("SudoCall", kind)
	}
	*c = decoded
	return err
}

func (c SudoCall) MarshalJSON() ([]byte, error) {
	switch {
	case c.Sudo != nil:
		return support.EncodeStructVariant(c.Kind, c.Sudo)
	case c.SudoUncheckedWeight != nil:
		return support.EncodeStructVariant(c.Kind, c.SudoUncheckedWeight)
	case c.SetKey != nil:
		return support.EncodeStructVariant(c.Kind, c.SetKey)
	case c.SudoAs != nil:
		return support.EncodeStructVariant(c.Kind, c.SudoAs)
	}
	return support.EncodeVariant(c.Kind, nil)
}

const (
	ZeropoolCallSetVk             = "set_vk"
	ZeropoolCallTestGroth16Verify = "test_groth16verify"
)

type ZeropoolCall struct {
	Kind              string
	SetVk             *ZeropoolSetVkCall
	TestGroth16Verify *ZeropoolTestGroth16VerifyCall
}

func (c *ZeropoolCall) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := ZeropoolCall{Kind: kind}
	switch kind {
	case ZeropoolCallSetVk:
		decoded.SetVk = &ZeropoolSetVkCall{}
		err = support.DecodeInto(kind, value, decoded.SetVk)
	case ZeropoolCallTestGroth16Verify:
		decoded.TestGroth16Verify = &ZeropoolTestGroth16VerifyCall{}
		err = support.DecodeInto(kind, value, decoded.TestGroth16Verify)
	default:
		return support.UnknownVariant("ZeropoolCall", kind)
	}
	*c = decoded
	return err
}

func (c ZeropoolCall) MarshalJSON() ([]byte, error) {
	switch {
	case c.SetVk != nil:
		return support.EncodeStructVariant(c.Kind, c.SetVk)
	case c.TestGroth16Verify != nil:
		return support.EncodeStructVariant(c.Kind, c.TestGroth16Verify)
	}
	return support.EncodeVariant(c.Kind, nil)
}
