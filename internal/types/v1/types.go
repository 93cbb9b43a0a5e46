// Package v1 holds the runtime types of spec version 1 of the zeropool node.
//
// Sum types are structs carrying a Kind discriminant and one field per
// variant with data. Field names follow the runtime metadata.
package v1

import (
	"encoding/json"

	"go-zeropool-dictionary/internal/types/support"
)

const (
	BalanceStatusKindFree     = "Free"
	BalanceStatusKindReserved = "Reserved"
)

type BalanceStatus struct {
	Kind string
}

func (b *BalanceStatus) UnmarshalJSON(data []byte) error {
	kind, err := decodeUnit(data, "BalanceStatus", BalanceStatusKindFree, BalanceStatusKindReserved)
	b.Kind = kind
	return err
}

func (b BalanceStatus) MarshalJSON() ([]byte, error) {
	return support.EncodeVariant(b.Kind, nil)
}

const (
	DispatchErrorKindOther             = "Other"
	DispatchErrorKindCannotLookup      = "CannotLookup"
	DispatchErrorKindBadOrigin         = "BadOrigin"
	DispatchErrorKindModule            = "Module"
	DispatchErrorKindConsumerRemaining = "ConsumerRemaining"
	DispatchErrorKindNoProviders       = "NoProviders"
	DispatchErrorKindToken             = "Token"
	DispatchErrorKindArithmetic        = "Arithmetic"
)

type DispatchError struct {
	Kind       string
	Module     *DispatchErrorModule
	Token      *TokenError
	Arithmetic *ArithmeticError
}

func (d *DispatchError) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := DispatchError{Kind: kind}
	switch kind {
	case DispatchErrorKindOther, DispatchErrorKindCannotLookup, DispatchErrorKindBadOrigin,
		DispatchErrorKindConsumerRemaining, DispatchErrorKindNoProviders:
	case DispatchErrorKindModule:
		decoded.Module = &DispatchErrorModule{}
		err = support.DecodeInto(kind, value, decoded.Module)
	case DispatchErrorKindToken:
		decoded.Token = &TokenError{}
		err = support.DecodeInto(kind, value, decoded.Token)
	case DispatchErrorKindArithmetic:
		decoded.Arithmetic = &ArithmeticError{}
		err = support.DecodeInto(kind, value, decoded.Arithmetic)
	default:
		return support.UnknownVariant("DispatchError", kind)
	}
	*d = decoded
	return err
}

func (d DispatchError) MarshalJSON() ([]byte, error) {
	switch {
	case d.Module != nil:
		return support.EncodeVariant(d.Kind, d.Module)
	case d.Token != nil:
		return support.EncodeVariant(d.Kind, d.Token)
	case d.Arithmetic != nil:
		return support.EncodeVariant(d.Kind, d.Arithmetic)
	}
	return support.EncodeVariant(d.Kind, nil)
}

func (d DispatchError) String() string {
	switch {
	case d.Module != nil:
		return d.Kind + "(" + d.Module.String() + ")"
	case d.Token != nil:
		return d.Kind + "(" + d.Token.Kind + ")"
	case d.Arithmetic != nil:
		return d.Kind + "(" + d.Arithmetic.Kind + ")"
	}
	return d.Kind
}

type DispatchErrorModule struct {
	Index uint8 `json:"index"`
	Error uint8 `json:"error"`
}

func (m DispatchErrorModule) String() string {
	b, _ := json.Marshal(m)
	return string(b)
}

const (
	TokenErrorKindNoFunds      = "NoFunds"
	TokenErrorKindWouldDie     = "WouldDie"
	TokenErrorKindBelowMinimum = "BelowMinimum"
	TokenErrorKindCannotCreate = "CannotCreate"
	TokenErrorKindUnknownAsset = "UnknownAsset"
	TokenErrorKindFrozen       = "Frozen"
	TokenErrorKindUnderflow    = "Underflow"
	TokenErrorKindOverflow     = "Overflow"
)

type TokenError struct {
	Kind string
}

func (e *TokenError) UnmarshalJSON(data []byte) error {
	kind, err := decodeUnit(data, "TokenError",
		TokenErrorKindNoFunds, TokenErrorKindWouldDie, TokenErrorKindBelowMinimum, TokenErrorKindCannotCreate,
		TokenErrorKindUnknownAsset, TokenErrorKindFrozen, TokenErrorKindUnderflow, TokenErrorKindOverflow)
	e.Kind = kind
	return err
}

func (e TokenError) MarshalJSON() ([]byte, error) {
	return support.EncodeVariant(e.Kind, nil)
}

const (
	ArithmeticErrorKindUnderflow      = "Underflow"
	ArithmeticErrorKindOverflow       = "Overflow"
	ArithmeticErrorKindDivisionByZero = "DivisionByZero"
)

type ArithmeticError struct {
	Kind string
}

func (e *ArithmeticError) UnmarshalJSON(data []byte) error {
	kind, err := decodeUnit(data, "ArithmeticError",
		ArithmeticErrorKindUnderflow, ArithmeticErrorKindOverflow, ArithmeticErrorKindDivisionByZero)
	e.Kind = kind
	return err
}

func (e ArithmeticError) MarshalJSON() ([]byte, error) {
	return support.EncodeVariant(e.Kind, nil)
}

type DispatchInfo struct {
	Weight  uint64        `json:"weight"`
	Class   DispatchClass `json:"class"`
	PaysFee Pays          `json:"pays_fee"`
}

const (
	DispatchClassKindNormal      = "Normal"
	DispatchClassKindOperational = "Operational"
	DispatchClassKindMandatory   = "Mandatory"
)

type DispatchClass struct {
	Kind string
}

func (c *DispatchClass) UnmarshalJSON(data []byte) error {
	kind, err := decodeUnit(data, "DispatchClass",
		DispatchClassKindNormal, DispatchClassKindOperational, DispatchClassKindMandatory)
	c.Kind = kind
	return err
}

func (c DispatchClass) MarshalJSON() ([]byte, error) {
	return support.EncodeVariant(c.Kind, nil)
}

const (
	PaysKindYes = "Yes"
	PaysKindNo  = "No"
)

type Pays struct {
	Kind string
}

func (p *Pays) UnmarshalJSON(data []byte) error {
	kind, err := decodeUnit(data, "Pays", PaysKindYes, PaysKindNo)
	p.Kind = kind
	return err
}

func (p Pays) MarshalJSON() ([]byte, error) {
	return support.EncodeVariant(p.Kind, nil)
}

const (
	LookupSourceKindId        = "Id"
	LookupSourceKindIndex     = "Index"
	LookupSourceKindRaw       = "Raw"
	LookupSourceKindAddress32 = "Address32"
	LookupSourceKindAddress20 = "Address20"
)

// LookupSource addresses an account. Index is set for the Index kind, Value
// for every other kind.
type LookupSource struct {
	Kind  string
	Value support.Bytes
	Index uint32
}

func (l *LookupSource) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		// plain account ids are rendered without a variant
		var id support.Bytes
		if json.Unmarshal(data, &id) == nil && len(id) == 32 {
			*l = LookupSource{Kind: LookupSourceKindId, Value: id}
			return nil
		}
		return err
	}
	decoded := LookupSource{Kind: kind}
	switch kind {
	case LookupSourceKindIndex:
		err = support.DecodeInto(kind, value, &decoded.Index)
	case LookupSourceKindId, LookupSourceKindRaw, LookupSourceKindAddress32, LookupSourceKindAddress20:
		err = support.DecodeInto(kind, value, &decoded.Value)
	default:
		if id, idErr := support.BytesFromHex(kind); idErr == nil && value == nil && len(id) == 32 {
			*l = LookupSource{Kind: LookupSourceKindId, Value: id}
			return nil
		}
		return support.UnknownVariant("LookupSource", kind)
	}
	*l = decoded
	return err
}

func (l LookupSource) MarshalJSON() ([]byte, error) {
	if l.Kind == LookupSourceKindIndex {
		return support.EncodeVariant(l.Kind, l.Index)
	}
	return support.EncodeVariant(l.Kind, l.Value)
}

type GrandpaEquivocationProof struct {
	SetId        uint64              `json:"set_id"`
	Equivocation GrandpaEquivocation `json:"equivocation"`
}

const (
	GrandpaEquivocationKindPrevote   = "Prevote"
	GrandpaEquivocationKindPrecommit = "Precommit"
)

type GrandpaEquivocation struct {
	Kind  string
	Value GrandpaEquivocationValue
}

func (g *GrandpaEquivocation) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	switch kind {
	case GrandpaEquivocationKindPrevote, GrandpaEquivocationKindPrecommit:
	default:
		return support.UnknownVariant("GrandpaEquivocation", kind)
	}
	decoded := GrandpaEquivocation{Kind: kind}
	if err := support.DecodeInto(kind, value, &decoded.Value); err != nil {
		return err
	}
	*g = decoded
	return nil
}

func (g GrandpaEquivocation) MarshalJSON() ([]byte, error) {
	return support.EncodeVariant(g.Kind, g.Value)
}

type GrandpaEquivocationValue struct {
	RoundNumber uint64        `json:"round_number"`
	Identity    support.Bytes `json:"identity"`
	First       SignedPrevote `json:"first"`
	Second      SignedPrevote `json:"second"`
}

// SignedPrevote is a (prevote, signature) pair
type SignedPrevote struct {
	Prevote   GrandpaPrevote
	Signature support.Bytes
}

func (s *SignedPrevote) UnmarshalJSON(data []byte) error {
	return support.DecodeTuple(data, &s.Prevote, &s.Signature)
}

func (s SignedPrevote) MarshalJSON() ([]byte, error) {
	return support.EncodeTuple(s.Prevote, s.Signature)
}

type GrandpaPrevote struct {
	TargetHash   support.Bytes `json:"target_hash"`
	TargetNumber uint32        `json:"target_number"`
}

type KeyOwnerProof struct {
	Session        uint32          `json:"session"`
	TrieNodes      []support.Bytes `json:"trie_nodes"`
	ValidatorCount uint32          `json:"validator_count"`
}

type ChangesTrieConfiguration struct {
	DigestInterval uint32 `json:"digest_interval"`
	DigestLevels   uint32 `json:"digest_levels"`
}

type AccountData struct {
	Free       support.U128 `json:"free"`
	Reserved   support.U128 `json:"reserved"`
	MiscFrozen support.U128 `json:"misc_frozen"`
	FeeFrozen  support.U128 `json:"fee_frozen"`
}

type BalanceLock struct {
	Id      support.Bytes `json:"id"`
	Amount  support.U128  `json:"amount"`
	Reasons Reasons       `json:"reasons"`
}

const (
	ReasonsKindFee  = "Fee"
	ReasonsKindMisc = "Misc"
	ReasonsKindAll  = "All"
)

type Reasons struct {
	Kind string
}

func (r *Reasons) UnmarshalJSON(data []byte) error {
	kind, err := decodeUnit(data, "Reasons", ReasonsKindFee, ReasonsKindMisc, ReasonsKindAll)
	r.Kind = kind
	return err
}

func (r Reasons) MarshalJSON() ([]byte, error) {
	return support.EncodeVariant(r.Kind, nil)
}

// Releases is the storage layout version of a pallet, V1 to V10
type Releases struct {
	Kind string
}

func (r *Releases) UnmarshalJSON(data []byte) error {
	kind, err := decodeUnit(data, "Releases", "V1", "V2", "V3", "V4", "V5", "V6", "V7", "V8", "V9", "V10")
	r.Kind = kind
	return err
}

func (r Releases) MarshalJSON() ([]byte, error) {
	return support.EncodeVariant(r.Kind, nil)
}

// Authority is a (public key, weight) pair of the grandpa authority set
type Authority struct {
	Id     support.Bytes
	Weight uint64
}

func (a *Authority) UnmarshalJSON(data []byte) error {
	return support.DecodeTuple(data, &a.Id, &a.Weight)
}

func (a Authority) MarshalJSON() ([]byte, error) {
	return support.EncodeTuple(a.Id, a.Weight)
}

type StoredPendingChange struct {
	ScheduledAt     uint32      `json:"scheduled_at"`
	Delay           uint32      `json:"delay"`
	NextAuthorities []Authority `json:"next_authorities"`
}

const (
	StoredStateKindLive          = "Live"
	StoredStateKindPendingPause  = "PendingPause"
	StoredStateKindPaused        = "Paused"
	StoredStateKindPendingResume = "PendingResume"
)

type StoredState struct {
	Kind          string
	PendingPause  *PendingPause
	PendingResume *PendingResume
}

func (s *StoredState) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := StoredState{Kind: kind}
	switch kind {
	case StoredStateKindLive, StoredStateKindPaused:
	case StoredStateKindPendingPause:
		decoded.PendingPause = &PendingPause{}
		err = support.DecodeInto(kind, value, decoded.PendingPause)
	case StoredStateKindPendingResume:
		decoded.PendingResume = &PendingResume{}
		err = support.DecodeInto(kind, value, decoded.PendingResume)
	default:
		return support.UnknownVariant("StoredState", kind)
	}
	*s = decoded
	return err
}

func (s StoredState) MarshalJSON() ([]byte, error) {
	switch {
	case s.PendingPause != nil:
		return support.EncodeVariant(s.Kind, s.PendingPause)
	case s.PendingResume != nil:
		return support.EncodeVariant(s.Kind, s.PendingResume)
	}
	return support.EncodeVariant(s.Kind, nil)
}

type PendingPause struct {
	ScheduledAt uint32 `json:"scheduled_at"`
	Delay       uint32 `json:"delay"`
}

type PendingResume struct {
	ScheduledAt uint32 `json:"scheduled_at"`
	Delay       uint32 `json:"delay"`
}

type AccountInfo struct {
	Nonce       uint32      `json:"nonce"`
	Consumers   uint32      `json:"consumers"`
	Providers   uint32      `json:"providers"`
	Sufficients uint32      `json:"sufficients"`
	Data        AccountData `json:"data"`
}

type ExtrinsicsWeight struct {
	Normal      uint64 `json:"normal"`
	Operational uint64 `json:"operational"`
}

type DigestOf struct {
	Logs []DigestItem `json:"logs"`
}

const (
	DigestItemKindOther                     = "Other"
	DigestItemKindAuthoritiesChange         = "AuthoritiesChange"
	DigestItemKindChangesTrieRoot           = "ChangesTrieRoot"
	DigestItemKindSealV0                    = "SealV0"
	DigestItemKindConsensus                 = "Consensus"
	DigestItemKindSeal                      = "Seal"
	DigestItemKindPreRuntime                = "PreRuntime"
	DigestItemKindChangesTrieSignal         = "ChangesTrieSignal"
	DigestItemKindRuntimeEnvironmentUpdated = "RuntimeEnvironmentUpdated"
)

// DigestItem is one header digest log. Bytes holds the payload of Other and
// ChangesTrieRoot, Authorities the AuthoritiesChange set, SealV0 its
// (slot, signature) pair and Engine the (engine id, data) pair of Consensus,
// Seal and PreRuntime.
type DigestItem struct {
	Kind              string
	Bytes             support.Bytes
	Authorities       []support.Bytes
	SealV0            *SealV0
	Engine            *EngineData
	ChangesTrieSignal *ChangesTrieSignal
}

type SealV0 struct {
	Slot      uint64
	Signature support.Bytes
}

func (s *SealV0) UnmarshalJSON(data []byte) error {
	return support.DecodeTuple(data, &s.Slot, &s.Signature)
}

func (s SealV0) MarshalJSON() ([]byte, error) {
	return support.EncodeTuple(s.Slot, s.Signature)
}

type EngineData struct {
	EngineId support.Bytes
	Data     support.Bytes
}

func (e *EngineData) UnmarshalJSON(data []byte) error {
	return support.DecodeTuple(data, &e.EngineId, &e.Data)
}

func (e EngineData) MarshalJSON() ([]byte, error) {
	return support.EncodeTuple(e.EngineId, e.Data)
}

func (d *DigestItem) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := DigestItem{Kind: kind}
	switch kind {
	case DigestItemKindOther, DigestItemKindChangesTrieRoot:
		err = support.DecodeInto(kind, value, &decoded.Bytes)
	case DigestItemKindAuthoritiesChange:
		err = support.DecodeInto(kind, value, &decoded.Authorities)
	case DigestItemKindSealV0:
		decoded.SealV0 = &SealV0{}
		err = support.DecodeInto(kind, value, decoded.SealV0)
	case DigestItemKindConsensus, DigestItemKindSeal, DigestItemKindPreRuntime:
		decoded.Engine = &EngineData{}
		err = support.DecodeInto(kind, value, decoded.Engine)
	case DigestItemKindChangesTrieSignal:
		decoded.ChangesTrieSignal = &ChangesTrieSignal{}
		err = support.DecodeInto(kind, value, decoded.ChangesTrieSignal)
	case DigestItemKindRuntimeEnvironmentUpdated:
	default:
		return support.UnknownVariant("DigestItem", kind)
	}
	*d = decoded
	return err
}

func (d DigestItem) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DigestItemKindOther, DigestItemKindChangesTrieRoot:
		return support.EncodeVariant(d.Kind, d.Bytes)
	case DigestItemKindAuthoritiesChange:
		return support.EncodeVariant(d.Kind, d.Authorities)
	case DigestItemKindSealV0:
		return support.EncodeVariant(d.Kind, d.SealV0)
	case DigestItemKindConsensus, DigestItemKindSeal, DigestItemKindPreRuntime:
		return support.EncodeVariant(d.Kind, d.Engine)
	case DigestItemKindChangesTrieSignal:
		return support.EncodeVariant(d.Kind, d.ChangesTrieSignal)
	}
	return support.EncodeVariant(d.Kind, nil)
}

const ChangesTrieSignalKindNewConfiguration = "NewConfiguration"

type ChangesTrieSignal struct {
	Kind             string
	NewConfiguration *ChangesTrieConfiguration
}

func (c *ChangesTrieSignal) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	if kind != ChangesTrieSignalKindNewConfiguration {
		return support.UnknownVariant("ChangesTrieSignal", kind)
	}
	decoded := ChangesTrieSignal{Kind: kind}
	if value != nil {
		decoded.NewConfiguration = &ChangesTrieConfiguration{}
		if err := json.Unmarshal(value, decoded.NewConfiguration); err != nil {
			return err
		}
	}
	*c = decoded
	return nil
}

func (c ChangesTrieSignal) MarshalJSON() ([]byte, error) {
	return support.EncodeVariant(c.Kind, c.NewConfiguration)
}

type EventRecord struct {
	Phase  Phase           `json:"phase"`
	Event  Event           `json:"event"`
	Topics []support.Bytes `json:"topics"`
}

const (
	PhaseKindApplyExtrinsic = "ApplyExtrinsic"
	PhaseKindFinalization   = "Finalization"
	PhaseKindInitialization = "Initialization"
)

type Phase struct {
	Kind           string
	ApplyExtrinsic uint32
}

func (p *Phase) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := Phase{Kind: kind}
	switch kind {
	case PhaseKindApplyExtrinsic:
		err = support.DecodeInto(kind, value, &decoded.ApplyExtrinsic)
	case PhaseKindFinalization, PhaseKindInitialization:
	default:
		return support.UnknownVariant("Phase", kind)
	}
	*p = decoded
	return err
}

func (p Phase) MarshalJSON() ([]byte, error) {
	if p.Kind == PhaseKindApplyExtrinsic {
		return support.EncodeVariant(p.Kind, p.ApplyExtrinsic)
	}
	return support.EncodeVariant(p.Kind, nil)
}

type LastRuntimeUpgradeInfo struct {
	SpecVersion uint32 `json:"spec_version"`
	SpecName    string `json:"spec_name"`
}

type RuntimeDbWeight struct {
	Read  uint64 `json:"read"`
	Write uint64 `json:"write"`
}

type WeightToFeeCoefficient struct {
	CoeffInteger support.U128 `json:"coeff_integer"`
	// parts per billion
	CoeffFrac uint32 `json:"coeff_frac"`
	Negative  bool   `json:"negative"`
	Degree    uint8  `json:"degree"`
}

// VerificationKey is the (key, reserved deposit) pair stored per account by
// the zeropool pallet
type VerificationKey struct {
	Key     support.Bytes
	Deposit support.U128
}

func (v *VerificationKey) UnmarshalJSON(data []byte) error {
	return support.DecodeTuple(data, &v.Key, &v.Deposit)
}

func (v VerificationKey) MarshalJSON() ([]byte, error) {
	return support.EncodeTuple(v.Key, v.Deposit)
}

func decodeUnit(data []byte, typeName string, kinds ...string) (string, error) {
	kind, _, err := support.DecodeVariant(data)
	if err != nil {
		return "", err
	}
	for _, known := range kinds {
		if kind == known {
			return kind, nil
		}
	}
	return "", support.UnknownVariant(typeName, kind)
}
