package v1

import (
	"go-zeropool-dictionary/internal/types/support"
)

// AccountAmount is the (account, balance) pair carried by most balance events
type AccountAmount struct {
	Account support.Bytes
	Amount  support.U128
}

func (e *AccountAmount) UnmarshalJSON(data []byte) error {
	return support.DecodeTuple(data, &e.Account, &e.Amount)
}

func (e AccountAmount) MarshalJSON() ([]byte, error) {
	return support.EncodeTuple(e.Account, e.Amount)
}

type BalancesTransferEvent struct {
	From   support.Bytes
	To     support.Bytes
	Amount support.U128
}

func (e *BalancesTransferEvent) UnmarshalJSON(data []byte) error {
	return support.DecodeTuple(data, &e.From, &e.To, &e.Amount)
}

func (e BalancesTransferEvent) MarshalJSON() ([]byte, error) {
	return support.EncodeTuple(e.From, e.To, e.Amount)
}

type BalancesBalanceSetEvent struct {
	Who      support.Bytes
	Free     support.U128
	Reserved support.U128
}

func (e *BalancesBalanceSetEvent) UnmarshalJSON(data []byte) error {
	return support.DecodeTuple(data, &e.Who, &e.Free, &e.Reserved)
}

func (e BalancesBalanceSetEvent) MarshalJSON() ([]byte, error) {
	return support.EncodeTuple(e.Who, e.Free, e.Reserved)
}

type BalancesReserveRepatriatedEvent struct {
	From   support.Bytes
	To     support.Bytes
	Amount support.U128
	Status BalanceStatus
}

func (e *BalancesReserveRepatriatedEvent) UnmarshalJSON(data []byte) error {
	return support.DecodeTuple(data, &e.From, &e.To, &e.Amount, &e.Status)
}

func (e BalancesReserveRepatriatedEvent) MarshalJSON() ([]byte, error) {
	return support.EncodeTuple(e.From, e.To, e.Amount, e.Status)
}

type SystemExtrinsicFailedEvent struct {
	Error DispatchError
	Info  DispatchInfo
}

func (e *SystemExtrinsicFailedEvent) UnmarshalJSON(data []byte) error {
	return support.DecodeTuple(data, &e.Error, &e.Info)
}

func (e SystemExtrinsicFailedEvent) MarshalJSON() ([]byte, error) {
	return support.EncodeTuple(e.Error, e.Info)
}

const (
	EventKindSystem   = "System"
	EventKindGrandpa  = "Grandpa"
	EventKindBalances = "Balances"
	EventKindSudo     = "Sudo"
	EventKindZeropool = "Zeropool"
)

type Event struct {
	Kind     string
	System   *SystemEvent
	Grandpa  *GrandpaEvent
	Balances *BalancesEvent
	Sudo     *SudoEvent
	Zeropool *ZeropoolEvent
}

func (e *Event) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := Event{Kind: kind}
	switch kind {
	case EventKindSystem:
		decoded.System = &SystemEvent{}
		err = support.DecodeInto(kind, value, decoded.System)
	case EventKindGrandpa:
		decoded.Grandpa = &GrandpaEvent{}
		err = support.DecodeInto(kind, value, decoded.Grandpa)
	case EventKindBalances:
		decoded.Balances = &BalancesEvent{}
		err = support.DecodeInto(kind, value, decoded.Balances)
	case EventKindSudo:
		decoded.Sudo = &SudoEvent{}
		err = support.DecodeInto(kind, value, decoded.Sudo)
	case EventKindZeropool:
		decoded.Zeropool = &ZeropoolEvent{}
		err = support.DecodeInto(kind, value, decoded.Zeropool)
	default:
		return support.UnknownVariant("Event", kind)
	}
	*e = decoded
	return err
}

func (e Event) MarshalJSON() ([]byte, error) {
	switch {
	case e.System != nil:
		return support.EncodeVariant(e.Kind, e.System)
	case e.Grandpa != nil:
		return support.EncodeVariant(e.Kind, e.Grandpa)
	case e.Balances != nil:
		return support.EncodeVariant(e.Kind, e.Balances)
	case e.Sudo != nil:
		return support.EncodeVariant(e.Kind, e.Sudo)
	case e.Zeropool != nil:
		return support.EncodeVariant(e.Kind, e.Zeropool)
	}
	return support.EncodeVariant(e.Kind, nil)
}

// Name returns the qualified name of the event, e.g. "System.ExtrinsicSuccess"
func (e Event) Name() string {
	switch {
	case e.System != nil:
		return e.Kind + "." + e.System.Kind
	case e.Grandpa != nil:
		return e.Kind + "." + e.Grandpa.Kind
	case e.Balances != nil:
		return e.Kind + "." + e.Balances.Kind
	case e.Sudo != nil:
		return e.Kind + "." + e.Sudo.Kind
	case e.Zeropool != nil:
		return e.Kind + "." + e.Zeropool.Kind
	}
	return e.Kind
}

const (
	SystemEventExtrinsicSuccess = "ExtrinsicSuccess"
	SystemEventExtrinsicFailed  = "ExtrinsicFailed"
	SystemEventCodeUpdated      = "CodeUpdated"
	SystemEventNewAccount       = "NewAccount"
	SystemEventKilledAccount    = "KilledAccount"
)

type SystemEvent struct {
	Kind             string
	ExtrinsicSuccess *DispatchInfo
	ExtrinsicFailed  *SystemExtrinsicFailedEvent
	NewAccount       support.Bytes
	KilledAccount    support.Bytes
}

func (e *SystemEvent) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := SystemEvent{Kind: kind}
	switch kind {
	case SystemEventExtrinsicSuccess:
		decoded.ExtrinsicSuccess = &DispatchInfo{}
		err = support.DecodeInto(kind, value, decoded.ExtrinsicSuccess)
	case SystemEventExtrinsicFailed:
		decoded.ExtrinsicFailed = &SystemExtrinsicFailedEvent{}
		err = support.DecodeInto(kind, value, decoded.ExtrinsicFailed)
	case SystemEventCodeUpdated:
	case SystemEventNewAccount:
		err = support.DecodeInto(kind, value, &decoded.NewAccount)
	case SystemEventKilledAccount:
		err = support.DecodeInto(kind, value, &decoded.KilledAccount)
	default:
		return support.UnknownVariant("SystemEvent", kind)
	}
	*e = decoded
	return err
}

func (e SystemEvent) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case SystemEventExtrinsicSuccess:
		return support.EncodeVariant(e.Kind, e.ExtrinsicSuccess)
	case SystemEventExtrinsicFailed:
		return support.EncodeVariant(e.Kind, e.ExtrinsicFailed)
	case SystemEventNewAccount:
		return support.EncodeVariant(e.Kind, e.NewAccount)
	case SystemEventKilledAccount:
		return support.EncodeVariant(e.Kind, e.KilledAccount)
	}
	return support.EncodeVariant(e.Kind, nil)
}

const (
	GrandpaEventNewAuthorities = "NewAuthorities"
	GrandpaEventPaused         = "Paused"
	GrandpaEventResumed        = "Resumed"
)

type GrandpaEvent struct {
	Kind           string
	NewAuthorities []Authority
}

func (e *GrandpaEvent) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := GrandpaEvent{Kind: kind}
	switch kind {
	case GrandpaEventNewAuthorities:
		err = support.DecodeInto(kind, value, &decoded.NewAuthorities)
	case GrandpaEventPaused:
	case GrandpaEventResumed:
	default:
		return support.UnknownVariant("GrandpaEvent", kind)
	}
	*e = decoded
	return err
}

func (e GrandpaEvent) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case GrandpaEventNewAuthorities:
		return support.EncodeVariant(e.Kind, e.NewAuthorities)
	}
	return support.EncodeVariant(e.Kind, nil)
}

const (
	BalancesEventEndowed            = "Endowed"
	BalancesEventDustLost           = "DustLost"
	BalancesEventTransfer           = "Transfer"
	BalancesEventBalanceSet         = "BalanceSet"
	BalancesEventDeposit            = "Deposit"
	BalancesEventReserved           = "Reserved"
	BalancesEventUnreserved         = "Unreserved"
	BalancesEventReserveRepatriated = "ReserveRepatriated"
)

type BalancesEvent struct {
	Kind               string
	Endowed            *AccountAmount
	DustLost           *AccountAmount
	Transfer           *BalancesTransferEvent
	BalanceSet         *BalancesBalanceSetEvent
	Deposit            *AccountAmount
	Reserved           *AccountAmount
	Unreserved         *AccountAmount
	ReserveRepatriated *BalancesReserveRepatriatedEvent
}

func (e *BalancesEvent) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := BalancesEvent{Kind: kind}
	switch kind {
	case BalancesEventEndowed:
		decoded.Endowed = &AccountAmount{}
		err = support.DecodeInto(kind, value, decoded.Endowed)
	case BalancesEventDustLost:
		decoded.DustLost = &AccountAmount{}
		err = support.DecodeInto(kind, value, decoded.DustLost)
	case BalancesEventTransfer:
		decoded.Transfer = &BalancesTransferEvent{}
		err = support.DecodeInto(kind, value, decoded.Transfer)
	case BalancesEventBalanceSet:
		decoded.BalanceSet = &BalancesBalanceSetEvent{}
		err = support.DecodeInto(kind, value, decoded.BalanceSet)
	case BalancesEventDeposit:
		decoded.Deposit = &AccountAmount{}
		err = support.DecodeInto(kind, value, decoded.Deposit)
	case BalancesEventReserved:
		decoded.Reserved = &AccountAmount{}
		err = support.DecodeInto(kind, value, decoded.Reserved)
	case BalancesEventUnreserved:
		decoded.Unreserved = &AccountAmount{}
		err = support.DecodeInto(kind, value, decoded.Unreserved)
	case BalancesEventReserveRepatriated:
		decoded.ReserveRepatriated = &BalancesReserveRepatriatedEvent{}
		err = support.DecodeInto(kind, value, decoded.ReserveRepatriated)
	default:
		return support.UnknownVariant("BalancesEvent", kind)
	}
	*e = decoded
	return err
}

func (e BalancesEvent) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case BalancesEventEndowed:
		return support.EncodeVariant(e.Kind, e.Endowed)
	case BalancesEventDustLost:
		return support.EncodeVariant(e.Kind, e.DustLost)
	case BalancesEventTransfer:
		return support.EncodeVariant(e.Kind, e.Transfer)
	case BalancesEventBalanceSet:
		return support.EncodeVariant(e.Kind, e.BalanceSet)
	case BalancesEventDeposit:
		return support.EncodeVariant(e.Kind, e.Deposit)
	case BalancesEventReserved:
		return support.EncodeVariant(e.Kind, e.Reserved)
	case BalancesEventUnreserved:
		return support.EncodeVariant(e.Kind, e.Unreserved)
	case BalancesEventReserveRepatriated:
		return support.EncodeVariant(e.Kind, e.ReserveRepatriated)
	}
	return support.EncodeVariant(e.Kind, nil)
}

const (
	SudoEventSudid      = "Sudid"
	SudoEventKeyChanged = "KeyChanged"
	SudoEventSudoAsDone = "SudoAsDone"
)

type SudoEvent struct {
	Kind       string
	Sudid      *support.Result[support.Null, DispatchError]
	KeyChanged support.Bytes
	SudoAsDone bool
}

func (e *SudoEvent) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := SudoEvent{Kind: kind}
	switch kind {
	case SudoEventSudid:
		decoded.Sudid = &support.Result[support.Null, DispatchError]{}
		err = support.DecodeInto(kind, value, decoded.Sudid)
	case SudoEventKeyChanged:
		err = support.DecodeInto(kind, value, &decoded.KeyChanged)
	case SudoEventSudoAsDone:
		err = support.DecodeInto(kind, value, &decoded.SudoAsDone)
	default:
		return support.UnknownVariant("SudoEvent", kind)
	}
	*e = decoded
	return err
}

func (e SudoEvent) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case SudoEventSudid:
		return support.EncodeVariant(e.Kind, e.Sudid)
	case SudoEventKeyChanged:
		return support.EncodeVariant(e.Kind, e.KeyChanged)
	case SudoEventSudoAsDone:
		return support.EncodeVariant(e.Kind, e.SudoAsDone)
	}
	return support.EncodeVariant(e.Kind, nil)
}

const (
	ZeropoolEventVerificationKeySet     = "VerificationKeySet"
	ZeropoolEventVerificationKeyUpdated = "VerificationKeyUpdated"
	ZeropoolEventVerificationSuccessful = "VerificationSuccessful"
	ZeropoolEventVerificationFailed     = "VerificationFailed"
)

type ZeropoolEvent struct {
	Kind                   string
	VerificationKeySet     support.Bytes
	VerificationKeyUpdated support.Bytes
	VerificationSuccessful support.Bytes
	VerificationFailed     support.Bytes
}

func (e *ZeropoolEvent) UnmarshalJSON(data []byte) error {
	kind, value, err := support.DecodeVariant(data)
	if err != nil {
		return err
	}
	decoded := ZeropoolEvent{Kind: kind}
	switch kind {
	case ZeropoolEventVerificationKeySet:
		err = support.DecodeInto(kind, value, &decoded.VerificationKeySet)
	case ZeropoolEventVerificationKeyUpdated:
		err = support.DecodeInto(kind, value, &decoded.VerificationKeyUpdated)
	case ZeropoolEventVerificationSuccessful:
		err = support.DecodeInto(kind, value, &decoded.VerificationSuccessful)
	case ZeropoolEventVerificationFailed:
		err = support.DecodeInto(kind, value, &decoded.VerificationFailed)
	default:
		return support.UnknownVariant("ZeropoolEvent", kind)
	}
	*e = decoded
	return err
}

func (e ZeropoolEvent) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case ZeropoolEventVerificationKeySet:
		return support.EncodeVariant(e.Kind, e.VerificationKeySet)
	case ZeropoolEventVerificationKeyUpdated:
		return support.EncodeVariant(e.Kind, e.VerificationKeyUpdated)
	case ZeropoolEventVerificationSuccessful:
		return support.EncodeVariant(e.Kind, e.VerificationSuccessful)
	case ZeropoolEventVerificationFailed:
		return support.EncodeVariant(e.Kind, e.VerificationFailed)
	}
	return support.EncodeVariant(e.Kind, nil)
}
