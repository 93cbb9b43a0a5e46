package types

import (
	"go-zeropool-dictionary/internal/types/support"
	v1 "go-zeropool-dictionary/internal/types/v1"
)

// BalancesBalanceSetEvent is the event Balances.BalanceSet. A balance was set
// by root.
type BalancesBalanceSetEvent struct {
	eventAccessor
}

func NewBalancesBalanceSetEvent(ctx support.EventContext) (*BalancesBalanceSetEvent, error) {
	a, err := newEventAccessor(ctx, "Balances.BalanceSet")
	if err != nil {
		return nil, err
	}
	return &BalancesBalanceSetEvent{a}, nil
}

func (e *BalancesBalanceSetEvent) IsV1() bool {
	return e.is(1)
}

func (e *BalancesBalanceSetEvent) AsV1() (v1.BalancesBalanceSetEvent, error) {
	return asEvent[v1.BalancesBalanceSetEvent](e.eventAccessor, 1)
}

// BalancesDepositEvent is the event Balances.Deposit. Some amount was
// deposited (e.g. for transaction fees).
type BalancesDepositEvent struct {
	eventAccessor
}

func NewBalancesDepositEvent(ctx support.EventContext) (*BalancesDepositEvent, error) {
	a, err := newEventAccessor(ctx, "Balances.Deposit")
	if err != nil {
		return nil, err
	}
	return &BalancesDepositEvent{a}, nil
}

func (e *BalancesDepositEvent) IsV1() bool {
	return e.is(1)
}

func (e *BalancesDepositEvent) AsV1() (v1.AccountAmount, error) {
	return asEvent[v1.AccountAmount](e.eventAccessor, 1)
}

// BalancesDustLostEvent is the event Balances.DustLost. An account was removed
// whose balance was non-zero but below ExistentialDeposit, resulting in an
// outright loss.
type BalancesDustLostEvent struct {
	eventAccessor
}

func NewBalancesDustLostEvent(ctx support.EventContext) (*BalancesDustLostEvent, error) {
	a, err := newEventAccessor(ctx, "Balances.DustLost")
	if err != nil {
		return nil, err
	}
	return &BalancesDustLostEvent{a}, nil
}

func (e *BalancesDustLostEvent) IsV1() bool {
	return e.is(1)
}

func (e *BalancesDustLostEvent) AsV1() (v1.AccountAmount, error) {
	return asEvent[v1.AccountAmount](e.eventAccessor, 1)
}

// BalancesEndowedEvent is the event Balances.Endowed. An account was created
// with some free balance.
type BalancesEndowedEvent struct {
	eventAccessor
}

func NewBalancesEndowedEvent(ctx support.EventContext) (*BalancesEndowedEvent, error) {
	a, err := newEventAccessor(ctx, "Balances.Endowed")
	if err != nil {
		return nil, err
	}
	return &BalancesEndowedEvent{a}, nil
}

func (e *BalancesEndowedEvent) IsV1() bool {
	return e.is(1)
}

func (e *BalancesEndowedEvent) AsV1() (v1.AccountAmount, error) {
	return asEvent[v1.AccountAmount](e.eventAccessor, 1)
}

// BalancesReserveRepatriatedEvent is the event Balances.ReserveRepatriated.
// Some balance was moved from the reserve of the first account to the second
// account.
type BalancesReserveRepatriatedEvent struct {
	eventAccessor
}

func NewBalancesReserveRepatriatedEvent(ctx support.EventContext) (*BalancesReserveRepatriatedEvent, error) {
	a, err := newEventAccessor(ctx, "Balances.ReserveRepatriated")
	if err != nil {
		return nil, err
	}
	return &BalancesReserveRepatriatedEvent{a}, nil
}

func (e *BalancesReserveRepatriatedEvent) IsV1() bool {
	return e.is(1)
}

func (e *BalancesReserveRepatriatedEvent) AsV1() (v1.BalancesReserveRepatriatedEvent, error) {
	return asEvent[v1.BalancesReserveRepatriatedEvent](e.eventAccessor, 1)
}

// BalancesReservedEvent is the event Balances.Reserved. Some balance was
// reserved (moved from free to reserved).
type BalancesReservedEvent struct {
	eventAccessor
}

func NewBalancesReservedEvent(ctx support.EventContext) (*BalancesReservedEvent, error) {
	a, err := newEventAccessor(ctx, "Balances.Reserved")
	if err != nil {
		return nil, err
	}
	return &BalancesReservedEvent{a}, nil
}

func (e *BalancesReservedEvent) IsV1() bool {
	return e.is(1)
}

func (e *BalancesReservedEvent) AsV1() (v1.AccountAmount, error) {
	return asEvent[v1.AccountAmount](e.eventAccessor, 1)
}

// BalancesTransferEvent is the event Balances.Transfer. Transfer succeeded.
type BalancesTransferEvent struct {
	eventAccessor
}

func NewBalancesTransferEvent(ctx support.EventContext) (*BalancesTransferEvent, error) {
	a, err := newEventAccessor(ctx, "Balances.Transfer")
	if err != nil {
		return nil, err
	}
	return &BalancesTransferEvent{a}, nil
}

func (e *BalancesTransferEvent) IsV1() bool {
	return e.is(1)
}

func (e *BalancesTransferEvent) AsV1() (v1.BalancesTransferEvent, error) {
	return asEvent[v1.BalancesTransferEvent](e.eventAccessor, 1)
}

// BalancesUnreservedEvent is the event Balances.Unreserved. Some balance was
// unreserved (moved from reserved to free).
type BalancesUnreservedEvent struct {
	eventAccessor
}

func NewBalancesUnreservedEvent(ctx support.EventContext) (*BalancesUnreservedEvent, error) {
	a, err := newEventAccessor(ctx, "Balances.Unreserved")
	if err != nil {
		return nil, err
	}
	return &BalancesUnreservedEvent{a}, nil
}

func (e *BalancesUnreservedEvent) IsV1() bool {
	return e.is(1)
}

func (e *BalancesUnreservedEvent) AsV1() (v1.AccountAmount, error) {
	return asEvent[v1.AccountAmount](e.eventAccessor, 1)
}

// GrandpaNewAuthoritiesEvent is the event Grandpa.NewAuthorities. New
// authority set has been applied.
type GrandpaNewAuthoritiesEvent struct {
	eventAccessor
}

func NewGrandpaNewAuthoritiesEvent(ctx support.EventContext) (*GrandpaNewAuthoritiesEvent, error) {
	a, err := newEventAccessor(ctx, "Grandpa.NewAuthorities")
	if err != nil {
		return nil, err
	}
	return &GrandpaNewAuthoritiesEvent{a}, nil
}

func (e *GrandpaNewAuthoritiesEvent) IsV1() bool {
	return e.is(1)
}

func (e *GrandpaNewAuthoritiesEvent) AsV1() ([]v1.Authority, error) {
	return asEvent[[]v1.Authority](e.eventAccessor, 1)
}

// GrandpaPausedEvent is the event Grandpa.Paused. Current authority set has
// been paused.
type GrandpaPausedEvent struct {
	eventAccessor
}

func NewGrandpaPausedEvent(ctx support.EventContext) (*GrandpaPausedEvent, error) {
	a, err := newEventAccessor(ctx, "Grandpa.Paused")
	if err != nil {
		return nil, err
	}
	return &GrandpaPausedEvent{a}, nil
}

func (e *GrandpaPausedEvent) IsV1() bool {
	return e.is(1)
}

func (e *GrandpaPausedEvent) AsV1() (support.Null, error) {
	return asEvent[support.Null](e.eventAccessor, 1)
}

// GrandpaResumedEvent is the event Grandpa.Resumed. Current authority set has
// been resumed.
type GrandpaResumedEvent struct {
	eventAccessor
}

func NewGrandpaResumedEvent(ctx support.EventContext) (*GrandpaResumedEvent, error) {
	a, err := newEventAccessor(ctx, "Grandpa.Resumed")
	if err != nil {
		return nil, err
	}
	return &GrandpaResumedEvent{a}, nil
}

func (e *GrandpaResumedEvent) IsV1() bool {
	return e.is(1)
}

func (e *GrandpaResumedEvent) AsV1() (support.Null, error) {
	return asEvent[support.Null](e.eventAccessor, 1)
}

// SudoKeyChangedEvent is the event Sudo.KeyChanged. The \[sudoer\] just
// switched identity; the old key is supplied.
type SudoKeyChangedEvent struct {
	eventAccessor
}

func NewSudoKeyChangedEvent(ctx support.EventContext) (*SudoKeyChangedEvent, error) {
	a, err := newEventAccessor(ctx, "Sudo.KeyChanged")
	if err != nil {
		return nil, err
	}
	return &SudoKeyChangedEvent{a}, nil
}

func (e *SudoKeyChangedEvent) IsV1() bool {
	return e.is(1)
}

func (e *SudoKeyChangedEvent) AsV1() (support.Bytes, error) {
	return asEvent[support.Bytes](e.eventAccessor, 1)
}

// SudoSudidEvent is the event Sudo.Sudid. A sudo just took place.
type SudoSudidEvent struct {
	eventAccessor
}

func NewSudoSudidEvent(ctx support.EventContext) (*SudoSudidEvent, error) {
	a, err := newEventAccessor(ctx, "Sudo.Sudid")
	if err != nil {
		return nil, err
	}
	return &SudoSudidEvent{a}, nil
}

func (e *SudoSudidEvent) IsV1() bool {
	return e.is(1)
}

func (e *SudoSudidEvent) AsV1() (support.Result[support.Null, v1.DispatchError], error) {
	return asEvent[support.Result[support.Null, v1.DispatchError]](e.eventAccessor, 1)
}

// SudoSudoAsDoneEvent is the event Sudo.SudoAsDone. A sudo just took place.
type SudoSudoAsDoneEvent struct {
	eventAccessor
}

func NewSudoSudoAsDoneEvent(ctx support.EventContext) (*SudoSudoAsDoneEvent, error) {
	a, err := newEventAccessor(ctx, "Sudo.SudoAsDone")
	if err != nil {
		return nil, err
	}
	return &SudoSudoAsDoneEvent{a}, nil
}

func (e *SudoSudoAsDoneEvent) IsV1() bool {
	return e.is(1)
}

func (e *SudoSudoAsDoneEvent) AsV1() (bool, error) {
	return asEvent[bool](e.eventAccessor, 1)
}

// SystemCodeUpdatedEvent is the event System.CodeUpdated. :code was updated.
type SystemCodeUpdatedEvent struct {
	eventAccessor
}

func NewSystemCodeUpdatedEvent(ctx support.EventContext) (*SystemCodeUpdatedEvent, error) {
	a, err := newEventAccessor(ctx, "System.CodeUpdated")
	if err != nil {
		return nil, err
	}
	return &SystemCodeUpdatedEvent{a}, nil
}

func (e *SystemCodeUpdatedEvent) IsV1() bool {
	return e.is(1)
}

func (e *SystemCodeUpdatedEvent) AsV1() (support.Null, error) {
	return asEvent[support.Null](e.eventAccessor, 1)
}

// SystemExtrinsicFailedEvent is the event System.ExtrinsicFailed. An extrinsic
// failed.
type SystemExtrinsicFailedEvent struct {
	eventAccessor
}

func NewSystemExtrinsicFailedEvent(ctx support.EventContext) (*SystemExtrinsicFailedEvent, error) {
	a, err := newEventAccessor(ctx, "System.ExtrinsicFailed")
	if err != nil {
		return nil, err
	}
	return &SystemExtrinsicFailedEvent{a}, nil
}

func (e *SystemExtrinsicFailedEvent) IsV1() bool {
	return e.is(1)
}

func (e *SystemExtrinsicFailedEvent) AsV1() (v1.SystemExtrinsicFailedEvent, error) {
	return asEvent[v1.SystemExtrinsicFailedEvent](e.eventAccessor, 1)
}

// SystemExtrinsicSuccessEvent is the event System.ExtrinsicSuccess. An
// extrinsic completed successfully.
type SystemExtrinsicSuccessEvent struct {
	eventAccessor
}

func NewSystemExtrinsicSuccessEvent(ctx support.EventContext) (*SystemExtrinsicSuccessEvent, error) {
	a, err := newEventAccessor(ctx, "System.ExtrinsicSuccess")
	if err != nil {
		return nil, err
	}
	return &SystemExtrinsicSuccessEvent{a}, nil
}

func (e *SystemExtrinsicSuccessEvent) IsV1() bool {
	return e.is(1)
}

func (e *SystemExtrinsicSuccessEvent) AsV1() (v1.DispatchInfo, error) {
	return asEvent[v1.DispatchInfo](e.eventAccessor, 1)
}

// SystemKilledAccountEvent is the event System.KilledAccount. An \[account\]
// was reaped.
type SystemKilledAccountEvent struct {
	eventAccessor
}

func NewSystemKilledAccountEvent(ctx support.EventContext) (*SystemKilledAccountEvent, error) {
	a, err := newEventAccessor(ctx, "System.KilledAccount")
	if err != nil {
		return nil, err
	}
	return &SystemKilledAccountEvent{a}, nil
}

func (e *SystemKilledAccountEvent) IsV1() bool {
	return e.is(1)
}

func (e *SystemKilledAccountEvent) AsV1() (support.Bytes, error) {
	return asEvent[support.Bytes](e.eventAccessor, 1)
}

// SystemNewAccountEvent is the event System.NewAccount. A new \[account\] was
// created.
type SystemNewAccountEvent struct {
	eventAccessor
}

func NewSystemNewAccountEvent(ctx support.EventContext) (*SystemNewAccountEvent, error) {
	a, err := newEventAccessor(ctx, "System.NewAccount")
	if err != nil {
		return nil, err
	}
	return &SystemNewAccountEvent{a}, nil
}

func (e *SystemNewAccountEvent) IsV1() bool {
	return e.is(1)
}

func (e *SystemNewAccountEvent) AsV1() (support.Bytes, error) {
	return asEvent[support.Bytes](e.eventAccessor, 1)
}

// ZeropoolVerificationFailedEvent is the event Zeropool.VerificationFailed.
type ZeropoolVerificationFailedEvent struct {
	eventAccessor
}

func NewZeropoolVerificationFailedEvent(ctx support.EventContext) (*ZeropoolVerificationFailedEvent, error) {
	a, err := newEventAccessor(ctx, "Zeropool.VerificationFailed")
	if err != nil {
		return nil, err
	}
	return &ZeropoolVerificationFailedEvent{a}, nil
}

func (e *ZeropoolVerificationFailedEvent) IsV1() bool {
	return e.is(1)
}

func (e *ZeropoolVerificationFailedEvent) AsV1() (support.Bytes, error) {
	return asEvent[support.Bytes](e.eventAccessor, 1)
}

// ZeropoolVerificationKeySetEvent is the event Zeropool.VerificationKeySet.
type ZeropoolVerificationKeySetEvent struct {
	eventAccessor
}

func NewZeropoolVerificationKeySetEvent(ctx support.EventContext) (*ZeropoolVerificationKeySetEvent, error) {
	a, err := newEventAccessor(ctx, "Zeropool.VerificationKeySet")
	if err != nil {
		return nil, err
	}
	return &ZeropoolVerificationKeySetEvent{a}, nil
}

func (e *ZeropoolVerificationKeySetEvent) IsV1() bool {
	return e.is(1)
}

func (e *ZeropoolVerificationKeySetEvent) AsV1() (support.Bytes, error) {
	return asEvent[support.Bytes](e.eventAccessor, 1)
}

// ZeropoolVerificationKeyUpdatedEvent is the event
// Zeropool.VerificationKeyUpdated.
type ZeropoolVerificationKeyUpdatedEvent struct {
	eventAccessor
}

func NewZeropoolVerificationKeyUpdatedEvent(ctx support.EventContext) (*ZeropoolVerificationKeyUpdatedEvent, error) {
	a, err := newEventAccessor(ctx, "Zeropool.VerificationKeyUpdated")
	if err != nil {
		return nil, err
	}
	return &ZeropoolVerificationKeyUpdatedEvent{a}, nil
}

func (e *ZeropoolVerificationKeyUpdatedEvent) IsV1() bool {
	return e.is(1)
}

func (e *ZeropoolVerificationKeyUpdatedEvent) AsV1() (support.Bytes, error) {
	return asEvent[support.Bytes](e.eventAccessor, 1)
}

// ZeropoolVerificationSuccessfulEvent is the event
// Zeropool.VerificationSuccessful.
type ZeropoolVerificationSuccessfulEvent struct {
	eventAccessor
}

func NewZeropoolVerificationSuccessfulEvent(ctx support.EventContext) (*ZeropoolVerificationSuccessfulEvent, error) {
	a, err := newEventAccessor(ctx, "Zeropool.VerificationSuccessful")
	if err != nil {
		return nil, err
	}
	return &ZeropoolVerificationSuccessfulEvent{a}, nil
}

func (e *ZeropoolVerificationSuccessfulEvent) IsV1() bool {
	return e.is(1)
}

func (e *ZeropoolVerificationSuccessfulEvent) AsV1() (support.Bytes, error) {
	return asEvent[support.Bytes](e.eventAccessor, 1)
}
