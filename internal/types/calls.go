package types

import (
	"go-zeropool-dictionary/internal/types/support"
	v1 "go-zeropool-dictionary/internal/types/v1"
)

// BalancesForceTransferCall is the call Balances.force_transfer. Exactly as
// transfer, except the origin must be root and the source account may be
// specified.
type BalancesForceTransferCall struct {
	callAccessor
}

func NewBalancesForceTransferCall(ctx support.CallContext) (*BalancesForceTransferCall, error) {
	a, err := newCallAccessor(ctx, "Balances.force_transfer")
	if err != nil {
		return nil, err
	}
	return &BalancesForceTransferCall{a}, nil
}

func (c *BalancesForceTransferCall) IsV1() bool {
	return c.is(1)
}

func (c *BalancesForceTransferCall) AsV1() (v1.BalancesForceTransferCall, error) {
	return asCall[v1.BalancesForceTransferCall](c.callAccessor, 1)
}

// BalancesSetBalanceCall is the call Balances.set_balance. Set the balances of
// a given account.
type BalancesSetBalanceCall struct {
	callAccessor
}

func NewBalancesSetBalanceCall(ctx support.CallContext) (*BalancesSetBalanceCall, error) {
	a, err := newCallAccessor(ctx, "Balances.set_balance")
	if err != nil {
		return nil, err
	}
	return &BalancesSetBalanceCall{a}, nil
}

func (c *BalancesSetBalanceCall) IsV1() bool {
	return c.is(1)
}

func (c *BalancesSetBalanceCall) AsV1() (v1.BalancesSetBalanceCall, error) {
	return asCall[v1.BalancesSetBalanceCall](c.callAccessor, 1)
}

// BalancesTransferCall is the call Balances.transfer. Transfer some liquid
// free balance to another account.
type BalancesTransferCall struct {
	callAccessor
}

func NewBalancesTransferCall(ctx support.CallContext) (*BalancesTransferCall, error) {
	a, err := newCallAccessor(ctx, "Balances.transfer")
	if err != nil {
		return nil, err
	}
	return &BalancesTransferCall{a}, nil
}

func (c *BalancesTransferCall) IsV1() bool {
	return c.is(1)
}

func (c *BalancesTransferCall) AsV1() (v1.BalancesTransferCall, error) {
	return asCall[v1.BalancesTransferCall](c.callAccessor, 1)
}

// BalancesTransferKeepAliveCall is the call Balances.transfer_keep_alive. Same
// as the [transfer] call, but with a check that the transfer will not kill the
// origin account.
type BalancesTransferKeepAliveCall struct {
	callAccessor
}

func NewBalancesTransferKeepAliveCall(ctx support.CallContext) (*BalancesTransferKeepAliveCall, error) {
	a, err := newCallAccessor(ctx, "Balances.transfer_keep_alive")
	if err != nil {
		return nil, err
	}
	return &BalancesTransferKeepAliveCall{a}, nil
}

func (c *BalancesTransferKeepAliveCall) IsV1() bool {
	return c.is(1)
}

func (c *BalancesTransferKeepAliveCall) AsV1() (v1.BalancesTransferKeepAliveCall, error) {
	return asCall[v1.BalancesTransferKeepAliveCall](c.callAccessor, 1)
}

// GrandpaNoteStalledCall is the call Grandpa.note_stalled. Note that the
// current authority set of the GRANDPA finality gadget has stalled.
type GrandpaNoteStalledCall struct {
	callAccessor
}

func NewGrandpaNoteStalledCall(ctx support.CallContext) (*GrandpaNoteStalledCall, error) {
	a, err := newCallAccessor(ctx, "Grandpa.note_stalled")
	if err != nil {
		return nil, err
	}
	return &GrandpaNoteStalledCall{a}, nil
}

func (c *GrandpaNoteStalledCall) IsV1() bool {
	return c.is(1)
}

func (c *GrandpaNoteStalledCall) AsV1() (v1.GrandpaNoteStalledCall, error) {
	return asCall[v1.GrandpaNoteStalledCall](c.callAccessor, 1)
}

// GrandpaReportEquivocationCall is the call Grandpa.report_equivocation.
// Report voter equivocation/misbehavior.
type GrandpaReportEquivocationCall struct {
	callAccessor
}

func NewGrandpaReportEquivocationCall(ctx support.CallContext) (*GrandpaReportEquivocationCall, error) {
	a, err := newCallAccessor(ctx, "Grandpa.report_equivocation")
	if err != nil {
		return nil, err
	}
	return &GrandpaReportEquivocationCall{a}, nil
}

func (c *GrandpaReportEquivocationCall) IsV1() bool {
	return c.is(1)
}

func (c *GrandpaReportEquivocationCall) AsV1() (v1.GrandpaReportEquivocationCall, error) {
	return asCall[v1.GrandpaReportEquivocationCall](c.callAccessor, 1)
}

// GrandpaReportEquivocationUnsignedCall is the call
// Grandpa.report_equivocation_unsigned. Report voter equivocation/misbehavior.
type GrandpaReportEquivocationUnsignedCall struct {
	callAccessor
}

func NewGrandpaReportEquivocationUnsignedCall(ctx support.CallContext) (*GrandpaReportEquivocationUnsignedCall, error) {
	a, err := newCallAccessor(ctx, "Grandpa.report_equivocation_unsigned")
	if err != nil {
		return nil, err
	}
	return &GrandpaReportEquivocationUnsignedCall{a}, nil
}

func (c *GrandpaReportEquivocationUnsignedCall) IsV1() bool {
	return c.is(1)
}

func (c *GrandpaReportEquivocationUnsignedCall) AsV1() (v1.GrandpaReportEquivocationUnsignedCall, error) {
	return asCall[v1.GrandpaReportEquivocationUnsignedCall](c.callAccessor, 1)
}

// SudoSetKeyCall is the call Sudo.set_key. Authenticates the current sudo key
// and sets the given AccountId (new) as the new sudo key.
type SudoSetKeyCall struct {
	callAccessor
}

func NewSudoSetKeyCall(ctx support.CallContext) (*SudoSetKeyCall, error) {
	a, err := newCallAccessor(ctx, "Sudo.set_key")
	if err != nil {
		return nil, err
	}
	return &SudoSetKeyCall{a}, nil
}

func (c *SudoSetKeyCall) IsV1() bool {
	return c.is(1)
}

func (c *SudoSetKeyCall) AsV1() (v1.SudoSetKeyCall, error) {
	return asCall[v1.SudoSetKeyCall](c.callAccessor, 1)
}

// SudoSudoCall is the call Sudo.sudo. Authenticates the sudo key and
// dispatches a function call with Root origin.
type SudoSudoCall struct {
	callAccessor
}

func NewSudoSudoCall(ctx support.CallContext) (*SudoSudoCall, error) {
	a, err := newCallAccessor(ctx, "Sudo.sudo")
	if err != nil {
		return nil, err
	}
	return &SudoSudoCall{a}, nil
}

func (c *SudoSudoCall) IsV1() bool {
	return c.is(1)
}

func (c *SudoSudoCall) AsV1() (v1.SudoSudoCall, error) {
	return asCall[v1.SudoSudoCall](c.callAccessor, 1)
}

// SudoSudoAsCall is the call Sudo.sudo_as. Authenticates the sudo key and
// dispatches a function call with Signed origin from a given account.
type SudoSudoAsCall struct {
	callAccessor
}

func NewSudoSudoAsCall(ctx support.CallContext) (*SudoSudoAsCall, error) {
	a, err := newCallAccessor(ctx, "Sudo.sudo_as")
	if err != nil {
		return nil, err
	}
	return &SudoSudoAsCall{a}, nil
}

func (c *SudoSudoAsCall) IsV1() bool {
	return c.is(1)
}

func (c *SudoSudoAsCall) AsV1() (v1.SudoSudoAsCall, error) {
	return asCall[v1.SudoSudoAsCall](c.callAccessor, 1)
}

// SudoSudoUncheckedWeightCall is the call Sudo.sudo_unchecked_weight.
// Authenticates the sudo key and dispatches a function call with Root origin.
type SudoSudoUncheckedWeightCall struct {
	callAccessor
}

func NewSudoSudoUncheckedWeightCall(ctx support.CallContext) (*SudoSudoUncheckedWeightCall, error) {
	a, err := newCallAccessor(ctx, "Sudo.sudo_unchecked_weight")
	if err != nil {
		return nil, err
	}
	return &SudoSudoUncheckedWeightCall{a}, nil
}

func (c *SudoSudoUncheckedWeightCall) IsV1() bool {
	return c.is(1)
}

func (c *SudoSudoUncheckedWeightCall) AsV1() (v1.SudoSudoUncheckedWeightCall, error) {
	return asCall[v1.SudoSudoUncheckedWeightCall](c.callAccessor, 1)
}

// SystemFillBlockCall is the call System.fill_block. A dispatch that will fill
// the block weight up to the given ratio.
type SystemFillBlockCall struct {
	callAccessor
}

func NewSystemFillBlockCall(ctx support.CallContext) (*SystemFillBlockCall, error) {
	a, err := newCallAccessor(ctx, "System.fill_block")
	if err != nil {
		return nil, err
	}
	return &SystemFillBlockCall{a}, nil
}

func (c *SystemFillBlockCall) IsV1() bool {
	return c.is(1)
}

func (c *SystemFillBlockCall) AsV1() (v1.SystemFillBlockCall, error) {
	return asCall[v1.SystemFillBlockCall](c.callAccessor, 1)
}

// SystemKillPrefixCall is the call System.kill_prefix. Kill all storage items
// with a key that starts with the given prefix.
type SystemKillPrefixCall struct {
	callAccessor
}

func NewSystemKillPrefixCall(ctx support.CallContext) (*SystemKillPrefixCall, error) {
	a, err := newCallAccessor(ctx, "System.kill_prefix")
	if err != nil {
		return nil, err
	}
	return &SystemKillPrefixCall{a}, nil
}

func (c *SystemKillPrefixCall) IsV1() bool {
	return c.is(1)
}

func (c *SystemKillPrefixCall) AsV1() (v1.SystemKillPrefixCall, error) {
	return asCall[v1.SystemKillPrefixCall](c.callAccessor, 1)
}

// SystemKillStorageCall is the call System.kill_storage. Kill some items from
// storage.
type SystemKillStorageCall struct {
	callAccessor
}

func NewSystemKillStorageCall(ctx support.CallContext) (*SystemKillStorageCall, error) {
	a, err := newCallAccessor(ctx, "System.kill_storage")
	if err != nil {
		return nil, err
	}
	return &SystemKillStorageCall{a}, nil
}

func (c *SystemKillStorageCall) IsV1() bool {
	return c.is(1)
}

func (c *SystemKillStorageCall) AsV1() (v1.SystemKillStorageCall, error) {
	return asCall[v1.SystemKillStorageCall](c.callAccessor, 1)
}

// SystemRemarkCall is the call System.remark. Make some on-chain remark.
type SystemRemarkCall struct {
	callAccessor
}

func NewSystemRemarkCall(ctx support.CallContext) (*SystemRemarkCall, error) {
	a, err := newCallAccessor(ctx, "System.remark")
	if err != nil {
		return nil, err
	}
	return &SystemRemarkCall{a}, nil
}

func (c *SystemRemarkCall) IsV1() bool {
	return c.is(1)
}

func (c *SystemRemarkCall) AsV1() (v1.SystemRemarkCall, error) {
	return asCall[v1.SystemRemarkCall](c.callAccessor, 1)
}

// SystemSetChangesTrieConfigCall is the call System.set_changes_trie_config.
// Set the new changes trie configuration.
type SystemSetChangesTrieConfigCall struct {
	callAccessor
}

func NewSystemSetChangesTrieConfigCall(ctx support.CallContext) (*SystemSetChangesTrieConfigCall, error) {
	a, err := newCallAccessor(ctx, "System.set_changes_trie_config")
	if err != nil {
		return nil, err
	}
	return &SystemSetChangesTrieConfigCall{a}, nil
}

func (c *SystemSetChangesTrieConfigCall) IsV1() bool {
	return c.is(1)
}

func (c *SystemSetChangesTrieConfigCall) AsV1() (v1.SystemSetChangesTrieConfigCall, error) {
	return asCall[v1.SystemSetChangesTrieConfigCall](c.callAccessor, 1)
}

// SystemSetCodeCall is the call System.set_code. Set the new runtime code.
type SystemSetCodeCall struct {
	callAccessor
}

func NewSystemSetCodeCall(ctx support.CallContext) (*SystemSetCodeCall, error) {
	a, err := newCallAccessor(ctx, "System.set_code")
	if err != nil {
		return nil, err
	}
	return &SystemSetCodeCall{a}, nil
}

func (c *SystemSetCodeCall) IsV1() bool {
	return c.is(1)
}

func (c *SystemSetCodeCall) AsV1() (v1.SystemSetCodeCall, error) {
	return asCall[v1.SystemSetCodeCall](c.callAccessor, 1)
}

// SystemSetCodeWithoutChecksCall is the call System.set_code_without_checks.
// Set the new runtime code without doing any checks of the given code.
type SystemSetCodeWithoutChecksCall struct {
	callAccessor
}

func NewSystemSetCodeWithoutChecksCall(ctx support.CallContext) (*SystemSetCodeWithoutChecksCall, error) {
	a, err := newCallAccessor(ctx, "System.set_code_without_checks")
	if err != nil {
		return nil, err
	}
	return &SystemSetCodeWithoutChecksCall{a}, nil
}

func (c *SystemSetCodeWithoutChecksCall) IsV1() bool {
	return c.is(1)
}

func (c *SystemSetCodeWithoutChecksCall) AsV1() (v1.SystemSetCodeWithoutChecksCall, error) {
	return asCall[v1.SystemSetCodeWithoutChecksCall](c.callAccessor, 1)
}

// SystemSetHeapPagesCall is the call System.set_heap_pages. Set the number of
// pages in the WebAssembly environment's heap.
type SystemSetHeapPagesCall struct {
	callAccessor
}

func NewSystemSetHeapPagesCall(ctx support.CallContext) (*SystemSetHeapPagesCall, error) {
	a, err := newCallAccessor(ctx, "System.set_heap_pages")
	if err != nil {
		return nil, err
	}
	return &SystemSetHeapPagesCall{a}, nil
}

func (c *SystemSetHeapPagesCall) IsV1() bool {
	return c.is(1)
}

func (c *SystemSetHeapPagesCall) AsV1() (v1.SystemSetHeapPagesCall, error) {
	return asCall[v1.SystemSetHeapPagesCall](c.callAccessor, 1)
}

// SystemSetStorageCall is the call System.set_storage. Set some items of
// storage.
type SystemSetStorageCall struct {
	callAccessor
}

func NewSystemSetStorageCall(ctx support.CallContext) (*SystemSetStorageCall, error) {
	a, err := newCallAccessor(ctx, "System.set_storage")
	if err != nil {
		return nil, err
	}
	return &SystemSetStorageCall{a}, nil
}

func (c *SystemSetStorageCall) IsV1() bool {
	return c.is(1)
}

func (c *SystemSetStorageCall) AsV1() (v1.SystemSetStorageCall, error) {
	return asCall[v1.SystemSetStorageCall](c.callAccessor, 1)
}

// SystemSuicideCall is the call System.suicide. Kill the sending account,
// assuming there are no references outstanding and the composite data is equal
// to its default value.
type SystemSuicideCall struct {
	callAccessor
}

func NewSystemSuicideCall(ctx support.CallContext) (*SystemSuicideCall, error) {
	a, err := newCallAccessor(ctx, "System.suicide")
	if err != nil {
		return nil, err
	}
	return &SystemSuicideCall{a}, nil
}

func (c *SystemSuicideCall) IsV1() bool {
	return c.is(1)
}

func (c *SystemSuicideCall) AsV1() (support.Null, error) {
	return asCall[support.Null](c.callAccessor, 1)
}

// TimestampSetCall is the call Timestamp.set. Set the current time.
type TimestampSetCall struct {
	callAccessor
}

func NewTimestampSetCall(ctx support.CallContext) (*TimestampSetCall, error) {
	a, err := newCallAccessor(ctx, "Timestamp.set")
	if err != nil {
		return nil, err
	}
	return &TimestampSetCall{a}, nil
}

func (c *TimestampSetCall) IsV1() bool {
	return c.is(1)
}

func (c *TimestampSetCall) AsV1() (v1.TimestampSetCall, error) {
	return asCall[v1.TimestampSetCall](c.callAccessor, 1)
}

// ZeropoolSetVkCall is the call Zeropool.set_vk.
type ZeropoolSetVkCall struct {
	callAccessor
}

func NewZeropoolSetVkCall(ctx support.CallContext) (*ZeropoolSetVkCall, error) {
	a, err := newCallAccessor(ctx, "Zeropool.set_vk")
	if err != nil {
		return nil, err
	}
	return &ZeropoolSetVkCall{a}, nil
}

func (c *ZeropoolSetVkCall) IsV1() bool {
	return c.is(1)
}

func (c *ZeropoolSetVkCall) AsV1() (v1.ZeropoolSetVkCall, error) {
	return asCall[v1.ZeropoolSetVkCall](c.callAccessor, 1)
}

// ZeropoolTestGroth16VerifyCall is the call Zeropool.test_groth16verify.
// Verify groth16 by json including proof and input (verification key is loaded
// from storage) data is Proof struct and inputs in LE-encoding, base64 and
// JSON (check groth16verify description)
type ZeropoolTestGroth16VerifyCall struct {
	callAccessor
}

func NewZeropoolTestGroth16VerifyCall(ctx support.CallContext) (*ZeropoolTestGroth16VerifyCall, error) {
	a, err := newCallAccessor(ctx, "Zeropool.test_groth16verify")
	if err != nil {
		return nil, err
	}
	return &ZeropoolTestGroth16VerifyCall{a}, nil
}

func (c *ZeropoolTestGroth16VerifyCall) IsV1() bool {
	return c.is(1)
}

func (c *ZeropoolTestGroth16VerifyCall) AsV1() (v1.ZeropoolTestGroth16VerifyCall, error) {
	return asCall[v1.ZeropoolTestGroth16VerifyCall](c.callAccessor, 1)
}
