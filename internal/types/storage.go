package types

import (
	"context"

	"go-zeropool-dictionary/internal/types/support"
	v1 "go-zeropool-dictionary/internal/types/v1"
)

// BalancesAccountStorage is the storage item Balances.Account. The balance of
// an account.
type BalancesAccountStorage struct {
	storageAccessor
}

func NewBalancesAccountStorage(ctx support.BlockContext) *BalancesAccountStorage {
	return &BalancesAccountStorage{newStorageAccessor(ctx, "Balances", "Account")}
}

func (s *BalancesAccountStorage) IsV1() bool {
	return s.is(1)
}

func (s *BalancesAccountStorage) GetAsV1(ctx context.Context, key support.Bytes) (v1.AccountData, error) {
	return getStorage[v1.AccountData](ctx, s.storageAccessor, 1, key)
}

func (s *BalancesAccountStorage) GetManyAsV1(ctx context.Context, keys []support.Bytes) ([]v1.AccountData, error) {
	return getManyStorage[v1.AccountData](ctx, s.storageAccessor, 1, keys)
}

func (s *BalancesAccountStorage) IsExists() bool {
	return s.exists()
}

// BalancesLocksStorage is the storage item Balances.Locks. Any liquidity locks
// on some account balances.
type BalancesLocksStorage struct {
	storageAccessor
}

func NewBalancesLocksStorage(ctx support.BlockContext) *BalancesLocksStorage {
	return &BalancesLocksStorage{newStorageAccessor(ctx, "Balances", "Locks")}
}

func (s *BalancesLocksStorage) IsV1() bool {
	return s.is(1)
}

func (s *BalancesLocksStorage) GetAsV1(ctx context.Context, key support.Bytes) ([]v1.BalanceLock, error) {
	return getStorage[[]v1.BalanceLock](ctx, s.storageAccessor, 1, key)
}

func (s *BalancesLocksStorage) GetManyAsV1(ctx context.Context, keys []support.Bytes) ([][]v1.BalanceLock, error) {
	return getManyStorage[[]v1.BalanceLock](ctx, s.storageAccessor, 1, keys)
}

func (s *BalancesLocksStorage) IsExists() bool {
	return s.exists()
}

// BalancesStorageVersionStorage is the storage item Balances.StorageVersion.
// Storage version of the pallet.
type BalancesStorageVersionStorage struct {
	storageAccessor
}

func NewBalancesStorageVersionStorage(ctx support.BlockContext) *BalancesStorageVersionStorage {
	return &BalancesStorageVersionStorage{newStorageAccessor(ctx, "Balances", "StorageVersion")}
}

func (s *BalancesStorageVersionStorage) IsV1() bool {
	return s.is(1)
}

func (s *BalancesStorageVersionStorage) GetAsV1(ctx context.Context) (v1.Releases, error) {
	return getStorage[v1.Releases](ctx, s.storageAccessor, 1)
}

func (s *BalancesStorageVersionStorage) IsExists() bool {
	return s.exists()
}

// BalancesTotalIssuanceStorage is the storage item Balances.TotalIssuance. The
// total units issued in the system.
type BalancesTotalIssuanceStorage struct {
	storageAccessor
}

func NewBalancesTotalIssuanceStorage(ctx support.BlockContext) *BalancesTotalIssuanceStorage {
	return &BalancesTotalIssuanceStorage{newStorageAccessor(ctx, "Balances", "TotalIssuance")}
}

func (s *BalancesTotalIssuanceStorage) IsV1() bool {
	return s.is(1)
}

func (s *BalancesTotalIssuanceStorage) GetAsV1(ctx context.Context) (support.U128, error) {
	return getStorage[support.U128](ctx, s.storageAccessor, 1)
}

func (s *BalancesTotalIssuanceStorage) IsExists() bool {
	return s.exists()
}

// GrandpaFinalityCurrentSetIdStorage is the storage item
// GrandpaFinality.CurrentSetId. The number of changes (both in terms of keys
// and underlying economic responsibilities) in the "set" of Grandpa validators
// from genesis.
type GrandpaFinalityCurrentSetIdStorage struct {
	storageAccessor
}

func NewGrandpaFinalityCurrentSetIdStorage(ctx support.BlockContext) *GrandpaFinalityCurrentSetIdStorage {
	return &GrandpaFinalityCurrentSetIdStorage{newStorageAccessor(ctx, "GrandpaFinality", "CurrentSetId")}
}

func (s *GrandpaFinalityCurrentSetIdStorage) IsV1() bool {
	return s.is(1)
}

func (s *GrandpaFinalityCurrentSetIdStorage) GetAsV1(ctx context.Context) (uint64, error) {
	return getStorage[uint64](ctx, s.storageAccessor, 1)
}

func (s *GrandpaFinalityCurrentSetIdStorage) IsExists() bool {
	return s.exists()
}

// GrandpaFinalityNextForcedStorage is the storage item
// GrandpaFinality.NextForced. next block number where we can force a change.
type GrandpaFinalityNextForcedStorage struct {
	storageAccessor
}

func NewGrandpaFinalityNextForcedStorage(ctx support.BlockContext) *GrandpaFinalityNextForcedStorage {
	return &GrandpaFinalityNextForcedStorage{newStorageAccessor(ctx, "GrandpaFinality", "NextForced")}
}

func (s *GrandpaFinalityNextForcedStorage) IsV1() bool {
	return s.is(1)
}

func (s *GrandpaFinalityNextForcedStorage) GetAsV1(ctx context.Context) (*uint32, error) {
	return getStorage[*uint32](ctx, s.storageAccessor, 1)
}

func (s *GrandpaFinalityNextForcedStorage) IsExists() bool {
	return s.exists()
}

// GrandpaFinalityPendingChangeStorage is the storage item
// GrandpaFinality.PendingChange. Pending change: (signaled at, scheduled
// change).
type GrandpaFinalityPendingChangeStorage struct {
	storageAccessor
}

func NewGrandpaFinalityPendingChangeStorage(ctx support.BlockContext) *GrandpaFinalityPendingChangeStorage {
	return &GrandpaFinalityPendingChangeStorage{newStorageAccessor(ctx, "GrandpaFinality", "PendingChange")}
}

func (s *GrandpaFinalityPendingChangeStorage) IsV1() bool {
	return s.is(1)
}

func (s *GrandpaFinalityPendingChangeStorage) GetAsV1(ctx context.Context) (*v1.StoredPendingChange, error) {
	return getStorage[*v1.StoredPendingChange](ctx, s.storageAccessor, 1)
}

func (s *GrandpaFinalityPendingChangeStorage) IsExists() bool {
	return s.exists()
}

// GrandpaFinalitySetIdSessionStorage is the storage item
// GrandpaFinality.SetIdSession. A mapping from grandpa set ID to the index of
// the *most recent* session for which its members were responsible.
type GrandpaFinalitySetIdSessionStorage struct {
	storageAccessor
}

func NewGrandpaFinalitySetIdSessionStorage(ctx support.BlockContext) *GrandpaFinalitySetIdSessionStorage {
	return &GrandpaFinalitySetIdSessionStorage{newStorageAccessor(ctx, "GrandpaFinality", "SetIdSession")}
}

func (s *GrandpaFinalitySetIdSessionStorage) IsV1() bool {
	return s.is(1)
}

func (s *GrandpaFinalitySetIdSessionStorage) GetAsV1(ctx context.Context, key uint64) (*uint32, error) {
	return getStorage[*uint32](ctx, s.storageAccessor, 1, key)
}

func (s *GrandpaFinalitySetIdSessionStorage) GetManyAsV1(ctx context.Context, keys []uint64) ([]*uint32, error) {
	return getManyStorage[*uint32](ctx, s.storageAccessor, 1, keys)
}

func (s *GrandpaFinalitySetIdSessionStorage) IsExists() bool {
	return s.exists()
}

// GrandpaFinalityStalledStorage is the storage item GrandpaFinality.Stalled.
// true if we are currently stalled.
type GrandpaFinalityStalledStorage struct {
	storageAccessor
}

func NewGrandpaFinalityStalledStorage(ctx support.BlockContext) *GrandpaFinalityStalledStorage {
	return &GrandpaFinalityStalledStorage{newStorageAccessor(ctx, "GrandpaFinality", "Stalled")}
}

func (s *GrandpaFinalityStalledStorage) IsV1() bool {
	return s.is(1)
}

func (s *GrandpaFinalityStalledStorage) GetAsV1(ctx context.Context) (*[2]uint32, error) {
	return getStorage[*[2]uint32](ctx, s.storageAccessor, 1)
}

func (s *GrandpaFinalityStalledStorage) IsExists() bool {
	return s.exists()
}

// GrandpaFinalityStateStorage is the storage item GrandpaFinality.State. State
// of the current authority set.
type GrandpaFinalityStateStorage struct {
	storageAccessor
}

func NewGrandpaFinalityStateStorage(ctx support.BlockContext) *GrandpaFinalityStateStorage {
	return &GrandpaFinalityStateStorage{newStorageAccessor(ctx, "GrandpaFinality", "State")}
}

func (s *GrandpaFinalityStateStorage) IsV1() bool {
	return s.is(1)
}

func (s *GrandpaFinalityStateStorage) GetAsV1(ctx context.Context) (v1.StoredState, error) {
	return getStorage[v1.StoredState](ctx, s.storageAccessor, 1)
}

func (s *GrandpaFinalityStateStorage) IsExists() bool {
	return s.exists()
}

// RandomnessCollectiveFlipRandomMaterialStorage is the storage item
// RandomnessCollectiveFlip.RandomMaterial. Series of block headers from the
// last 81 blocks that acts as random seed material.
type RandomnessCollectiveFlipRandomMaterialStorage struct {
	storageAccessor
}

func NewRandomnessCollectiveFlipRandomMaterialStorage(ctx support.BlockContext) *RandomnessCollectiveFlipRandomMaterialStorage {
	return &RandomnessCollectiveFlipRandomMaterialStorage{newStorageAccessor(ctx, "RandomnessCollectiveFlip", "RandomMaterial")}
}

func (s *RandomnessCollectiveFlipRandomMaterialStorage) IsV1() bool {
	return s.is(1)
}

func (s *RandomnessCollectiveFlipRandomMaterialStorage) GetAsV1(ctx context.Context) ([]support.Bytes, error) {
	return getStorage[[]support.Bytes](ctx, s.storageAccessor, 1)
}

func (s *RandomnessCollectiveFlipRandomMaterialStorage) IsExists() bool {
	return s.exists()
}

// SudoKeyStorage is the storage item Sudo.Key. The AccountId of the sudo key.
type SudoKeyStorage struct {
	storageAccessor
}

func NewSudoKeyStorage(ctx support.BlockContext) *SudoKeyStorage {
	return &SudoKeyStorage{newStorageAccessor(ctx, "Sudo", "Key")}
}

func (s *SudoKeyStorage) IsV1() bool {
	return s.is(1)
}

func (s *SudoKeyStorage) GetAsV1(ctx context.Context) (support.Bytes, error) {
	return getStorage[support.Bytes](ctx, s.storageAccessor, 1)
}

func (s *SudoKeyStorage) IsExists() bool {
	return s.exists()
}

// SystemAccountStorage is the storage item System.Account. The full account
// information for a particular account ID.
type SystemAccountStorage struct {
	storageAccessor
}

func NewSystemAccountStorage(ctx support.BlockContext) *SystemAccountStorage {
	return &SystemAccountStorage{newStorageAccessor(ctx, "System", "Account")}
}

func (s *SystemAccountStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemAccountStorage) GetAsV1(ctx context.Context, key support.Bytes) (v1.AccountInfo, error) {
	return getStorage[v1.AccountInfo](ctx, s.storageAccessor, 1, key)
}

func (s *SystemAccountStorage) GetManyAsV1(ctx context.Context, keys []support.Bytes) ([]v1.AccountInfo, error) {
	return getManyStorage[v1.AccountInfo](ctx, s.storageAccessor, 1, keys)
}

func (s *SystemAccountStorage) IsExists() bool {
	return s.exists()
}

// SystemAllExtrinsicsLenStorage is the storage item System.AllExtrinsicsLen.
// Total length (in bytes) for all extrinsics put together, for the current
// block.
type SystemAllExtrinsicsLenStorage struct {
	storageAccessor
}

func NewSystemAllExtrinsicsLenStorage(ctx support.BlockContext) *SystemAllExtrinsicsLenStorage {
	return &SystemAllExtrinsicsLenStorage{newStorageAccessor(ctx, "System", "AllExtrinsicsLen")}
}

func (s *SystemAllExtrinsicsLenStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemAllExtrinsicsLenStorage) GetAsV1(ctx context.Context) (*uint32, error) {
	return getStorage[*uint32](ctx, s.storageAccessor, 1)
}

func (s *SystemAllExtrinsicsLenStorage) IsExists() bool {
	return s.exists()
}

// SystemBlockHashStorage is the storage item System.BlockHash. Map of block
// numbers to block hashes.
type SystemBlockHashStorage struct {
	storageAccessor
}

func NewSystemBlockHashStorage(ctx support.BlockContext) *SystemBlockHashStorage {
	return &SystemBlockHashStorage{newStorageAccessor(ctx, "System", "BlockHash")}
}

func (s *SystemBlockHashStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemBlockHashStorage) GetAsV1(ctx context.Context, key uint32) (support.Bytes, error) {
	return getStorage[support.Bytes](ctx, s.storageAccessor, 1, key)
}

func (s *SystemBlockHashStorage) GetManyAsV1(ctx context.Context, keys []uint32) ([]support.Bytes, error) {
	return getManyStorage[support.Bytes](ctx, s.storageAccessor, 1, keys)
}

func (s *SystemBlockHashStorage) IsExists() bool {
	return s.exists()
}

// SystemBlockWeightStorage is the storage item System.BlockWeight. The current
// weight for the block.
type SystemBlockWeightStorage struct {
	storageAccessor
}

func NewSystemBlockWeightStorage(ctx support.BlockContext) *SystemBlockWeightStorage {
	return &SystemBlockWeightStorage{newStorageAccessor(ctx, "System", "BlockWeight")}
}

func (s *SystemBlockWeightStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemBlockWeightStorage) GetAsV1(ctx context.Context) (v1.ExtrinsicsWeight, error) {
	return getStorage[v1.ExtrinsicsWeight](ctx, s.storageAccessor, 1)
}

func (s *SystemBlockWeightStorage) IsExists() bool {
	return s.exists()
}

// SystemDigestStorage is the storage item System.Digest. Digest of the current
// block, also part of the block header.
type SystemDigestStorage struct {
	storageAccessor
}

func NewSystemDigestStorage(ctx support.BlockContext) *SystemDigestStorage {
	return &SystemDigestStorage{newStorageAccessor(ctx, "System", "Digest")}
}

func (s *SystemDigestStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemDigestStorage) GetAsV1(ctx context.Context) (v1.DigestOf, error) {
	return getStorage[v1.DigestOf](ctx, s.storageAccessor, 1)
}

func (s *SystemDigestStorage) IsExists() bool {
	return s.exists()
}

// SystemEventCountStorage is the storage item System.EventCount. The number of
// events in the Events<T> list.
type SystemEventCountStorage struct {
	storageAccessor
}

func NewSystemEventCountStorage(ctx support.BlockContext) *SystemEventCountStorage {
	return &SystemEventCountStorage{newStorageAccessor(ctx, "System", "EventCount")}
}

func (s *SystemEventCountStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemEventCountStorage) GetAsV1(ctx context.Context) (uint32, error) {
	return getStorage[uint32](ctx, s.storageAccessor, 1)
}

func (s *SystemEventCountStorage) IsExists() bool {
	return s.exists()
}

// SystemEventTopicsStorage is the storage item System.EventTopics. Mapping
// between a topic (represented by T::Hash) and a vector of indexes of events
// in the <Events<T>> list.
type SystemEventTopicsStorage struct {
	storageAccessor
}

func NewSystemEventTopicsStorage(ctx support.BlockContext) *SystemEventTopicsStorage {
	return &SystemEventTopicsStorage{newStorageAccessor(ctx, "System", "EventTopics")}
}

func (s *SystemEventTopicsStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemEventTopicsStorage) GetAsV1(ctx context.Context, key support.Bytes) ([][2]uint32, error) {
	return getStorage[[][2]uint32](ctx, s.storageAccessor, 1, key)
}

func (s *SystemEventTopicsStorage) GetManyAsV1(ctx context.Context, keys []support.Bytes) ([][][2]uint32, error) {
	return getManyStorage[[][2]uint32](ctx, s.storageAccessor, 1, keys)
}

func (s *SystemEventTopicsStorage) IsExists() bool {
	return s.exists()
}

// SystemEventsStorage is the storage item System.Events. Events deposited for
// the current block.
type SystemEventsStorage struct {
	storageAccessor
}

func NewSystemEventsStorage(ctx support.BlockContext) *SystemEventsStorage {
	return &SystemEventsStorage{newStorageAccessor(ctx, "System", "Events")}
}

func (s *SystemEventsStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemEventsStorage) GetAsV1(ctx context.Context) ([]v1.EventRecord, error) {
	return getStorage[[]v1.EventRecord](ctx, s.storageAccessor, 1)
}

func (s *SystemEventsStorage) IsExists() bool {
	return s.exists()
}

// SystemExecutionPhaseStorage is the storage item System.ExecutionPhase. The
// execution phase of the block.
type SystemExecutionPhaseStorage struct {
	storageAccessor
}

func NewSystemExecutionPhaseStorage(ctx support.BlockContext) *SystemExecutionPhaseStorage {
	return &SystemExecutionPhaseStorage{newStorageAccessor(ctx, "System", "ExecutionPhase")}
}

func (s *SystemExecutionPhaseStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemExecutionPhaseStorage) GetAsV1(ctx context.Context) (*v1.Phase, error) {
	return getStorage[*v1.Phase](ctx, s.storageAccessor, 1)
}

func (s *SystemExecutionPhaseStorage) IsExists() bool {
	return s.exists()
}

// SystemExtrinsicCountStorage is the storage item System.ExtrinsicCount. Total
// extrinsics count for the current block.
type SystemExtrinsicCountStorage struct {
	storageAccessor
}

func NewSystemExtrinsicCountStorage(ctx support.BlockContext) *SystemExtrinsicCountStorage {
	return &SystemExtrinsicCountStorage{newStorageAccessor(ctx, "System", "ExtrinsicCount")}
}

func (s *SystemExtrinsicCountStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemExtrinsicCountStorage) GetAsV1(ctx context.Context) (*uint32, error) {
	return getStorage[*uint32](ctx, s.storageAccessor, 1)
}

func (s *SystemExtrinsicCountStorage) IsExists() bool {
	return s.exists()
}

// SystemExtrinsicDataStorage is the storage item System.ExtrinsicData.
// Extrinsics data for the current block (maps an extrinsic's index to its
// data).
type SystemExtrinsicDataStorage struct {
	storageAccessor
}

func NewSystemExtrinsicDataStorage(ctx support.BlockContext) *SystemExtrinsicDataStorage {
	return &SystemExtrinsicDataStorage{newStorageAccessor(ctx, "System", "ExtrinsicData")}
}

func (s *SystemExtrinsicDataStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemExtrinsicDataStorage) GetAsV1(ctx context.Context, key uint32) (support.Bytes, error) {
	return getStorage[support.Bytes](ctx, s.storageAccessor, 1, key)
}

func (s *SystemExtrinsicDataStorage) GetManyAsV1(ctx context.Context, keys []uint32) ([]support.Bytes, error) {
	return getManyStorage[support.Bytes](ctx, s.storageAccessor, 1, keys)
}

func (s *SystemExtrinsicDataStorage) IsExists() bool {
	return s.exists()
}

// SystemExtrinsicsRootStorage is the storage item System.ExtrinsicsRoot.
// Extrinsics root of the current block, also part of the block header.
type SystemExtrinsicsRootStorage struct {
	storageAccessor
}

func NewSystemExtrinsicsRootStorage(ctx support.BlockContext) *SystemExtrinsicsRootStorage {
	return &SystemExtrinsicsRootStorage{newStorageAccessor(ctx, "System", "ExtrinsicsRoot")}
}

func (s *SystemExtrinsicsRootStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemExtrinsicsRootStorage) GetAsV1(ctx context.Context) (support.Bytes, error) {
	return getStorage[support.Bytes](ctx, s.storageAccessor, 1)
}

func (s *SystemExtrinsicsRootStorage) IsExists() bool {
	return s.exists()
}

// SystemLastRuntimeUpgradeStorage is the storage item
// System.LastRuntimeUpgrade. Stores the spec_version and spec_name of when the
// last runtime upgrade happened.
type SystemLastRuntimeUpgradeStorage struct {
	storageAccessor
}

func NewSystemLastRuntimeUpgradeStorage(ctx support.BlockContext) *SystemLastRuntimeUpgradeStorage {
	return &SystemLastRuntimeUpgradeStorage{newStorageAccessor(ctx, "System", "LastRuntimeUpgrade")}
}

func (s *SystemLastRuntimeUpgradeStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemLastRuntimeUpgradeStorage) GetAsV1(ctx context.Context) (*v1.LastRuntimeUpgradeInfo, error) {
	return getStorage[*v1.LastRuntimeUpgradeInfo](ctx, s.storageAccessor, 1)
}

func (s *SystemLastRuntimeUpgradeStorage) IsExists() bool {
	return s.exists()
}

// SystemNumberStorage is the storage item System.Number. The current block
// number being processed.
type SystemNumberStorage struct {
	storageAccessor
}

func NewSystemNumberStorage(ctx support.BlockContext) *SystemNumberStorage {
	return &SystemNumberStorage{newStorageAccessor(ctx, "System", "Number")}
}

func (s *SystemNumberStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemNumberStorage) GetAsV1(ctx context.Context) (uint32, error) {
	return getStorage[uint32](ctx, s.storageAccessor, 1)
}

func (s *SystemNumberStorage) IsExists() bool {
	return s.exists()
}

// SystemParentHashStorage is the storage item System.ParentHash. Hash of the
// previous block.
type SystemParentHashStorage struct {
	storageAccessor
}

func NewSystemParentHashStorage(ctx support.BlockContext) *SystemParentHashStorage {
	return &SystemParentHashStorage{newStorageAccessor(ctx, "System", "ParentHash")}
}

func (s *SystemParentHashStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemParentHashStorage) GetAsV1(ctx context.Context) (support.Bytes, error) {
	return getStorage[support.Bytes](ctx, s.storageAccessor, 1)
}

func (s *SystemParentHashStorage) IsExists() bool {
	return s.exists()
}

// SystemUpgradedToU32RefCountStorage is the storage item
// System.UpgradedToU32RefCount. True if we have upgraded so that type RefCount
// is u32.
type SystemUpgradedToU32RefCountStorage struct {
	storageAccessor
}

func NewSystemUpgradedToU32RefCountStorage(ctx support.BlockContext) *SystemUpgradedToU32RefCountStorage {
	return &SystemUpgradedToU32RefCountStorage{newStorageAccessor(ctx, "System", "UpgradedToU32RefCount")}
}

func (s *SystemUpgradedToU32RefCountStorage) IsV1() bool {
	return s.is(1)
}

func (s *SystemUpgradedToU32RefCountStorage) GetAsV1(ctx context.Context) (bool, error) {
	return getStorage[bool](ctx, s.storageAccessor, 1)
}

func (s *SystemUpgradedToU32RefCountStorage) IsExists() bool {
	return s.exists()
}

// TimestampDidUpdateStorage is the storage item Timestamp.DidUpdate. Did the
// timestamp get updated in this block?
type TimestampDidUpdateStorage struct {
	storageAccessor
}

func NewTimestampDidUpdateStorage(ctx support.BlockContext) *TimestampDidUpdateStorage {
	return &TimestampDidUpdateStorage{newStorageAccessor(ctx, "Timestamp", "DidUpdate")}
}

func (s *TimestampDidUpdateStorage) IsV1() bool {
	return s.is(1)
}

func (s *TimestampDidUpdateStorage) GetAsV1(ctx context.Context) (bool, error) {
	return getStorage[bool](ctx, s.storageAccessor, 1)
}

func (s *TimestampDidUpdateStorage) IsExists() bool {
	return s.exists()
}

// TimestampNowStorage is the storage item Timestamp.Now. Current time for the
// current block.
type TimestampNowStorage struct {
	storageAccessor
}

func NewTimestampNowStorage(ctx support.BlockContext) *TimestampNowStorage {
	return &TimestampNowStorage{newStorageAccessor(ctx, "Timestamp", "Now")}
}

func (s *TimestampNowStorage) IsV1() bool {
	return s.is(1)
}

func (s *TimestampNowStorage) GetAsV1(ctx context.Context) (uint64, error) {
	return getStorage[uint64](ctx, s.storageAccessor, 1)
}

func (s *TimestampNowStorage) IsExists() bool {
	return s.exists()
}

// TransactionPaymentNextFeeMultiplierStorage is the storage item
// TransactionPayment.NextFeeMultiplier.
type TransactionPaymentNextFeeMultiplierStorage struct {
	storageAccessor
}

func NewTransactionPaymentNextFeeMultiplierStorage(ctx support.BlockContext) *TransactionPaymentNextFeeMultiplierStorage {
	return &TransactionPaymentNextFeeMultiplierStorage{newStorageAccessor(ctx, "TransactionPayment", "NextFeeMultiplier")}
}

func (s *TransactionPaymentNextFeeMultiplierStorage) IsV1() bool {
	return s.is(1)
}

func (s *TransactionPaymentNextFeeMultiplierStorage) GetAsV1(ctx context.Context) (support.U128, error) {
	return getStorage[support.U128](ctx, s.storageAccessor, 1)
}

func (s *TransactionPaymentNextFeeMultiplierStorage) IsExists() bool {
	return s.exists()
}

// TransactionPaymentStorageVersionStorage is the storage item
// TransactionPayment.StorageVersion.
type TransactionPaymentStorageVersionStorage struct {
	storageAccessor
}

func NewTransactionPaymentStorageVersionStorage(ctx support.BlockContext) *TransactionPaymentStorageVersionStorage {
	return &TransactionPaymentStorageVersionStorage{newStorageAccessor(ctx, "TransactionPayment", "StorageVersion")}
}

func (s *TransactionPaymentStorageVersionStorage) IsV1() bool {
	return s.is(1)
}

func (s *TransactionPaymentStorageVersionStorage) GetAsV1(ctx context.Context) (v1.Releases, error) {
	return getStorage[v1.Releases](ctx, s.storageAccessor, 1)
}

func (s *TransactionPaymentStorageVersionStorage) IsExists() bool {
	return s.exists()
}

// ZeropoolVerificationKeyStorage is the storage item Zeropool.VerificationKey.
// The lookup table for verificationkey.
type ZeropoolVerificationKeyStorage struct {
	storageAccessor
}

func NewZeropoolVerificationKeyStorage(ctx support.BlockContext) *ZeropoolVerificationKeyStorage {
	return &ZeropoolVerificationKeyStorage{newStorageAccessor(ctx, "Zeropool", "VerificationKey")}
}

func (s *ZeropoolVerificationKeyStorage) IsV1() bool {
	return s.is(1)
}

func (s *ZeropoolVerificationKeyStorage) GetAsV1(ctx context.Context, key support.Bytes) (*v1.VerificationKey, error) {
	return getStorage[*v1.VerificationKey](ctx, s.storageAccessor, 1, key)
}

func (s *ZeropoolVerificationKeyStorage) GetManyAsV1(ctx context.Context, keys []support.Bytes) ([]*v1.VerificationKey, error) {
	return getManyStorage[*v1.VerificationKey](ctx, s.storageAccessor, 1, keys)
}

func (s *ZeropoolVerificationKeyStorage) IsExists() bool {
	return s.exists()
}
