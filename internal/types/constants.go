package types

import (
	"go-zeropool-dictionary/internal/types/support"
	v1 "go-zeropool-dictionary/internal/types/v1"
)

// BalancesExistentialDepositConstant is the constant
// Balances.ExistentialDeposit. The minimum amount required to keep an account
// open.
type BalancesExistentialDepositConstant struct {
	constantAccessor
}

func NewBalancesExistentialDepositConstant(ctx support.ChainContext) *BalancesExistentialDepositConstant {
	return &BalancesExistentialDepositConstant{newConstantAccessor(ctx, "Balances", "ExistentialDeposit")}
}

func (c *BalancesExistentialDepositConstant) IsV1() bool {
	return c.is(1)
}

func (c *BalancesExistentialDepositConstant) AsV1() (support.U128, error) {
	return asConstant[support.U128](c.constantAccessor, 1)
}

func (c *BalancesExistentialDepositConstant) IsExists() bool {
	return c.exists()
}

// SystemBlockExecutionWeightConstant is the constant
// System.BlockExecutionWeight. The base weight of executing a block,
// independent of the transactions in the block.
type SystemBlockExecutionWeightConstant struct {
	constantAccessor
}

func NewSystemBlockExecutionWeightConstant(ctx support.ChainContext) *SystemBlockExecutionWeightConstant {
	return &SystemBlockExecutionWeightConstant{newConstantAccessor(ctx, "System", "BlockExecutionWeight")}
}

func (c *SystemBlockExecutionWeightConstant) IsV1() bool {
	return c.is(1)
}

func (c *SystemBlockExecutionWeightConstant) AsV1() (uint64, error) {
	return asConstant[uint64](c.constantAccessor, 1)
}

func (c *SystemBlockExecutionWeightConstant) IsExists() bool {
	return c.exists()
}

// SystemBlockHashCountConstant is the constant System.BlockHashCount. The
// maximum number of blocks to allow in mortal eras.
type SystemBlockHashCountConstant struct {
	constantAccessor
}

func NewSystemBlockHashCountConstant(ctx support.ChainContext) *SystemBlockHashCountConstant {
	return &SystemBlockHashCountConstant{newConstantAccessor(ctx, "System", "BlockHashCount")}
}

func (c *SystemBlockHashCountConstant) IsV1() bool {
	return c.is(1)
}

func (c *SystemBlockHashCountConstant) AsV1() (uint32, error) {
	return asConstant[uint32](c.constantAccessor, 1)
}

func (c *SystemBlockHashCountConstant) IsExists() bool {
	return c.exists()
}

// SystemDbWeightConstant is the constant System.DbWeight. The weight of
// runtime database operations the runtime can invoke.
type SystemDbWeightConstant struct {
	constantAccessor
}

func NewSystemDbWeightConstant(ctx support.ChainContext) *SystemDbWeightConstant {
	return &SystemDbWeightConstant{newConstantAccessor(ctx, "System", "DbWeight")}
}

func (c *SystemDbWeightConstant) IsV1() bool {
	return c.is(1)
}

func (c *SystemDbWeightConstant) AsV1() (v1.RuntimeDbWeight, error) {
	return asConstant[v1.RuntimeDbWeight](c.constantAccessor, 1)
}

func (c *SystemDbWeightConstant) IsExists() bool {
	return c.exists()
}

// SystemExtrinsicBaseWeightConstant is the constant
// System.ExtrinsicBaseWeight. The base weight of an Extrinsic in the block,
// independent of the of extrinsic being executed.
type SystemExtrinsicBaseWeightConstant struct {
	constantAccessor
}

func NewSystemExtrinsicBaseWeightConstant(ctx support.ChainContext) *SystemExtrinsicBaseWeightConstant {
	return &SystemExtrinsicBaseWeightConstant{newConstantAccessor(ctx, "System", "ExtrinsicBaseWeight")}
}

func (c *SystemExtrinsicBaseWeightConstant) IsV1() bool {
	return c.is(1)
}

func (c *SystemExtrinsicBaseWeightConstant) AsV1() (uint64, error) {
	return asConstant[uint64](c.constantAccessor, 1)
}

func (c *SystemExtrinsicBaseWeightConstant) IsExists() bool {
	return c.exists()
}

// SystemMaximumBlockLengthConstant is the constant System.MaximumBlockLength.
// The maximum length of a block (in bytes).
type SystemMaximumBlockLengthConstant struct {
	constantAccessor
}

func NewSystemMaximumBlockLengthConstant(ctx support.ChainContext) *SystemMaximumBlockLengthConstant {
	return &SystemMaximumBlockLengthConstant{newConstantAccessor(ctx, "System", "MaximumBlockLength")}
}

func (c *SystemMaximumBlockLengthConstant) IsV1() bool {
	return c.is(1)
}

func (c *SystemMaximumBlockLengthConstant) AsV1() (uint32, error) {
	return asConstant[uint32](c.constantAccessor, 1)
}

func (c *SystemMaximumBlockLengthConstant) IsExists() bool {
	return c.exists()
}

// SystemMaximumBlockWeightConstant is the constant System.MaximumBlockWeight.
// The maximum weight of a block.
type SystemMaximumBlockWeightConstant struct {
	constantAccessor
}

func NewSystemMaximumBlockWeightConstant(ctx support.ChainContext) *SystemMaximumBlockWeightConstant {
	return &SystemMaximumBlockWeightConstant{newConstantAccessor(ctx, "System", "MaximumBlockWeight")}
}

func (c *SystemMaximumBlockWeightConstant) IsV1() bool {
	return c.is(1)
}

func (c *SystemMaximumBlockWeightConstant) AsV1() (uint64, error) {
	return asConstant[uint64](c.constantAccessor, 1)
}

func (c *SystemMaximumBlockWeightConstant) IsExists() bool {
	return c.exists()
}

// TimestampMinimumPeriodConstant is the constant Timestamp.MinimumPeriod. The
// minimum period between blocks.
type TimestampMinimumPeriodConstant struct {
	constantAccessor
}

func NewTimestampMinimumPeriodConstant(ctx support.ChainContext) *TimestampMinimumPeriodConstant {
	return &TimestampMinimumPeriodConstant{newConstantAccessor(ctx, "Timestamp", "MinimumPeriod")}
}

func (c *TimestampMinimumPeriodConstant) IsV1() bool {
	return c.is(1)
}

func (c *TimestampMinimumPeriodConstant) AsV1() (uint64, error) {
	return asConstant[uint64](c.constantAccessor, 1)
}

func (c *TimestampMinimumPeriodConstant) IsExists() bool {
	return c.exists()
}

// TransactionPaymentTransactionByteFeeConstant is the constant
// TransactionPayment.TransactionByteFee. The fee to be paid for making a
// transaction; the per-byte portion.
type TransactionPaymentTransactionByteFeeConstant struct {
	constantAccessor
}

func NewTransactionPaymentTransactionByteFeeConstant(ctx support.ChainContext) *TransactionPaymentTransactionByteFeeConstant {
	return &TransactionPaymentTransactionByteFeeConstant{newConstantAccessor(ctx, "TransactionPayment", "TransactionByteFee")}
}

func (c *TransactionPaymentTransactionByteFeeConstant) IsV1() bool {
	return c.is(1)
}

func (c *TransactionPaymentTransactionByteFeeConstant) AsV1() (support.U128, error) {
	return asConstant[support.U128](c.constantAccessor, 1)
}

func (c *TransactionPaymentTransactionByteFeeConstant) IsExists() bool {
	return c.exists()
}

// TransactionPaymentWeightToFeeConstant is the constant
// TransactionPayment.WeightToFee. The polynomial that is applied in order to
// derive fee from weight.
type TransactionPaymentWeightToFeeConstant struct {
	constantAccessor
}

func NewTransactionPaymentWeightToFeeConstant(ctx support.ChainContext) *TransactionPaymentWeightToFeeConstant {
	return &TransactionPaymentWeightToFeeConstant{newConstantAccessor(ctx, "TransactionPayment", "WeightToFee")}
}

func (c *TransactionPaymentWeightToFeeConstant) IsV1() bool {
	return c.is(1)
}

func (c *TransactionPaymentWeightToFeeConstant) AsV1() ([]v1.WeightToFeeCoefficient, error) {
	return asConstant[[]v1.WeightToFeeCoefficient](c.constantAccessor, 1)
}

func (c *TransactionPaymentWeightToFeeConstant) IsExists() bool {
	return c.exists()
}

// ZeropoolMaxLengthConstant is the constant Zeropool.MaxLength. The maximum
// length a proof may be.
type ZeropoolMaxLengthConstant struct {
	constantAccessor
}

func NewZeropoolMaxLengthConstant(ctx support.ChainContext) *ZeropoolMaxLengthConstant {
	return &ZeropoolMaxLengthConstant{newConstantAccessor(ctx, "Zeropool", "MaxLength")}
}

func (c *ZeropoolMaxLengthConstant) IsV1() bool {
	return c.is(1)
}

func (c *ZeropoolMaxLengthConstant) AsV1() (uint32, error) {
	return asConstant[uint32](c.constantAccessor, 1)
}

func (c *ZeropoolMaxLengthConstant) IsExists() bool {
	return c.exists()
}

// ZeropoolMinLengthConstant is the constant Zeropool.MinLength. The minimum
// length a proof may be.
type ZeropoolMinLengthConstant struct {
	constantAccessor
}

func NewZeropoolMinLengthConstant(ctx support.ChainContext) *ZeropoolMinLengthConstant {
	return &ZeropoolMinLengthConstant{newConstantAccessor(ctx, "Zeropool", "MinLength")}
}

func (c *ZeropoolMinLengthConstant) IsV1() bool {
	return c.is(1)
}

func (c *ZeropoolMinLengthConstant) AsV1() (uint32, error) {
	return asConstant[uint32](c.constantAccessor, 1)
}

func (c *ZeropoolMinLengthConstant) IsExists() bool {
	return c.exists()
}

// ZeropoolReservationFeeConstant is the constant Zeropool.ReservationFee.
// Reservation fee.
type ZeropoolReservationFeeConstant struct {
	constantAccessor
}

func NewZeropoolReservationFeeConstant(ctx support.ChainContext) *ZeropoolReservationFeeConstant {
	return &ZeropoolReservationFeeConstant{newConstantAccessor(ctx, "Zeropool", "ReservationFee")}
}

func (c *ZeropoolReservationFeeConstant) IsV1() bool {
	return c.is(1)
}

func (c *ZeropoolReservationFeeConstant) AsV1() (support.U128, error) {
	return asConstant[support.U128](c.constantAccessor, 1)
}

func (c *ZeropoolReservationFeeConstant) IsExists() bool {
	return c.exists()
}
