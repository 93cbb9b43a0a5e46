package models

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsValidate(t *testing.T) {
	_, err := NewEvent("", "balances", "Transfer", 1)
	assert.True(t, errors.Is(err, ErrEmptyId))

	_, err = NewExtrinsic("1-0", "0xaa", "balances", "transfer", -1, true, true)
	assert.True(t, errors.Is(err, ErrNegativeBlock))

	_, err = NewSpecVersion("", 0)
	assert.True(t, errors.Is(err, ErrEmptyId))

	event, err := NewEvent("12-3", "Balances", "Transfer", 12)
	require.NoError(t, err)
	assert.Equal(t, Event{Id: "12-3", Module: "Balances", Event: "Transfer", BlockHeight: 12}, event)
}

func TestRowValues(t *testing.T) {
	extrinsic, err := NewExtrinsic("7-1", "0xab", "balances", "transfer", 7, false, true)
	require.NoError(t, err)

	assert.Equal(t, ExtrinsicsTable, extrinsic.Table())
	assert.Equal(t, len(extrinsic.Columns()), len(extrinsic.Values()))
	assert.Equal(t, []interface{}{"7-1", "0xab", "balances", "transfer", "7", false, true}, extrinsic.Values())

	spec, err := NewSpecVersion("3", 1500)
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{{"3", "1500"}}, CopyRows([]SpecVersion{spec}))
}

func TestBigIntTransformer(t *testing.T) {
	assert.Equal(t, "9223372036854775807", BigIntTransformer.To(9223372036854775807))
	assert.Equal(t, "0", BigIntTransformer.To(0))

	height, err := BigIntTransformer.From("123456")
	require.NoError(t, err)
	assert.Equal(t, int64(123456), height)

	height, err = BigIntTransformer.From("42.000")
	require.NoError(t, err)
	assert.Equal(t, int64(42), height)

	_, err = BigIntTransformer.From("1.5")
	assert.Error(t, err)
	_, err = BigIntTransformer.From("99999999999999999999")
	assert.Error(t, err)
	_, err = BigIntTransformer.From("twelve")
	assert.Error(t, err)
}

func TestCheckMonotonic(t *testing.T) {
	events := []Event{
		{Id: "1-0", BlockHeight: 1},
		{Id: "1-1", BlockHeight: 1},
		{Id: "2-0", BlockHeight: 2},
	}
	assert.NoError(t, CheckMonotonic(events))
	assert.NoError(t, CheckMonotonic([]Event{}))

	events = append(events, Event{Id: "1-2", BlockHeight: 1})
	err := CheckMonotonic(events)
	assert.True(t, errors.Is(err, ErrNonMonotonic))
	assert.Contains(t, err.Error(), "events row 3 at 1 follows 2")
}

func TestSchema(t *testing.T) {
	ddl := Schema("dictionary")

	assert.True(t, strings.HasPrefix(ddl, `CREATE SCHEMA IF NOT EXISTS "dictionary";`))
	assert.Contains(t, ddl, `CREATE TABLE IF NOT EXISTS "dictionary"."events" (`)
	assert.Contains(t, ddl, `CREATE TABLE IF NOT EXISTS "dictionary"."spec_versions" (`)
	assert.Contains(t, ddl, `CREATE TABLE IF NOT EXISTS "dictionary"."_metadata" (`)
	assert.Contains(t, ddl, `CREATE INDEX IF NOT EXISTS "extrinsics_tx_hash_idx" ON "dictionary"."extrinsics" (tx_hash);`)
	assert.Contains(t, ddl, `CREATE INDEX IF NOT EXISTS "events_block_height_idx" ON "dictionary"."events" (block_height);`)
	assert.NotContains(t, ddl, "spec_versions_")
}
