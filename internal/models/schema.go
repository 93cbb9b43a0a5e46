package models

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"
)

type indexed interface {
	Table() string
	Indexes() []string
}

var tableColumns = []struct {
	model   indexed
	columns string
}{
	{Event{}, `id text PRIMARY KEY,
	module text NOT NULL,
	event text NOT NULL,
	block_height numeric NOT NULL`},
	{Extrinsic{}, `id text PRIMARY KEY,
	tx_hash text NOT NULL,
	module text NOT NULL,
	call text NOT NULL,
	block_height numeric NOT NULL,
	success boolean NOT NULL,
	is_signed boolean NOT NULL`},
	{SpecVersion{}, `id text PRIMARY KEY,
	block_height numeric NOT NULL`},
}

// Schema returns the DDL of the dictionary tables in schema. Every statement
// is idempotent.
func Schema(schema string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE SCHEMA IF NOT EXISTS %s;\n", pgx.Identifier{schema}.Sanitize())

	for _, table := range tableColumns {
		name := pgx.Identifier{schema, table.model.Table()}.Sanitize()
		fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n\t%s\n);\n", name, table.columns)
		for _, column := range table.model.Indexes() {
			index := pgx.Identifier{fmt.Sprintf("%s_%s_idx", table.model.Table(), column)}.Sanitize()
			fmt.Fprintf(&b, "CREATE INDEX IF NOT EXISTS %s ON %s (%s);\n", index, name, column)
		}
	}

	fmt.Fprintf(&b, `CREATE TABLE IF NOT EXISTS %s (
	key varchar(255) PRIMARY KEY,
	value jsonb,
	"createdAt" timestamptz NOT NULL,
	"updatedAt" timestamptz NOT NULL
);
`, pgx.Identifier{schema, MetadataTable}.Sanitize())
	return b.String()
}
