package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-zeropool-dictionary/internal/db/postgres"
	"go-zeropool-dictionary/internal/messages"
	"go-zeropool-dictionary/internal/models"

	"github.com/jackc/pgx/v4"
)

const (
	colKey       = "key"
	colValue     = "value"
	colCreatedAt = "createdAt"
	colUpdatedAt = "updatedAt"
)

// MetadataClient keeps the subquery _metadata table of the dictionary
type MetadataClient struct {
	pgClient *postgres.PostgresClient
}

func NewMetadataClient(pgClient *postgres.PostgresClient) *MetadataClient {
	return &MetadataClient{pgClient: pgClient}
}

// upsertQuery builds an insert of n rows. Existing keys are overwritten when
// overwrite is set and left alone otherwise.
func upsertQuery(table string, n int, overwrite bool) string {
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprintf("($%d,$%d,$%d,$%d)", 4*i+1, 4*i+2, 4*i+3, 4*i+4)
	}
	conflict := "DO NOTHING"
	if overwrite {
		conflict = fmt.Sprintf(`DO UPDATE SET %s = EXCLUDED.%s, "%s" = EXCLUDED."%s"`, colValue, colValue, colUpdatedAt, colUpdatedAt)
	}
	return fmt.Sprintf(
		`INSERT INTO %s (%s, %s, "%s", "%s") VALUES %s ON CONFLICT (%s) %s`,
		table,
		colKey, colValue, colCreatedAt, colUpdatedAt,
		strings.Join(values, ","),
		colKey,
		conflict,
	)
}

func upsertArgs(entries []Entry, timestamp time.Time) []interface{} {
	args := make([]interface{}, 0, 4*len(entries))
	for _, entry := range entries {
		args = append(args, entry.Key, entry.Value, timestamp, timestamp)
	}
	return args
}

func (metaClient *MetadataClient) upsert(ctx context.Context, tx pgx.Tx, entries []Entry, overwrite bool) error {
	if len(entries) == 0 {
		return nil
	}
	_, timestamp := getTimestamp()
	query := upsertQuery(metaClient.pgClient.Table(models.MetadataTable), len(entries), overwrite)
	if _, err := tx.Exec(ctx, query, upsertArgs(entries, timestamp)...); err != nil {
		return messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(metaClient.upsert),
			err,
			messages.POSTGRES_FAILED_TO_INSERT,
		)
	}
	return nil
}

// Init writes the initial progress keys when missing and the chain info keys
func (metaClient *MetadataClient) Init(ctx context.Context, info ChainInfo) error {
	messages.NewDictionaryMessage(messages.LOG_LEVEL_INFO, "", nil, messages.META_CLIENT_START).ConsoleLog()

	timestamp, _ := getTimestamp()
	initial, err := InitEntries(timestamp, metaClient.rowsEstimate(ctx))
	if err != nil {
		return err
	}
	chainInfo, err := InfoEntries(info)
	if err != nil {
		return err
	}
	return metaClient.pgClient.Pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		if err := metaClient.upsert(ctx, tx, initial, false); err != nil {
			return err
		}
		return metaClient.upsert(ctx, tx, chainInfo, true)
	})
}

// LastProcessedHeight returns the last block height entirely finished by the
// dictionary, -1 when nothing was indexed yet
func (metaClient *MetadataClient) LastProcessedHeight(ctx context.Context) (int, error) {
	query := fmt.Sprintf(
		"SELECT %s::text FROM %s WHERE %s = $1",
		colValue,
		metaClient.pgClient.Table(models.MetadataTable),
		colKey,
	)

	var raw string
	err := metaClient.pgClient.Pool.QueryRow(ctx, query, lastProcessedHeight).Scan(&raw)
	if err == pgx.ErrNoRows {
		return -1, nil
	}
	if err != nil {
		return -1, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(metaClient.LastProcessedHeight),
			err,
			messages.META_FAILED_DB,
		)
	}
	return parseHeight(raw)
}

func parseHeight(raw string) (int, error) {
	var height *int
	if err := json.Unmarshal([]byte(raw), &height); err != nil {
		return -1, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(parseHeight),
			err,
			META_UNEXPECTED_VALUE,
			lastProcessedHeight,
		)
	}
	if height == nil {
		return -1, nil
	}
	return *height, nil
}

// ProgressTx records the end of a batch inside the batch transaction
func (metaClient *MetadataClient) ProgressTx(lastHeight, target int) postgres.TxFunc {
	return func(ctx context.Context, tx pgx.Tx) error {
		timestamp, _ := getTimestamp()
		progress, err := entries([]keyValue{
			{lastProcessedHeight, lastHeight},
			{targetHeight, target},
			{lastProcessedTimestamp, timestamp},
		})
		if err != nil {
			return err
		}
		return metaClient.upsert(ctx, tx, progress, true)
	}
}

// SetTargetHeight records the height the dictionary is catching up to
func (metaClient *MetadataClient) SetTargetHeight(ctx context.Context, height int) error {
	return metaClient.set(ctx, keyValue{targetHeight, height})
}

func (metaClient *MetadataClient) SetIndexerHealthy(ctx context.Context, healthy bool) error {
	return metaClient.set(ctx, keyValue{indexerHealthy, healthy})
}

func (metaClient *MetadataClient) SetSpecName(ctx context.Context, name string) error {
	return metaClient.set(ctx, keyValue{specName, name})
}

// UpdateRowsEstimate refreshes the row count estimate of the dictionary tables
func (metaClient *MetadataClient) UpdateRowsEstimate(ctx context.Context) error {
	return metaClient.set(ctx, keyValue{rowCountEstimate, metaClient.rowsEstimate(ctx)})
}

func (metaClient *MetadataClient) set(ctx context.Context, values ...keyValue) error {
	timestamp, _ := getTimestamp()
	values = append(values, keyValue{lastProcessedTimestamp, timestamp})
	updates, err := entries(values)
	if err != nil {
		return err
	}
	return metaClient.pgClient.Pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		return metaClient.upsert(ctx, tx, updates, true)
	})
}

// rowsEstimate reads the planner row estimates of the dictionary tables.
// Failures are logged and leave the table out.
func (metaClient *MetadataClient) rowsEstimate(ctx context.Context) []RowCountEstimate {
	estimates := []RowCountEstimate{}
	for _, table := range []string{models.EventsTable, models.ExtrinsicsTable, models.SpecVersionsTable} {
		var estimate int
		err := metaClient.pgClient.Pool.QueryRow(
			ctx,
			"SELECT coalesce(reltuples, 0)::bigint FROM pg_class WHERE oid = to_regclass($1)",
			metaClient.pgClient.Table(table),
		).Scan(&estimate)
		if err == pgx.ErrNoRows {
			messages.NewDictionaryMessage(messages.LOG_LEVEL_WARNING, "", nil, META_NO_TABLES).ConsoleLog()
			continue
		}
		if err != nil {
			messages.NewDictionaryMessage(
				messages.LOG_LEVEL_WARNING,
				messages.GetComponent(metaClient.rowsEstimate),
				err,
				messages.META_FAILED_DB,
			).ConsoleLog()
			continue
		}
		if estimate < 0 {
			estimate = 0
		}
		estimates = append(estimates, RowCountEstimate{Estimate: estimate, Table: table})
	}
	return estimates
}
