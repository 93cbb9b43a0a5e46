package postgres

import (
	"context"
	"fmt"

	"go-zeropool-dictionary/internal/config"
	"go-zeropool-dictionary/internal/messages"
	"go-zeropool-dictionary/internal/models"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	connStringFormat = "postgresql://%s:%s@%s:%s/%s?sslmode=disable&pool_max_conns=%d"
)

type (
	PostgresClient struct {
		Pool   *pgxpool.Pool
		Schema string
	}

	// Batch is every row produced by one range of blocks
	Batch struct {
		Extrinsics   []models.Extrinsic
		Events       []models.Event
		SpecVersions []models.SpecVersion
	}

	// TxFunc runs extra statements inside a batch transaction
	TxFunc func(ctx context.Context, tx pgx.Tx) error
)

func ConnString(dbConfiguration config.PostgresConfig) string {
	return fmt.Sprintf(
		connStringFormat,
		dbConfiguration.User,
		dbConfiguration.Password,
		dbConfiguration.Host,
		dbConfiguration.Port,
		dbConfiguration.Db,
		dbConfiguration.ConnPool,
	)
}

// Connect creates a new Postgres connection pool client instance
func Connect(ctx context.Context, dbConfiguration config.PostgresConfig) (*PostgresClient, error) {
	messages.NewDictionaryMessage(
		messages.LOG_LEVEL_INFO,
		"",
		nil,
		messages.POSTGRES_CONNECTING,
		fmt.Sprintf("%s:%s/%s",
			dbConfiguration.Host,
			dbConfiguration.Port,
			dbConfiguration.Db,
		),
	).ConsoleLog()

	poolConfig, err := pgxpool.ParseConfig(ConnString(dbConfiguration))
	if err != nil {
		return nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(Connect),
			err,
			messages.POSTGRES_FAILED_TO_PARSE_CONNECTION_STRING,
		)
	}

	poolConnection, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(Connect),
			err,
			messages.POSTGRES_FAILED_TO_CONNECT,
		)
	}

	if err := poolConnection.Ping(ctx); err != nil {
		poolConnection.Close()
		return nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(Connect),
			err,
			messages.POSTGRES_FAILED_TO_PING,
		)
	}

	messages.NewDictionaryMessage(
		messages.LOG_LEVEL_SUCCESS,
		"",
		nil,
		messages.POSTGRES_CONNECTED,
	).ConsoleLog()
	return &PostgresClient{Pool: poolConnection, Schema: dbConfiguration.Schema}, nil
}

// Migrate creates the dictionary schema and tables when they are missing
func (pc *PostgresClient) Migrate(ctx context.Context) error {
	if _, err := pc.Pool.Exec(ctx, models.Schema(pc.Schema)); err != nil {
		return messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(pc.Migrate),
			err,
			messages.POSTGRES_FAILED_TO_MIGRATE,
		)
	}
	messages.NewDictionaryMessage(messages.LOG_LEVEL_SUCCESS, "", nil, messages.POSTGRES_MIGRATED, pc.Schema).ConsoleLog()
	return nil
}

// Table returns the sanitized name of a dictionary table
func (pc *PostgresClient) Table(name string) string {
	return pgx.Identifier{pc.Schema, name}.Sanitize()
}

// WriteBatch inserts the rows of a batch and runs after in a single transaction
func (pc *PostgresClient) WriteBatch(ctx context.Context, batch Batch, after ...TxFunc) error {
	tx, err := pc.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(pc.WriteBatch),
			err,
			messages.POSTGRES_FAILED_TO_START_TRANSACTION,
		)
	}
	defer tx.Rollback(ctx)

	if err := copyRows(ctx, tx, pc.Schema, batch.SpecVersions); err != nil {
		return err
	}
	if err := copyRows(ctx, tx, pc.Schema, batch.Extrinsics); err != nil {
		return err
	}
	if err := copyRows(ctx, tx, pc.Schema, batch.Events); err != nil {
		return err
	}
	for _, fn := range after {
		if err := fn(ctx, tx); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(pc.WriteBatch),
			err,
			messages.POSTGRES_FAILED_TO_COMMIT_TX,
		)
	}
	return nil
}

func copyRows[R models.Row](ctx context.Context, tx pgx.Tx, schema string, rows []R) error {
	if len(rows) == 0 {
		return nil
	}
	copyLen, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{schema, rows[0].Table()},
		rows[0].Columns(),
		pgx.CopyFromRows(models.CopyRows(rows)),
	)
	if err != nil {
		return messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			rows[0].Table(),
			err,
			messages.POSTGRES_FAILED_TO_COPY_FROM,
		)
	}
	if copyLen != int64(len(rows)) {
		return messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			rows[0].Table(),
			nil,
			messages.POSTGRES_WRONG_NUMBER_OF_COPIED_ROWS,
			copyLen,
			len(rows),
		)
	}
	return nil
}

func (pc *PostgresClient) Close() {
	pc.Pool.Close()
}
