package extrinsic

import (
	"context"
	"fmt"

	"go-zeropool-dictionary/internal/db/postgres"
	"go-zeropool-dictionary/internal/messages"
	"go-zeropool-dictionary/internal/models"
)

// RecoverLastInsertedBlock returns the height of the last extrinsic saved in db,
// -1 when there is none
func RecoverLastInsertedBlock(ctx context.Context, pgClient *postgres.PostgresClient) (int, error) {
	query := fmt.Sprintf(
		"SELECT coalesce(max(block_height), -1)::text FROM %s",
		pgClient.Table(models.ExtrinsicsTable),
	)

	var height string
	if err := pgClient.Pool.QueryRow(ctx, query).Scan(&height); err != nil {
		return -1, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(RecoverLastInsertedBlock),
			err,
			EXTRINSIC_FAILED_TO_RETRIEVE_LAST_BLOCK,
		)
	}
	lastBlock, err := models.BigIntTransformer.From(height)
	if err != nil {
		return -1, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(RecoverLastInsertedBlock),
			err,
			messages.FAILED_ATOI,
		)
	}
	if lastBlock < 0 {
		messages.NewDictionaryMessage(messages.LOG_LEVEL_INFO, "", nil, EXTRINSICS_NO_PREVIOUS_WORK).ConsoleLog()
	}
	return int(lastBlock), nil
}
