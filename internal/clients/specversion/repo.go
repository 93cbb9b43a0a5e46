package specversion

import (
	"context"
	"fmt"
	"strconv"

	"go-zeropool-dictionary/internal/db/postgres"
	"go-zeropool-dictionary/internal/messages"
	"go-zeropool-dictionary/internal/models"
)

type (
	specVersionRepo interface {
		getAllSpecVersionData(ctx context.Context) (SpecVersionRangeList, error)
		insertSpecVersionsList(ctx context.Context, specVersions []models.SpecVersion) error
	}

	specvRepoClient struct {
		*postgres.PostgresClient
	}
)

// getAllSpecVersionData retrieves all the spec versions info from db, ordered by first block
func (client specvRepoClient) getAllSpecVersionData(ctx context.Context) (SpecVersionRangeList, error) {
	query := fmt.Sprintf(
		"SELECT id, block_height::text FROM %s ORDER BY block_height ASC",
		client.Table(models.SpecVersionsTable),
	)

	rows, err := client.Pool.Query(ctx, query)
	if err != nil {
		return nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(client.getAllSpecVersionData),
			err,
			messages.SPEC_VERSION_FAILED_DB,
		)
	}
	defer rows.Close()

	var specVData SpecVersionRangeList
	for rows.Next() {
		var id, height string
		if err := rows.Scan(&id, &height); err != nil {
			return nil, messages.NewDictionaryMessage(
				messages.LOG_LEVEL_ERROR,
				messages.GetComponent(client.getAllSpecVersionData),
				err,
				messages.SPEC_VERSION_FAILED_DB,
			)
		}
		specRange, err := rangeFromRow(id, height)
		if err != nil {
			return nil, err
		}
		specVData = append(specVData, specRange)
	}
	if err := rows.Err(); err != nil {
		return nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(client.getAllSpecVersionData),
			err,
			messages.SPEC_VERSION_FAILED_DB,
		)
	}
	return specVData, nil
}

func rangeFromRow(id, height string) (SpecVersionRange, error) {
	specVersion, err := strconv.Atoi(id)
	if err != nil {
		return SpecVersionRange{}, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(rangeFromRow),
			err,
			messages.FAILED_ATOI,
		)
	}
	first, err := models.BigIntTransformer.From(height)
	if err != nil {
		return SpecVersionRange{}, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(rangeFromRow),
			err,
			messages.FAILED_ATOI,
		)
	}
	return SpecVersionRange{SpecVersion: specVersion, First: int(first)}, nil
}

// insertSpecVersionsList inserts in a transaction the newly discovered spec versions
func (client specvRepoClient) insertSpecVersionsList(ctx context.Context, specVersions []models.SpecVersion) error {
	if len(specVersions) == 0 {
		return nil
	}
	messages.NewDictionaryMessage(
		messages.LOG_LEVEL_INFO,
		"",
		nil,
		messages.SPEC_VERSION_DB_INSERT,
		specVersions[0].BlockHeight,
	).ConsoleLog()

	if err := client.WriteBatch(ctx, postgres.Batch{SpecVersions: specVersions}); err != nil {
		return err
	}

	messages.NewDictionaryMessage(
		messages.LOG_LEVEL_SUCCESS,
		"",
		nil,
		messages.SPEC_VERSION_DB_SUCCESS,
	).ConsoleLog()
	return nil
}
