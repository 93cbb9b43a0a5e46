package clients

import (
	"context"
	"time"

	"go-zeropool-dictionary/internal/clients/event"
	"go-zeropool-dictionary/internal/clients/extrinsic"
	"go-zeropool-dictionary/internal/db/postgres"
	"go-zeropool-dictionary/internal/messages"
	"go-zeropool-dictionary/internal/metrics"
	"go-zeropool-dictionary/internal/models"

	"golang.org/x/sync/errgroup"
)

const defaultPollInterval = 6 * time.Second

type (
	// Params are the collaborators of an Orchestrator
	Params struct {
		BatchSize  int
		Workers    int
		StartBlock int
		// PollInterval is the wait for new finalized blocks once up to date
		PollInterval time.Duration

		Blocks       BlockSource
		Chains       ChainLookup
		SpecVersions SpecVersions
		Extrinsics   *extrinsic.ExtrinsicClient
		Events       *event.EventClient
		Writer       BatchWriter
		Progress     Progress
		// Fallback returns the last indexed height when the progress keys are missing
		Fallback func(ctx context.Context) (int, error)
	}

	Orchestrator struct {
		Params
		specName string
	}
)

// NewOrchestrator creates and initialises a new orchestrator
func NewOrchestrator(params Params) *Orchestrator {
	messages.NewDictionaryMessage(
		messages.LOG_LEVEL_INFO,
		"",
		nil,
		messages.ORCHESTRATOR_INITIALIZING,
	).ConsoleLog()

	if params.PollInterval <= 0 {
		params.PollInterval = defaultPollInterval
	}
	if params.Workers <= 0 {
		params.Workers = 1
	}
	if params.BatchSize <= 0 {
		params.BatchSize = 1
	}
	return &Orchestrator{Params: params}
}

// Run indexes every finalized block from the last processed height and
// keeps following the chain until ctx is done
func (orchestrator *Orchestrator) Run(ctx context.Context) error {
	next, err := orchestrator.startingHeight(ctx)
	if err != nil {
		return err
	}

	upToDate := false
	for {
		target, err := orchestrator.Blocks.GetFinalizedHeight(ctx)
		if err != nil {
			return orchestrator.fail(ctx, err)
		}

		if target < next {
			if !upToDate {
				messages.NewDictionaryMessage(messages.LOG_LEVEL_INFO, "", nil, messages.ORCHESTRATOR_UP_TO_DATE, next-1).ConsoleLog()
				upToDate = true
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(orchestrator.PollInterval):
			}
			continue
		}
		upToDate = false

		if err := orchestrator.updateTarget(ctx, target); err != nil {
			return orchestrator.fail(ctx, err)
		}
		messages.NewDictionaryMessage(messages.LOG_LEVEL_INFO, "", nil, messages.ORCHESTRATOR_START, next, target).ConsoleLog()

		for next <= target {
			last := next + orchestrator.BatchSize - 1
			if last > target {
				last = target
			}
			if err := orchestrator.processBatch(ctx, next, last, target); err != nil {
				return orchestrator.fail(ctx, err)
			}
			next = last + 1
		}
	}
}

// startingHeight resumes after the last processed height, never before the start block
func (orchestrator *Orchestrator) startingHeight(ctx context.Context) (int, error) {
	last, err := orchestrator.Progress.LastProcessedHeight(ctx)
	if err != nil {
		return 0, err
	}
	if last < 0 && orchestrator.Fallback != nil {
		if last, err = orchestrator.Fallback(ctx); err != nil {
			return 0, err
		}
	}
	next := last + 1
	if next < orchestrator.StartBlock {
		next = orchestrator.StartBlock
	}
	return next, nil
}

// updateTarget extends the spec versions up to the new finalized height
func (orchestrator *Orchestrator) updateTarget(ctx context.Context, target int) error {
	if _, err := orchestrator.SpecVersions.Update(ctx, target); err != nil {
		return err
	}
	if err := orchestrator.Progress.SetTargetHeight(ctx, target); err != nil {
		return err
	}
	metrics.TargetHeight.Set(float64(target))

	if name := orchestrator.SpecVersions.SpecName(); name != "" && name != orchestrator.specName {
		if err := orchestrator.Progress.SetSpecName(ctx, name); err != nil {
			return err
		}
		orchestrator.specName = name
	}
	return nil
}

func (orchestrator *Orchestrator) processBatch(ctx context.Context, first, last, target int) error {
	start := time.Now()
	messages.NewDictionaryMessage(
		messages.LOG_LEVEL_INFO,
		"",
		nil,
		messages.ORCHESTRATOR_START_BATCH,
		last-first+1,
		first,
	).ConsoleLog()

	results := make([]blockResult, last-first+1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(orchestrator.Workers)
	for height := first; height <= last; height++ {
		height := height
		g.Go(func() error {
			result, err := orchestrator.processBlock(gctx, height)
			if err != nil {
				return messages.NewDictionaryMessage(
					messages.LOG_LEVEL_ERROR,
					messages.GetComponent(orchestrator.processBatch),
					err,
					messages.ORCHESTRATOR_FAILED_BLOCK,
					height,
				)
			}
			results[height-first] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	batch := postgres.Batch{}
	for _, result := range results {
		batch.Extrinsics = append(batch.Extrinsics, result.extrinsics...)
		batch.Events = append(batch.Events, result.events...)
	}
	if err := models.CheckMonotonic(batch.Extrinsics); err != nil {
		return err
	}
	if err := models.CheckMonotonic(batch.Events); err != nil {
		return err
	}
	if err := orchestrator.Writer.WriteBatch(ctx, batch, orchestrator.Progress.ProgressTx(last, target)); err != nil {
		return err
	}

	metrics.BlocksProcessed.Add(float64(len(results)))
	metrics.RowsWritten.WithLabelValues(models.ExtrinsicsTable).Add(float64(len(batch.Extrinsics)))
	metrics.RowsWritten.WithLabelValues(models.EventsTable).Add(float64(len(batch.Events)))
	metrics.LastProcessedHeight.Set(float64(last))
	metrics.SpecVersion.Set(float64(results[len(results)-1].specVersion))
	metrics.BatchDuration.Observe(time.Since(start).Seconds())

	messages.NewDictionaryMessage(
		messages.LOG_LEVEL_SUCCESS,
		"",
		nil,
		messages.ORCHESTRATOR_FINISH_BATCH,
		last,
	).ConsoleLog()
	return nil
}

// processBlock decodes the extrinsics and events of one block
func (orchestrator *Orchestrator) processBlock(ctx context.Context, height int) (blockResult, error) {
	hash, err := orchestrator.Blocks.GetBlockHash(ctx, height)
	if err != nil {
		return blockResult{}, err
	}
	specRange, err := orchestrator.SpecVersions.SpecVersionForBlock(height)
	if err != nil {
		return blockResult{}, err
	}
	decoder, err := orchestrator.Chains(ctx, specRange.SpecVersion, hash)
	if err != nil {
		return blockResult{}, err
	}

	body, err := orchestrator.Blocks.GetBlockBody(ctx, height, hash)
	if err != nil {
		return blockResult{}, err
	}
	extrinsics, err := orchestrator.Extrinsics.ProcessBlock(decoder, height, body)
	if err != nil {
		metrics.DecodeFailures.WithLabelValues(models.ExtrinsicsTable).Inc()
		return blockResult{}, err
	}
	events, outcomes, err := orchestrator.Events.ProcessBlock(ctx, decoder, height, hash, len(body))
	if err != nil {
		metrics.DecodeFailures.WithLabelValues(models.EventsTable).Inc()
		return blockResult{}, err
	}
	extrinsic.ApplyOutcomes(extrinsics, outcomes)

	return blockResult{specVersion: specRange.SpecVersion, extrinsics: extrinsics, events: events}, nil
}

// fail marks the indexer unhealthy and returns err
func (orchestrator *Orchestrator) fail(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if healthErr := orchestrator.Progress.SetIndexerHealthy(ctx, false); healthErr != nil {
		messages.FromError(healthErr).ConsoleLog()
	}
	return err
}

func (orchestrator *Orchestrator) Close() {
	messages.NewDictionaryMessage(
		messages.LOG_LEVEL_INFO,
		"",
		nil,
		messages.ORCHESTRATOR_CLOSE,
	).ConsoleLog()
}
