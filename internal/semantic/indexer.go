package semantic

import (
	"context"
	"fmt"
	"time"

	"github.com/dmuchance/bouncematch/internal/concurrency"
	"github.com/dmuchance/bouncematch/internal/domain"
	"github.com/dmuchance/bouncematch/internal/logger"
	"github.com/dmuchance/bouncematch/internal/metrics"
	"github.com/dmuchance/bouncematch/internal/repository"
)

// Indexer writes inflatables into the vector index. Full syncs run in rate
// limited batches so a large catalog does not hammer the embedding API;
// per-item failures are collected into the report instead of aborting.
type Indexer struct {
	catalog repository.Catalog
	llm     LLM
	cache   *EmbeddingCache
	vectors repository.VectorIndex
	locks   *concurrency.LockManager
}

// NewIndexer creates a new catalog indexer
func NewIndexer(catalog repository.Catalog, llm LLM, cache *EmbeddingCache, vectors repository.VectorIndex) *Indexer {
	return &Indexer{
		catalog: catalog,
		llm:     llm,
		cache:   cache,
		vectors: vectors,
		locks:   concurrency.NewLockManager(),
	}
}

// SyncAll re-indexes every active inflatable. The returned report is valid
// even on error: it covers whatever was attempted before the abort.
func (ix *Indexer) SyncAll(ctx context.Context) (*domain.SyncReport, error) {
	log := logger.FromContext(ctx)

	items, err := ix.catalog.ListActiveInflatables(ctx)
	if err != nil {
		return &domain.SyncReport{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	tagsByID, err := ix.loadTags(ctx)
	if err != nil {
		return &domain.SyncReport{}, err
	}

	report := &domain.SyncReport{Total: len(items)}
	log.Info(LogMsgSyncStarted, "total", report.Total)

	for start := 0; start < len(items); start += SyncBatchSize {
		if start > 0 {
			// Pause between batches to stay under the embedding API rate limit
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			case <-time.After(SyncBatchDelay):
			}
		}

		end := start + SyncBatchSize
		if end > len(items) {
			end = len(items)
		}
		for i := start; i < end; i++ {
			if err := ix.syncItem(ctx, &items[i], tagsByID); err != nil {
				log.Warn(LogMsgItemSyncFailed, "inflatable_id", items[i].ID, "error", err)
				metrics.IndexSyncErrors.Inc()
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", items[i].ID, err))
				continue
			}
			report.Synced++
		}
	}

	log.Info(LogMsgSyncCompleted, "synced", report.Synced, "failed", len(report.Errors))
	return report, nil
}

// SyncOne re-indexes a single inflatable regardless of its active flag, so
// admins can refresh a just-edited draft. Unknown ids surface as
// domain.ErrInflatableNotFound.
func (ix *Indexer) SyncOne(ctx context.Context, inflatableID string) error {
	item, err := ix.catalog.GetInflatableByID(ctx, inflatableID)
	if err != nil {
		return err
	}
	tagsByID, err := ix.loadTags(ctx)
	if err != nil {
		return err
	}
	return ix.syncItem(ctx, item, tagsByID)
}

func (ix *Indexer) loadTags(ctx context.Context) (map[string]domain.Tag, error) {
	tags, err := ix.catalog.ListActiveTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	tagsByID := make(map[string]domain.Tag, len(tags))
	for _, t := range tags {
		tagsByID[t.ID] = t
	}
	return tagsByID, nil
}

func (ix *Indexer) syncItem(ctx context.Context, item *domain.Inflatable, tagsByID map[string]domain.Tag) error {
	// An admin SyncOne can race the daily full sync on the same item;
	// serialize per-item so the last upsert wins cleanly.
	lock := ix.locks.GetLock(item.ID)
	lock.Lock()
	defer lock.Unlock()

	var tagNames []string
	for _, id := range item.TagIDs {
		if tag, ok := tagsByID[id]; ok {
			tagNames = append(tagNames, tag.Name)
		}
	}

	content := BuildContent(item, tagNames)

	embedding, ok := ix.cache.Get(content)
	if !ok {
		var err error
		embedding, err = ix.llm.CreateEmbedding(ctx, content)
		if err != nil {
			return fmt.Errorf(ErrMsgBuildEmbedding, item.Name, err)
		}
		ix.cache.Put(content, embedding)
	}

	doc := &domain.SearchDocument{
		InflatableID: item.ID,
		Content:      content,
		Embedding:    embedding,
		Metadata: map[string]interface{}{
			"name":                  item.Name,
			"type":                  item.Type,
			"age_min":               item.AgeMin,
			"age_max":               item.AgeMax,
			"intensity":             item.Intensity,
			"is_competitive":        item.IsCompetitive,
			"max_capacity":          item.MaxCapacity,
			"simultaneous_capacity": item.SimultaneousCapacity,
			"event_types_fit":       item.EventTypesFit,
			"wow_factor":            item.WowFactor,
			"color_theme":           item.ColorTheme,
			"tag_ids":               item.TagIDs,
		},
		UpdatedAt: time.Now().UTC(),
	}
	if err := ix.vectors.Upsert(ctx, doc); err != nil {
		return fmt.Errorf(ErrMsgUpsertDocument, item.ID, err)
	}

	metrics.ItemsIndexed.Inc()
	return nil
}
