package users

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader"
)

type ownerReader interface {
	FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
}

type loaderKey struct{}

// OwnerDirectory resolves listing owners to public summaries in batches.
// Inactive or missing owners resolve to nothing.
type OwnerDirectory struct {
	repo ownerReader
	wait time.Duration
}

func NewOwnerDirectory(repo ownerReader) *OwnerDirectory {
	return &OwnerDirectory{repo: repo, wait: 2 * time.Millisecond}
}

// NewLoader builds a request-scoped batching loader.
func (d *OwnerDirectory) NewLoader() *dataloader.Loader {
	batchFn := func(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
		ids := make([]uuid.UUID, 0, len(keys))
		for _, k := range keys {
			id, err := uuid.Parse(k.String())
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}

		rows, err := d.repo.FindActiveByIDs(ctx, ids)
		results := make([]*dataloader.Result, len(keys))
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result{Error: err}
			}
			return results
		}

		byID := make(map[string]OwnerSummary, len(rows))
		for i := range rows {
			byID[rows[i].ID.String()] = SummaryFromModel(&rows[i])
		}
		for i, k := range keys {
			if summary, ok := byID[k.String()]; ok {
				results[i] = &dataloader.Result{Data: summary}
			} else {
				results[i] = &dataloader.Result{Data: nil}
			}
		}
		return results
	}
	return dataloader.NewBatchedLoader(batchFn, dataloader.WithWait(d.wait))
}

// Attach stores a fresh loader on ctx so every lookup in one request shares a cache.
func (d *OwnerDirectory) Attach(ctx context.Context) context.Context {
	return context.WithValue(ctx, loaderKey{}, d.NewLoader())
}

func (d *OwnerDirectory) loader(ctx context.Context) *dataloader.Loader {
	if l, ok := ctx.Value(loaderKey{}).(*dataloader.Loader); ok {
		return l
	}
	return d.NewLoader()
}

// Summaries resolves ids in one batch. Nil and duplicate ids are tolerated.
func (d *OwnerDirectory) Summaries(ctx context.Context, ids []*uuid.UUID) (map[uuid.UUID]OwnerSummary, error) {
	out := map[uuid.UUID]OwnerSummary{}
	seen := map[uuid.UUID]bool{}
	keys := make(dataloader.Keys, 0, len(ids))
	for _, id := range ids {
		if id == nil || *id == uuid.Nil || seen[*id] {
			continue
		}
		seen[*id] = true
		keys = append(keys, dataloader.StringKey(id.String()))
	}
	if len(keys) == 0 {
		return out, nil
	}

	data, errs := d.loader(ctx).LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("load owners: %w", err)
		}
	}
	for _, item := range data {
		if summary, ok := item.(OwnerSummary); ok {
			out[summary.ID] = summary
		}
	}
	return out, nil
}
