// Package seed loads demo listings through the same schemas the API enforces.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/housing"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/internal/maids"
	"github.com/angelmondragon/bachelorhub-backend/internal/shops"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/angelmondragon/bachelorhub-backend/pkg/logger"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

const batchSize = 100

// Dataset is a set of listing inputs to load. Rows are inserted without an owner.
type Dataset struct {
	Housing []housing.Input
	Shops   []shops.Input
	Maids   []maids.Input
}

// Result counts the inserted rows per collection.
type Result struct {
	Housing int
	Shops   int
	Maids   int
}

// Options controls a seed run.
type Options struct {
	// Clear deletes every existing listing before inserting.
	Clear bool
}

// seedActor writes as admin so flags such as isVerified are kept.
var seedActor = authz.Identity{Role: enums.RoleAdmin}

// Seeder validates datasets and writes them in one transaction.
type Seeder struct {
	db   *gorm.DB
	logg *logger.Logger

	housing *listing.Service[models.Housing, housing.Draft, housing.Input]
	shops   *listing.Service[models.Shop, shops.Draft, shops.Input]
	maids   *listing.Service[models.Maid, maids.Draft, maids.Input]
}

// NewSeeder binds the listing schemas to db.
func NewSeeder(db *gorm.DB, logg *logger.Logger) (*Seeder, error) {
	if db == nil {
		return nil, fmt.Errorf("db required")
	}
	housingSvc, err := listing.NewService(housing.NewRepository(db), housing.Binding)
	if err != nil {
		return nil, err
	}
	shopSvc, err := listing.NewService(shops.NewRepository(db), shops.Binding)
	if err != nil {
		return nil, err
	}
	maidSvc, err := listing.NewService(maids.NewRepository(db), maids.Binding)
	if err != nil {
		return nil, err
	}
	return &Seeder{db: db, logg: logg, housing: housingSvc, shops: shopSvc, maids: maidSvc}, nil
}

// Run validates every row first and writes nothing when any row is rejected.
// The returned error lists each rejected row.
func (s *Seeder) Run(ctx context.Context, data Dataset, opts Options) (Result, error) {
	housingRows, housingErr := prepareAll(s.housing, "Housing", data.Housing)
	shopRows, shopErr := prepareAll(s.shops, "Shops", data.Shops)
	maidRows, maidErr := prepareAll(s.maids, "Maids", data.Maids)
	if err := multierr.Combine(housingErr, shopErr, maidErr); err != nil {
		return Result{}, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		housingRepo := listing.NewRepository[models.Housing](tx)
		shopRepo := listing.NewRepository[models.Shop](tx)
		maidRepo := listing.NewRepository[models.Maid](tx)

		if opts.Clear {
			var cleared int64
			for _, table := range []struct {
				name string
				fn   func(context.Context) (int64, error)
			}{
				{"maids", maidRepo.DeleteAll},
				{"shops", shopRepo.DeleteAll},
				{"housing", housingRepo.DeleteAll},
			} {
				n, err := table.fn(ctx)
				if err != nil {
					return fmt.Errorf("clear %s: %w", table.name, err)
				}
				cleared += n
			}
			s.info(ctx, "seed.cleared", map[string]any{"rows": cleared})
		}
		if err := housingRepo.CreateBatch(ctx, housingRows, batchSize); err != nil {
			return fmt.Errorf("insert housing: %w", err)
		}
		if err := shopRepo.CreateBatch(ctx, shopRows, batchSize); err != nil {
			return fmt.Errorf("insert shops: %w", err)
		}
		if err := maidRepo.CreateBatch(ctx, maidRows, batchSize); err != nil {
			return fmt.Errorf("insert maids: %w", err)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{Housing: len(housingRows), Shops: len(shopRows), Maids: len(maidRows)}
	s.info(ctx, "seed.complete", map[string]any{"housing": res.Housing, "shops": res.Shops, "maids": res.Maids})
	return res, nil
}

func (s *Seeder) info(ctx context.Context, msg string, fields map[string]any) {
	if s.logg == nil {
		return
	}
	if len(fields) > 0 {
		ctx = s.logg.WithFields(ctx, fields)
	}
	s.logg.Info(ctx, msg)
}

func prepareAll[M any, D any, I any](svc *listing.Service[M, D, I], sheet string, inputs []I) ([]M, error) {
	rows := make([]M, 0, len(inputs))
	var errs error
	for i, in := range inputs {
		m, err := svc.Prepare(seedActor, in)
		if err != nil {
			errs = multierr.Append(errs, rowError(sheet, i+1, err))
			continue
		}
		rows = append(rows, *m)
	}
	return rows, errs
}

func rowError(sheet string, row int, err error) error {
	if messages := pkgerrors.Messages(err); len(messages) > 0 {
		return fmt.Errorf("%s row %d: %s", sheet, row, strings.Join(messages, "; "))
	}
	return fmt.Errorf("%s row %d: %w", sheet, row, err)
}
