package listing

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// immutableColumns are never written by Update.
var immutableColumns = []string{"id", "owner_id", "created_at"}

// Repository persists one listing model type.
type Repository[M any] struct {
	db *gorm.DB
}

// NewRepository binds a repository for M to the provided GORM DB.
func NewRepository[M any](db *gorm.DB) *Repository[M] {
	return &Repository[M]{db: db}
}

// List returns the requested page and the total number of matching rows.
// Sort, offset and limit are applied in the same statement.
func (r *Repository[M]) List(ctx context.Context, q Query) ([]M, int64, error) {
	base := r.db.WithContext(ctx).Model(new(M)).Scopes(q.Filter.Scope)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]M, 0)
	if total == 0 {
		return items, 0, nil
	}

	page := q.Page.Normalize()
	offset := page.Offset()
	if int64(offset) >= total {
		return items, total, nil
	}
	stmt := base.Session(&gorm.Session{})
	if order := OrderClause(q.Sort); order != "" {
		stmt = stmt.Order(order)
	}
	if err := stmt.Offset(offset).Limit(page.Limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindByID loads a row regardless of its visibility flag.
func (r *Repository[M]) FindByID(ctx context.Context, id uuid.UUID) (*M, error) {
	var m M
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts m; models assign their own IDs before insert.
func (r *Repository[M]) Create(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// CreateBatch inserts rows in statements of at most size rows. A size below
// one inserts everything in a single statement.
func (r *Repository[M]) CreateBatch(ctx context.Context, rows []M, size int) error {
	if len(rows) == 0 {
		return nil
	}
	if size < 1 {
		size = len(rows)
	}
	return r.db.WithContext(ctx).CreateInBatches(&rows, size).Error
}

// Update rewrites every mutable column of an existing row. It never inserts:
// a row deleted concurrently yields gorm.ErrRecordNotFound.
func (r *Repository[M]) Update(ctx context.Context, m *M) error {
	res := r.db.WithContext(ctx).Model(m).Select("*").Omit(immutableColumns...).Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a row by id, returning gorm.ErrRecordNotFound if none matched.
func (r *Repository[M]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll empties the table.
func (r *Repository[M]) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(M))
	return res.RowsAffected, res.Error
}
