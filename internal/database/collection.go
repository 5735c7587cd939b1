package database

import (
	"context"
	"errors"
	"slices"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fortiercars/internal/metrics"
	apperrors "fortiercars/pkg/errors"
)

// Filter is a conjunction of exact-match terms keyed by column name. A value wrapped with
// AtLeast becomes a lower bound instead of an equality.
type Filter map[string]any

type atLeast struct{ v any }

// AtLeast matches column values greater than or equal to v.
func AtLeast(v any) any { return atLeast{v} }

// Fields is a partial update keyed by column name. Only the listed columns change.
type Fields map[string]any

// Sort orders a find by a single column.
type Sort struct {
	Field string
	Desc  bool
}

// Query selects records for Find.
type Query struct {
	Filter Filter
	Sort   Sort
	Limit  int
}

// Collection gives typed access to one table.
type Collection[T any] struct {
	db    *gorm.DB
	table string
}

// NewCollection binds a collection to the table of T.
func NewCollection[T any](db *gorm.DB, table string) *Collection[T] {
	return &Collection[T]{db: db, table: table}
}

// Insert persists a fully formed record.
func (c *Collection[T]) Insert(ctx context.Context, rec *T) error {
	start := time.Now()
	err := c.db.WithContext(ctx).Create(rec).Error
	c.record("insert", start, err)
	if err != nil {
		return apperrors.Storage("insert "+c.table, err)
	}
	return nil
}

// Find returns at most q.Limit records matching q.Filter in q.Sort order. No match yields an
// empty slice.
func (c *Collection[T]) Find(ctx context.Context, q Query) ([]T, error) {
	start := time.Now()
	tx := q.Filter.apply(c.db.WithContext(ctx).Model(new(T)))
	if q.Sort.Field != "" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: q.Sort.Field}, Desc: q.Sort.Desc})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	out := []T{}
	err := tx.Find(&out).Error
	c.record("find", start, err)
	if err != nil {
		return nil, apperrors.Storage("find "+c.table, err)
	}
	return out, nil
}

// FindOne returns the first record matching f, or a not-found error.
func (c *Collection[T]) FindOne(ctx context.Context, f Filter) (*T, error) {
	start := time.Now()
	rec := new(T)
	err := f.apply(c.db.WithContext(ctx).Model(rec)).Take(rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.record("find_one", start, nil)
		return nil, apperrors.NotFound(c.table + " record not found")
	}
	c.record("find_one", start, err)
	if err != nil {
		return nil, apperrors.Storage("find one "+c.table, err)
	}
	return rec, nil
}

// FindOneAndUpdate applies fields to the record matching f and returns it as stored after the
// update. The update and the read back run in one transaction; the row stays locked by the
// update until commit, so concurrent updates to one record are serialized. An empty fields set
// returns the current record.
func (c *Collection[T]) FindOneAndUpdate(ctx context.Context, f Filter, fields Fields) (*T, error) {
	if len(fields) == 0 {
		return c.FindOne(ctx, f)
	}

	start := time.Now()
	rec := new(T)
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := f.apply(tx.Model(new(T))).Updates(map[string]any(fields))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return f.apply(tx.Model(rec)).Take(rec).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.record("find_one_and_update", start, nil)
		return nil, apperrors.NotFound(c.table + " record not found")
	}
	c.record("find_one_and_update", start, err)
	if err != nil {
		return nil, apperrors.Storage("update "+c.table, err)
	}
	return rec, nil
}

// Count returns the number of records matching f.
func (c *Collection[T]) Count(ctx context.Context, f Filter) (int64, error) {
	start := time.Now()
	var n int64
	err := f.apply(c.db.WithContext(ctx).Model(new(T))).Count(&n).Error
	c.record("count", start, err)
	if err != nil {
		return 0, apperrors.Storage("count "+c.table, err)
	}
	return n, nil
}

func (c *Collection[T]) record(op string, start time.Time, err error) {
	metrics.RecordDBQuery(c.table+"."+op, time.Since(start), err)
}

// apply adds one WHERE term per filter key. Keys are sorted so the generated SQL is stable.
func (f Filter) apply(tx *gorm.DB) *gorm.DB {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		col := clause.Column{Name: k}
		switch v := f[k].(type) {
		case atLeast:
			tx = tx.Where(clause.Gte{Column: col, Value: v.v})
		default:
			tx = tx.Where(clause.Eq{Column: col, Value: v})
		}
	}
	return tx
}
