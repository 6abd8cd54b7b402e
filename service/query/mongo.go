// Package query is the thin layer the repositories use to talk to mongo.
// Every call is timed, slow calls are logged and unindexed reads can be refused.
package query

import (
	"errors"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

var (
	ErrNotFound = errors.New("document not found")

	// ErrCollScan is returned for reads without a usable index when index checking is on
	ErrCollScan = errors.New("COLLSCAN is not allowed")
)

// Index is a single field index, Unique rejects duplicated values
type Index struct {
	Key    string
	Unique bool
}

type Mongo interface {
	FindOne(c ctx.Ctx, table domain.Table, filter, result interface{}) error

	// Find loads every match into results. sort is a field name, "-field" for descending,
	// "" leaves the order to mongo.
	Find(c ctx.Ctx, table domain.Table, filter interface{}, sort string, results interface{}) error

	// Upsert replaces the document matching selector, or inserts it when nothing matches
	Upsert(c ctx.Ctx, table domain.Table, selector, doc interface{}) error

	EnsureIndexes(c ctx.Ctx, table domain.Table, indexes ...Index) error
}
