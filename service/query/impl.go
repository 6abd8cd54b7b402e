package query

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/database/mongoclient"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/base/metrics"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

const (
	queryMaxTime  = 20 * time.Second
	slowThreshold = 500 * time.Millisecond
)

var (
	met = metrics.New("query")
)

type impl struct {
	client     *mongoclient.Client
	checkIndex bool
}

// New wraps client, with checkIndex set reads that would scan a whole collection fail with ErrCollScan
func New(client *mongoclient.Client, checkIndex bool) Mongo {
	return &impl{
		client:     client,
		checkIndex: checkIndex,
	}
}

func (im *impl) collection(table domain.Table) *mongo.Collection {
	return im.client.Collection(string(table))
}

// observe times one call and returns the function that closes it, err is the call's result
func (im *impl) observe(c ctx.Ctx, table domain.Table, action string, filter interface{}) func(err error) {
	start := time.Now()
	timer := met.BumpTime("time", "func", action, "table", string(table))
	return func(err error) {
		timer.End()
		if err != nil && err != ErrNotFound {
			met.BumpSum("err", 1, "func", action, "table", string(table))
		}
		if elapsed := time.Since(start); elapsed >= slowThreshold {
			met.BumpSum("slowlog", 1, "table", string(table), "action", action)
			c.WithFields(log.Fields{
				"table":      table,
				"action":     action,
				"filter":     filter,
				"durationMs": elapsed.Milliseconds(),
			}).Warn("mongo slowlog")
		}
	}
}

func (im *impl) FindOne(c ctx.Ctx, table domain.Table, filter, result interface{}) (err error) {
	done := im.observe(c, table, "findone", filter)
	defer func() { done(err) }()

	if err = im.checkQueryIndex(c, table, filter); err != nil {
		return err
	}

	err = im.collection(table).FindOne(c, filter, options.FindOne().SetMaxTime(queryMaxTime)).Decode(result)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "table": table, "filter": filter}).Error("FindOne failed")
	}
	return err
}

func (im *impl) Find(c ctx.Ctx, table domain.Table, filter interface{}, sort string, results interface{}) (err error) {
	done := im.observe(c, table, "find", filter)
	defer func() { done(err) }()

	if err = im.checkQueryIndex(c, table, filter); err != nil {
		return err
	}

	opts := options.Find().SetMaxTime(queryMaxTime)
	if s := sortOption(sort); len(s) > 0 {
		opts.SetSort(s)
	}
	cursor, err := im.collection(table).Find(c, filter, opts)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "table": table, "filter": filter}).Error("Find failed")
		return err
	}
	defer cursor.Close(c)

	if err = cursor.All(c, results); err != nil {
		c.WithFields(log.Fields{"err": err, "table": table}).Error("cursor.All failed")
	}
	return err
}

func (im *impl) Upsert(c ctx.Ctx, table domain.Table, selector, doc interface{}) (err error) {
	done := im.observe(c, table, "upsert", selector)
	defer func() { done(err) }()

	_, err = im.collection(table).ReplaceOne(c, selector, doc, options.Replace().SetUpsert(true))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "table": table, "selector": selector}).Error("ReplaceOne failed")
	}
	return err
}

func (im *impl) EnsureIndexes(c ctx.Ctx, table domain.Table, indexes ...Index) error {
	if len(indexes) == 0 {
		return nil
	}
	models := make([]mongo.IndexModel, 0, len(indexes))
	for _, idx := range indexes {
		models = append(models, mongo.IndexModel{
			Keys:    bson.D{{Key: idx.Key, Value: 1}},
			Options: options.Index().SetUnique(idx.Unique),
		})
	}
	if _, err := im.collection(table).Indexes().CreateMany(c, models); err != nil {
		c.WithFields(log.Fields{"err": err, "table": table}).Error("Indexes.CreateMany failed")
		return err
	}
	return nil
}

// sortOption turns "field" / "-field" into a mongo sort document
func sortOption(sort string) bson.D {
	switch {
	case sort == "":
		return nil
	case sort[0] == '-':
		return bson.D{{Key: sort[1:], Value: -1}}
	default:
		return bson.D{{Key: sort, Value: 1}}
	}
}

func (im *impl) checkQueryIndex(c ctx.Ctx, table domain.Table, filter interface{}) error {
	if !im.checkIndex {
		return nil
	}
	res := im.client.Database(im.client.DbName).RunCommand(c, bson.D{
		{Key: "explain", Value: bson.D{
			{Key: "find", Value: string(table)},
			{Key: "filter", Value: filter},
		}},
		{Key: "verbosity", Value: "queryPlanner"},
	})

	var plan bson.M
	if err := res.Decode(&plan); err != nil {
		c.WithField("err", err).Warn("explain decode failed")
		return nil
	}
	// the plan layout differs between server versions, a text search is enough
	if strings.Contains(fmt.Sprint(plan), "COLLSCAN") {
		c.WithFields(log.Fields{"table": table, "filter": filter}).Warn("COLLSCAN")
		return ErrCollScan
	}
	return nil
}
