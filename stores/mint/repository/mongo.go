package repository

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
	"github.com/Beat1ngHeart/Custom-NFT/domain/mint"
	"github.com/Beat1ngHeart/Custom-NFT/service/query"
)

type mongoRepo struct {
	q query.Mongo
}

// NewMongoRepo stores one record per listing in domain.TableMintRecords
func NewMongoRepo(c ctx.Ctx, q query.Mongo) (mint.Repository, error) {
	err := q.EnsureIndexes(c, domain.TableMintRecords,
		query.Index{Key: "listingId", Unique: true},
		query.Index{Key: "txHash"},
		query.Index{Key: "status"},
	)
	if err != nil {
		return nil, err
	}
	return &mongoRepo{q}, nil
}

func (r *mongoRepo) Upsert(c ctx.Ctx, rec *mint.Record) error {
	selector := bson.M{"listingId": rec.ListingId}
	if err := r.q.Upsert(c, domain.TableMintRecords, selector, rec); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": rec.ListingId,
		}).Error("failed to query.Upsert")
		return err
	}
	return nil
}

func (r *mongoRepo) findOne(c ctx.Ctx, selector bson.M) (*mint.Record, error) {
	res := mint.Record{}
	err := r.q.FindOne(c, domain.TableMintRecords, selector, &res)
	if errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to query.FindOne")
		return nil, err
	}
	return &res, nil
}

func (r *mongoRepo) FindOne(c ctx.Ctx, id listing.Id) (*mint.Record, error) {
	return r.findOne(c, bson.M{"listingId": id})
}

func (r *mongoRepo) FindByTxHash(c ctx.Ctx, hash domain.TxHash) (*mint.Record, error) {
	// hashes are stored the way common.Hash.Hex prints them
	return r.findOne(c, bson.M{"txHash": domain.TxHash(strings.ToLower(string(hash)))})
}

func (r *mongoRepo) FindInProgress(c ctx.Ctx) ([]*mint.Record, error) {
	selector := bson.M{"status": bson.M{"$in": []mint.Status{mint.StatusSubmitted, mint.StatusConfirming}}}
	res := []*mint.Record{}
	if err := r.q.Find(c, domain.TableMintRecords, selector, "updatedAt", &res); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to query.Find")
		return nil, err
	}
	return res, nil
}
