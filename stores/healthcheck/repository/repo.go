package repository

import (
	"time"

	"github.com/gomodule/redigo/redis"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/database/mongoclient"
	hcdomain "github.com/Beat1ngHeart/Custom-NFT/domain/healthcheck"
	"github.com/Beat1ngHeart/Custom-NFT/domain/keys"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mongo *mongoclient.Client
	redis *redis.Pool
}

// New checks the listing store in redis and, when mint records live there, mongo.
// mongo is nil for in-memory mint records.
func New(mongo *mongoclient.Client, redisPool *redis.Pool) hcdomain.HealthCheckRepo {
	return &impl{mongo: mongo, redis: redisPool}
}

// PingDB writes a short lived key to redis, then pings mongo
func (im *impl) PingDB(c ctx.Ctx) error {
	tc, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()

	conn, err := im.redis.GetContext(tc)
	if err != nil {
		c.WithField("err", err).Error("redis pool exhausted or unreachable")
		return err
	}
	defer conn.Close()
	if _, err := conn.Do("SET", keys.RedisKey(keys.PfxHealthCheck, "ping"), time.Now().Unix(), "EX", 30); err != nil {
		c.WithField("err", err).Error("redis write check failed")
		return err
	}

	if im.mongo == nil {
		return nil
	}
	if err := im.mongo.Ping(tc, readpref.Primary()); err != nil {
		c.WithField("err", err).Error("mongo ping failed")
		return err
	}
	return nil
}
