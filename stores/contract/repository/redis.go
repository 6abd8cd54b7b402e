package repository

import (
	"github.com/gomodule/redigo/redis"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/contract"
	"github.com/Beat1ngHeart/Custom-NFT/domain/keys"
)

type redisRepo struct {
	pool *redis.Pool
	key  string
}

func NewRedisRepo(pool *redis.Pool) contract.Repository {
	return &redisRepo{pool, keys.ContractAddressKey}
}

func (r *redisRepo) Get(c ctx.Ctx) (domain.Address, error) {
	conn, err := r.pool.GetContext(c)
	if err != nil {
		c.WithField("err", err).Error("pool.GetContext failed")
		return "", err
	}
	defer conn.Close()

	addr, err := redis.String(conn.Do("GET", r.key))
	if err == redis.ErrNil {
		return "", domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("redis GET failed")
		return "", err
	}
	return domain.Address(addr), nil
}

func (r *redisRepo) Set(c ctx.Ctx, addr domain.Address) error {
	conn, err := r.pool.GetContext(c)
	if err != nil {
		c.WithField("err", err).Error("pool.GetContext failed")
		return err
	}
	defer conn.Close()

	if _, err := conn.Do("SET", r.key, addr.ToLowerStr()); err != nil {
		c.WithField("err", err).Error("redis SET failed")
		return err
	}
	return nil
}
