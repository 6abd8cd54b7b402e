package repository

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gomodule/redigo/redis"
	"golang.org/x/xerrors"

	"github.com/Beat1ngHeart/Custom-NFT/base/backoff"
	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/goroutine"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/base/metrics"
	"github.com/Beat1ngHeart/Custom-NFT/domain/keys"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
)

const (
	maxUpdateRetries = 5

	resubscribeStart = 100 * time.Millisecond
	resubscribeLimit = 10 * time.Second
)

var (
	// ErrUpdateConflict is returned when every Update attempt lost the race against another writer
	ErrUpdateConflict = xerrors.New("listing set changed concurrently")

	met = metrics.New("listing.repository")
)

// Dialer opens a dedicated connection for SUBSCRIBE
type Dialer func() (redis.Conn, error)

type redisRepo struct {
	pool    *redis.Pool
	dial    Dialer
	key     string
	channel string
}

// NewRedisRepo keeps the set as one json array under keys.ListingsKey and
// announces every write on keys.ListingsChannel
func NewRedisRepo(pool *redis.Pool, dial Dialer) listing.Repository {
	return &redisRepo{
		pool:    pool,
		dial:    dial,
		key:     keys.ListingsKey,
		channel: keys.ListingsChannel,
	}
}

func (r *redisRepo) conn(c ctx.Ctx) (redis.Conn, error) {
	conn, err := r.pool.GetContext(c)
	if err != nil {
		met.BumpSum("getconn.err", 1)
		c.WithField("err", err).Error("pool.GetContext failed")
		return nil, err
	}
	return conn, nil
}

func (r *redisRepo) Read(c ctx.Ctx) ([]*listing.Listing, error) {
	conn, err := r.conn(c)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return r.read(c, conn)
}

func (r *redisRepo) read(c ctx.Ctx, conn redis.Conn) ([]*listing.Listing, error) {
	data, err := redis.Bytes(conn.Do("GET", r.key))
	if err == redis.ErrNil {
		return []*listing.Listing{}, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": r.key}).Error("redis GET failed")
		return nil, err
	}
	return decode(data)
}

func (r *redisRepo) WriteAll(c ctx.Ctx, listings []*listing.Listing) error {
	data, err := encode(listings)
	if err != nil {
		return err
	}

	conn, err := r.conn(c)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.Do("SET", r.key, data); err != nil {
		c.WithFields(log.Fields{"err": err, "key": r.key}).Error("redis SET failed")
		return err
	}
	r.publish(c, conn)
	return nil
}

// publish failures are only logged, the periodic resync catches the subscribers up
func (r *redisRepo) publish(c ctx.Ctx, conn redis.Conn) {
	if _, err := conn.Do("PUBLISH", r.channel, "1"); err != nil {
		met.BumpSum("publish.err", 1)
		c.WithFields(log.Fields{"err": err, "channel": r.channel}).Warn("redis PUBLISH failed")
	}
}

func (r *redisRepo) Update(c ctx.Ctx, m listing.Mutation) ([]*listing.Listing, error) {
	conn, err := r.conn(c)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		if err := c.Err(); err != nil {
			return nil, err
		}
		if _, err := conn.Do("WATCH", r.key); err != nil {
			c.WithField("err", err).Error("redis WATCH failed")
			return nil, err
		}

		current, err := r.read(c, conn)
		if err != nil {
			conn.Do("UNWATCH")
			return nil, err
		}

		next, changed, err := m(current)
		if err != nil || !changed {
			conn.Do("UNWATCH")
			if err != nil {
				return nil, err
			}
			return current, nil
		}

		data, err := encode(next)
		if err != nil {
			conn.Do("UNWATCH")
			return nil, err
		}

		conn.Send("MULTI")
		conn.Send("SET", r.key, data)
		conn.Send("PUBLISH", r.channel, "1")
		_, err = redis.Values(conn.Do("EXEC"))
		if err == redis.ErrNil {
			// the key was written by someone else between WATCH and EXEC
			met.BumpSum("update.conflict", 1)
			c.WithField("attempt", attempt).Info("listing update conflict, retrying")
			continue
		} else if err != nil {
			c.WithField("err", err).Error("redis EXEC failed")
			return nil, err
		}
		return next, nil
	}
	return nil, ErrUpdateConflict
}

func (r *redisRepo) subscribe(c ctx.Ctx) (redis.PubSubConn, error) {
	conn, err := r.dial()
	if err != nil {
		c.WithField("err", err).Error("dial subscriber failed")
		return redis.PubSubConn{}, err
	}

	psc := redis.PubSubConn{Conn: conn}
	if err := psc.Subscribe(r.channel); err != nil {
		conn.Close()
		c.WithFields(log.Fields{"err": err, "channel": r.channel}).Error("redis SUBSCRIBE failed")
		return redis.PubSubConn{}, err
	}
	return psc, nil
}

// receive delivers messages until the subscription is dropped. It reports
// whether the connection failed rather than being unsubscribed.
func receive(c ctx.Ctx, psc redis.PubSubConn, handler func()) bool {
	for {
		switch v := psc.Receive().(type) {
		case redis.Message:
			handler()
		case redis.Subscription:
			if v.Count == 0 {
				return false
			}
		case error:
			c.WithField("err", v).Info("listing subscription ended")
			return true
		}
	}
}

// Subscribe keeps a subscription open until c ends or the returned func is
// called. A lost connection is dialed again with backoff and handler runs once
// after every resubscribe to cover what was published in between.
func (r *redisRepo) Subscribe(c ctx.Ctx, handler func()) (func(), error) {
	psc, err := r.subscribe(c)
	if err != nil {
		return nil, err
	}

	lc, cancel := ctx.WithCancel(c)
	var (
		mu   sync.Mutex
		once sync.Once
	)
	unsubscribe := func() {
		once.Do(func() {
			cancel()
			mu.Lock()
			defer mu.Unlock()
			psc.Unsubscribe()
			psc.Close()
		})
	}

	goroutine.RecoverableGo(func() {
		<-lc.Done()
		unsubscribe()
	})

	goroutine.RecoverableGo(func() {
		current := psc
		bo := backoff.NewExponential(resubscribeStart, resubscribeLimit)
		for receive(lc, current, handler) && lc.Err() == nil {
			current.Close()
			met.BumpSum("subscribe.lost", 1)

			for {
				if err := bo.Backoff(lc); err != nil {
					return
				}
				next, err := r.subscribe(lc)
				if err != nil {
					lc.WithField("attempt", bo.Attempts()).Warn("resubscribe failed")
					continue
				}

				mu.Lock()
				if lc.Err() != nil {
					mu.Unlock()
					next.Close()
					return
				}
				psc = next
				mu.Unlock()
				current = next
				break
			}

			bo.Reset()
			lc.Info("listing subscription restored")
			handler()
		}
	})

	return unsubscribe, nil
}

func encode(listings []*listing.Listing) ([]byte, error) {
	if listings == nil {
		listings = []*listing.Listing{}
	}
	return json.Marshal(listings)
}

func decode(data []byte) ([]*listing.Listing, error) {
	res := []*listing.Listing{}
	if len(data) == 0 {
		return res, nil
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, xerrors.Errorf("decode listings: %w", err)
	}
	return res, nil
}
