package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain/keys"
	"github.com/Beat1ngHeart/Custom-NFT/service/cache/provider"
	"github.com/Beat1ngHeart/Custom-NFT/service/cache/provider/primitive"
)

type doc struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type cacheSuite struct {
	suite.Suite

	c   ctx.Ctx
	raw provider.Provider
	im  Service
}

func (s *cacheSuite) SetupTest() {
	s.c = ctx.Background()
	s.raw = primitive.NewPrimitive("test", 1)
	s.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "metadata",
		Cache: s.raw,
	})
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(cacheSuite))
}

func (s *cacheSuite) TestGetDecodesPrefixedEntry() {
	out := doc{}
	s.Equal(ErrNotFound, s.im.Get(s.c, "ipfs://bafy/0.json", &out))

	raw, _ := json.Marshal(doc{"Sunrise", "ipfs://bafy/img.png"})
	s.Require().NoError(s.raw.Set(s.c, keys.RedisKey("metadata", "ipfs://bafy/0.json"), raw, time.Minute))

	s.Require().NoError(s.im.Get(s.c, "ipfs://bafy/0.json", &out))
	s.Equal(doc{"Sunrise", "ipfs://bafy/img.png"}, out)
}

func (s *cacheSuite) TestGetCorruptEntry() {
	s.Require().NoError(s.raw.Set(s.c, keys.RedisKey("metadata", "k"), []byte("{"), time.Minute))
	s.Error(s.im.Get(s.c, "k", &doc{}))
}

func (s *cacheSuite) TestSetExpires() {
	s.Require().NoError(s.im.Set(s.c, "k", doc{Name: "Sunrise"}))

	out := doc{}
	s.Require().NoError(s.im.Get(s.c, "k", &out))
	s.Equal("Sunrise", out.Name)

	time.Sleep(1100 * time.Millisecond)
	s.Equal(ErrNotFound, s.im.Get(s.c, "k", &out))
}

func (s *cacheSuite) TestGetByFuncLoadsOnce() {
	calls := 0
	load := func() (interface{}, error) {
		calls++
		return &doc{Name: "Sunrise"}, nil
	}

	for i := 0; i < 3; i++ {
		out := doc{}
		s.Require().NoError(s.im.GetByFunc(s.c, "k", &out, load))
		s.Equal("Sunrise", out.Name)
	}
	s.Equal(1, calls)
}

func (s *cacheSuite) TestGetByFuncGetterFailed() {
	boom := errors.New("gateway timeout")

	err := s.im.GetByFunc(s.c, "k", &doc{}, func() (interface{}, error) { return nil, boom })
	s.Equal(boom, err)
	s.Equal(ErrNotFound, s.im.Get(s.c, "k", &doc{}))
}

func (s *cacheSuite) TestGetByFuncCorruptEntryReloads() {
	s.Require().NoError(s.raw.Set(s.c, keys.RedisKey("metadata", "k"), []byte("{"), time.Minute))

	out := doc{}
	s.Require().NoError(s.im.GetByFunc(s.c, "k", &out, func() (interface{}, error) {
		return &doc{Name: "fresh"}, nil
	}))
	s.Equal("fresh", out.Name)
}

func (s *cacheSuite) TestDefaultTtl() {
	s.Equal(DefaultTtl, New(ServiceConfig{Cache: s.raw}).(*impl).ttl)
}
