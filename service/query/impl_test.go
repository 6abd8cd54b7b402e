package query

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/database/mongoclient"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "testdb"
)

type querySuite struct {
	suite.Suite
	im *impl
}

func TestQuerySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skip mongo integration test in short mode")
	}
	if os.Getenv("TEST_MONGO_URI") == "" {
		t.Skip("TEST_MONGO_URI is not set")
	}
	suite.Run(t, new(querySuite))
}

func (q *querySuite) SetupTest() {
	client, err := mongoclient.ConnectMongoClient(mongoclient.Config{
		Uri:        os.Getenv("TEST_MONGO_URI"),
		AuthDBName: "admin",
		DbName:     dbName,
		SetSafe:    true,
	})
	q.Require().NoError(err)
	q.im = New(client, false).(*impl)
	q.Require().NoError(q.im.collection(mockTable).Drop(mockCTX))
}

type dummy struct {
	Dummy  string `bson:"dummy"`
	Update string `bson:"updatekey"`
	Order  int    `bson:"order"`
}

func (q *querySuite) TestUpsertAndFindOne() {
	err := q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, dummy{"a", "v1", 1})
	q.Require().NoError(err)
	err = q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, dummy{"a", "v2", 1})
	q.Require().NoError(err)

	res := dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, &res))
	q.Equal(dummy{"a", "v2", 1}, res)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "b"}, &res))
}

func (q *querySuite) TestFindSorted() {
	for i, k := range []string{"c", "a", "b"} {
		q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": k}, dummy{k, "", i}))
	}

	res := []dummy{}
	q.Require().NoError(q.im.Find(mockCTX, mockTable, bson.M{}, "-order", &res))
	q.Require().Len(res, 3)
	q.Equal([]string{"b", "a", "c"}, []string{res[0].Dummy, res[1].Dummy, res[2].Dummy})

	res = []dummy{}
	q.Require().NoError(q.im.Find(mockCTX, mockTable, bson.M{"order": bson.M{"$gte": 1}}, "dummy", &res))
	q.Require().Len(res, 2)
	q.Equal([]string{"a", "b"}, []string{res[0].Dummy, res[1].Dummy})
}

func (q *querySuite) TestEnsureIndexes() {
	q.Require().NoError(q.im.EnsureIndexes(mockCTX, mockTable, Index{Key: "dummy", Unique: true}, Index{Key: "order"}))
	// creating the same indexes again is a no-op
	q.Require().NoError(q.im.EnsureIndexes(mockCTX, mockTable, Index{Key: "dummy", Unique: true}, Index{Key: "order"}))
}

func TestSortOption(t *testing.T) {
	require.Nil(t, sortOption(""))
	require.Equal(t, bson.D{{Key: "a", Value: 1}}, sortOption("a"))
	require.Equal(t, bson.D{{Key: "b", Value: -1}}, sortOption("-b"))
}
