package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValues() {
	c := WithValues(WithValue(Background(), "wallet", "0xabc"), map[string]interface{}{
		"listingId": "l-1",
		"tokenId":   "7",
	})
	ts.Equal("0xabc", c.Value("wallet"))
	ts.Equal("l-1", c.Value("listingId"))
	ts.Equal("7", c.Value("tokenId"))
}

func (ts *testsuite) TestWithCancel() {
	c, cancel := WithCancel(WithValue(Background(), "wallet", "0xabc"))
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	select {
	case <-c.Done():
	case <-time.After(time.Second):
		ts.Fail("not cancelled")
	}
	ts.Equal(context.Canceled, c.Err())
	ts.Equal("0xabc", c.Value("wallet"))
}

func (ts *testsuite) TestWithTimeout() {
	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()

	<-c.Done()
	ts.Equal(context.DeadlineExceeded, c.Err())
}

func (ts *testsuite) TestDetachIgnoresParentCancel() {
	parent, cancel := WithCancel(WithValue(Background(), "listingId", "l-1"))
	cancel()
	ts.Error(parent.Err())

	detached := Detach(parent)
	ts.NoError(detached.Err())
	ts.Nil(detached.Value("listingId"))
}

func (ts *testsuite) TestWithLogFieldsKeepsValues() {
	parent := WithValue(Background(), "foo", "bar")
	c := WithLogFields(parent, map[string]interface{}{"step": "mint"})
	ts.Equal("bar", c.Value("foo"))
	ts.Nil(c.Value("step"))
}
