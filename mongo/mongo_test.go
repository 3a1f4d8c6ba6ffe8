package mongo_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	quotesmongo "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded/mongo"
	"github.com/stretchr/testify/require"
)

// testURIEnv points the integration tests at a running MongoDB instance,
// e.g. QUOTES_MONGO_TEST_URI=mongodb://localhost:27017. Tests are skipped
// when it is unset.
const testURIEnv = "QUOTES_MONGO_TEST_URI"

// MustOpenDB opens a connection to the test server with an isolated
// database per test, or skips the test if no server is configured.
func MustOpenDB(tb testing.TB) *quotesmongo.DB {
	tb.Helper()

	uri := os.Getenv(testURIEnv)
	if uri == "" {
		tb.Skipf("set %s to run MongoDB integration tests", testURIEnv)
	}

	db := quotesmongo.NewDB(uri).WithDatabase(fmt.Sprintf("quotes_test_%d", time.Now().UnixNano()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(tb, db.Open(ctx))

	tb.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Categories().Database().Drop(ctx)
		_ = db.Close(ctx)
	})

	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("connects and pings", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		require.NotNil(t, db.Categories())
		require.NotNil(t, db.Quotes())
	})

	t.Run("returns error for unreachable server", func(t *testing.T) {
		t.Parallel()

		db := quotesmongo.NewDB("mongodb://127.0.0.1:1")
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		err := db.Open(ctx)
		require.Error(t, err)
	})
}
