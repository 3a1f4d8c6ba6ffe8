package quotes_test

import (
	"errors"
	"fmt"
	"testing"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := quotes.Errorf(quotes.ENOTFOUND, "category %q not found", "test")

	assert.Equal(t, quotes.ENOTFOUND, quotes.ErrorCode(err))
	assert.Equal(t, "category \"test\" not found", quotes.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, quotes.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, quotes.EINTERNAL, quotes.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("insert: %w", quotes.Errorf(quotes.ECONFLICT, "duplicate record"))

	assert.Equal(t, quotes.ECONFLICT, quotes.ErrorCode(err))
	assert.Equal(t, "duplicate record", quotes.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, quotes.ErrorMessage(nil))
}
