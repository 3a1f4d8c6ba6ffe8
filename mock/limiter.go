package mock

import (
	"context"

	quotes "github.com/shiwani-kadu/quotes-crawler-mongodb-multi-threaded"
)

var _ quotes.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of quotes.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
