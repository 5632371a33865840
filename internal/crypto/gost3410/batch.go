package gost3410

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchItem is one signature to check in VerifyBatch.
type BatchItem struct {
	Key       *PublicKey
	Digest    []byte
	Signature *Signature
}

// BatchError names the first item of a batch found invalid.
type BatchError struct {
	Index int
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("gost3410: batch item %d: %v", e.Index, ErrInvalidSignature)
}

func (e *BatchError) Unwrap() error {
	return ErrInvalidSignature
}

// VerifyBatch checks every item in parallel, at most GOMAXPROCS at a time.
// Items share nothing but their read-only curve parameters, so each goroutine
// owns its points and scratch. The first failure cancels the remaining work
// and is returned as a *BatchError.
func VerifyBatch(ctx context.Context, items []BatchItem) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range items {
		item := items[i]
		index := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !Verify(item.Key, item.Digest, item.Signature) {
				return &BatchError{Index: index}
			}
			return nil
		})
	}
	return g.Wait()
}
