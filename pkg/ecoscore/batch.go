package ecoscore

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// defaultBatchConcurrency keeps a batch under the service's default rate
// limit of 5 requests per second per key.
const defaultBatchConcurrency = 4

// AssessImpactBatch assesses several products concurrently, with at most
// concurrency requests in flight (the default when concurrency is not
// positive). Results align with reqs by index. The first failure cancels the
// remaining requests and is returned wrapped with the product name.
func (c *Client) AssessImpactBatch(ctx context.Context, reqs []AssessmentRequest, concurrency int) ([]*Assessment, error) {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	results := make([]*Assessment, len(reqs))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, req := range reqs {
		i, req := i, req
		group.Go(func() error {
			result, err := c.AssessImpact(ctx, req)
			if err != nil {
				return fmt.Errorf("%s: %w", req.ProductName, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
