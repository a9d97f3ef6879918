// Package retry retries operations that fail with transient errors, waiting
// with exponential backoff between attempts.
//
// The check command uses it to ride out a PostgreSQL server that is still
// starting up or briefly refusing connections:
//
//	executor := retry.NewExecutor(retry.NewConnectionClassifier(), retry.NewExponentialBackoff(3))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return pool.Ping(ctx)
//	})
package retry
