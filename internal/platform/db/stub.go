package db

import "context"

// StubTxManager runs the given function without a real transaction. Tests use
// it so service logic can be exercised against stub repositories.
type StubTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ TxManager = (*StubTxManager)(nil)

func (s *StubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.RunInTxFunc != nil {
		return s.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
