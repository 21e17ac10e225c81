package store

import "context"

// StubStore is an in-memory Store for tests.
type StubStore struct {
	baseline []byte
	actuals  []byte
}

func NewStubStore() *StubStore {
	return &StubStore{}
}

func (s *StubStore) SaveBaseline(ctx context.Context, data []byte) error {
	s.baseline = append([]byte(nil), data...)
	return nil
}

func (s *StubStore) LoadBaseline(ctx context.Context) ([]byte, error) {
	if s.baseline == nil {
		return nil, ErrNoBaseline
	}
	return s.baseline, nil
}

func (s *StubStore) SaveActuals(ctx context.Context, data []byte) error {
	s.actuals = append([]byte(nil), data...)
	return nil
}

func (s *StubStore) LoadActuals(ctx context.Context) ([]byte, error) {
	if s.actuals == nil {
		return nil, ErrNoActuals
	}
	return s.actuals, nil
}

func (s *StubStore) Reset(ctx context.Context) error {
	s.baseline = nil
	s.actuals = nil
	return nil
}
