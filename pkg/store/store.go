package store

import (
	"context"
	"errors"
)

var (
	ErrNoBaseline = errors.New("no baseline stored")
	ErrNoActuals  = errors.New("no actuals stored")
)

// Store persists the last-uploaded baseline and actuals so a session can be
// resumed without re-upload. A save fully replaces the previous copy;
// Reset clears both.
type Store interface {
	SaveBaseline(ctx context.Context, data []byte) error
	LoadBaseline(ctx context.Context) ([]byte, error)
	SaveActuals(ctx context.Context, data []byte) error
	LoadActuals(ctx context.Context) ([]byte, error)
	Reset(ctx context.Context) error
}
