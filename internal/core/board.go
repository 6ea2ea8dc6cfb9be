package core

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Board holds the listings shown to the user. Every Refresh takes a new,
// strictly increasing token; a fetch only replaces the snapshot if no newer
// refresh has already landed.
type Board struct {
	logs    *zap.SugaredLogger
	fetcher ListingFetcher
	notify  func(token uint64)

	mu       sync.Mutex
	token    uint64
	snapshot Snapshot
	loaded   bool
}

func NewBoard(logger *zap.SugaredLogger, fetcher ListingFetcher, notify func(token uint64)) *Board {
	return &Board{
		logs:    logger,
		fetcher: fetcher,
		notify:  notify,
	}
}

// Refresh bumps the token and re-reads the listings. On failure the previous
// snapshot stays in place and the error is returned.
func (b *Board) Refresh(ctx context.Context) (Snapshot, error) {
	b.mu.Lock()
	b.token++
	token := b.token
	b.mu.Unlock()

	if b.notify != nil {
		b.notify(token)
	}

	listings, err := b.fetcher.FetchListings(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("refresh listings: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if token > b.snapshot.Token {
		b.snapshot = Snapshot{Token: token, Listings: listings}
		b.loaded = true
	}

	return b.current(), nil
}

// Signal starts a refresh in the background. It is the completion callback
// handed to the action flows.
func (b *Board) Signal() {
	go func() {
		if _, err := b.Refresh(context.Background()); err != nil {
			b.logs.Errorw("background refresh failed", "error", err)
		}
	}()
}

// Current returns the last good snapshot, fetching one first if there is none.
func (b *Board) Current(ctx context.Context) (Snapshot, error) {
	b.mu.Lock()
	loaded := b.loaded
	b.mu.Unlock()

	if !loaded {
		return b.Refresh(ctx)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current(), nil
}

func (b *Board) Find(id uint64) (Listing, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, l := range b.snapshot.Listings {
		if l.ID == id {
			return l, true
		}
	}
	return Listing{}, false
}

func (b *Board) Token() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.token
}

func (b *Board) current() Snapshot {
	return Snapshot{
		Token:    b.snapshot.Token,
		Listings: slices.Clone(b.snapshot.Listings),
	}
}
