package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"SignalBoard/internal/model"
)

func fixedSeries() model.Series {
	return model.Series{{Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Open: 1, High: 1, Low: 1, Close: 1}}
}

func TestMemoryCache_HitWithinTTL(t *testing.T) {
	c := NewMemoryCache()
	calls := 0
	compute := func(context.Context) (model.Series, error) {
		calls++
		return fixedSeries(), nil
	}
	for i := 0; i < 3; i++ {
		if _, err := c.GetOrCompute(context.Background(), "k", time.Hour, compute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 compute, got %d", calls)
	}
}

func TestMemoryCache_Expires(t *testing.T) {
	c := NewMemoryCache()
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	calls := 0
	compute := func(context.Context) (model.Series, error) {
		calls++
		return fixedSeries(), nil
	}
	c.GetOrCompute(context.Background(), "k", time.Hour, compute)
	now = now.Add(59 * time.Minute)
	c.GetOrCompute(context.Background(), "k", time.Hour, compute)
	if calls != 1 {
		t.Fatalf("expected cached value before expiry, got %d computes", calls)
	}
	now = now.Add(2 * time.Minute)
	c.GetOrCompute(context.Background(), "k", time.Hour, compute)
	if calls != 2 {
		t.Errorf("expected recompute after expiry, got %d computes", calls)
	}
}

func TestMemoryCache_DoesNotStoreFailures(t *testing.T) {
	c := NewMemoryCache()
	boom := errors.New("boom")
	_, err := c.GetOrCompute(context.Background(), "k", time.Hour, func(context.Context) (model.Series, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected compute error, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("expected no stored entries, got %d", c.Len())
	}
}

func TestMemoryCache_KeysAreIndependent(t *testing.T) {
	c := NewMemoryCache()
	calls := 0
	compute := func(context.Context) (model.Series, error) {
		calls++
		return fixedSeries(), nil
	}
	c.GetOrCompute(context.Background(), Key("yahoo", "TSLA", "1Y"), time.Hour, compute)
	c.GetOrCompute(context.Background(), Key("yahoo", "TSLA", "2Y"), time.Hour, compute)
	if calls != 2 {
		t.Errorf("expected 2 computes for distinct keys, got %d", calls)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d", c.Len())
	}
}
