package portfolio

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestAssetCacheTTL(t *testing.T) {
	loads := 0
	c := NewAssetCache(time.Minute, func() (BlogAsset, error) {
		loads++
		return BlogAsset{Name: "plot", Hash: "abc"}, nil
	})
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		a, err := c.Get()
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if a.Name != "plot" {
			t.Errorf("Name = %q, want plot", a.Name)
		}
	}
	if loads != 1 {
		t.Fatalf("loads = %d, want 1", loads)
	}

	now = now.Add(time.Minute + time.Second)
	if _, err := c.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loads != 2 {
		t.Fatalf("loads after TTL = %d, want 2", loads)
	}
}

func TestAssetCacheInvalidate(t *testing.T) {
	loads := 0
	c := NewAssetCache(time.Hour, func() (BlogAsset, error) {
		loads++
		return BlogAsset{}, nil
	})
	c.Get()
	c.Invalidate()
	c.Get()
	if loads != 2 {
		t.Fatalf("loads = %d, want 2", loads)
	}
}

func TestAssetCacheDoesNotCacheErrors(t *testing.T) {
	fail := true
	c := NewAssetCache(time.Hour, func() (BlogAsset, error) {
		if fail {
			return BlogAsset{}, errors.New("missing")
		}
		return BlogAsset{Name: "plot"}, nil
	})
	if _, err := c.Get(); err == nil {
		t.Fatal("expected error")
	}
	fail = false
	a, err := c.Get()
	if err != nil {
		t.Fatalf("Get after recovery: %v", err)
	}
	if a.Name != "plot" {
		t.Errorf("Name = %q, want plot", a.Name)
	}
}

func TestAssetCacheConcurrentGet(t *testing.T) {
	var mu sync.Mutex
	loads := 0
	c := NewAssetCache(time.Hour, func() (BlogAsset, error) {
		mu.Lock()
		loads++
		mu.Unlock()
		time.Sleep(5 * time.Millisecond)
		return BlogAsset{Name: "plot"}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Get(); err != nil {
				t.Errorf("Get: %v", err)
			}
		}()
	}
	wg.Wait()
	if loads != 1 {
		t.Fatalf("loads = %d, want 1", loads)
	}
}
