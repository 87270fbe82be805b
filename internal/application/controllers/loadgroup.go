package controllers

import (
	"context"
	"sync"
)

// Source is one page-mount fetch: the primary list or a cross-referenced
// lookup needed to render labels.
type Source struct {
	Name string
	Load func(ctx context.Context) error
}

// LoadAll runs the sources concurrently and waits for all of them.
// Each failure lands in its own slot of the returned map; a failed
// source never blocks the others.
func LoadAll(ctx context.Context, sources ...Source) map[string]error {
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		errs = make(map[string]error)
	)

	for _, src := range sources {
		wg.Add(1)
		go func(src Source) {
			defer wg.Done()
			if err := src.Load(ctx); err != nil {
				mu.Lock()
				errs[src.Name] = err
				mu.Unlock()
			}
		}(src)
	}

	wg.Wait()
	return errs
}
