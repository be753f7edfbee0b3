package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for batch operations.
var (
	ErrReadPage    = errors.New("failed to read markdown page")
	ErrWritePage   = errors.New("failed to write HTML page")
	ErrPagesFailed = errors.New("some pages failed to build")
)

// PageConverter is the interface for the page conversion service.
type PageConverter interface {
	Convert(ctx context.Context, input md2site.Input) (*md2site.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*md2site.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire(ctx context.Context) (PageConverter, error)
	Release(PageConverter)
	Size() int
}

// poolAdapter exposes a md2site.ConverterPool as a Pool.
type poolAdapter struct {
	pool *md2site.ConverterPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

func (a *poolAdapter) Acquire(ctx context.Context) (PageConverter, error) {
	conv, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release panics when given a converter the pool did not hand out.
func (a *poolAdapter) Release(c PageConverter) {
	conv, ok := c.(*md2site.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

// PageResult holds the outcome of a single page build.
type PageResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Err        error
	Duration   time.Duration
}

// buildBatch processes pages concurrently using the converter pool.
// Results keep the order of pages. done is called once per page, from
// the worker goroutines.
func buildBatch(ctx context.Context, pool Pool, pages []PageToBuild, done func(PageResult)) []PageResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(pages) {
		concurrency = len(pages)
	}

	results := make([]PageResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire(ctx)
			if err != nil {
				// No converter for this worker, fail its share of the jobs
				for idx := range jobs {
					results[idx] = PageResult{InputPath: pages[idx].InputPath, Err: err}
					done(results[idx])
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = PageResult{
						InputPath: pages[idx].InputPath,
						Err:       ctx.Err(),
					}
				} else {
					results[idx] = buildPage(ctx, conv, pages[idx])
				}
				done(results[idx])
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage converts a single page and writes it atomically.
func buildPage(ctx context.Context, conv PageConverter, p PageToBuild) PageResult {
	start := time.Now()
	result := PageResult{
		InputPath:  p.InputPath,
		OutputPath: p.OutputPath,
	}

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadPage, err)
		result.Duration = time.Since(start)
		return result
	}

	page, err := conv.Convert(ctx, md2site.Input{
		Markdown:   string(content),
		SourcePath: p.InputPath,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Title = page.Title

	if err := fileutil.WriteFileAtomic(p.OutputPath, page.HTML); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrWritePage, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of built and failed pages.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies built and failed pages.
func countResults(results []PageResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}
