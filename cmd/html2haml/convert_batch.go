package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	html2haml "github.com/alnah/go-html2haml"
	"github.com/alnah/go-html2haml/internal/fileutil"
	"github.com/alnah/go-html2haml/internal/pipeline"
)

// ErrWriteOutput indicates a generated file could not be written.
var ErrWriteOutput = errors.New("failed to write output file")

// Hooks is the conversion hook pair run around tag injection. IsTarget
// reports whether a document is converted to Haml.
type Hooks interface {
	IsTarget(doc html2haml.Document) bool
	PreProcess(ctx context.Context, doc html2haml.Document) (html2haml.Document, error)
	PostProcess(ctx context.Context, doc html2haml.Document, a html2haml.Assets) (html2haml.Document, error)
}

// PageRenderer renders the source HTML of a target.
type PageRenderer interface {
	Render(ctx context.Context, page pipeline.Page) (string, error)
}

// Compile-time interface implementation checks.
var (
	_ Hooks                = (*html2haml.Converter)(nil)
	_ PageRenderer         = (*pipeline.Renderer)(nil)
	_ pipeline.TagInjector = (*pipeline.TagInjection)(nil)
)

// conversionParams groups parameters shared across targets.
type conversionParams struct {
	hooks     Hooks
	renderer  PageRenderer
	injector  pipeline.TagInjector
	assets    html2haml.Assets
	outputDir string
	basePath  string // custom asset path, for hints
	now       func() time.Time
	logger    *slog.Logger
}

// ConversionResult holds the outcome of a single target.
type ConversionResult struct {
	Target     string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes targets concurrently with up to workers goroutines.
// Results keep the order of docs.
func convertBatch(ctx context.Context, docs []html2haml.Document, workers int, params *conversionParams) []ConversionResult {
	if len(docs) == 0 {
		return nil
	}

	concurrency := max(min(workers, len(docs)), 1)

	results := make([]ConversionResult, len(docs))
	var wg sync.WaitGroup
	jobs := make(chan int, len(docs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						Target: docs[idx].Target.Filename,
						Err:    ctx.Err(),
					}
					continue
				}
				results[idx] = convertTarget(ctx, docs[idx], params)
			}
		}()
	}

	for i := range docs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertTarget renders, injects, converts and writes one target.
func convertTarget(ctx context.Context, doc html2haml.Document, params *conversionParams) ConversionResult {
	now := params.now
	if now == nil {
		now = time.Now
	}
	start := now()
	result := ConversionResult{Target: doc.Target.Filename}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = now().Sub(start)
		return result
	}

	content, err := params.renderer.Render(ctx, pipeline.Page{
		Template: doc.Target.Template,
		Title:    doc.Target.Title,
		Haml:     params.hooks.IsTarget(doc),
	})
	if err != nil {
		return finish(fmt.Errorf("rendering %s: %w", doc.Target.Filename, err))
	}
	doc.HTML = content

	doc, err = params.hooks.PreProcess(ctx, doc)
	if err != nil {
		return finish(fmt.Errorf("pre-processing: %w", err))
	}

	if doc.Target.Inject.Enabled() {
		if params.logger != nil && !pipeline.HasHead(doc.HTML) {
			params.logger.Debug("page has no <head>, injecting one", logKeyTarget, doc.Target.Filename)
		}
		doc.HTML = params.injector.InjectTags(ctx, doc.HTML, pipeline.AssetTags{
			Stylesheets:   params.assets.CSS,
			Scripts:       params.assets.JS,
			ScriptsInHead: doc.Target.Inject == html2haml.InjectHead,
		})
	}

	doc, err = params.hooks.PostProcess(ctx, doc, params.assets)
	if err != nil {
		return finish(fmt.Errorf("post-processing: %w", err))
	}

	result.OutputPath = filepath.Join(params.outputDir, doc.OutputName)
	if err := fileutil.WriteFileAtomic(result.OutputPath, doc.HTML); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	if params.logger != nil {
		params.logger.Debug("target done", logKeyTarget, doc.Target.Filename,
			logKeyOutput, result.OutputPath, logKeyDuration, now().Sub(start))
	}
	return finish(nil)
}

// ResultSummary holds the count of succeeded and failed targets.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed targets.
func countResults(results []ConversionResult) ResultSummary {
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

// printResultsWithWriter outputs conversion results using the provided writers.
// Returns the number of failed targets.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Target, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.Target, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// batchError reports failed targets. It unwraps to the first failure so the
// exit code reflects its cause.
type batchError struct {
	failed int
	first  error
}

func newBatchError(results []ConversionResult) error {
	e := &batchError{}
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if e.first == nil {
			e.first = r.Err
		}
		e.failed++
	}
	if e.failed == 0 {
		return nil
	}
	return e
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", e.failed)
}

func (e *batchError) Unwrap() error {
	return e.first
}
