package main

// Notes:
// - convertBatch/convertTarget: we use fake hooks and renderers to test
//   ordering, step sequencing, error wrapping and cancellation. Real hooks
//   are exercised end to end in main_test.go.
// - printResultsWithWriter: we test quiet, verbose and summary output.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	html2haml "github.com/alnah/go-html2haml"
	"github.com/alnah/go-html2haml/internal/pipeline"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake hooks and renderer
// ---------------------------------------------------------------------------

// recordingHooks appends a marker per hook and records the HTML it saw.
type recordingHooks struct {
	mu      sync.Mutex
	target  bool
	preErr  error
	postErr error
	seen    []string
}

func (h *recordingHooks) IsTarget(html2haml.Document) bool {
	return h.target
}

func (h *recordingHooks) PreProcess(_ context.Context, doc html2haml.Document) (html2haml.Document, error) {
	if h.preErr != nil {
		return html2haml.Document{}, h.preErr
	}
	doc.HTML += "|pre"
	return doc, nil
}

func (h *recordingHooks) PostProcess(_ context.Context, doc html2haml.Document, a html2haml.Assets) (html2haml.Document, error) {
	if h.postErr != nil {
		return html2haml.Document{}, h.postErr
	}
	h.mu.Lock()
	h.seen = append(h.seen, doc.HTML)
	h.mu.Unlock()
	doc.HTML += "|post:" + a.Manifest
	return doc, nil
}

// stubRenderer returns the template path as content.
type stubRenderer struct {
	err error
}

func (r *stubRenderer) Render(_ context.Context, page pipeline.Page) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if page.Haml {
		return "haml:" + page.Template, nil
	}
	return "page:" + page.Template, nil
}

// markerInjector appends the tags it was asked to inject.
type markerInjector struct{}

func (markerInjector) InjectTags(_ context.Context, htmlContent string, tags pipeline.AssetTags) string {
	out := htmlContent + "|inject:" + strings.Join(tags.Stylesheets, ",") + ";" + strings.Join(tags.Scripts, ",")
	if tags.ScriptsInHead {
		out += ";head"
	}
	return out
}

func newTestParams(t *testing.T, hooks Hooks, renderer PageRenderer) *conversionParams {
	t.Helper()
	return &conversionParams{
		hooks:     hooks,
		renderer:  renderer,
		injector:  markerInjector{},
		assets:    html2haml.Assets{Manifest: "m", CSS: []string{"a.css"}, JS: []string{"b.js"}},
		outputDir: t.TempDir(),
	}
}

func testDoc(name string, inject html2haml.InjectMode) html2haml.Document {
	return html2haml.Document{
		OutputName: name,
		Target:     html2haml.OutputTarget{Filename: name, Inject: inject, Template: name + ".html"},
	}
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestConvertTarget - Step sequencing
// ---------------------------------------------------------------------------

func TestConvertTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		inject html2haml.InjectMode
		want   string
	}{
		{"inject true", html2haml.InjectTrue, "page:a.html|pre|inject:a.css;b.js|post:m"},
		{"inject head", html2haml.InjectHead, "page:a.html|pre|inject:a.css;b.js;head|post:m"},
		{"inject body", html2haml.InjectBody, "page:a.html|pre|inject:a.css;b.js|post:m"},
		{"no injection", html2haml.InjectNone, "page:a.html|pre|post:m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := newTestParams(t, &recordingHooks{}, &stubRenderer{})
			result := convertTarget(context.Background(), testDoc("a", tt.inject), params)
			if result.Err != nil {
				t.Fatalf("unexpected error: %v", result.Err)
			}

			wantPath := filepath.Join(params.outputDir, "a")
			if result.OutputPath != wantPath {
				t.Errorf("OutputPath = %q, want %q", result.OutputPath, wantPath)
			}
			if got := readOutput(t, wantPath); got != tt.want {
				t.Errorf("written content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertTarget_RendersHamlForTargets(t *testing.T) {
	t.Parallel()

	params := newTestParams(t, &recordingHooks{target: true}, &stubRenderer{})
	result := convertTarget(context.Background(), testDoc("a", html2haml.InjectNone), params)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if got, want := readOutput(t, result.OutputPath), "haml:a.html|pre|post:m"; got != want {
		t.Errorf("written content = %q, want %q", got, want)
	}
}

func TestConvertTarget_UsesRenamedOutput(t *testing.T) {
	t.Parallel()

	params := newTestParams(t, renamingHooks{}, &stubRenderer{})
	result := convertTarget(context.Background(), testDoc("index.html", html2haml.InjectTrue), params)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if filepath.Base(result.OutputPath) != "index.haml" {
		t.Errorf("OutputPath = %q, want index.haml", result.OutputPath)
	}
}

// renamingHooks changes the output name in PostProcess.
type renamingHooks struct{}

func (renamingHooks) IsTarget(html2haml.Document) bool {
	return true
}

func (renamingHooks) PreProcess(_ context.Context, doc html2haml.Document) (html2haml.Document, error) {
	return doc, nil
}

func (renamingHooks) PostProcess(_ context.Context, doc html2haml.Document, _ html2haml.Assets) (html2haml.Document, error) {
	doc.OutputName = "index.haml"
	return doc, nil
}

func TestConvertTarget_Errors(t *testing.T) {
	t.Parallel()

	errStep := errors.New("step failed")

	tests := []struct {
		name     string
		hooks    *recordingHooks
		renderer *stubRenderer
		wantMsg  string
	}{
		{"render", &recordingHooks{}, &stubRenderer{err: errStep}, "rendering a"},
		{"pre-process", &recordingHooks{preErr: errStep}, &stubRenderer{}, "pre-processing"},
		{"post-process", &recordingHooks{postErr: errStep}, &stubRenderer{}, "post-processing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := newTestParams(t, tt.hooks, tt.renderer)
			result := convertTarget(context.Background(), testDoc("a", html2haml.InjectTrue), params)

			if !errors.Is(result.Err, errStep) {
				t.Fatalf("Err = %v, want wrapped errStep", result.Err)
			}
			if !strings.Contains(result.Err.Error(), tt.wantMsg) {
				t.Errorf("Err = %q, want it to mention %q", result.Err, tt.wantMsg)
			}
			if _, err := os.Stat(filepath.Join(params.outputDir, "a")); !os.IsNotExist(err) {
				t.Error("output written despite failure")
			}
		})
	}
}

func TestConvertTarget_WriteError(t *testing.T) {
	t.Parallel()

	params := newTestParams(t, &recordingHooks{}, &stubRenderer{})
	blocker := filepath.Join(params.outputDir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	params.outputDir = blocker // a file, not a directory

	result := convertTarget(context.Background(), testDoc("a", html2haml.InjectTrue), params)
	if !errors.Is(result.Err, ErrWriteOutput) {
		t.Errorf("Err = %v, want ErrWriteOutput", result.Err)
	}
}

func TestConvertTarget_Duration(t *testing.T) {
	t.Parallel()

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	params := newTestParams(t, &recordingHooks{}, &stubRenderer{})
	params.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	result := convertTarget(context.Background(), testDoc("a", html2haml.InjectNone), params)
	if result.Duration <= 0 {
		t.Errorf("Duration = %v, want > 0", result.Duration)
	}
}

// ---------------------------------------------------------------------------
// TestConvertBatch - Worker pool
// ---------------------------------------------------------------------------

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		params := newTestParams(t, &recordingHooks{}, &stubRenderer{})
		if got := convertBatch(context.Background(), nil, 4, params); got != nil {
			t.Errorf("convertBatch(nil) = %v, want nil", got)
		}
	})

	t.Run("results keep input order", func(t *testing.T) {
		t.Parallel()

		hooks := &recordingHooks{}
		params := newTestParams(t, hooks, &stubRenderer{})
		docs := []html2haml.Document{
			testDoc("a", html2haml.InjectTrue),
			testDoc("b", html2haml.InjectTrue),
			testDoc("c", html2haml.InjectTrue),
			testDoc("d", html2haml.InjectTrue),
		}

		results := convertBatch(context.Background(), docs, 3, params)

		if len(results) != len(docs) {
			t.Fatalf("got %d results, want %d", len(results), len(docs))
		}
		for i, r := range results {
			if r.Err != nil {
				t.Errorf("results[%d].Err = %v", i, r.Err)
			}
			if r.Target != docs[i].Target.Filename {
				t.Errorf("results[%d].Target = %q, want %q", i, r.Target, docs[i].Target.Filename)
			}
		}
		if len(hooks.seen) != len(docs) {
			t.Errorf("PostProcess ran %d times, want %d", len(hooks.seen), len(docs))
		}
	})

	t.Run("zero workers still runs", func(t *testing.T) {
		t.Parallel()

		params := newTestParams(t, &recordingHooks{}, &stubRenderer{})
		results := convertBatch(context.Background(), []html2haml.Document{testDoc("a", html2haml.InjectNone)}, 0, params)
		if len(results) != 1 || results[0].Err != nil {
			t.Errorf("results = %+v, want one success", results)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		params := newTestParams(t, &recordingHooks{}, &stubRenderer{})
		docs := []html2haml.Document{testDoc("a", html2haml.InjectTrue), testDoc("b", html2haml.InjectTrue)}

		for i, r := range convertBatch(ctx, docs, 2, params) {
			if !errors.Is(r.Err, context.Canceled) {
				t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestPrintResultsWithWriter - Output formatting
// ---------------------------------------------------------------------------

func TestPrintResultsWithWriter(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{Target: "index.html", OutputPath: "out/index.haml", Duration: 1500 * time.Microsecond},
		{Target: "about.html", Err: errors.New("boom")},
	}

	tests := []struct {
		name       string
		quiet      bool
		verbose    bool
		wantStdout []string
		noStdout   []string
	}{
		{"default", false, false, []string{"Created out/index.haml", "1 succeeded, 1 failed"}, nil},
		{"verbose", false, true, []string{"index.html -> out/index.haml (2ms)"}, []string{"Created"}},
		{"quiet", true, false, nil, []string{"Created", "succeeded"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			env := &Environment{Stdout: &stdout, Stderr: &stderr}

			failed := printResultsWithWriter(results, tt.quiet, tt.verbose, env)

			if failed != 1 {
				t.Errorf("failed = %d, want 1", failed)
			}
			if !strings.Contains(stderr.String(), "FAILED about.html: boom") {
				t.Errorf("stderr = %q, want failure line", stderr.String())
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout = %q, want %q", stdout.String(), want)
				}
			}
			for _, unwanted := range tt.noStdout {
				if strings.Contains(stdout.String(), unwanted) {
					t.Errorf("stdout = %q, should not contain %q", stdout.String(), unwanted)
				}
			}
		})
	}
}

func TestPrintResultsWithWriter_SingleResultNoSummary(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	env := &Environment{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	printResultsWithWriter([]ConversionResult{{Target: "a", OutputPath: "a"}}, false, false, env)

	if strings.Contains(stdout.String(), "succeeded") {
		t.Errorf("stdout = %q, want no summary for a single result", stdout.String())
	}
}

// ---------------------------------------------------------------------------
// TestNewBatchError - Failure aggregation
// ---------------------------------------------------------------------------

func TestNewBatchError(t *testing.T) {
	t.Parallel()

	errFirst := errors.New("first")

	if err := newBatchError([]ConversionResult{{Target: "a"}}); err != nil {
		t.Errorf("newBatchError(no failures) = %v, want nil", err)
	}

	err := newBatchError([]ConversionResult{
		{Target: "a"},
		{Target: "b", Err: errFirst},
		{Target: "c", Err: errors.New("second")},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "2 conversion(s) failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "2 conversion(s) failed")
	}
	if !errors.Is(err, errFirst) {
		t.Errorf("error does not unwrap to the first failure")
	}
}
