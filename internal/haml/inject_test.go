package haml

import "testing"

const defaultSkeleton = "!!! 5\n%html\n  %head\n  %body\n"

func TestInjectAssets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		head     []string
		body     []string
		manifest string
		expected string
	}{
		{
			name:     "default skeleton with head body and manifest",
			doc:      defaultSkeleton,
			head:     []string{`%meta{ :charset => "utf-8" }`, "%title MyApp"},
			body:     []string{`%script{ :src => "a.js" }`},
			manifest: "app.appcache",
			expected: "!!! 5\n" +
				"%html{ :manifest => \"app.appcache\" }\n" +
				"  %head\n" +
				"    %meta{ :charset => \"utf-8\" }\n" +
				"    %title MyApp\n" +
				"  %body\n" +
				"    %script{ :src => \"a.js\" }",
		},
		{
			name:     "head synthesized when missing",
			doc:      "%html\n  %body\n    %p Hi\n",
			head:     []string{`%meta{ :charset => "utf-8" }`},
			expected: "%html\n  %head\n    %meta{ :charset => \"utf-8\" }\n  %body\n    %p Hi\n",
		},
		{
			name:     "header element is not a head",
			doc:      "%html\n  %body\n    %header Top\n",
			head:     []string{`%meta{ :charset => "utf-8" }`},
			expected: "%html\n  %head\n    %meta{ :charset => \"utf-8\" }\n  %body\n    %header Top\n",
		},
		{
			name:     "head lines skipped without body",
			doc:      "%html\n  %head\n",
			head:     []string{"%meta"},
			expected: "%html\n  %head\n",
		},
		{
			name:     "body lines appended without body line",
			doc:      "%html\n  %head\n",
			body:     []string{"%script"},
			expected: "%html\n  %head\n    %script",
		},
		{
			name:     "trailing newlines collapsed before body lines",
			doc:      "%html\n  %head\n  %body\n    %p\n\n\n",
			body:     []string{"%script"},
			expected: "%html\n  %head\n  %body\n    %p\n    %script",
		},
		{
			name:     "indented html reduces child indent",
			doc:      "  %html\n    %head\n    %body\n",
			head:     []string{"%meta"},
			expected: "  %html\n    %head\n      %meta\n    %body\n",
		},
		{
			name:     "tab indentation preserved",
			doc:      "%html\n\t%head\n\t%body\n",
			head:     []string{"%meta"},
			body:     []string{"%script"},
			expected: "%html\n\t%head\n\t\t%meta\n\t%body\n\t\t%script",
		},
		{
			name:     "nothing to inject returns unchanged",
			doc:      defaultSkeleton,
			expected: defaultSkeleton,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := InjectAssets(tt.doc, tt.head, tt.body, tt.manifest)
			if got != tt.expected {
				t.Errorf("InjectAssets() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectAssets_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	head := []string{"%meta"}
	body := []string{"%script"}
	_ = InjectAssets(defaultSkeleton, head, body, "")

	if head[0] != "%meta" || body[0] != "%script" {
		t.Errorf("InjectAssets modified its inputs: head=%q body=%q", head, body)
	}
}

func TestInjectManifest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		manifest string
		expected string
	}{
		{
			name:     "no hash",
			doc:      "!!! 5\n%html\n  %head",
			manifest: "m.appcache",
			expected: "!!! 5\n%html{ :manifest => \"m.appcache\" }\n  %head",
		},
		{
			name:     "existing hash",
			doc:      `%html{ :lang => "en" }`,
			manifest: "m",
			expected: `%html{ :lang => "en", :manifest => "m" }`,
		},
		{
			name:     "empty hash",
			doc:      "%html{}",
			manifest: "m",
			expected: `%html{ :manifest => "m" }`,
		},
		{
			name:     "existing manifest wins",
			doc:      `%html{ :manifest => "old" }`,
			manifest: "new",
			expected: `%html{ :manifest => "old" }`,
		},
		{
			name:     "manifest inside a value is not a manifest",
			doc:      `%html{ :data => "manifest: x" }`,
			manifest: "m",
			expected: `%html{ :data => "manifest: x", :manifest => "m" }`,
		},
		{
			name:     "multi-line hash unchanged",
			doc:      "%html{ :lang => \"en\",\n  :dir => \"ltr\" }",
			manifest: "m",
			expected: "%html{ :lang => \"en\",\n  :dir => \"ltr\" }",
		},
		{
			name:     "indented html unchanged",
			doc:      "  %html\n    %head",
			manifest: "m",
			expected: "  %html\n    %head",
		},
		{
			name:     "uppercase tag",
			doc:      "%HTML",
			manifest: "m",
			expected: `%HTML{ :manifest => "m" }`,
		},
		{
			name:     "trailing whitespace dropped",
			doc:      "%html   ",
			manifest: "m",
			expected: `%html{ :manifest => "m" }`,
		},
		{
			name:     "empty manifest unchanged",
			doc:      "%html",
			manifest: "",
			expected: "%html",
		},
		{
			name:     "no html line unchanged",
			doc:      "%div",
			manifest: "m",
			expected: "%div",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := InjectManifest(tt.doc, tt.manifest)
			if got != tt.expected {
				t.Errorf("InjectManifest(%q, %q) = %q, want %q", tt.doc, tt.manifest, got, tt.expected)
			}
		})
	}
}

func TestInjectManifest_Idempotent(t *testing.T) {
	t.Parallel()

	docs := []string{
		defaultSkeleton,
		`%html{ :lang => "en" }`,
		"%html{}",
		"%html",
	}

	for _, doc := range docs {
		once := InjectManifest(doc, "app.appcache")
		twice := InjectManifest(once, "app.appcache")
		if once != twice {
			t.Errorf("InjectManifest not idempotent for %q: %q then %q", doc, once, twice)
		}
	}
}
