package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	main "skillcorpus/cmd/skillcorpus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "skillcorpus")
	assert.Contains(t, stdout.String(), "--query")
}

func TestMain_Run_UnknownFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--no-such-flag"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RefreshesCorpus(t *testing.T) {
	t.Parallel()

	searchHTML := `<html><body><main><ul>
		<li><a href="/acme/widgets/typegen">typegen</a></li>
		<li><a href="/acme/widgets/typegen/extra">sub-page</a></li>
		<li><a href="/foo/bar/baz">baz</a></li>
		<li><a href="/category">category</a></li>
	</ul></main></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			assert.Equal(t, "Type", r.URL.Query().Get("q"))
			_, _ = w.Write([]byte(searchHTML))
		case "/acme/widgets/typegen":
			_, _ = w.Write([]byte(`<html><body><main><h1>typegen</h1><p>Generates types.</p></main></body></html>`))
		case "/foo/bar/baz":
			_, _ = w.Write([]byte(`<html><body><main><h1>baz</h1><p>Does baz things.</p></main></body></html>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	outDir := filepath.Join(t.TempDir(), "corpus")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"--base", server.URL,
		"--out", outDir,
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "saved 2 skill pages\n", stdout.String())

	// Raw HTML and text were saved for both three-segment links.
	for _, slug := range []string{"acme__widgets__typegen", "foo__bar__baz"} {
		assert.FileExists(t, filepath.Join(outDir, "raw", slug+".html"))
		assert.FileExists(t, filepath.Join(outDir, "text", slug+".txt"))
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.tsv"))
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimRight(index, "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "/acme/widgets/typegen\t")
	assert.Contains(t, string(lines[1]), "/foo/bar/baz\t")
}

func TestMain_Run_SkipsFailingPages(t *testing.T) {
	t.Parallel()

	searchHTML := `<html><body>
		<a href="/bad/bad/bad">bad</a>
		<a href="/ok/ok/ok">ok</a>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(searchHTML))
		case "/ok/ok/ok":
			_, _ = w.Write([]byte(`<html><body><main><p>fine</p></main></body></html>`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	outDir := filepath.Join(t.TempDir(), "corpus")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"--base", server.URL,
		"--out", outDir,
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "saved 1 skill pages\n", stdout.String())

	// The failed link left no files behind.
	assert.NoFileExists(t, filepath.Join(outDir, "raw", "bad__bad__bad.html"))
	assert.NoFileExists(t, filepath.Join(outDir, "text", "bad__bad__bad.txt"))

	index, err := os.ReadFile(filepath.Join(outDir, "index.tsv"))
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(index, []byte("\t")))
	assert.Contains(t, string(index), "/ok/ok/ok\t")
}

func TestMain_Run_FailsWhenSearchPageUnreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"--base", server.URL,
		"--out", filepath.Join(t.TempDir(), "corpus"),
	}, &stdout, &stderr)

	assert.Error(t, err)
	assert.Empty(t, stdout.String())
}
