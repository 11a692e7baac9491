package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with an isolated config that disables logging.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BOTTLEBUDDY_BACKEND_URL", "")
	chdir(t, t.TempDir())
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  path: \"-\"\n"), 0o644))

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGlossaryCommand(t *testing.T) {
	out, _, err := execute(t, "glossary")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 40)
	assert.Equal(t, "apple", lines[0])
	assert.Equal(t, "  A flavor note that gives wine a taste reminiscent of apples.", lines[1])
	assert.Equal(t, "tropical", lines[38])
}

func TestGlossaryNames(t *testing.T) {
	out, _, err := execute(t, "glossary", "--names")
	require.NoError(t, err)
	assert.Equal(t, 20, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "apple\nberry\n"))
}

func TestFindCommand(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		_, _ = w.Write([]byte(`["Cabernet Sauvignon","Malbec"]`))
	}))
	defer srv.Close()

	out, _, err := execute(t, "--backend", srv.URL, "find", "dry", "oak")
	require.NoError(t, err)
	assert.Equal(t, `{"criteria":["dry","oak"]}`, body)
	assert.Equal(t, "Cabernet Sauvignon\nMalbec\n", out)
}

func TestFindCommandBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, errOut, err := execute(t, "--backend", srv.URL, "find", "dry")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "Failed to fetch results. Please try again.\n", errOut)
	assert.NotContains(t, errOut, "500")
}

func TestFindCommandUnknownDescriptor(t *testing.T) {
	_, _, err := execute(t, "--backend", "http://127.0.0.1:1", "find", "petrol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"petrol"`)
	assert.Contains(t, err.Error(), "firm tannins")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
