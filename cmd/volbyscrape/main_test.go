package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rjanotik/volby"
	main "github.com/rjanotik/volby/cmd/volbyscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "volbyscrape")
	assert.Contains(t, stdout.String(), "url")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_MissingOutputArg(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(),
		[]string{"https://www.volby.cz/pls/ps2017nss/ps32?xjazyk=CZ&xnumnuts=7103"},
		&stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RejectsInvalidURL(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(),
		[]string{"https://example.com/results", "out.csv"},
		&stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, volby.EINVALID, volby.ErrorCode(err))
}

const testIndexPage = `<html><body><table>
<tr><th>Číslo</th><th>Obec</th><th></th></tr>
<tr><td>589268</td><td>Prostějov</td><td><a href="ps311?xobec=589268">X</a></td></tr>
<tr><td>589292</td><td>Bedihošť</td><td><a href="ps311?xobec=589292">X</a></td></tr>
<tr><td>589999</td><td>Mizející obec</td><td><a href="ps311?xobec=589999">X</a></td></tr>
</table></body></html>`

const testDetailPage = `<html><body>
<table>
<tr><td>Voliči v seznamu</td><td class="cislo">1 234</td></tr>
<tr><td>Vydané obálky</td><td class="cislo">800</td></tr>
<tr><td>Platné hlasy</td><td class="cislo">790</td></tr>
</table>
<table>
<tr><td class="overflow_name">ANO 2011</td><td class="cislo">248</td><td class="cislo">31,39</td></tr>
<tr><td class="overflow_name">Piráti</td><td class="cislo">84</td><td class="cislo">10,63</td></tr>
</table>
</body></html>`

func TestMain_Run_EndToEnd(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/pls/ps2017nss/ps32", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(testIndexPage))
	})
	mux.HandleFunc("/pls/ps2017nss/ps311", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("xobec") == "589999" {
			// One municipality's page is broken; the run must survive.
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(testDetailPage))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	m := main.NewMain()
	m.Delay = 0
	m.Source.Hosts = []string{serverURL.Host}

	outPath := filepath.Join(t.TempDir(), "vysledky.csv")
	indexURL := server.URL + "/pls/ps2017nss/ps32?xjazyk=CZ&xnumnuts=7103"

	var stdout, stderr bytes.Buffer
	err = m.Run(context.Background(), []string{indexURL, outPath}, &stdout, &stderr)
	require.NoError(t, err)

	// Progress and the failure note went to stderr, not stdout.
	assert.Contains(t, stderr.String(), "[1/3] 589268 Prostějov")
	assert.Contains(t, stderr.String(), "Mizející obec")
	assert.Contains(t, stderr.String(), "error processing")
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	content := strings.TrimPrefix(string(data), "\uFEFF")
	require.NotEqual(t, string(data), content, "file must start with a BOM")

	lines := strings.Split(strings.TrimRight(content, "\r\n"), "\r\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "code,location,registered,envelopes,valid,ANO 2011,Piráti", lines[0])
	assert.Equal(t, "589268,Prostějov,1234,800,790,248,84", lines[1])
	assert.Equal(t, "589292,Bedihošť,1234,800,790,248,84", lines[2])

	// The broken municipality still gets a full-width zero row.
	assert.Equal(t, "589999,Mizející obec,0,0,0,0,0", lines[3])
}

func TestMain_Run_EmptyListingIsFatal(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>Nothing here</p></body></html>"))
	}))
	defer server.Close()

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	m := main.NewMain()
	m.Delay = 0
	m.Source.Hosts = []string{serverURL.Host}

	var stdout, stderr bytes.Buffer
	outPath := filepath.Join(t.TempDir(), "out.csv")
	err = m.Run(context.Background(),
		[]string{server.URL + "/pls/ps2017nss/ps32?xjazyk=CZ", outPath},
		&stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, volby.ENOTFOUND, volby.ErrorCode(err))

	// No partial output file.
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}
