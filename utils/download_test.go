package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const samplePPM = "P3\n2 1\n255\n0 0 0 255 255 255 \n"

func TestUtils_ShouldDownloadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePPM))
	}))
	defer srv.Close()

	f, err := DownloadImage(srv.URL + "/sample.ppm")
	assert.NoError(t, err)
	defer os.Remove(f.Name())
	defer f.Close()

	data, err := os.ReadFile(f.Name())
	assert.NoError(t, err)
	assert.Equal(t, samplePPM, string(data))
}

func TestUtils_ShouldNotDownloadOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := DownloadImage(srv.URL + "/missing.ppm")
	assert.Error(t, err)
}

func TestUtils_ShouldRejectNonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>not an image</body></html>"))
	}))
	defer srv.Close()

	_, err := DownloadImage(srv.URL)
	assert.Error(t, err)
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert.True(t, IsValidUrl("https://github.com/pcarve/pcarve/"))
	assert.False(t, IsValidUrl("testdata/sample.ppm"))
	assert.False(t, IsValidUrl("-"))
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	dir := t.TempDir()

	png := filepath.Join(dir, "sample.png")
	assert.NoError(t, os.WriteFile(png, []byte("\x89PNG\x0D\x0A\x1A\x0A"), 0644))
	ftype, err := DetectContentType(png)
	assert.NoError(t, err)
	assert.Equal(t, "image/png", ftype)

	ppm := filepath.Join(dir, "sample.ppm")
	assert.NoError(t, os.WriteFile(ppm, []byte(samplePPM), 0644))
	assert.True(t, IsPlainPPM(ppm))
	assert.False(t, IsPlainPPM(png))
}
