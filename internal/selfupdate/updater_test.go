package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "riskprep_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "riskprep_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "riskprep_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "riskprep_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "riskprep_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "riskprep_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "riskprep_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksumManifest(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "goreleaser format",
			input: "abc123  riskprep_Darwin_all.tar.gz\ndef456  riskprep_Linux_x86_64.tar.gz\n",
			want: map[string]string{
				"riskprep_Darwin_all.tar.gz":   "abc123",
				"riskprep_Linux_x86_64.tar.gz": "def456",
			},
		},
		{
			name:  "empty",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "malformed lines skipped",
			input: "abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n",
			want: map[string]string{
				"file.tar.gz":  "abc123",
				"other.tar.gz": "ghi789",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChecksumManifest([]byte(tt.input)))
		})
	}
}

func TestCheckSHA256(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, checkSHA256(data, hex.EncodeToString(sum[:])))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := checkSHA256(data, "0000000000000000000000000000000000000000000000000000000000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestUnpackBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho riskprep")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "riskprep", content)
		got, err := unpackBinary(archive, "riskprep_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", content)
		_, err := unpackBinary(archive, "riskprep_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "riskprep")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	replacement := []byte("new-binary-content")
	sum := sha256.Sum256(replacement)

	require.NoError(t, swapBinary(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), "original mode must survive the swap")
}

// hostAsset resolves the archive name and packing Update will look for
// on the platform running the tests.
func hostAsset(t *testing.T, content []byte) (name string, archive []byte) {
	t.Helper()
	name, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	if strings.HasSuffix(name, ".zip") {
		return name, buildZip(t, "riskprep.exe", content)
	}
	return name, buildTarGz(t, "riskprep", content)
}

// releaseHandler serves the three endpoints an update touches: the
// latest-release lookup, the archive, and the checksum manifest.
func releaseHandler(tag, asset string, archive, checksums []byte) http.Handler {
	prefix := fmt.Sprintf("/jlozano/riskprep/releases/download/%s/", tag)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/repos/jlozano/riskprep/releases/latest":
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
		case archive != nil && r.URL.Path == prefix+asset:
			_, _ = w.Write(archive)
		case checksums != nil && r.URL.Path == prefix+"checksums.txt":
			_, _ = w.Write(checksums)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestUpdate(t *testing.T) {
	content := []byte("new-riskprep-binary")
	asset, archive := hostAsset(t, content)
	archiveSum := sha256.Sum256(archive)
	goodSums := fmt.Appendf(nil, "%s  %s\n", hex.EncodeToString(archiveSum[:]), asset)

	t.Run("full update", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "riskprep")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := httptest.NewServer(releaseHandler("v2.0.0", asset, archive, goodSums))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build refused", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(releaseHandler("v1.0.0", asset, nil, nil))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch aborts", func(t *testing.T) {
		badSums := fmt.Appendf(nil, "%s  %s\n", strings.Repeat("0", 64), asset)
		server := httptest.NewServer(releaseHandler("v2.0.0", asset, archive, badSums))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing archive", func(t *testing.T) {
		server := httptest.NewServer(releaseHandler("v2.0.0", asset, nil, nil))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildZip packs a single file into a zip archive.
func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// buildTarGz packs a single file into a tar.gz archive.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
