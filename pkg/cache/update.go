package cache

import (
	"archive/zip"
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quickpage/tldr/pkg/errors"
	"github.com/quickpage/tldr/pkg/logging"
	"github.com/quickpage/tldr/pkg/paths"
)

// Updater refreshes the local page mirror from the published archive
type Updater struct {
	paths  paths.Paths
	client *http.Client
	zipURL string
}

// NewUpdater returns an Updater downloading from zipURL into the cache
// tree described by p.
func NewUpdater(p paths.Paths, zipURL string) *Updater {
	return &Updater{paths: p, client: http.DefaultClient, zipURL: zipURL}
}

// WithClient replaces the HTTP client, mainly for tests
func (u *Updater) WithClient(client *http.Client) *Updater {
	u.client = client
	return u
}

// Update downloads the page archive and extracts it over the cached corpus
// in place. One attempt, no retries: a single-shot CLI either refreshes or
// runs with whatever is already cached.
func (u *Updater) Update() error {
	logger := logging.GetLogger("cache")
	start := time.Now()

	logger.Debug().Str("url", u.zipURL).Msg("Downloading page archive")
	resp, err := u.client.Get(u.zipURL)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNetwork, "failed to download page archive from %s", u.zipURL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf(errors.ErrHTTPStatus, "page archive download returned %s", resp.Status).
			WithDetail("url", u.zipURL)
	}

	archive, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, errors.ErrNetwork, "failed to read page archive body")
	}

	dest := u.paths.PageSourceDir()
	if err := extractZip(archive, dest); err != nil {
		return err
	}

	if err := u.touchMarker(); err != nil {
		return err
	}

	logging.LogDuration(start, "cache update")
	logger.Info().Str("dest", dest).Msg("Page cache refreshed")
	return nil
}

// touchMarker ensures the freshness marker exists with a current mtime.
// The archive ships its own index.json; this covers archives that do not.
func (u *Updater) touchMarker() error {
	marker := u.paths.IndexPath()
	now := time.Now()
	if err := os.Chtimes(marker, now, now); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(marker), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(marker))
	}
	if err := os.WriteFile(marker, []byte("{}\n"), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write freshness marker %s", marker)
	}
	return nil
}

// extractZip unpacks archive into dest, overwriting existing files
func extractZip(archive []byte, dest string) error {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return errors.Wrap(err, errors.ErrExtraction, "page archive is not a valid zip")
	}

	for _, f := range reader.File {
		target, err := sanitizePath(dest, f.Name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", target)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(target))
		}
		if err := writeZipEntry(f, target); err != nil {
			return err
		}
	}
	return nil
}

func writeZipEntry(f *zip.File, target string) error {
	src, err := f.Open()
	if err != nil {
		return errors.Wrapf(err, errors.ErrExtraction, "failed to open archive entry %s", f.Name)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create %s", target)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target)
	}
	return nil
}

// sanitizePath rejects archive entries that would escape dest
func sanitizePath(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if target != dest && !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
		return "", errors.Newf(errors.ErrExtraction, "archive entry %q escapes the cache root", name)
	}
	return target, nil
}
