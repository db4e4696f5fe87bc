package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ghstats/pkg/buildinfo"
	"github.com/matzehuels/ghstats/pkg/errors"
	"github.com/matzehuels/ghstats/pkg/stats"
)

// SnapshotVersion is the envelope version written by this package.
const SnapshotVersion = 1

// Format is a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type snapshot struct {
	Version   int         `json:"version" yaml:"version"`
	Generator string      `json:"generator,omitempty" yaml:"generator,omitempty"`
	Stats     stats.Stats `json:"stats" yaml:"stats"`
}

// FormatFromPath picks the encoding from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported snapshot extension %q: use .json, .yaml or .yml", filepath.Ext(path))
	}
}

// WriteStats encodes s as a snapshot in format f.
func WriteStats(w io.Writer, s stats.Stats, f Format) error {
	snap := snapshot{Version: SnapshotVersion, Generator: buildinfo.UserAgent(), Stats: s}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return errors.Wrap(errors.ErrCodePersistence, err, "encode snapshot")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return errors.Wrap(errors.ErrCodePersistence, err, "encode snapshot")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(errors.ErrCodePersistence, err, "encode snapshot")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported snapshot format %q", f)
	}
	return nil
}

// ReadStats decodes a snapshot in format f.
func ReadStats(r io.Reader, f Format) (stats.Stats, error) {
	var snap snapshot
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&snap)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&snap)
	default:
		return stats.Stats{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported snapshot format %q", f)
	}
	if err != nil {
		return stats.Stats{}, errors.Wrap(errors.ErrCodeMalformedData, err, "decode snapshot")
	}
	if snap.Version != SnapshotVersion {
		return stats.Stats{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported snapshot version %d", snap.Version)
	}
	return snap.Stats, nil
}

// ExportStats writes s to path, encoded by the path's extension.
func ExportStats(s stats.Stats, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WriteStats(&buf, s, f); err != nil {
		return err
	}
	return WriteDocument(path, buf.Bytes())
}

// ImportStats reads the snapshot at path.
func ImportStats(path string) (stats.Stats, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return stats.Stats{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return stats.Stats{}, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
		}
		return stats.Stats{}, errors.Wrap(errors.ErrCodePersistence, err, "open %s", path)
	}
	defer file.Close()
	return ReadStats(file, f)
}
