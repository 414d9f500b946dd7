// Package manifest describes a generated dataset and publishes it through a
// CURRENT pointer.
//
// The manifest carries no timestamp, so equal N and K produce equal
// manifest bytes just like the artifacts themselves.
package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hupe1980/gaussgen/blobstore"
)

const (
	// FileName is the name the manifest is stored under.
	FileName = "MANIFEST.json"
	// CurrentFileName names the pointer to the latest manifest.
	CurrentFileName = "CURRENT"
	// CurrentVersion is the version of the manifest format.
	CurrentVersion = 1
)

var (
	// ErrNoCurrent is returned by Load when no manifest was committed.
	ErrNoCurrent = errors.New("manifest: no CURRENT pointer")
	// ErrUnsupportedVersion is returned for manifests of a newer format.
	ErrUnsupportedVersion = errors.New("manifest: unsupported version")
)

// Artifact describes one stored output object.
type Artifact struct {
	Name   string `json:"name"`
	Lines  int64  `json:"lines"`
	Size   int64  `json:"size"`   // Stored bytes, after compression
	CRC32C uint32 `json:"crc32c"` // Over the stored bytes
}

// Manifest describes a generated dataset.
type Manifest struct {
	Version      int      `json:"version"`
	N            int      `json:"n"`
	K            int      `json:"k"`
	Seed         uint32   `json:"seed"`
	StdDev       float64  `json:"std_dev"`
	Compression  string   `json:"compression"`
	ClusterSizes []uint64 `json:"cluster_sizes"`
	Centroids    Artifact `json:"centroids"`
	Points       Artifact `json:"points"`
}

// Encode returns the indented JSON form, newline terminated.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses a manifest and rejects unknown versions.
func Decode(data []byte) (*Manifest, error) {
	var m Manifest
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	if m.Version < 1 || m.Version > CurrentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, m.Version)
	}
	return &m, nil
}

// Write stores the manifest and then points CURRENT at it.
func Write(ctx context.Context, store blobstore.BlobStore, m *Manifest) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}
	if err := store.Put(ctx, FileName, data); err != nil {
		return fmt.Errorf("manifest: put %s: %w", FileName, err)
	}
	if err := store.Put(ctx, CurrentFileName, []byte(FileName)); err != nil {
		return fmt.Errorf("manifest: commit %s: %w", CurrentFileName, err)
	}
	return nil
}

// Load follows CURRENT and decodes the manifest it names.
func Load(ctx context.Context, store blobstore.BlobStore) (*Manifest, error) {
	current, err := blobstore.ReadAll(ctx, store, CurrentFileName)
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil, ErrNoCurrent
	}
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", CurrentFileName, err)
	}

	name := string(bytes.TrimSpace(current))
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", name, err)
	}
	return Decode(data)
}
