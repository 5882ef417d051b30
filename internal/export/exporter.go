package export

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Exporter writes snapshots under baseURL using any afs-supported storage.
type Exporter struct {
	fs      afs.Service
	baseURL string
}

func NewExporter(fs afs.Service, baseURL string) *Exporter {
	if fs == nil {
		fs = afs.New()
	}
	return &Exporter{fs: fs, baseURL: baseURL}
}

// FileName returns the name a snapshot is saved under.
func FileName(snapshot *Snapshot, format Format) string {
	return fmt.Sprintf("scheduling-simulation-%s-%d.%s", snapshot.Algorithm, NowFunc().UnixMilli(), format.Extension())
}

// Save encodes snapshot and uploads it, returning the destination URL.
func (e *Exporter) Save(ctx context.Context, snapshot *Snapshot, format Format) (string, error) {
	data, err := Encode(snapshot, format)
	if err != nil {
		return "", err
	}
	destURL := url.Join(e.baseURL, FileName(snapshot, format))
	if err := e.fs.Upload(ctx, destURL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to save snapshot to %s: %w", destURL, err)
	}
	log.Println("snapshot saved:", destURL)
	return destURL, nil
}

// Load reads a snapshot back; the format follows the file extension.
func (e *Exporter) Load(ctx context.Context, URL string) (*Snapshot, error) {
	data, err := e.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", URL, err)
	}
	format := JSON
	if ext := strings.TrimPrefix(path.Ext(URL), "."); ext == "yaml" || ext == "yml" {
		format = YAML
	}
	return Decode(data, format)
}
