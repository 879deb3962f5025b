package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lineup-cli/lineup/filesystem"
	"github.com/lineup-cli/lineup/log"
	"github.com/lineup-cli/lineup/metrics"
	"github.com/lineup-cli/lineup/source"
)

// Stdout is the path that redirects a document to Options.Out.
const Stdout = "-"

// Document kinds, also used as metric and journal labels.
const (
	KindStreams = "streams"
	KindEPG     = "epg"
)

// Options configure a single export run.
type Options struct {
	Source source.Source
	// StreamsPath and EPGPath receive the documents. An empty path skips the document.
	StreamsPath string
	EPGPath     string
	Out         io.Writer
}

// Result summarizes a document written by Run.
type Result struct {
	Kind     string
	Path     string
	Count    int
	Duration time.Duration
}

// Run fetches the requested documents from the source and writes them.
func Run(ctx context.Context, options *Options) ([]*Result, error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	var results []*Result

	if options.StreamsPath != "" {
		started := time.Now()
		channels, err := options.Source.Channels(ctx)
		if err != nil {
			return results, fmt.Errorf("%s: channels: %w", options.Source.ID(), err)
		}

		if err := write(options.StreamsPath, options.Out, NewStreams(channels)); err != nil {
			return results, err
		}

		results = append(results, finish(options.Source, KindStreams, options.StreamsPath, len(channels), started))
	}

	if options.EPGPath != "" {
		started := time.Now()
		epg, err := options.Source.EPG(ctx)
		if err != nil {
			return results, fmt.Errorf("%s: epg: %w", options.Source.ID(), err)
		}

		if err := write(options.EPGPath, options.Out, NewGuide(epg)); err != nil {
			return results, err
		}

		results = append(results, finish(options.Source, KindEPG, options.EPGPath, epg.Len(), started))
	}

	return results, nil
}

func finish(src source.Source, kind, path string, count int, started time.Time) *Result {
	now := time.Now()
	metrics.ObserveExport(src.ID(), kind, count, now)
	log.Infof("%s: exported %d %s items to %s", src.ID(), count, kind, path)

	return &Result{
		Kind:     kind,
		Path:     path,
		Count:    count,
		Duration: now.Sub(started),
	}
}

func write(path string, out io.Writer, document any) error {
	if path == Stdout {
		return json.NewEncoder(out).Encode(document)
	}

	data, err := json.Marshal(document)
	if err != nil {
		return err
	}

	return WriteFile(path, data)
}

// WriteFile replaces path with data through a temporary file in the same directory,
// so readers never observe a partial document.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	tmp, err := filesystem.API().TempFile(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = filesystem.API().Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		_ = filesystem.API().Remove(tmp.Name())
		return err
	}

	return filesystem.API().Rename(tmp.Name(), path)
}
