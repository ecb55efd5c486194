package merger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/csvmerge/table"
	"go.uber.org/zap"
)

// Discover lists the input location and returns sorted URLs of matching files.
// A location that does not exist yields no files.
func (m *Merger) Discover(ctx context.Context) ([]string, error) {
	location, err := normalize(m.config.Input)
	if err != nil {
		return nil, newError(ErrDiscover, m.config.Input, err)
	}
	exists, err := m.fs.Exists(ctx, location)
	if err != nil {
		return nil, newError(ErrDiscover, location, err)
	}
	if !exists {
		m.logger.Warn("input location not found", zap.String("input", location))
		return nil, nil
	}
	objects, err := m.fs.List(ctx, location)
	if err != nil {
		return nil, newError(ErrDiscover, location, fmt.Errorf("failed to list: %w", err))
	}
	var URLs []string
	for _, object := range objects {
		if object.IsDir() || !m.match(object) {
			continue
		}
		URLs = append(URLs, object.URL())
	}
	sort.Strings(URLs)
	m.logger.Debug("discovered input files", zap.String("input", location), zap.Strings("files", URLs))
	return URLs, nil
}

// Load reads one input file as an all-text table
func (m *Merger) Load(ctx context.Context, URL string) (*table.Table, error) {
	data, err := m.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, newError(ErrLoad, URL, fmt.Errorf("failed to download: %w", err))
	}
	ret, err := table.Read(bytes.NewReader(data), m.config.Identifier, m.config.MissingTokens)
	if err != nil {
		if errors.Is(err, table.ErrNoIdentifier) {
			return nil, newError(ErrMissingIdentifier, URL, err)
		}
		return nil, newError(ErrLoad, URL, err)
	}
	return ret, nil
}

// normalize returns absolute path for local locations, URLs with scheme are returned as is
func normalize(location string) (string, error) {
	if strings.Contains(location, "://") {
		return location, nil
	}
	return filepath.Abs(location)
}
