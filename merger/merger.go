package merger

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/csvmerge/table"
	"go.uber.org/zap"
)

// Merger merges input files sharing an identifier column into one table,
// coalescing rows that share an identifier value after every file
type Merger struct {
	config  *Config
	fs      afs.Service
	match   MatcherFn
	resolve Resolver
	logger  *zap.Logger
}

// New creates a merger for a validated config
func New(config *Config, options ...Option) (*Merger, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	resolve, err := LookupResolver(config.Resolver)
	if err != nil {
		return nil, newError(ErrConfig, "", err)
	}
	ret := &Merger{
		config:  config,
		fs:      afs.New(),
		match:   PatternFiles(config.Pattern),
		resolve: resolve,
		logger:  zap.NewNop(),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.match == nil {
		ret.match = PatternFiles(config.Pattern)
	}
	if ret.resolve == nil {
		ret.resolve = resolve
	}
	return ret, nil
}

// Merge discovers input files, merges them and writes the output.
// No matching input yields a StatusEmpty report and no output.
func (m *Merger) Merge(ctx context.Context) (*Report, error) {
	URLs, err := m.Discover(ctx)
	if err != nil {
		return nil, err
	}
	input, _ := normalize(m.config.Input)
	if len(URLs) == 0 {
		m.logger.Info("no input files found", zap.String("input", input), zap.String("pattern", m.config.Pattern))
		return &Report{Status: StatusEmpty, Input: input}, nil
	}
	m.logger.Info("found input files", zap.Int("count", len(URLs)), zap.String("input", input))
	merged, dropped, err := m.Combine(ctx, URLs)
	if err != nil {
		return nil, err
	}
	output, digest, err := m.Write(ctx, merged)
	if err != nil {
		return nil, err
	}
	return &Report{
		Status:  StatusMerged,
		Input:   input,
		Files:   URLs,
		Output:  output,
		Rows:    merged.Len(),
		Columns: len(merged.Columns),
		Dropped: dropped,
		Digest:  digest,
	}, nil
}

// Combine loads URLs in order, joining each with the accumulated table and coalescing the result.
// It returns the final table and the count of rows dropped for a missing identifier.
func (m *Merger) Combine(ctx context.Context, URLs []string) (*table.Table, int, error) {
	var merged *table.Table
	dropped := 0
	for i, URL := range URLs {
		if err := ctx.Err(); err != nil {
			return nil, 0, newError(ErrCanceled, URL, err)
		}
		current, err := m.Load(ctx, URL)
		if err != nil {
			return nil, 0, err
		}
		groups, err := Join(merged, current)
		if err != nil {
			return nil, 0, newError(ErrMerge, URL, fmt.Errorf("failed to join: %w", err))
		}
		if merged, err = Coalesce(groups, m.resolve); err != nil {
			return nil, 0, newError(ErrMerge, URL, fmt.Errorf("failed to coalesce: %w", err))
		}
		if groups.Dropped > 0 {
			m.logger.Warn("dropped rows without identifier", zap.String("url", URL), zap.Int("rows", groups.Dropped))
			dropped += groups.Dropped
		}
		m.logger.Info("processed file",
			zap.Int("file", i+1),
			zap.Int("total", len(URLs)),
			zap.String("url", URL),
			zap.Int("rows", merged.Len()),
			zap.Int("columns", len(merged.Columns)))
	}
	if merged == nil {
		return nil, 0, newError(ErrMerge, "", fmt.Errorf("no input files"))
	}
	return merged, dropped, nil
}

// Write encodes the table and stores it at the configured output,
// it returns the absolute output location and the content digest
func (m *Merger) Write(ctx context.Context, t *table.Table) (string, uint64, error) {
	location, err := normalize(m.config.Output)
	if err != nil {
		return "", 0, newError(ErrWrite, m.config.Output, err)
	}
	buf := new(bytes.Buffer)
	if err = table.Write(buf, t, m.config.MissingValue); err != nil {
		return "", 0, newError(ErrWrite, location, fmt.Errorf("failed to encode: %w", err))
	}
	digest := table.Checksum(buf.Bytes())
	size := buf.Len()
	if err = m.fs.Upload(ctx, location, file.DefaultFileOsMode, buf); err != nil {
		return "", 0, newError(ErrWrite, location, fmt.Errorf("failed to upload: %w", err))
	}
	m.logger.Debug("stored output", zap.String("output", location), zap.Int("bytes", size), zap.Uint64("digest", digest))
	return location, digest, nil
}
