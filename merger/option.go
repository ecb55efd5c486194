package merger

import (
	"os"
	"path"

	"github.com/viant/afs"
	"go.uber.org/zap"
)

type Option func(*Merger)

// MatcherFn decides whether a listed input object is merged
type MatcherFn func(info os.FileInfo) bool

// WithLogger sets progress logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Merger) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithFS sets storage service used for discovery, loading and writing
func WithFS(fs afs.Service) Option {
	return func(m *Merger) {
		if fs != nil {
			m.fs = fs
		}
	}
}

// WithMatcher overrides the config pattern based input matcher
func WithMatcher(matcher MatcherFn) Option {
	return func(m *Merger) {
		m.match = matcher
	}
}

// WithResolver overrides the config named conflict resolver
func WithResolver(resolver Resolver) Option {
	return func(m *Merger) {
		m.resolve = resolver
	}
}

// PatternFiles matches regular files whose base name matches glob pattern
func PatternFiles(pattern string) MatcherFn {
	return func(info os.FileInfo) bool {
		if info.IsDir() {
			return false
		}
		ok, _ := path.Match(pattern, info.Name())
		return ok
	}
}
