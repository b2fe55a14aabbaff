package assets

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/qmuntal/gltf"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// FileLoader loads binary glTF (.glb) files from a file system in the background.
//
// Handles name a file plus an optional label: "#Scene<n>" and "#Animation<n>" must exist
// in the decoded document for the handle to become Loaded; anything else is Failed.
// One file backs many handles and is decoded once.
//
// Load and LoadState are called from the frame loop while decoding runs on worker
// goroutines, so all state is guarded by mu.
type FileLoader struct {
	fsys    fs.FS
	workers int

	mu      sync.RWMutex
	states  map[types.Handle]LoadState
	byPath  map[string][]types.Handle
	queued  []string // paths requested but not started yet
	started map[string]bool
	docs    map[string]*gltf.Document

	batches []chan struct{}
}

// NewFileLoader creates a loader reading from fsys with at most workers concurrent decodes.
func NewFileLoader(fsys fs.FS, workers int) *FileLoader {
	if workers < 1 {
		workers = 1
	}
	return &FileLoader{
		fsys:    fsys,
		workers: workers,
		states:  make(map[types.Handle]LoadState),
		byPath:  make(map[string][]types.Handle),
		started: make(map[string]bool),
		docs:    make(map[string]*gltf.Document),
	}
}

// Load requests a handle. Files are read when Start runs; a handle requested after its
// file was decoded resolves immediately.
func (l *FileLoader) Load(h types.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.states[h]; ok {
		return
	}
	l.states[h] = NotLoaded

	path := h.Path()
	l.byPath[path] = append(l.byPath[path], h)

	if doc, ok := l.docs[path]; ok {
		l.states[h] = resolveLabel(doc, h.Label())
		return
	}
	if !l.started[path] && !containsString(l.queued, path) {
		l.queued = append(l.queued, path)
	}
}

// LoadState implements Loader.
func (l *FileLoader) LoadState(h types.Handle) LoadState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.states[h]
}

// Document returns the decoded document of a file once it has loaded.
func (l *FileLoader) Document(path string) (*gltf.Document, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	doc, ok := l.docs[path]
	return doc, ok
}

// Start decodes every queued file in the background and returns immediately.
// It may be called again to pick up files requested later.
func (l *FileLoader) Start(ctx context.Context) {
	l.mu.Lock()
	paths := l.queued
	l.queued = nil
	for _, p := range paths {
		l.started[p] = true
	}
	done := make(chan struct{})
	l.batches = append(l.batches, done)
	l.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	// g.Go blocks once the limit is reached, so dispatching happens off the frame loop.
	go func() {
		defer close(done)
		for _, path := range paths {
			path := path
			g.Go(func() error {
				l.loadFile(gctx, path)
				return nil
			})
		}
		_ = g.Wait()
	}()
}

// Wait blocks until every started file has been processed. Only tests and headless
// runs wait; the frame loop polls LoadState instead.
func (l *FileLoader) Wait() {
	l.mu.RLock()
	batches := append([]chan struct{}(nil), l.batches...)
	l.mu.RUnlock()

	for _, done := range batches {
		<-done
	}
}

func (l *FileLoader) loadFile(ctx context.Context, path string) {
	doc, err := l.decode(ctx, path)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("model file failed to load")
		for _, h := range l.byPath[path] {
			l.states[h] = Failed
		}
		return
	}

	l.docs[path] = doc
	for _, h := range l.byPath[path] {
		l.states[h] = resolveLabel(doc, h.Label())
	}
	log.Debug().Str("path", path).Int("scenes", len(doc.Scenes)).Int("animations", len(doc.Animations)).Msg("model file decoded")
}

func (l *FileLoader) decode(ctx context.Context, path string) (*gltf.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return doc, nil
}

// resolveLabel checks that the labelled sub-asset exists in doc.
func resolveLabel(doc *gltf.Document, label string) LoadState {
	if label == "" {
		return Loaded
	}
	var (
		count int
		index string
	)
	switch {
	case strings.HasPrefix(label, "Scene"):
		count, index = len(doc.Scenes), strings.TrimPrefix(label, "Scene")
	case strings.HasPrefix(label, "Animation"):
		count, index = len(doc.Animations), strings.TrimPrefix(label, "Animation")
	default:
		return Failed
	}
	n, err := strconv.Atoi(index)
	if err != nil || n < 0 || n >= count {
		return Failed
	}
	return Loaded
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
