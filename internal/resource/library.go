package resource

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"

	"github.com/vovakirdan/tui-slide/internal/registry"
)

// SourceBuiltin marks entries that come from the picture registry.
const SourceBuiltin = "builtin"

// Entry describes one picture in the library.
type Entry struct {
	ID     string
	Title  string
	Source string // SourceBuiltin or the file path
}

type libraryEntry struct {
	Entry
	load    func(context.Context) (registry.Picture, error)
	picture *Async[registry.Picture]
}

// LibraryOptions configures a Library.
type LibraryOptions struct {
	Dir      string     // Picture directory; "" for none
	Builtins bool       // Include registered procedural pictures
	Rand     *rand.Rand // Reorders entries once at start; nil keeps sorted order
	Logger   *log.Logger
}

// Library is the catalog of back-side pictures. It implements
// controller.ContentSource. Entries are only ever appended, so an index
// stays valid for the library's lifetime.
type Library struct {
	ctx    context.Context
	dir    string
	logger *log.Logger

	mu      sync.Mutex
	entries []*libraryEntry
	known   map[string]bool // IDs already in the catalog
}

// NewLibrary builds the catalog from the registry and the picture directory.
// A missing directory is not an error; the library then holds only builtins.
func NewLibrary(ctx context.Context, opts LibraryOptions) (*Library, error) {
	l := &Library{
		ctx:    ctx,
		logger: opts.Logger,
		known:  make(map[string]bool),
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}

	if opts.Builtins {
		for _, info := range registry.List() {
			id := info.ID
			l.add(&libraryEntry{
				Entry: Entry{ID: id, Title: info.Title, Source: SourceBuiltin},
				load: func(context.Context) (registry.Picture, error) {
					return registry.Create(id)
				},
			})
		}
	}

	if opts.Dir != "" {
		dir, err := homedir.Expand(opts.Dir)
		if err != nil {
			return nil, fmt.Errorf("resource: cannot expand picture directory: %w", err)
		}
		l.dir = dir
		if err := l.scan(); err != nil {
			return nil, err
		}
	}

	if opts.Rand != nil {
		opts.Rand.Shuffle(len(l.entries), func(i, j int) {
			l.entries[i], l.entries[j] = l.entries[j], l.entries[i]
		})
	}

	return l, nil
}

// scan adds every picture file in the directory, in name order.
func (l *Library) scan() error {
	files, err := os.ReadDir(l.dir)
	if os.IsNotExist(err) {
		l.logger.Warn("picture directory not found", "dir", l.dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("resource: cannot read picture directory: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	for _, f := range files {
		if f.IsDir() || !IsPictureFile(f.Name()) {
			continue
		}
		l.addFile(filepath.Join(l.dir, f.Name()))
	}
	return nil
}

// IsPictureFile reports whether a file name has a picture extension.
func IsPictureFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (l *Library) addFile(path string) bool {
	return l.add(&libraryEntry{
		Entry: Entry{ID: pictureID(path), Title: pictureID(path), Source: path},
		load: func(context.Context) (registry.Picture, error) {
			return LoadPicture(path)
		},
	})
}

// add appends an entry unless one with the same ID exists.
func (l *Library) add(e *libraryEntry) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.known[e.ID] {
		return false
	}
	l.known[e.ID] = true
	l.entries = append(l.entries, e)
	return true
}

func (l *Library) entry(index int) *libraryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.entries) {
		return nil
	}
	return l.entries[index]
}

// Len returns the number of entries.
func (l *Library) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Request starts loading the entry at index. Requests for an entry that is
// already loading or loaded are ignored.
func (l *Library) Request(index int) {
	e := l.entry(index)
	if e == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if e.picture == nil {
		e.picture = Load(l.ctx, e.ID, l.logger, e.load)
	}
}

// Loaded reports whether the entry at index has finished loading.
// Out-of-range indices are never loaded.
func (l *Library) Loaded(index int) bool {
	e := l.entry(index)
	if e == nil {
		return false
	}

	l.mu.Lock()
	a := e.picture
	l.mu.Unlock()
	return a != nil && a.Loaded()
}

// Picture returns the loaded picture at index, or nil if it is not loaded
// or failed to load.
func (l *Library) Picture(index int) registry.Picture {
	if !l.Loaded(index) {
		return nil
	}
	e := l.entry(index)

	l.mu.Lock()
	a := e.picture
	l.mu.Unlock()

	p, err := a.Value()
	if err != nil {
		return nil
	}
	if p != nil && e.Title != p.Title() {
		l.mu.Lock()
		e.Title = p.Title()
		l.mu.Unlock()
	}
	return p
}

// Entry returns the description of the entry at index.
func (l *Library) Entry(index int) (Entry, bool) {
	e := l.entry(index)
	if e == nil {
		return Entry{}, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return e.Entry, true
}

// Entries returns a snapshot of the catalog in play order.
func (l *Library) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Entry
	}
	return out
}

// Watch appends pictures created in the directory while the puzzle runs.
// Removed files keep their entry; a failed reload shows no picture.
// Watch returns once the watcher is running and stops when ctx is done.
func (l *Library) Watch(ctx context.Context) error {
	if l.dir == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("resource: cannot create watcher: %w", err)
	}
	if err := watcher.Add(l.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("resource: cannot watch %s: %w", l.dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Rename reports the old name, the new one arrives as Create
				if event.Op&fsnotify.Create == fsnotify.Create && IsPictureFile(event.Name) {
					if l.addFile(event.Name) {
						l.logger.Info("picture added", "file", event.Name)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				l.logger.Warn("picture watcher error", "error", err)
			}
		}
	}()

	return nil
}
