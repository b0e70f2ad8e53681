// Package assets loads textures and sound files from the asset directory.
// Loading never aborts the game: a missing or broken file is reported as a *LoadError
// and the caller draws its fallback instead.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"sync"
)

// LoadError reports an asset that could not be read or decoded
type LoadError struct {
	ID   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load asset %s (%s): %v", e.ID, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Missing reports whether the asset file does not exist
func (e *LoadError) Missing() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}

type entry struct {
	img image.Image
	err error
}

// Registry resolves sprite IDs to decoded images. Results, failures included,
// are cached so each file is read at most once.
type Registry struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[string]entry
}

// NewRegistry creates a registry reading from fsys
func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{
		fsys:  fsys,
		cache: make(map[string]entry),
	}
}

// NewDirRegistry creates a registry reading from a directory on disk
func NewDirRegistry(dir string) *Registry {
	return NewRegistry(os.DirFS(dir))
}

// Path returns the file name a sprite ID maps to
func Path(id string) string {
	return id + ".png"
}

// Image returns the decoded image for a sprite ID
func (r *Registry) Image(id string) (image.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.cache[id]; ok {
		return e.img, e.err
	}

	img, err := r.decode(id)
	r.cache[id] = entry{img: img, err: err}
	return img, err
}

func (r *Registry) decode(id string) (image.Image, error) {
	if id == "" {
		return nil, &LoadError{ID: id, Err: fs.ErrNotExist}
	}
	path := Path(id)

	f, err := r.fsys.Open(path)
	if err != nil {
		return nil, &LoadError{ID: id, Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{ID: id, Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	return img, nil
}

// ReadFile returns the raw bytes of a non-image asset such as a sound file
func (r *Registry) ReadFile(name string) ([]byte, error) {
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, &LoadError{ID: name, Path: name, Err: err}
	}
	return data, nil
}

// Preload decodes every listed sprite and logs the ones that fail.
// Returns how many loaded successfully.
func (r *Registry) Preload(ids []string) int {
	loaded := 0
	for _, id := range ids {
		if _, err := r.Image(id); err != nil {
			slog.Warn("texture unavailable, using fallback color", "sprite", id, "error", err)
			continue
		}
		loaded++
	}
	return loaded
}
