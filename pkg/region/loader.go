package region

import (
	"errors"
	"os"
	"sync"
)

// LoadFunc builds a directory.
type LoadFunc func() (*Directory, error)

// Loader memoizes a LoadFunc. The first call to Directory runs it; every
// later call, concurrent or not, gets the same result without running it
// again. A failed load is memoized too.
type Loader struct {
	once sync.Once
	load LoadFunc
	dir  *Directory
	err  error
}

func NewLoader(load LoadFunc) *Loader {
	return &Loader{load: load}
}

// Directory returns the memoized directory.
func (l *Loader) Directory() (*Directory, error) {
	l.once.Do(func() {
		if l.load == nil {
			l.err = ErrNoRegions
			return
		}
		l.dir, l.err = l.load()
	})
	return l.dir, l.err
}

// FromString parses a "NAME#URL,..." string.
func FromString(config string) LoadFunc {
	return func() (*Directory, error) {
		return Parse(config), nil
	}
}

// FromFile reads a YAML directory file.
func FromFile(path string) LoadFunc {
	return func() (*Directory, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Join(ErrReadFile, err)
		}
		defer f.Close()
		return LoadYAML(f)
	}
}

// FromConfig prefers the YAML file when path is set and falls back to the
// inline string otherwise.
func FromConfig(inline, path string) LoadFunc {
	if path != "" {
		return FromFile(path)
	}
	return FromString(inline)
}
