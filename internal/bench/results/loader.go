package results

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/apperr"
)

// ErrNoResultFiles is returned by Discover when the directory holds no result files.
var ErrNoResultFiles = errors.New("no result files found")

const filePattern = filePrefix + "*" + fileSuffix

// Discover lists results_*.csv files in dir, sorted by name.
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat results dir: %w", errors.Join(ErrNoResultFiles, err))
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %w", dir, ErrNoResultFiles)
	}

	paths, err := filepath.Glob(filepath.Join(dir, filePattern))
	if err != nil {
		return nil, fmt.Errorf("glob results: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoResultFiles)
	}
	sort.Strings(paths)
	return paths, nil
}

// Loader turns result files into a Set. Files that cannot be classified or
// parsed are logged and skipped.
type Loader struct {
	classifier *Classifier
}

type LoaderOption func(*Loader)

func WithClassifier(c *Classifier) LoaderOption {
	return func(l *Loader) {
		l.classifier = c
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{classifier: DefaultClassifier()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every path. The returned slice holds one error per skipped file.
func (l *Loader) Load(paths []string) (*Set, []error) {
	set := NewSet()
	var skipped []error

	for _, path := range paths {
		t, err := l.LoadFile(path)
		if err != nil {
			slog.Error("Skipping result file", "path", path, "error", err)
			skipped = append(skipped, err)
			continue
		}
		set.Put(t)
		slog.Info("Loaded results", "dataset", t.Label.Dataset, "variant", t.Label.Variant, "rows", t.Len())
	}

	return set, skipped
}

func (l *Loader) LoadFile(path string) (*Table, error) {
	label, err := l.classifier.Classify(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open result file: %w", err)
	}
	defer f.Close()

	t, err := ParseTable(f)
	if err != nil {
		// unwrapped validation errors get the file name as source
		if ve, ok := err.(*apperr.ValidationError); ok {
			return nil, ve.WithSource(filepath.Base(path))
		}
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	t.Label = label
	t.Path = path
	return t, nil
}

// Load uses a Loader with the default classifier.
func Load(paths []string) (*Set, []error) {
	return NewLoader().Load(paths)
}
