package roots

import (
	"maps"
	"slices"
	"sync"

	"github.com/jmgilman/go/resfs/errors"
	"github.com/jmgilman/go/resfs/pathutil"
)

// Table maps categories to base directories.
//
// Each category has a default directory and, optionally, a run-time override
// that takes precedence over it. The zero value is not usable; create tables
// with New or NewWithDefaults. A Table is safe for concurrent use.
type Table struct {
	mu        sync.RWMutex
	defaults  map[Category]string
	overrides map[Category]string
}

// New returns a table initialised with the compiled-in defaults.
func New() *Table {
	return NewWithDefaults(builtinDefaults)
}

// NewWithDefaults returns a table whose registered categories are exactly the
// keys of defaults. Invalid names (empty or Absolute) are skipped.
func NewWithDefaults(defaults map[Category]string) *Table {
	t := &Table{
		defaults:  make(map[Category]string, len(defaults)),
		overrides: make(map[Category]string),
	}
	for cat, dir := range defaults {
		if validateName(cat) != nil {
			continue
		}
		t.defaults[cat] = dir
	}
	return t
}

// Register adds a new category with the given default directory.
func (t *Table) Register(cat Category, defaultDir string) error {
	if err := validateName(cat); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.defaults[cat]; ok {
		return errors.WithContext(
			errors.Newf(errors.CodeAlreadyExists, "category %q is already registered", cat),
			"category", string(cat),
		)
	}
	t.defaults[cat] = defaultDir
	return nil
}

// SetDefault replaces the default directory of cat, registering it if needed.
// Overrides are left untouched.
func (t *Table) SetDefault(cat Category, defaultDir string) error {
	if err := validateName(cat); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.defaults[cat] = defaultDir
	return nil
}

// SetRootPath overrides the base directory of cat, replacing any earlier
// override. The directory is not checked for existence. An empty dir removes
// the override.
func (t *Table) SetRootPath(cat Category, dir string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkLocked(cat); err != nil {
		return err
	}
	if cat == Absolute {
		return errors.New(errors.CodeInvalidInput, "the absolute category cannot be overridden")
	}

	if dir == "" {
		delete(t.overrides, cat)
		return nil
	}
	t.overrides[cat] = dir
	return nil
}

// ClearRootPath removes the override of cat, if any.
func (t *Table) ClearRootPath(cat Category) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkLocked(cat); err != nil {
		return err
	}
	delete(t.overrides, cat)
	return nil
}

// ClearModifiedRootPaths removes every override, reverting all categories to
// their defaults.
func (t *Table) ClearModifiedRootPaths() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.overrides)
}

// RootPath returns the effective base directory of cat: its override when
// set, its default otherwise. The absolute category has no base directory
// and resolves to "".
func (t *Table) RootPath(cat Category) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := t.checkLocked(cat); err != nil {
		return "", err
	}
	return t.rootLocked(cat), nil
}

// IsModified reports whether cat currently has an override.
func (t *Table) IsModified(cat Category) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.overrides[cat]
	return ok
}

// IsRegistered reports whether cat can be resolved.
func (t *Table) IsRegistered(cat Category) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.checkLocked(cat) == nil
}

// FixPath resolves name within cat.
//
// Names in the absolute category are only normalized. Otherwise name is
// appended to the effective base directory of cat and the result is
// normalized.
func (t *Table) FixPath(name string, cat Category) (string, error) {
	if cat == Absolute {
		return pathutil.Normalize(name), nil
	}

	base, err := t.RootPath(cat)
	if err != nil {
		return "", err
	}
	return pathutil.Join(base, name), nil
}

// Categories returns every registered category, sorted by name. The
// absolute category is not included.
func (t *Table) Categories() []Category {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.defaults))
}

// Snapshot returns the effective base directory of every registered category.
func (t *Table) Snapshot() map[Category]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[Category]string, len(t.defaults))
	for cat := range t.defaults {
		out[cat] = t.rootLocked(cat)
	}
	return out
}

func (t *Table) checkLocked(cat Category) error {
	if cat == Absolute {
		return nil
	}
	if _, ok := t.defaults[cat]; !ok {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "unknown resource category %q", cat),
			"category", string(cat),
		)
	}
	return nil
}

func (t *Table) rootLocked(cat Category) string {
	if dir, ok := t.overrides[cat]; ok {
		return dir
	}
	return t.defaults[cat]
}
