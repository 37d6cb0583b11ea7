package wordlist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

var (
	// ErrNoLists is returned when the catalog directory holds no .txt files.
	ErrNoLists = errors.New("no word lists found")
	// ErrUnknownList is returned when a name matches no list.
	ErrUnknownList = errors.New("unknown word list")
	// ErrAmbiguousList is returned when a name prefix matches several lists.
	ErrAmbiguousList = errors.New("ambiguous word list name")
)

// ResolveError explains why a list name could not be resolved.
type ResolveError struct {
	Query string
	// Candidates holds every list the query is a prefix of, for ambiguous queries.
	Candidates []string
	// Suggestion is the closest existing name, for unknown queries.
	Suggestion string
	err        error
}

func (e *ResolveError) Error() string {
	switch {
	case len(e.Candidates) > 0:
		return fmt.Sprintf("%v %q: could be %s", e.err, e.Query, strings.Join(e.Candidates, ", "))
	case e.Suggestion != "":
		return fmt.Sprintf("%v %q: did you mean %q?", e.err, e.Query, e.Suggestion)
	default:
		return fmt.Sprintf("%v %q", e.err, e.Query)
	}
}

func (e *ResolveError) Unwrap() error {
	return e.err
}

// Catalog is the set of word lists in one directory.
type Catalog struct {
	dir   string
	names []string
	files map[string]string
	trie  *patricia.Trie
	mu    sync.RWMutex
}

// Scan builds a catalog from the .txt files directly inside dir.
func Scan(dir string) (*Catalog, error) {
	c := &Catalog{dir: dir}
	if err := c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

// Refresh rescans the directory. On error the previous contents are kept.
func (c *Catalog) Refresh() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("failed to scan for word lists: %w", err)
	}

	var filenames []string
	for _, e := range entries {
		if e.IsDir() || !IsListFile(e.Name()) {
			continue
		}
		filenames = append(filenames, e.Name())
	}
	sort.Strings(filenames)

	names := make([]string, 0, len(filenames))
	files := make(map[string]string, len(filenames))
	trie := patricia.NewTrie()
	for _, fn := range filenames {
		name := NameOf(fn)
		if _, dup := files[name]; dup {
			log.Warnf("Skipping %s: list %q already provided by %s", fn, name, filepath.Base(files[name]))
			continue
		}
		path := filepath.Join(c.dir, fn)
		if err := ValidateFile(path); err != nil {
			log.Warnf("Skipping %s: %v", fn, err)
			continue
		}
		names = append(names, name)
		files[name] = path
		key := patricia.Prefix(strings.ToLower(name))
		if existing, ok := trie.Get(key).([]string); ok {
			trie.Set(key, append(existing, name))
		} else {
			trie.Insert(key, []string{name})
		}
	}

	c.mu.Lock()
	c.names, c.files, c.trie = names, files, trie
	c.mu.Unlock()

	log.Debugf("Found %d word lists in %s", len(names), c.dir)
	return nil
}

// Dir returns the directory the catalog scans.
func (c *Catalog) Dir() string {
	return c.dir
}

// Names returns the list names in file name order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.names...)
}

// Len returns the number of lists.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}

// Default returns the lexicographically first list.
func (c *Catalog) Default() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.names) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoLists, c.dir)
	}
	return c.names[0], nil
}

// Has reports whether name is an exact list name.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.files[name]
	return ok
}

// Path returns the file behind an exact list name.
func (c *Catalog) Path(name string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	path, ok := c.files[name]
	if !ok {
		return "", &ResolveError{Query: name, err: ErrUnknownList}
	}
	return path, nil
}

// Resolve maps a user supplied name onto a list name. Exact names win, then a
// case-insensitive prefix shared by exactly one list. A trailing ".txt" is
// ignored.
func (c *Catalog) Resolve(query string) (string, error) {
	query = strings.TrimSpace(query)
	if IsListFile(query) {
		query = NameOf(query)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.files[query]; ok {
		return query, nil
	}
	if query == "" {
		return "", &ResolveError{Query: query, err: ErrUnknownList}
	}

	key := patricia.Prefix(strings.ToLower(query))
	if exact, ok := c.trie.Get(key).([]string); ok && len(exact) == 1 {
		return exact[0], nil
	}

	var candidates []string
	err := c.trie.VisitSubtree(key, func(_ patricia.Prefix, item patricia.Item) error {
		candidates = append(candidates, item.([]string)...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting list names: %v", err)
	}

	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return "", &ResolveError{
			Query:      query,
			Suggestion: closestName(query, c.names),
			err:        ErrUnknownList,
		}
	default:
		sort.Strings(candidates)
		return "", &ResolveError{Query: query, Candidates: candidates, err: ErrAmbiguousList}
	}
}

// Load resolves name and reads the list behind it.
func (c *Catalog) Load(name string) ([]string, error) {
	resolved, err := c.Resolve(name)
	if err != nil {
		return nil, err
	}
	path, err := c.Path(resolved)
	if err != nil {
		return nil, err
	}
	return Load(path)
}
