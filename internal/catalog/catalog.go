// Package catalog builds the ordered list of slideshow images and provides
// the cursor that walks it.
package catalog

import (
	"math/rand"
	"os"
	"sort"
	"time"

	"glowframe/internal/errors"
	"glowframe/internal/log"
	"glowframe/pkg/types"

	"github.com/gobwas/glob"
)

// Catalog holds the ordered collection of eligible image filenames for one
// playback session. Entries are re-derived when the catalog is built, when
// the order transitions to a different value, and on explicit Reload.
type Catalog struct {
	folder  string
	pattern string
	matcher glob.Glob
	order   types.Order
	entries []string
	rng     *rand.Rand
}

// New builds a catalog from the images in folder whose names match pattern.
// A folder with no matching files yields an empty catalog, not an error.
func New(folder, pattern string, order types.Order) (*Catalog, error) {
	return NewWithRand(folder, pattern, order, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand builds a catalog using the supplied random source for
// shuffling, which makes Random ordering deterministic in tests.
func NewWithRand(folder, pattern string, order types.Order, rng *rand.Rand) (*Catalog, error) {
	if !order.Valid() {
		return nil, errors.NewConfigError("invalid order", order.String(), errors.InvalidOrder, nil)
	}

	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.NewConfigError("invalid image pattern", pattern, errors.InvalidPattern, err)
	}

	c := &Catalog{
		folder:  folder,
		pattern: pattern,
		matcher: matcher,
		order:   order,
		rng:     rng,
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload rescans the folder and rebuilds the ordered entry list.
func (c *Catalog) Reload() error {
	entries, err := c.scan()
	if err != nil {
		return err
	}
	c.entries = entries
	c.reorder()
	log.LogWithFields(log.F("folder", c.folder), log.F("images", len(c.entries))).Debug("Catalog loaded")
	return nil
}

// scan lists the folder and keeps regular files whose names match the
// configured pattern. Matching is case-sensitive.
func (c *Catalog) scan() ([]string, error) {
	dirEntries, err := os.ReadDir(c.folder)
	if err != nil {
		return nil, errors.NewConfigError("cannot list image folder", c.folder, errors.FolderUnreadable, err)
	}

	var names []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		if c.matcher.Match(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// reorder applies the configured order to the current entries.
func (c *Catalog) reorder() {
	switch c.order {
	case types.Alpha:
		sort.Strings(c.entries)
	case types.Random:
		c.rng.Shuffle(len(c.entries), func(i, j int) {
			c.entries[i], c.entries[j] = c.entries[j], c.entries[i]
		})
	}
}

// SetOrder changes the playback order. The entries are reordered only on an
// actual transition; re-setting the current value never reshuffles a Random
// catalog. Returns true when the order changed.
func (c *Catalog) SetOrder(order types.Order) (bool, error) {
	if !order.Valid() {
		return false, errors.NewConfigError("invalid order", order.String(), errors.InvalidOrder, nil)
	}
	if order == c.order {
		return false, nil
	}
	c.order = order
	c.reorder()
	return true, nil
}

// Order returns the current playback order
func (c *Catalog) Order() types.Order {
	return c.order
}

// Folder returns the folder the catalog was built from
func (c *Catalog) Folder() string {
	return c.folder
}

// SetFolder changes the image folder. The entries are not rebuilt until the
// next Reload.
func (c *Catalog) SetFolder(folder string) {
	c.folder = folder
}

// Entries returns a copy of the ordered image names
func (c *Catalog) Entries() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of eligible images
func (c *Catalog) Len() int {
	return len(c.entries)
}
