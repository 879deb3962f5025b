// Package journal keeps track of the latest export of every provider and document kind.
package journal

import (
	"strings"

	"github.com/lineup-cli/lineup/filesystem"
	"github.com/lineup-cli/lineup/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.Journal(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every recorded export.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Sorted returns the recorded exports ordered by provider, then kind.
func Sorted() ([]*Record, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	slices.SortFunc(records, func(a, b *Record) int {
		if a.Provider != b.Provider {
			return strings.Compare(a.Provider, b.Provider)
		}
		return strings.Compare(a.Kind, b.Kind)
	})
	return records, nil
}

// Save replaces the entry of the record's provider and kind.
func Save(record *Record) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved[record.encode()] = record
	return cacher.Set(saved)
}

// Clear forgets every recorded export.
func Clear() error {
	return cacher.Set(make(map[string]*Record))
}
