package redigo

import (
	"strings"

	"github.com/google/btree"
)

const keyIndexDegree = 32

// keyIndex keeps the keys of a keyspace in ascending order
type keyIndex struct {
	tree *btree.BTreeG[string]
}

func newKeyIndex() *keyIndex {
	return &keyIndex{tree: btree.NewOrderedG[string](keyIndexDegree)}
}

func (index *keyIndex) add(key string) {
	index.tree.ReplaceOrInsert(key)
}

func (index *keyIndex) remove(key string) {
	index.tree.Delete(key)
}

// Visits keys starting with prefix in ascending order until visit returns false
func (index *keyIndex) ascendPrefix(prefix string, visit func(key string) bool) {
	index.tree.AscendGreaterOrEqual(prefix, func(key string) bool {
		if !strings.HasPrefix(key, prefix) {
			return false
		}
		return visit(key)
	})
}
