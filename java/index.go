package java

import (
	"sort"
	"sync"
)

// Index is a store of class models keyed by fully qualified name. It is safe
// for concurrent use; readers never block each other.
type Index struct {
	mu      sync.RWMutex
	classes map[string]*ClassModel
}

func NewIndex(classes ...*ClassModel) *Index {
	idx := &Index{classes: make(map[string]*ClassModel, len(classes))}
	for _, c := range classes {
		idx.classes[c.Name] = c
	}
	return idx
}

// Add stores model, replacing any class of the same name.
func (idx *Index) Add(model *ClassModel) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.classes[model.Name] = model
}

func (idx *Index) Lookup(name string) *ClassModel {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.classes[name]
}

func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.classes)
}

// Classes returns all classes sorted by name.
func (idx *Index) Classes() []*ClassModel {
	idx.mu.RLock()
	result := make([]*ClassModel, 0, len(idx.classes))
	for _, c := range idx.classes {
		result = append(result, c)
	}
	idx.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// FindBySimpleName returns the classes whose simple name matches name.
func (idx *Index) FindBySimpleName(name string) []*ClassModel {
	var result []*ClassModel
	for _, c := range idx.Classes() {
		if c.SimpleName == name {
			result = append(result, c)
		}
	}
	return result
}
