package property

import (
	"sort"

	"github.com/dhamidi/beanscan/binding"
)

// sorted orders the descriptors. Properties first come grouped by the
// root-most type contributing to them, root first, each group in discovery
// order. Then the order directives of every visited type are applied leaf to
// root, so a root directive has the final word and closer ones break its
// ties.
func (w *walker) sorted() []*Descriptor {
	out := append([]*Descriptor(nil), w.order...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].depth != out[j].depth {
			return out[i].depth > out[j].depth
		}
		return out[i].rank < out[j].rank
	})
	for _, c := range w.classes {
		for _, o := range w.r.adapters.Orders(c) {
			log.Debugf("%s: applying %s %v", c.Name, o.Source, o.Names)
			applyOrder(out, o)
		}
	}
	return out
}

// applyOrder stably moves the properties listed in o to the front in list
// order. A list entry matches a property's key or its effective name.
func applyOrder(ds []*Descriptor, o binding.Order) {
	pos := make(map[string]int, len(o.Names))
	for i, name := range o.Names {
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}
	rank := func(d *Descriptor) (int, bool) {
		k, byKey := pos[d.Key]
		n, byName := pos[d.Name]
		switch {
		case byKey && byName:
			if n < k {
				return n, true
			}
			return k, true
		case byKey:
			return k, true
		}
		return n, byName
	}
	sort.SliceStable(ds, func(i, j int) bool {
		ri, li := rank(ds[i])
		rj, lj := rank(ds[j])
		switch {
		case li && lj:
			return ri < rj
		case li != lj:
			return li
		case o.Alphabetical:
			return ds[i].Name < ds[j].Name
		}
		return false
	})
}
