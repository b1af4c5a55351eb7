package property

import (
	"github.com/dhamidi/beanscan/binding"
)

// direction tracks whether a property can be read, or written. The first
// explicit decision seen walking leaf to root is final; otherwise any
// implicitly visible member makes the direction visible.
type direction struct {
	explicit binding.Decision
	implicit bool
}

func (s *direction) apply(decision binding.Decision, explicit bool) {
	if explicit {
		if s.explicit == binding.Undecided {
			s.explicit = decision
		}
		return
	}
	if decision == binding.Expose {
		s.implicit = true
	}
}

func (s *direction) visible() bool {
	return s.explicit == binding.Expose || (s.explicit == binding.Undecided && s.implicit)
}

// visibility decides whether d is ignored. Field decisions cover both
// directions, accessor decisions only their own.
func (w *walker) visibility(d *Descriptor) {
	var read, write direction
	var readOnly, writeOnly bool
	for _, m := range d.Members {
		v := w.r.adapters.Visibility(m.Annotations())
		readOnly = readOnly || v.ReadOnly
		writeOnly = writeOnly || v.WriteOnly

		decision, explicit := v.Decision, v.Decision != binding.Undecided
		if !explicit {
			decision = w.implicit(m)
		}
		switch m.Kind {
		case binding.FieldMember:
			read.apply(decision, explicit)
			write.apply(decision, explicit)
		case binding.ReadMember:
			read.apply(decision, explicit)
		case binding.WriteMember:
			write.apply(decision, explicit)
		}
	}

	canRead, canWrite := read.visible(), write.visible()
	d.Ignored = !canRead && !canWrite
	if d.Ignored {
		log.Debugf("%s: no visible member", d.Key)
		return
	}
	d.ReadOnly = readOnly || (canRead && write.explicit == binding.Hide)
	d.WriteOnly = writeOnly || (canWrite && read.explicit == binding.Hide)
}

// implicit is the visibility of an unannotated member: transient fields are
// hidden, then the closest access directive on the declaring type and up the
// superclass chain of the class it was reached through applies, then the
// member's own modifiers.
func (w *walker) implicit(m *Member) binding.Decision {
	if m.Field != nil && m.Field.IsTransient {
		return binding.Hide
	}
	view := m.adapterView()
	if m.Class.IsInterface() {
		if decision := w.r.adapters.Access(m.Class, view); decision != binding.Undecided {
			return decision
		}
	}
	seen := map[string]bool{}
	for c := m.via; c != nil && !seen[c.Name]; c = w.lookup(c.SuperClass.ClassName()) {
		seen[c.Name] = true
		if decision := w.r.adapters.Access(c, view); decision != binding.Undecided {
			return decision
		}
	}
	if m.Visibility().IsPublic() || w.r.private {
		return binding.Expose
	}
	return binding.Hide
}
