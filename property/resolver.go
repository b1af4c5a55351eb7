package property

import (
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/beanscan/binding"
	"github.com/dhamidi/beanscan/generic"
	"github.com/dhamidi/beanscan/java"
)

var log = commonlog.GetLogger("beanscan.property")

type Options struct {
	// PrivatePropertiesEnabled makes non-public members implicitly visible.
	PrivatePropertiesEnabled bool
	// Adapters defaults to binding.All().
	Adapters binding.Set
	// CacheSize bounds the number of memoized results; 0 disables caching.
	CacheSize int
}

func DefaultOptions() Options {
	return Options{PrivatePropertiesEnabled: true, Adapters: binding.All(), CacheSize: 256}
}

// Context describes how the leaf class is referenced.
type Context struct {
	// Reference is the possibly parameterized type of the leaf, e.g.
	// Page<Pet>. Nil means the raw class.
	Reference *java.Type
	// Outer binds type variables appearing in Reference.
	Outer generic.Bindings
	// Annotations of the member referencing the leaf; @JsonIgnoreProperties
	// there hides properties of the leaf.
	Annotations []java.AnnotationModel
}

// Resolver resolves properties against a read-only index. It is safe for
// concurrent use; each call keeps its own state. The index must not change
// while a caching Resolver is in use.
type Resolver struct {
	index    *java.Index
	adapters binding.Set
	private  bool
	cache    *lru.Cache
}

func NewResolver(index *java.Index, opts Options) (*Resolver, error) {
	r := &Resolver{
		index:    index,
		adapters: opts.Adapters,
		private:  opts.PrivatePropertiesEnabled,
	}
	if r.adapters == nil {
		r.adapters = binding.All()
	}
	if opts.CacheSize > 0 {
		cache, err := lru.New(opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating property cache: %w", err)
		}
		r.cache = cache
	}
	return r, nil
}

func (r *Resolver) Index() *java.Index { return r.index }

func (r *Resolver) Adapters() binding.Set { return r.adapters }

// ResolveClass resolves the raw class named name.
func (r *Resolver) ResolveClass(name string) (*Properties, error) {
	class := r.index.Lookup(name)
	if class == nil {
		return nil, fmt.Errorf("class %s not found in index", name)
	}
	return r.Resolve(class, Context{}), nil
}

// Resolve returns the ordered properties of leaf. It panics when leaf is nil;
// no property of the scanned classes makes it fail.
func (r *Resolver) Resolve(leaf *java.ClassModel, ctx Context) *Properties {
	if leaf == nil {
		panic("property: Resolve called with nil leaf class")
	}
	var key string
	if r.cache != nil {
		key = r.cacheKey(leaf, ctx)
		if cached, ok := r.cache.Get(key); ok {
			log.Debugf("cache hit: %s", key)
			return cached.(*Properties)
		}
	}

	w := newWalker(r)
	w.visit(leaf, generic.Bind(leaf, ctx.Reference, ctx.Outer), 0, nil)
	props := w.finish(ctx.Annotations)

	if r.cache != nil {
		r.cache.Add(key, props)
	}
	return props
}

// cacheKey normalizes everything a result depends on: the leaf, the resolved
// reference, the outer environment and the referencing member's ignore list.
func (r *Resolver) cacheKey(leaf *java.ClassModel, ctx Context) string {
	var sb strings.Builder
	sb.WriteString(leaf.Name)
	sb.WriteByte('|')
	if ctx.Reference != nil && ctx.Reference.Kind == java.TypeParameterized {
		sb.WriteString(generic.Resolve(ctx.Reference, ctx.Outer).String())
	}
	sb.WriteByte('|')
	sb.WriteString(generic.Bind(leaf, ctx.Reference, ctx.Outer).String())
	sb.WriteByte('|')
	ignored := r.adapters.IgnoredProperties(ctx.Annotations)
	sort.Strings(ignored)
	sb.WriteString(strings.Join(ignored, ","))
	return sb.String()
}
