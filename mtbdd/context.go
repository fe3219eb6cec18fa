// SPDX-License-Identifier: MIT
// Package: symta/mtbdd
//
// context.go — Context construction, the node allocator/free-list, the
// unique tables, and the reference-counting primitives (Ref/Deref/MakeLeaf
// /SetBackground). Functional options follow the teacher's builder/options.go
// + builder/config.go shape: an unexported config struct, options that
// validate eagerly and panic on nonsensical input, applied in order by
// newConfig.

package mtbdd

import "fmt"

// Tracer is the single optional collaborator a Context accepts instead of
// a process-wide logger (see SPEC_FULL.md's ambient-stack section): a hook
// invoked around the two operations worth observing from outside.
type Tracer interface {
	// OnApply is called once per recursive Apply1/2/3 step (one operand
	// node tuple) that is not served from cache, with the operator id and
	// the number of entries in that Apply's cache just before the result
	// is stored.
	OnApply(opID string, cacheSize int)
	// OnGC is called once per node freed.
	OnGC(freed int)
}

type config struct {
	tracer        Tracer
	initialNodes  int
	background    Leaf
}

// Option configures a new Context. Option constructors validate eagerly
// and panic on nonsensical input, matching the rest of symta's
// functional-option surface.
type Option func(*config)

// WithTracer attaches an optional observability hook. Panics on nil.
func WithTracer(t Tracer) Option {
	if t == nil {
		panic("mtbdd: WithTracer(nil)")
	}
	return func(c *config) { c.tracer = t }
}

// WithInitialCapacity preallocates room for n node slots. Panics if n < 0.
func WithInitialCapacity(n int) Option {
	if n < 0 {
		panic("mtbdd: WithInitialCapacity(negative)")
	}
	return func(c *config) { c.initialNodes = n }
}

// WithBackground sets the initial background (global bottom) leaf value,
// equivalent to calling SetBackground immediately after NewContext. Panics
// on a nil leaf.
func WithBackground(v Leaf) Option {
	if v == nil {
		panic("mtbdd: WithBackground(nil)")
	}
	return func(c *config) { c.background = v }
}

func newConfig(opts ...Option) config {
	cfg := config{initialNodes: 64}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// absentLeaf is the Context's background value when the caller never
// supplies one: the canonical "nothing defined here" leaf.
type absentLeaf struct{}

func (absentLeaf) Key() string { return "\x00absent" }

// Context owns every node interned through it: the single shared,
// canonical, reduced MTBDD engine. Automata (and any other collaborator)
// may only be combined if they were built against the same Context; see
// ErrContextMismatch.
type Context struct {
	tracer Tracer

	slots    []nodeSlot
	freeList []uint32

	uniqueInternal map[ikey]nodeID
	uniqueLeaf     map[string]nodeID

	background nodeID

	apply2Cache map[apply2Key]nodeID
	apply3Cache map[apply3Key]nodeID
	apply1Cache map[apply1Key]nodeID
}

type apply2Key struct {
	a, b nodeID
	op   string
}

type apply3Key struct {
	a, b, c nodeID
	op      string
}

type apply1Key struct {
	a  nodeID
	op string
}

// NewContext creates an empty Context with a background leaf (defaulting
// to an internal "absent" sentinel if WithBackground is not supplied).
func NewContext(opts ...Option) *Context {
	cfg := newConfig(opts...)

	c := &Context{
		tracer:         cfg.tracer,
		slots:          make([]nodeSlot, 1, cfg.initialNodes+1),
		uniqueInternal: make(map[ikey]nodeID),
		uniqueLeaf:     make(map[string]nodeID),
		apply2Cache:    make(map[apply2Key]nodeID),
		apply3Cache:    make(map[apply3Key]nodeID),
		apply1Cache:    make(map[apply1Key]nodeID),
	}
	// slot 0 is permanently reserved as a sentinel "never a valid handle"
	// slot, so the zero nodeID (slot 0, gen 0) never aliases a live node.
	c.slots[0] = nodeSlot{kind: kindFree}

	bg := cfg.background
	if bg == nil {
		bg = absentLeaf{}
	}
	c.background = c.internLeaf(bg)
	return c
}

func (c *Context) allocSlot() uint32 {
	if n := len(c.freeList); n > 0 {
		idx := c.freeList[n-1]
		c.freeList = c.freeList[:n-1]
		return idx
	}
	c.slots = append(c.slots, nodeSlot{})
	return uint32(len(c.slots) - 1)
}

// internLeaf interns v, returning an owned (+1 ref) handle: a fresh node if
// no equal leaf exists yet, or a bumped reference to the existing one.
// Leaves are keyed by dynamic type and Key(), so leaves of different
// concrete types never share a node even when their Keys coincide.
func (c *Context) internLeaf(v Leaf) nodeID {
	key := fmt.Sprintf("%T\x00%s", v, v.Key())
	if id, ok := c.uniqueLeaf[key]; ok {
		c.slots[id.slot].refCount++
		return id
	}
	idx := c.allocSlot()
	gen := c.slots[idx].gen
	c.slots[idx] = nodeSlot{gen: gen, kind: kindLeaf, refCount: 1, leafKey: key, leaf: v}
	id := nodeID{slot: idx, gen: gen}
	c.uniqueLeaf[key] = id
	return id
}

// makeNode consumes one reference each on low and high (both must be
// owned handles obtained from some producing call) and returns an owned
// (+1 ref) handle to the reduced, canonical node for (v, low, high).
func (c *Context) makeNode(v int, low, high nodeID) nodeID {
	if low == high {
		c.derefNode(high)
		return low
	}
	key := ikey{variable: v, low: low, high: high}
	if id, ok := c.uniqueInternal[key]; ok {
		c.derefNode(low)
		c.derefNode(high)
		c.slots[id.slot].refCount++
		return id
	}
	idx := c.allocSlot()
	gen := c.slots[idx].gen
	c.slots[idx] = nodeSlot{gen: gen, kind: kindInternal, refCount: 1, variable: v, low: low, high: high}
	id := nodeID{slot: idx, gen: gen}
	c.uniqueInternal[key] = id
	return id
}

// refAny bumps n's reference count and returns n, for reuse at a second
// use site.
func (c *Context) refAny(n nodeID) nodeID {
	c.slots[n.slot].refCount++
	return n
}

// derefNode drops one reference from n, freeing it (and recursively
// dereferencing its children, or releasing its leaf) if the count reaches
// zero. Panics if n's generation does not match the live slot — a
// double-deref or use of an already-released handle.
func (c *Context) derefNode(n nodeID) {
	s := &c.slots[n.slot]
	if s.kind == kindFree || s.gen != n.gen {
		panic(wrapf("deref", ErrReleaseOfUnmanaged))
	}
	s.refCount--
	if s.refCount > 0 {
		return
	}
	switch s.kind {
	case kindInternal:
		delete(c.uniqueInternal, ikey{variable: s.variable, low: s.low, high: s.high})
		low, high := s.low, s.high
		c.freeSlot(n)
		c.derefNode(low)
		c.derefNode(high)
	case kindLeaf:
		delete(c.uniqueLeaf, s.leafKey)
		if r, ok := s.leaf.(Releaser); ok {
			r.Release()
		}
		c.freeSlot(n)
	}
	if c.tracer != nil {
		c.tracer.OnGC(1)
	}
}

func (c *Context) freeSlot(n nodeID) {
	c.slots[n.slot] = nodeSlot{gen: n.gen + 1, kind: kindFree}
	c.freeList = append(c.freeList, n.slot)
}

// MakeLeaf interns value, returning a Root that owns one reference. Equal
// values (by Leaf.Key) always yield the same underlying node.
func (c *Context) MakeLeaf(value Leaf) Root {
	return Root{ctx: c, id: c.internLeaf(value)}
}

// MakeConst returns a Root denoting the constant function value for every
// assignment — identical to MakeLeaf, since a leaf node already denotes a
// constant diagram; MakeConst exists as the conceptual starting point for
// SetValue-built cubes (spec.md §4.1's "used internally by cube builders").
func (c *Context) MakeConst(value Leaf) Root {
	return c.MakeLeaf(value)
}

// SetBackground replaces the global bottom value: the leaf returned by
// GetValue for any assignment not otherwise constrained by a diagram. It
// does not alter any existing diagram's explicit structure.
func (c *Context) SetBackground(value Leaf) {
	old := c.background
	c.background = c.internLeaf(value)
	c.derefNode(old)
}

// Background returns the current global bottom leaf.
func (c *Context) Background() Leaf {
	return c.leafOf(c.background)
}

// BackgroundRoot returns a fresh Root referencing the current background
// leaf, for callers that want to seed a diagram explicitly at that value.
func (c *Context) BackgroundRoot() Root {
	return Root{ctx: c, id: c.refAny(c.background)}
}

// Ref increments r's reference count and returns r unchanged — a second,
// independent owned copy of the same handle. Use this whenever a Root is
// about to be stored in two places (e.g. cloning an automaton).
func (c *Context) Ref(r Root) Root {
	if r.ctx != c {
		panic(wrapf("Ref", ErrContextMismatch))
	}
	c.refAny(r.id)
	return r
}

// Deref releases one reference on r. Once a node's count reaches zero its
// children are recursively released and the node is freed. Deref on a
// Root whose handle has already been fully released panics with
// ErrReleaseOfUnmanaged, per spec.md §4.9's "double-deref is a fatal
// error".
func (c *Context) Deref(r Root) {
	if r.ctx != c {
		panic(wrapf("Deref", ErrContextMismatch))
	}
	c.derefNode(r.id)
}

// LiveRefs sums the reference count of every live node — the references
// held by Root handles, by internal nodes on their children, by the Apply
// caches' pins, and by the Context itself on its background leaf. Used by
// scenario-6-shaped tests to check the refcount invariant: once every Root
// handle taken since a baseline has been dropped and ClearCache has
// released the cache pins, LiveRefs is back at that baseline.
func (c *Context) LiveRefs() uint64 {
	var total uint64
	for i := 1; i < len(c.slots); i++ {
		if c.slots[i].kind != kindFree {
			total += uint64(c.slots[i].refCount)
		}
	}
	return total
}

// LiveNodes returns the number of currently live (non-free) nodes.
func (c *Context) LiveNodes() int {
	n := 0
	for i := 1; i < len(c.slots); i++ {
		if c.slots[i].kind != kindFree {
			n++
		}
	}
	return n
}

// ClearCache drops every memoised Apply result. Per spec.md §5, this is a
// pure memoisation: clearing it can only change performance, never the
// result of any subsequent query (spec.md §8 property 8).
func (c *Context) ClearCache() {
	for _, id := range c.apply2Cache {
		c.derefNode(id)
	}
	for _, id := range c.apply3Cache {
		c.derefNode(id)
	}
	for _, id := range c.apply1Cache {
		c.derefNode(id)
	}
	c.apply2Cache = make(map[apply2Key]nodeID)
	c.apply3Cache = make(map[apply3Key]nodeID)
	c.apply1Cache = make(map[apply1Key]nodeID)
}
