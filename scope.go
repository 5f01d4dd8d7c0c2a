package itksn

// Scope is the decode context of one record: the fields decoded so far in
// that record plus a link to the enclosing record's scope. Fields are only
// ever appended while the record is being processed, and lookups never
// fall through to the parent implicitly; callers walk up with Parent.
type Scope struct {
	parent *Scope
	rec    *Record
	start  int
}

// NewScope opens the scope of rec, which starts at byte offset start.
func NewScope(parent *Scope, rec *Record, start int) *Scope {
	return &Scope{parent: parent, rec: rec, start: start}
}

// Lookup returns a field of the current record.
func (s *Scope) Lookup(name string) (Value, bool) {
	if s == nil {
		return nil, false
	}
	return s.rec.Get(name)
}

// Parent returns the enclosing record's scope, or nil at the root.
func (s *Scope) Parent() *Scope {
	if s == nil {
		return nil
	}
	return s.parent
}

// Record returns the record being built.
func (s *Scope) Record() *Record {
	if s == nil {
		return nil
	}
	return s.rec
}

// Start is the byte offset at which the record begins.
func (s *Scope) Start() int {
	if s == nil {
		return 0
	}
	return s.start
}
