package oobind

// Builders are fluent: each step returns the builder and the first failing
// step is remembered. Later steps become no-ops and Build reports the error
// of the exact call that introduced it. Err exposes it without building.

// sticky records the first error of a builder chain.
type sticky struct{ err error }

func (s *sticky) fail(err error) bool {
	if err == nil {
		return false
	}
	if s.err == nil {
		s.err = err
	}
	return true
}

func (s *sticky) failed() bool { return s.err != nil }

// optionalDoc is a doc that must be set exactly once.
type optionalDoc struct {
	symbol string
	doc    *Doc
}

func (o *optionalDoc) set(d Doc) error {
	if o.doc != nil {
		return newError(CodeDocAlreadyDefined, o.symbol)
	}
	if err := d.attach(o.symbol); err != nil {
		return err
	}
	o.doc = &d
	return nil
}

func (o *optionalDoc) extract() (Doc, error) {
	if o.doc == nil {
		return Doc{}, newError(CodeDocNotDefined, o.symbol)
	}
	return *o.doc, nil
}

// parseName validates s, for use inside builder steps.
func parseName(s string) (Name, error) { return NewName(s) }

// Arg is a named, documented parameter of a function or callback.
type Arg[T any] struct {
	Name Name
	Type T
	doc  Doc
}

func (a *Arg[T]) RawDoc() Doc { return a.doc }

// Return is a documented return value. A nil *Return means void.
type Return[T any] struct {
	Type T
	doc  Doc
}

func (r *Return[T]) RawDoc() Doc { return r.doc }

// argList accumulates uniquely-named arguments.
type argList[T any] struct {
	args  []*Arg[T]
	names map[string]struct{}
}

func (l *argList[T]) add(owner, name string, t T, doc Doc) error {
	n, err := parseName(name)
	if err != nil {
		return err
	}
	if err := doc.attach(owner); err != nil {
		return err
	}
	if l.names == nil {
		l.names = map[string]struct{}{}
	}
	if _, dup := l.names[name]; dup {
		return newError(CodeDuplicateArgName, owner, "arg", name)
	}
	l.names[name] = struct{}{}
	l.args = append(l.args, &Arg[T]{Name: n, Type: t, doc: doc})
	return nil
}

func (l *argList[T]) argNames() []Name {
	out := make([]Name, len(l.args))
	for i, a := range l.args {
		out[i] = a.Name
	}
	return out
}
