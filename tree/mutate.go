package tree

// Object mutation is copy-on-write by default: the receiver is never touched,
// newly attached value graphs are deep-copied so the result aliases neither
// the receiver nor the arguments. MutateOpt{InPlace: true} opts out of both
// copies and returns the receiver.

// MutateOpt configures object mutation.
type MutateOpt struct {
	// InPlace skips the copies and mutates the receiver.
	InPlace bool
}

func pickMutateOpt(opts []MutateOpt) MutateOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return MutateOpt{}
}

// Set returns an Object in which the named member holds v. An existing member
// keeps its position; a new member is appended. A nil receiver acts as an
// empty object.
func (o *Object) Set(name string, v Node, opts ...MutateOpt) *Object {
	opt := pickMutateOpt(opts)
	if opt.InPlace && o != nil {
		o.setInPlace(name, v)
		return o
	}
	out := o.cloneShallow()
	out.setInPlace(name, cloneOrNil(v))
	return out
}

// Remove returns an Object without the named member. Removing an absent name
// is a no-op that returns the receiver unchanged.
func (o *Object) Remove(name string, opts ...MutateOpt) *Object {
	if !o.Has(name) {
		return o
	}
	opt := pickMutateOpt(opts)
	target := o
	if !opt.InPlace {
		target = o.cloneShallow()
	}
	i := target.index[name]
	target.members = append(target.members[:i], target.members[i+1:]...)
	delete(target.index, name)
	for j := i; j < len(target.members); j++ {
		target.index[target.members[j].Name] = j
	}
	return target
}

// Merge overlays b onto the receiver: every key of b overwrites the same key,
// keys only in the receiver are preserved. A nil or empty b is a no-op that
// returns the receiver itself, so callers can cheaply detect "nothing to
// merge" by reference comparison.
func (o *Object) Merge(b *Object, opts ...MutateOpt) *Object {
	if b.Len() == 0 {
		return o
	}
	opt := pickMutateOpt(opts)
	target := o
	if opt.InPlace {
		if target == nil {
			target = NewObject()
		}
		for _, m := range b.members {
			target.setInPlace(m.Name, m.Value)
		}
		return target
	}
	target = o.cloneShallow()
	for _, m := range b.members {
		target.setInPlace(m.Name, cloneOrNil(m.Value))
	}
	return target
}

func cloneOrNil(n Node) Node {
	if isNilNode(n) {
		return n
	}
	return n.Clone()
}
