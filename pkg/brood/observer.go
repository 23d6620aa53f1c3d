package brood

import "weak"

// Observer is a non-owning reference to a Person.
// Holding an Observer never keeps the person alive; Resolve fails once the
// person has been collected.
type Observer struct {
	ptr weak.Pointer[Person]
}

// Observe returns an Observer for p.
// It may be taken before p is registered; moving p into a household does not
// invalidate it.
func Observe(p *Person) Observer {
	return Observer{ptr: weak.Make(p)}
}

// Resolve returns the observed person.
// Returns ErrObserverExpired if the person no longer exists.
func (o Observer) Resolve() (*Person, error) {
	p := o.ptr.Value()
	if p == nil {
		return nil, ErrObserverExpired
	}
	return p, nil
}

// Boast has the observed person announce that they are still themselves.
func (o Observer) Boast() error {
	p, err := o.Resolve()
	if err != nil {
		return err
	}
	return p.announcer.Boast(p.Name())
}
