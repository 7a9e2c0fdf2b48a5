// Package beans is the property metadata runtime targeted by code generated
// with beangen. Every generated bean type publishes one MetaBean, built lazily
// through Load and immutable afterwards, that lists its MetaProperty
// descriptors in declaration order.
//
// Callers use the meta-bean to manipulate beans generically by property name:
//
//	mb := addr.MetaBean()
//	v, err := mb.PropertyGet(addr, "street")
//	err = mb.PropertySet(addr, "street", "Park Lane")
//
// Beans are built through a BeanBuilder. Mutable beans use a mutating builder
// that writes straight through to a fresh instance; immutable beans use an
// accumulating builder whose Build allocates the bean, applies every pending
// value in declaration order and validates the result:
//
//	b := person.NewPersonBuilder()
//	_ = b.Set("number", 12)
//	_ = b.Set("street", "Park Lane")
//	p, err := beans.BuildAs[*person.Person](b) // ErrValidation: city not set
//
// Failures are *PropertyError values whose Kind is one of ErrNotFound,
// ErrUnsupported, ErrValidation or ErrTypeMismatch.
//
// Name lookups go through DispatchKey buckets and always confirm the property
// name, so names sharing a key resolve to the right property.
package beans
