package beans

import (
	"errors"
	"reflect"
)

type (
	// MetaProperty describes one property of a bean type and reads or writes it
	// on instances of that type. Implementations are created by the
	// constructors of this package (ReadWrite, Derived, Collection, ...) and are
	// immutable once their meta-bean is published.
	MetaProperty interface {
		// Name is the property name.
		Name() string
		// Key is the dispatch key of the name, see DispatchKey.
		Key() int32
		// DeclaringType is the bean type declaring the property.
		DeclaringType() reflect.Type
		// PropertyType is the declared type of the property value.
		PropertyType() reflect.Type
		// Style is the declared property style.
		Style() Style
		// Required reports whether nil values are rejected.
		Required() bool
		// Settable reports whether Set may succeed on a bean instance.
		Settable() bool
		// Get returns the current value of the property on bean.
		Get(bean any) (any, error)
		// Set writes value to the property of bean.
		Set(bean any, value any) error
		// Validate checks value against the property type and constraints
		// without writing it.
		Validate(value any) error
		// CreateProperty returns a handle bound to bean.
		CreateProperty(bean any) (Property, error)

		base() *propertyBase
		// assign writes during the builder phase, bypassing builder-only
		// restrictions.
		assign(bean any, value any) error
	}

	// PropertyOption customizes a MetaProperty at construction.
	PropertyOption func(*propertyBase)

	propertyBase struct {
		name        string
		key         int32
		style       Style
		declaring   reflect.Type
		ptype       reflect.Type
		required    bool
		builderOnly bool
		beanName    string
	}

	accessor[B, P any] struct {
		*propertyBase
		get func(B) P
	}

	standardProperty[B, P any] struct {
		accessor[B, P]
		set func(B, P) error
	}

	collectionProperty[B, P any] struct {
		accessor[B, P]
		set func(B, P) error
	}

	derivedProperty[B, P any] struct {
		accessor[B, P]
	}
)

// Required marks the property as rejecting nil values.
func Required() PropertyOption {
	return func(p *propertyBase) { p.required = true }
}

// ReadWrite declares a plain stored property.
func ReadWrite[B, P any](name string, get func(B) P, set func(B, P) error, opts ...PropertyOption) MetaProperty {
	return &standardProperty[B, P]{accessor: newAccessor(name, StyleReadWrite, get, opts), set: set}
}

// ReadWriteValidated declares a stored property that rejects nil.
func ReadWriteValidated[B, P any](name string, get func(B) P, set func(B, P) error, opts ...PropertyOption) MetaProperty {
	opts = append(opts, Required())
	return &standardProperty[B, P]{accessor: newAccessor(name, StyleReadWriteValidated, get, opts), set: set}
}

// FieldOnlyGet declares a stored property without a generated getter. get
// reads the field directly.
func FieldOnlyGet[B, P any](name string, get func(B) P, set func(B, P) error, opts ...PropertyOption) MetaProperty {
	return &standardProperty[B, P]{accessor: newAccessor(name, StyleFieldOnlyGet, get, opts), set: set}
}

// OptionalWrapped declares a stored pointer property exposed through an
// Optional getter. get returns the raw pointer.
func OptionalWrapped[B, P any](name string, get func(B) P, set func(B, P) error, opts ...PropertyOption) MetaProperty {
	return &standardProperty[B, P]{accessor: newAccessor(name, StyleOptionalWrapped, get, opts), set: set}
}

// Collection declares a slice or map property. Nil is always rejected.
func Collection[B, P any](name string, get func(B) P, set func(B, P) error, opts ...PropertyOption) MetaProperty {
	opts = append(opts, Required())
	return &collectionProperty[B, P]{accessor: newAccessor(name, StyleCollection, get, opts), set: set}
}

// Derived declares a read-only property computed by get.
func Derived[B, P any](name string, get func(B) P, opts ...PropertyOption) MetaProperty {
	return &derivedProperty[B, P]{accessor: newAccessor(name, StyleDerived, get, opts)}
}

func newAccessor[B, P any](name string, style Style, get func(B) P, opts []PropertyOption) accessor[B, P] {
	pb := &propertyBase{
		name:      name,
		key:       DispatchKey(name),
		style:     style,
		declaring: reflect.TypeFor[B](),
		ptype:     reflect.TypeFor[P](),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(pb)
		}
	}
	return accessor[B, P]{propertyBase: pb, get: get}
}

func (p *propertyBase) Name() string                { return p.name }
func (p *propertyBase) Key() int32                  { return p.key }
func (p *propertyBase) DeclaringType() reflect.Type { return p.declaring }
func (p *propertyBase) PropertyType() reflect.Type  { return p.ptype }
func (p *propertyBase) Style() Style                { return p.style }
func (p *propertyBase) Required() bool              { return p.required }
func (p *propertyBase) base() *propertyBase         { return p }

// checkNil rejects nil for required properties.
func (p *propertyBase) checkNil(value any) error {
	if p.required && isNil(value) {
		return invalid(p.beanName, p.name, "must not be nil")
	}
	return nil
}

// annotate fills in the bean and property names of errors returned by
// generated setters.
func (p *propertyBase) annotate(err error) error {
	var perr *PropertyError
	if errors.As(err, &perr) {
		if perr.Bean == "" {
			perr.Bean = p.beanName
		}
		if perr.Property == "" {
			perr.Property = p.name
		}
	}
	return err
}

func (a accessor[B, P]) Get(bean any) (any, error) {
	b, err := a.cast(bean)
	if err != nil {
		return nil, err
	}
	return a.get(b), nil
}

func (a accessor[B, P]) cast(bean any) (B, error) {
	b, ok := bean.(B)
	if !ok || isNil(bean) {
		var zero B
		return zero, mismatch(a.beanName, a.name, "bean %T is not a non-nil %v", bean, a.declaring)
	}
	return b, nil
}

func (a accessor[B, P]) convert(value any) (P, error) {
	var zero P
	if value == nil {
		if nillable(a.ptype) {
			return zero, nil
		}
		return zero, mismatch(a.beanName, a.name, "nil is not assignable to %v", a.ptype)
	}
	v, ok := value.(P)
	if !ok {
		return zero, mismatch(a.beanName, a.name, "%T is not assignable to %v", value, a.ptype)
	}
	return v, nil
}

func (a accessor[B, P]) validate(value any) error {
	if err := a.checkNil(value); err != nil {
		return err
	}
	_, err := a.convert(value)
	return err
}

func (a accessor[B, P]) bind(self MetaProperty, bean any) (Property, error) {
	if _, err := a.cast(bean); err != nil {
		return Property{}, err
	}
	return Property{bean: bean, meta: self}, nil
}

func (p *standardProperty[B, P]) Settable() bool { return !p.builderOnly }

func (p *standardProperty[B, P]) Set(bean any, value any) error {
	if p.builderOnly {
		return unsupported(p.beanName, p.name, "bean is immutable, use a builder")
	}
	return p.assign(bean, value)
}

func (p *standardProperty[B, P]) assign(bean any, value any) error {
	b, err := p.cast(bean)
	if err != nil {
		return err
	}
	if err := p.checkNil(value); err != nil {
		return err
	}
	v, err := p.convert(value)
	if err != nil {
		return err
	}
	return p.annotate(p.set(b, v))
}

func (p *standardProperty[B, P]) Validate(value any) error { return p.validate(value) }

func (p *standardProperty[B, P]) CreateProperty(bean any) (Property, error) { return p.bind(p, bean) }

func (p *collectionProperty[B, P]) Settable() bool { return !p.builderOnly }

func (p *collectionProperty[B, P]) Set(bean any, value any) error {
	if p.builderOnly {
		return unsupported(p.beanName, p.name, "bean is immutable, use a builder")
	}
	return p.assign(bean, value)
}

func (p *collectionProperty[B, P]) assign(bean any, value any) error {
	b, err := p.cast(bean)
	if err != nil {
		return err
	}
	if isNil(value) {
		return invalid(p.beanName, p.name, "collection must not be nil")
	}
	v, err := p.convert(value)
	if err != nil {
		return err
	}
	return p.annotate(p.set(b, v))
}

func (p *collectionProperty[B, P]) Validate(value any) error { return p.validate(value) }

func (p *collectionProperty[B, P]) CreateProperty(bean any) (Property, error) { return p.bind(p, bean) }

func (p *derivedProperty[B, P]) Settable() bool { return false }

func (p *derivedProperty[B, P]) Set(any, any) error {
	return unsupported(p.beanName, p.name, "derived property is read-only")
}

func (p *derivedProperty[B, P]) assign(any, any) error {
	return unsupported(p.beanName, p.name, "derived property is read-only")
}

func (p *derivedProperty[B, P]) Validate(any) error {
	return unsupported(p.beanName, p.name, "derived property is read-only")
}

func (p *derivedProperty[B, P]) CreateProperty(bean any) (Property, error) { return p.bind(p, bean) }
