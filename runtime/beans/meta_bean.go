package beans

import (
	"fmt"
	"iter"
	"reflect"
)

type (
	// Bean is implemented by every generated bean type.
	Bean interface {
		// MetaBean returns the meta-bean of the concrete type. It must be
		// callable on a nil receiver.
		MetaBean() *MetaBean
	}

	// Validator is implemented by beans that enforce constraints spanning
	// several properties. ValidateBean runs after the per-property checks.
	Validator interface {
		ValidateBean() error
	}

	// MetaBean describes one bean type: its name, its ordered properties and
	// how to allocate and build instances. A MetaBean is immutable once
	// published and safe for concurrent use.
	MetaBean struct {
		name      string
		beanType  reflect.Type
		props     []MetaProperty
		byKey     map[int32][]MetaProperty
		immutable bool
		newBean   func() any
	}

	// MetaBeanOption customizes a MetaBean at construction.
	MetaBeanOption func(*MetaBean)

	// MetaPropertyMap is a read-only view of the meta-properties of a bean
	// type in declaration order.
	MetaPropertyMap struct {
		meta *MetaBean
	}
)

// Immutable declares a bean type whose properties may only be written by an
// accumulating builder.
func Immutable() MetaBeanOption {
	return func(mb *MetaBean) { mb.immutable = true }
}

// NewMetaBean builds the meta-bean of bean type B. factory allocates a default
// instance; props lists the properties in declaration order. NewMetaBean
// panics if a property is declared twice or belongs to another type.
func NewMetaBean[B any](name string, factory func() B, props []MetaProperty, opts ...MetaBeanOption) *MetaBean {
	mb := &MetaBean{
		name:     name,
		beanType: reflect.TypeFor[B](),
		props:    make([]MetaProperty, 0, len(props)),
		byKey:    make(map[int32][]MetaProperty, len(props)),
		newBean:  func() any { return factory() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(mb)
		}
	}
	for _, mp := range props {
		if mp.DeclaringType() != mb.beanType {
			panic(fmt.Sprintf("beans: property %q of %s is declared on %v", mp.Name(), name, mp.DeclaringType()))
		}
		if mb.MetaPropertyExists(mp.Name()) {
			panic(fmt.Sprintf("beans: property %q of %s declared twice", mp.Name(), name))
		}
		pb := mp.base()
		pb.beanName = name
		pb.builderOnly = mb.immutable
		mb.props = append(mb.props, mp)
		mb.byKey[mp.Key()] = append(mb.byKey[mp.Key()], mp)
	}
	return mb
}

// Name returns the simple name of the bean type.
func (mb *MetaBean) Name() string { return mb.name }

// BeanType returns the Go type of bean instances.
func (mb *MetaBean) BeanType() reflect.Type { return mb.beanType }

// IsImmutable reports whether instances are only written through builders.
func (mb *MetaBean) IsImmutable() bool { return mb.immutable }

// MetaPropertyCount returns the number of declared properties.
func (mb *MetaBean) MetaPropertyCount() int { return len(mb.props) }

// MetaPropertyExists reports whether name is a declared property.
func (mb *MetaBean) MetaPropertyExists(name string) bool {
	_, ok := mb.lookup(name)
	return ok
}

// MetaProperty returns the named meta-property or an ErrNotFound error.
func (mb *MetaBean) MetaProperty(name string) (MetaProperty, error) {
	mp, ok := mb.lookup(name)
	if !ok {
		return nil, notFound(mb.name, name)
	}
	return mp, nil
}

// MustMetaProperty is like MetaProperty but panics on unknown names.
func (mb *MetaBean) MustMetaProperty(name string) MetaProperty {
	mp, err := mb.MetaProperty(name)
	if err != nil {
		panic(err)
	}
	return mp
}

// MetaPropertyMap returns the ordered view of all meta-properties.
func (mb *MetaBean) MetaPropertyMap() MetaPropertyMap {
	return MetaPropertyMap{meta: mb}
}

// CreateBean returns a fresh default instance for mutable beans, or an empty
// accumulating BeanBuilder for immutable ones.
func (mb *MetaBean) CreateBean() any {
	if mb.immutable {
		return mb.Builder()
	}
	return mb.newBean()
}

// Builder returns a builder matching the construction style of the bean:
// mutating over a fresh instance, or accumulating for immutable beans.
func (mb *MetaBean) Builder() BeanBuilder {
	if mb.immutable {
		return newAccumulatingBuilder(mb)
	}
	return newMutatingBuilder(mb, mb.newBean())
}

// BuilderFor returns a mutating builder over an existing instance.
func (mb *MetaBean) BuilderFor(bean any) (BeanBuilder, error) {
	if err := mb.accepts(bean); err != nil {
		return nil, err
	}
	if mb.immutable {
		return nil, unsupported(mb.name, "", "bean is immutable, use a builder")
	}
	return newMutatingBuilder(mb, bean), nil
}

// PropertyMap returns the name-indexed view of bean.
func (mb *MetaBean) PropertyMap(bean any) (PropertyMap, error) {
	if err := mb.accepts(bean); err != nil {
		return PropertyMap{}, err
	}
	return PropertyMap{bean: bean, meta: mb}, nil
}

// Property returns the named property handle bound to bean.
func (mb *MetaBean) Property(bean any, name string) (Property, error) {
	mp, err := mb.MetaProperty(name)
	if err != nil {
		return Property{}, err
	}
	return mp.CreateProperty(bean)
}

// MustProperty is like Property but panics on failure.
func (mb *MetaBean) MustProperty(bean any, name string) Property {
	p, err := mb.Property(bean, name)
	if err != nil {
		panic(err)
	}
	return p
}

// PropertyGet returns the value of the named property of bean.
func (mb *MetaBean) PropertyGet(bean any, name string) (any, error) {
	mp, err := mb.MetaProperty(name)
	if err != nil {
		return nil, err
	}
	return mp.Get(bean)
}

// PropertySet writes the value of the named property of bean.
func (mb *MetaBean) PropertySet(bean any, name string, value any) error {
	mp, err := mb.MetaProperty(name)
	if err != nil {
		return err
	}
	return mp.Set(bean, value)
}

// Validate checks that every required property of bean is non-nil, then runs
// the ValidateBean hook if bean implements Validator.
func (mb *MetaBean) Validate(bean any) error {
	if err := mb.accepts(bean); err != nil {
		return err
	}
	for _, mp := range mb.props {
		if !mp.Required() || mp.Style() == StyleDerived {
			continue
		}
		v, err := mp.Get(bean)
		if err != nil {
			return err
		}
		if isNil(v) {
			return invalid(mb.name, mp.Name(), "must not be nil")
		}
	}
	if v, ok := bean.(Validator); ok {
		if err := v.ValidateBean(); err != nil {
			return fmt.Errorf("%s: %w", mb.name, err)
		}
	}
	return nil
}

func (mb *MetaBean) String() string {
	return "MetaBean:" + mb.name
}

// lookup resolves name through its dispatch key bucket. Names sharing a key
// are told apart by string comparison.
func (mb *MetaBean) lookup(name string) (MetaProperty, bool) {
	for _, mp := range mb.byKey[DispatchKey(name)] {
		if mp.Name() == name {
			return mp, true
		}
	}
	return nil, false
}

func (mb *MetaBean) accepts(bean any) error {
	if bean == nil || reflect.TypeOf(bean) != mb.beanType || isNil(bean) {
		return mismatch(mb.name, "", "bean %T is not a non-nil %v", bean, mb.beanType)
	}
	return nil
}

// Len returns the number of meta-properties.
func (m MetaPropertyMap) Len() int { return len(m.meta.props) }

// Get returns the named meta-property.
func (m MetaPropertyMap) Get(name string) (MetaProperty, bool) { return m.meta.lookup(name) }

// Contains reports whether name is a declared property.
func (m MetaPropertyMap) Contains(name string) bool {
	_, ok := m.meta.lookup(name)
	return ok
}

// Names returns the property names in declaration order.
func (m MetaPropertyMap) Names() []string {
	names := make([]string, len(m.meta.props))
	for i, mp := range m.meta.props {
		names[i] = mp.Name()
	}
	return names
}

// All iterates over the meta-properties in declaration order.
func (m MetaPropertyMap) All() iter.Seq2[string, MetaProperty] {
	return func(yield func(string, MetaProperty) bool) {
		for _, mp := range m.meta.props {
			if !yield(mp.Name(), mp) {
				return
			}
		}
	}
}
