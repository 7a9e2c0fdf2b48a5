package beans

type (
	// Property is a meta-property bound to one bean instance.
	Property struct {
		bean any
		meta MetaProperty
	}

	// PropertyMap is a name-indexed view over the properties of one bean
	// instance. Errors come from the owning meta-properties.
	PropertyMap struct {
		bean any
		meta *MetaBean
	}
)

// Name returns the property name.
func (p Property) Name() string { return p.meta.Name() }

// Bean returns the bound bean.
func (p Property) Bean() any { return p.bean }

// MetaProperty returns the descriptor of the property.
func (p Property) MetaProperty() MetaProperty { return p.meta }

// Get returns the current value.
func (p Property) Get() (any, error) { return p.meta.Get(p.bean) }

// Set writes value.
func (p Property) Set(value any) error { return p.meta.Set(p.bean, value) }

// IsValid reports whether p is bound.
func (p Property) IsValid() bool { return p.meta != nil }

func (p Property) String() string {
	if p.meta == nil {
		return "Property{}"
	}
	v, err := p.Get()
	if err != nil {
		return p.meta.Name() + "=" + err.Error()
	}
	return p.meta.Name() + "=" + Format(v)
}

// Bean returns the bean the map is bound to.
func (m PropertyMap) Bean() any { return m.bean }

// MetaBean returns the meta-bean of the bound bean.
func (m PropertyMap) MetaBean() *MetaBean { return m.meta }

// Len returns the number of properties.
func (m PropertyMap) Len() int { return m.meta.MetaPropertyCount() }

// Contains reports whether name is a property of the bean.
func (m PropertyMap) Contains(name string) bool { return m.meta.MetaPropertyExists(name) }

// Names returns the property names in declaration order.
func (m PropertyMap) Names() []string { return m.meta.MetaPropertyMap().Names() }

// Get returns the value of the named property.
func (m PropertyMap) Get(name string) (any, error) { return m.meta.PropertyGet(m.bean, name) }

// Set writes the value of the named property.
func (m PropertyMap) Set(name string, value any) error { return m.meta.PropertySet(m.bean, name, value) }

// Property returns the named property handle.
func (m PropertyMap) Property(name string) (Property, error) { return m.meta.Property(m.bean, name) }

// ToMap returns a snapshot of every property value keyed by name, derived
// properties included.
func (m PropertyMap) ToMap() (map[string]any, error) {
	out := make(map[string]any, m.meta.MetaPropertyCount())
	for name, mp := range m.meta.MetaPropertyMap().All() {
		v, err := mp.Get(m.bean)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}
