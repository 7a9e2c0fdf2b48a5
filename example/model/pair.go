package model

import "goa.design/beans/runtime/beans"

// Pair holds two values of arbitrary types.
//
//bean:definition
type Pair[F, S any] struct {
	//bean:property
	first F
	//bean:property
	second S
}

// Swap returns a new pair with the members exchanged.
func (p *Pair[F, S]) Swap() *Pair[S, F] {
	return &Pair[S, F]{first: p.second, second: p.first}
}

//------------------------- AUTOGENERATED START -------------------------

// MetaBean returns the meta-bean of Pair.
func (p *Pair[F, S]) MetaBean() *beans.MetaBean {
	return pairMeta[F, S]()
}

func pairMeta[F, S any]() *beans.MetaBean {
	return beans.Load[*Pair[F, S]](newPairMeta[F, S])
}

func newPairMeta[F, S any]() *beans.MetaBean {
	return beans.NewMetaBean("Pair", func() *Pair[F, S] {
		return new(Pair[F, S])
	}, []beans.MetaProperty{
		beans.ReadWrite("first", (*Pair[F, S]).First, beans.Infallible((*Pair[F, S]).SetFirst)),
		beans.ReadWrite("second", (*Pair[F, S]).Second, beans.Infallible((*Pair[F, S]).SetSecond)),
	})
}

// NewPairBuilder returns a builder of Pair beans.
func NewPairBuilder[F, S any]() beans.BeanBuilder {
	return pairMeta[F, S]().Builder()
}

// First returns the first property.
func (p *Pair[F, S]) First() F {
	return p.first
}

// SetFirst sets the first property.
func (p *Pair[F, S]) SetFirst(first F) {
	p.first = first
}

// FirstProperty returns the first property bound to this bean.
func (p *Pair[F, S]) FirstProperty() beans.Property {
	return p.MetaBean().MustProperty(p, "first")
}

// Second returns the second property.
func (p *Pair[F, S]) Second() S {
	return p.second
}

// SetSecond sets the second property.
func (p *Pair[F, S]) SetSecond(second S) {
	p.second = second
}

// SecondProperty returns the second property bound to this bean.
func (p *Pair[F, S]) SecondProperty() beans.Property {
	return p.MetaBean().MustProperty(p, "second")
}

// PropertyGet returns the value of the named property.
func (p *Pair[F, S]) PropertyGet(name string) (any, error) {
	return p.MetaBean().PropertyGet(p, name)
}

// PropertySet sets the value of the named property.
func (p *Pair[F, S]) PropertySet(name string, value any) error {
	return p.MetaBean().PropertySet(p, name, value)
}

// Property returns the named property bound to this bean.
func (p *Pair[F, S]) Property(name string) (beans.Property, error) {
	return p.MetaBean().Property(p, name)
}

// Equal reports whether other holds the same property values.
func (p *Pair[F, S]) Equal(other *Pair[F, S]) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return beans.Equal(p.first, other.first) &&
		beans.Equal(p.second, other.second)
}

// Hash returns a hash code consistent with Equal.
func (p *Pair[F, S]) Hash() int {
	hash := 7
	hash = hash*31 + beans.Hash(p.first)
	hash = hash*31 + beans.Hash(p.second)
	return hash
}

// String returns the property values of the bean.
func (p *Pair[F, S]) String() string {
	return beans.ToString("Pair",
		"first", p.first,
		"second", p.second,
	)
}

//-------------------------- AUTOGENERATED END --------------------------
