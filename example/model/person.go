package model

import (
	"strings"

	"goa.design/beans/runtime/beans"
)

// Person is a mutable person record.
//
//bean:definition
type Person struct {
	//bean:property validate=notNull
	forename string
	//bean:property
	age int
	//bean:property get=optional
	home *Address
	//bean:property
	nicknames []string
}

// Address formats the home address, or returns "" when there is none.
//
//bean:property style=derived
func (p *Person) Address() string {
	if p.home == nil {
		return ""
	}
	return strings.Join([]string{p.home.Street(), p.home.City()}, ", ")
}

//------------------------- AUTOGENERATED START -------------------------

// MetaBean returns the meta-bean of Person.
func (p *Person) MetaBean() *beans.MetaBean {
	return personMeta()
}

func personMeta() *beans.MetaBean {
	return beans.Load[*Person](newPersonMeta)
}

func newPersonMeta() *beans.MetaBean {
	return beans.NewMetaBean("Person", func() *Person {
		p := new(Person)
		p.nicknames = []string{}
		return p
	}, []beans.MetaProperty{
		beans.ReadWriteValidated("forename", (*Person).Forename, (*Person).SetForename),
		beans.ReadWrite("age", (*Person).Age, beans.Infallible((*Person).SetAge)),
		beans.OptionalWrapped("home", func(p *Person) *Address {
			return p.home
		}, beans.Infallible((*Person).SetHome)),
		beans.Collection("nicknames", (*Person).Nicknames, (*Person).SetNicknames),
		beans.Derived("address", (*Person).Address),
	})
}

// NewPersonBuilder returns a builder of Person beans.
func NewPersonBuilder() beans.BeanBuilder {
	return personMeta().Builder()
}

// Forename returns the forename property.
func (p *Person) Forename() string {
	return p.forename
}

// SetForename sets the forename property.
func (p *Person) SetForename(forename string) error {
	if err := beans.NotNull(forename, "forename"); err != nil {
		return err
	}
	p.forename = forename
	return nil
}

// ForenameProperty returns the forename property bound to this bean.
func (p *Person) ForenameProperty() beans.Property {
	return p.MetaBean().MustProperty(p, "forename")
}

// Age returns the age property.
func (p *Person) Age() int {
	return p.age
}

// SetAge sets the age property.
func (p *Person) SetAge(age int) {
	p.age = age
}

// AgeProperty returns the age property bound to this bean.
func (p *Person) AgeProperty() beans.Property {
	return p.MetaBean().MustProperty(p, "age")
}

// Home returns the home property.
func (p *Person) Home() beans.Optional[Address] {
	return beans.OptionalOf(p.home)
}

// SetHome sets the home property.
func (p *Person) SetHome(home *Address) {
	p.home = home
}

// HomeProperty returns the home property bound to this bean.
func (p *Person) HomeProperty() beans.Property {
	return p.MetaBean().MustProperty(p, "home")
}

// Nicknames returns the nicknames property.
func (p *Person) Nicknames() []string {
	return p.nicknames
}

// SetNicknames sets the nicknames property.
func (p *Person) SetNicknames(nicknames []string) error {
	if err := beans.NotNull(nicknames, "nicknames"); err != nil {
		return err
	}
	beans.ReplaceSlice(&p.nicknames, nicknames)
	return nil
}

// NicknamesProperty returns the nicknames property bound to this bean.
func (p *Person) NicknamesProperty() beans.Property {
	return p.MetaBean().MustProperty(p, "nicknames")
}

// AddressProperty returns the address property bound to this bean.
func (p *Person) AddressProperty() beans.Property {
	return p.MetaBean().MustProperty(p, "address")
}

// PropertyGet returns the value of the named property.
func (p *Person) PropertyGet(name string) (any, error) {
	return p.MetaBean().PropertyGet(p, name)
}

// PropertySet sets the value of the named property.
func (p *Person) PropertySet(name string, value any) error {
	return p.MetaBean().PropertySet(p, name, value)
}

// Property returns the named property bound to this bean.
func (p *Person) Property(name string) (beans.Property, error) {
	return p.MetaBean().Property(p, name)
}

// Equal reports whether other holds the same property values.
func (p *Person) Equal(other *Person) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return beans.Equal(p.forename, other.forename) &&
		beans.Equal(p.age, other.age) &&
		beans.Equal(p.home, other.home) &&
		beans.Equal(p.nicknames, other.nicknames)
}

// Hash returns a hash code consistent with Equal.
func (p *Person) Hash() int {
	hash := 7
	hash = hash*31 + beans.Hash(p.forename)
	hash = hash*31 + beans.Hash(p.age)
	hash = hash*31 + beans.Hash(p.home)
	hash = hash*31 + beans.Hash(p.nicknames)
	return hash
}

// String returns the property values of the bean.
func (p *Person) String() string {
	return beans.ToString("Person",
		"forename", p.forename,
		"age", p.age,
		"home", p.home,
		"nicknames", p.nicknames,
	)
}

//-------------------------- AUTOGENERATED END --------------------------
