package model

import (
	"fmt"

	"goa.design/beans/runtime/beans"
)

// Address is an immutable postal address. Instances are created with
// NewAddressBuilder.
//
//bean:definition style=immutable
type Address struct {
	//bean:property
	number int
	//bean:property validate=notNull
	street string
	//bean:property validate=notNull
	city string
}

// ValidateBean rejects addresses without a street number.
func (a *Address) ValidateBean() error {
	if a.number < 0 {
		return fmt.Errorf("negative street number %d", a.number)
	}
	return nil
}

//------------------------- AUTOGENERATED START -------------------------

// MetaBean returns the meta-bean of Address.
func (a *Address) MetaBean() *beans.MetaBean {
	return addressMeta()
}

func addressMeta() *beans.MetaBean {
	return beans.Load[*Address](newAddressMeta)
}

func newAddressMeta() *beans.MetaBean {
	return beans.NewMetaBean("Address", func() *Address {
		return new(Address)
	}, []beans.MetaProperty{
		beans.ReadWrite("number", (*Address).Number, func(a *Address, number int) error {
			a.number = number
			return nil
		}),
		beans.ReadWriteValidated("street", (*Address).Street, func(a *Address, street string) error {
			a.street = street
			return nil
		}),
		beans.ReadWriteValidated("city", (*Address).City, func(a *Address, city string) error {
			a.city = city
			return nil
		}),
	}, beans.Immutable())
}

// NewAddressBuilder returns a builder of Address beans.
func NewAddressBuilder() beans.BeanBuilder {
	return addressMeta().Builder()
}

// Number returns the number property.
func (a *Address) Number() int {
	return a.number
}

// NumberProperty returns the number property bound to this bean.
func (a *Address) NumberProperty() beans.Property {
	return a.MetaBean().MustProperty(a, "number")
}

// Street returns the street property.
func (a *Address) Street() string {
	return a.street
}

// StreetProperty returns the street property bound to this bean.
func (a *Address) StreetProperty() beans.Property {
	return a.MetaBean().MustProperty(a, "street")
}

// City returns the city property.
func (a *Address) City() string {
	return a.city
}

// CityProperty returns the city property bound to this bean.
func (a *Address) CityProperty() beans.Property {
	return a.MetaBean().MustProperty(a, "city")
}

// PropertyGet returns the value of the named property.
func (a *Address) PropertyGet(name string) (any, error) {
	return a.MetaBean().PropertyGet(a, name)
}

// PropertySet sets the value of the named property.
func (a *Address) PropertySet(name string, value any) error {
	return a.MetaBean().PropertySet(a, name, value)
}

// Property returns the named property bound to this bean.
func (a *Address) Property(name string) (beans.Property, error) {
	return a.MetaBean().Property(a, name)
}

// Equal reports whether other holds the same property values.
func (a *Address) Equal(other *Address) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	return beans.Equal(a.number, other.number) &&
		beans.Equal(a.street, other.street) &&
		beans.Equal(a.city, other.city)
}

// Hash returns a hash code consistent with Equal.
func (a *Address) Hash() int {
	hash := 7
	hash = hash*31 + beans.Hash(a.number)
	hash = hash*31 + beans.Hash(a.street)
	hash = hash*31 + beans.Hash(a.city)
	return hash
}

// String returns the property values of the bean.
func (a *Address) String() string {
	return beans.ToString("Address",
		"number", a.number,
		"street", a.street,
		"city", a.city,
	)
}

//-------------------------- AUTOGENERATED END --------------------------
