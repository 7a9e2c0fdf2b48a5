package beans_test

import (
	"errors"
	"strings"

	"goa.design/beans/runtime/beans"
)

// gadget is a mutable bean written by hand the way beangen renders one.
type gadget struct {
	number int
	street string
	owner  *string
	tags   []string
	aa     string
	bb     string
}

func (*gadget) MetaBean() *beans.MetaBean { return gadgetMeta() }

func gadgetMeta() *beans.MetaBean { return beans.Load[*gadget](newGadgetMeta) }

func newGadgetMeta() *beans.MetaBean {
	return beans.NewMetaBean("Gadget", func() *gadget { return &gadget{tags: []string{}} }, []beans.MetaProperty{
		beans.ReadWrite("number", (*gadget).Number, beans.Infallible((*gadget).SetNumber)),
		beans.ReadWriteValidated("street", (*gadget).Street, (*gadget).SetStreet),
		beans.OptionalWrapped("owner", func(g *gadget) *string { return g.owner }, beans.Infallible((*gadget).SetOwner)),
		beans.Collection("tags", (*gadget).Tags, (*gadget).SetTags),
		beans.ReadWrite("Aa", func(g *gadget) string { return g.aa }, beans.Infallible(func(g *gadget, v string) { g.aa = v })),
		beans.ReadWrite("BB", func(g *gadget) string { return g.bb }, beans.Infallible(func(g *gadget, v string) { g.bb = v })),
		beans.Derived("label", (*gadget).Label),
	})
}

func (g *gadget) Number() int          { return g.number }
func (g *gadget) SetNumber(number int) { g.number = number }
func (g *gadget) Street() string       { return g.street }

func (g *gadget) SetStreet(street string) error {
	if err := beans.NotNull(street, "street"); err != nil {
		return err
	}
	if strings.TrimSpace(street) == "" && street != "" {
		return &beans.PropertyError{Kind: beans.ErrValidation, Msg: "blank street"}
	}
	g.street = street
	return nil
}

func (g *gadget) Owner() beans.Optional[string] { return beans.OptionalOf(g.owner) }
func (g *gadget) SetOwner(owner *string)        { g.owner = owner }
func (g *gadget) Tags() []string                { return g.tags }

func (g *gadget) SetTags(tags []string) error {
	if err := beans.NotNull(tags, "tags"); err != nil {
		return err
	}
	beans.ReplaceSlice(&g.tags, tags)
	return nil
}

func (g *gadget) Label() string { return g.street + "#" + g.aa }

// record is an immutable bean: its properties are written by builders only.
type record struct {
	number int
	street string
	city   string
	notes  *string
}

func (*record) MetaBean() *beans.MetaBean { return recordMeta() }

func recordMeta() *beans.MetaBean { return beans.Load[*record](newRecordMeta) }

func newRecordMeta() *beans.MetaBean {
	return beans.NewMetaBean("Record", func() *record { return new(record) }, []beans.MetaProperty{
		beans.ReadWrite("number", (*record).Number, func(b *record, v int) error { b.number = v; return nil }),
		beans.ReadWriteValidated("street", (*record).Street, func(b *record, v string) error { b.street = v; return nil }),
		beans.ReadWriteValidated("city", (*record).City, func(b *record, v string) error { b.city = v; return nil }),
		beans.ReadWrite("notes", (*record).Notes, func(b *record, v *string) error { b.notes = v; return nil }),
	}, beans.Immutable())
}

func (r *record) Number() int    { return r.number }
func (r *record) Street() string { return r.street }
func (r *record) City() string   { return r.city }
func (r *record) Notes() *string { return r.notes }

var errSameStreetAndCity = errors.New("street and city must differ")

// ValidateBean rejects records whose street equals their city.
func (r *record) ValidateBean() error {
	if r.street == r.city {
		return errSameStreetAndCity
	}
	return nil
}

// unregistered is a bean type whose meta-bean is never loaded.
type unregistered struct{}
