package model

import "goa.design/beans/runtime/beans"

// Light is a dimmable lamp with labelled channels.
//
//bean:definition
type Light struct {
	//bean:property accessor=IsOn
	on bool
	//bean:property get=field
	level int
	//bean:property get=optional
	colour *string
	//bean:property init="map[string]int{\"main\": 0}"
	channels map[string]int
}

// Brightness is the level when the light is on, zero otherwise.
//
//bean:property style=derived
func (l *Light) Brightness() int {
	if !l.on {
		return 0
	}
	return l.level
}

//------------------------- AUTOGENERATED START -------------------------

// MetaBean returns the meta-bean of Light.
func (l *Light) MetaBean() *beans.MetaBean {
	return lightMeta()
}

func lightMeta() *beans.MetaBean {
	return beans.Load[*Light](newLightMeta)
}

func newLightMeta() *beans.MetaBean {
	return beans.NewMetaBean("Light", func() *Light {
		l := new(Light)
		l.channels = map[string]int{"main": 0}
		return l
	}, []beans.MetaProperty{
		beans.ReadWrite("on", (*Light).IsOn, beans.Infallible((*Light).SetOn)),
		beans.FieldOnlyGet("level", func(l *Light) int {
			return l.level
		}, beans.Infallible((*Light).SetLevel)),
		beans.OptionalWrapped("colour", func(l *Light) *string {
			return l.colour
		}, beans.Infallible((*Light).SetColour)),
		beans.Collection("channels", (*Light).Channels, (*Light).SetChannels),
		beans.Derived("brightness", (*Light).Brightness),
	})
}

// NewLightBuilder returns a builder of Light beans.
func NewLightBuilder() beans.BeanBuilder {
	return lightMeta().Builder()
}

// IsOn returns the on property.
func (l *Light) IsOn() bool {
	return l.on
}

// SetOn sets the on property.
func (l *Light) SetOn(on bool) {
	l.on = on
}

// OnProperty returns the on property bound to this bean.
func (l *Light) OnProperty() beans.Property {
	return l.MetaBean().MustProperty(l, "on")
}

// SetLevel sets the level property.
func (l *Light) SetLevel(level int) {
	l.level = level
}

// LevelProperty returns the level property bound to this bean.
func (l *Light) LevelProperty() beans.Property {
	return l.MetaBean().MustProperty(l, "level")
}

// Colour returns the colour property.
func (l *Light) Colour() beans.Optional[string] {
	return beans.OptionalOf(l.colour)
}

// SetColour sets the colour property.
func (l *Light) SetColour(colour *string) {
	l.colour = colour
}

// ColourProperty returns the colour property bound to this bean.
func (l *Light) ColourProperty() beans.Property {
	return l.MetaBean().MustProperty(l, "colour")
}

// Channels returns the channels property.
func (l *Light) Channels() map[string]int {
	return l.channels
}

// SetChannels sets the channels property.
func (l *Light) SetChannels(channels map[string]int) error {
	if err := beans.NotNull(channels, "channels"); err != nil {
		return err
	}
	beans.ReplaceMap(&l.channels, channels)
	return nil
}

// ChannelsProperty returns the channels property bound to this bean.
func (l *Light) ChannelsProperty() beans.Property {
	return l.MetaBean().MustProperty(l, "channels")
}

// BrightnessProperty returns the brightness property bound to this bean.
func (l *Light) BrightnessProperty() beans.Property {
	return l.MetaBean().MustProperty(l, "brightness")
}

// PropertyGet returns the value of the named property.
func (l *Light) PropertyGet(name string) (any, error) {
	return l.MetaBean().PropertyGet(l, name)
}

// PropertySet sets the value of the named property.
func (l *Light) PropertySet(name string, value any) error {
	return l.MetaBean().PropertySet(l, name, value)
}

// Property returns the named property bound to this bean.
func (l *Light) Property(name string) (beans.Property, error) {
	return l.MetaBean().Property(l, name)
}

// Equal reports whether other holds the same property values.
func (l *Light) Equal(other *Light) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	return beans.Equal(l.on, other.on) &&
		beans.Equal(l.level, other.level) &&
		beans.Equal(l.colour, other.colour) &&
		beans.Equal(l.channels, other.channels)
}

// Hash returns a hash code consistent with Equal.
func (l *Light) Hash() int {
	hash := 7
	hash = hash*31 + beans.Hash(l.on)
	hash = hash*31 + beans.Hash(l.level)
	hash = hash*31 + beans.Hash(l.colour)
	hash = hash*31 + beans.Hash(l.channels)
	return hash
}

// String returns the property values of the bean.
func (l *Light) String() string {
	return beans.ToString("Light",
		"on", l.on,
		"level", l.level,
		"colour", l.colour,
		"channels", l.channels,
	)
}

//-------------------------- AUTOGENERATED END --------------------------
