package beans

import (
	"reflect"
	"sync"
)

// registry maps bean types to the once-initialized constructors of their
// meta-beans.
var registry sync.Map // reflect.Type -> func() *MetaBean

// Load returns the meta-bean of bean type B, building it with build on first
// use. Concurrent callers observe a single fully-built instance.
func Load[B any](build func() *MetaBean) *MetaBean {
	t := reflect.TypeFor[B]()
	if once, ok := registry.Load(t); ok {
		return once.(func() *MetaBean)()
	}
	once, _ := registry.LoadOrStore(t, sync.OnceValue(build))
	return once.(func() *MetaBean)()
}

// Lookup returns the meta-bean registered for t, if it was loaded.
func Lookup(t reflect.Type) (*MetaBean, bool) {
	once, ok := registry.Load(t)
	if !ok {
		return nil, false
	}
	return once.(func() *MetaBean)(), true
}

// MetaBeanOf returns the meta-bean of bean, either through its MetaBean
// method or through the registry.
func MetaBeanOf(bean any) (*MetaBean, error) {
	if b, ok := bean.(Bean); ok {
		return b.MetaBean(), nil
	}
	if mb, ok := Lookup(reflect.TypeOf(bean)); ok {
		return mb, nil
	}
	return nil, mismatch("", "", "%T is not a bean", bean)
}
