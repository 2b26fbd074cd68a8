package module

import "reflect"

// PortsOf extracts T from m.Ports(), either directly or from the first exported struct field implementing T
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return zero, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf panics when m does not expose T
func MustPortsOf[T any](m Module) T {
	if v, ok := PortsOf[T](m); ok {
		return v
	}
	name := "<nil>"
	if m != nil {
		name = m.Name()
	}
	panic("module: requested port not found on module " + name)
}
