package binder

import (
	"net/http"
	"reflect"
)

// Path returns a binder reading `path` tagged fields through extractor,
// typically chi.URLParam.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	if extractor == nil {
		panic("binder: path extractor must not be nil")
	}
	return func(r *http.Request, v any) error {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return ErrInvalidTarget
		}

		values := make(map[string][]string)
		rt := rv.Elem().Type()
		for i := range rt.NumField() {
			name, skip := parseFieldTag(rt.Field(i), "path")
			if skip {
				continue
			}
			if val := extractor(r, name); val != "" {
				values[name] = []string{val}
			}
		}
		return bindToStruct(v, "path", values, ErrFailedToParsePath)
	}
}
