package dbg

import (
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Graph handles are plain integers, which are hard to tell apart in a dump
// of a few hundred triangles. Name gives each value a pet name instead,
// handed out lazily and kept for the life of the process. The memo is keyed
// on the typed value, so node 7 and triangle 7 get different names.
//
// Names are assigned in order of demand, and the generator is seeded
// randomly, so a name never means the same thing in two runs.

var names = make(map[interface{}]string)

// Shown for nil pointers and interfaces.
const nilName = "Ø"

func init() {
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return nilName
	}
	if name, ok := names[obj]; ok {
		return name
	}
	name := camelCase(petname.Generate(2, "-"))
	names[obj] = name
	return name
}

func camelCase(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, "-") {
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
