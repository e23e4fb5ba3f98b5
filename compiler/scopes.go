package compiler

// Layer is one named map in a layered lookup.
type Layer[T any] struct {
	Name  string
	Elems map[string]T
}

// Scopes is an ordered list of layers. Get searches from the front, so the
// first layer has the highest priority.
type Scopes[T any] []Layer[T]

func NewLayer[T any](name string, elems map[string]T) Layer[T] {
	if elems == nil {
		elems = make(map[string]T)
	}
	return Layer[T]{Name: name, Elems: elems}
}

// Get returns the element from the first layer that has name, and which
// layer that was.
func Get[T any](scopes Scopes[T], name string) (T, string, bool) {
	for _, layer := range scopes {
		if e, ok := layer.Elems[name]; ok {
			return e, layer.Name, true
		}
	}

	var zero T
	return zero, "", false
}
