package types

var reservedTypeNames = []string{
	"Number",
	"List",
}

var reservedTypeSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(reservedTypeNames))
	for _, t := range reservedTypeNames {
		m[t] = struct{}{}
	}
	return m
}()

// ReservedTypeNames returns a copy of source-level reserved type names.
func ReservedTypeNames() []string {
	return append([]string(nil), reservedTypeNames...)
}

// IsReservedTypeName reports whether name is reserved for built-in types.
func IsReservedTypeName(name string) bool {
	_, ok := reservedTypeSet[name]
	return ok
}
