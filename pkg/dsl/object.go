package dsl

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is an ordered mapping. Every key is a Node name; the value holds the
// Node's children: a string (leaf or node name), a list, or another Object.
//
// Plain Go maps are accepted as well, but their keys are visited in sorted
// order, which fixes link order alphabetically.
type Object []Member

// Obj builds an Object literal.
func Obj(members ...Member) Object {
	return Object(members)
}

// M builds a Member.
func M(key string, value any) Member {
	return Member{Key: key, Value: value}
}

// List builds a mixed child list.
func List(items ...any) []any {
	return items
}
