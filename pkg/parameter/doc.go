/*
Package parameter extracts named fields from free-form command input.

A Parameter is a single regex-described field, optionally carrying a default
supplier (which makes it optional) and a transform applied to the captured
text. A Pattern orders Parameters and joins them with a delimiter. The Matcher
owns the command regex and one Pattern per leaf; it picks the richest
combination of optional fields that fully matches the text.

Example:

	level := parameter.MustNew(`\d+`)
	unit := parameter.MustNew(`[a-z]+`, parameter.WithDefault("db"))

	pattern, _ := parameter.NewPattern(" ",
		parameter.Field{Name: "level", Param: level},
		parameter.Field{Name: "unit", Param: unit},
	)

	m, _ := parameter.NewMatcher(parameter.WithPattern("volume", pattern))
	fields, _ := m.MatchAndExtract("volume", "42")
	fields["unit"].ValueOrDefault() // "db"
*/
package parameter
