/*
Package dsl builds menu structures from nested descriptions.

A description is a tree of Objects, lists and strings. Every Object key, at
any depth, names a Node; a string names a child that is either a Node (when it
is also used as a key somewhere) or a Leaf. Every Leaf must be bound to a
Decider and a forwarding table of Node names.

Example usage:

	package main

	import (
		"github.com/hu-zza/Clim/pkg/domain"
		"github.com/hu-zza/Clim/pkg/dsl"
	)

	func main() {
		desc := dsl.Obj(
			dsl.M("root", dsl.List(
				dsl.Obj(dsl.M("settings", dsl.List("volume", "root"))),
				"about",
			)),
		)

		s, err := dsl.New().
			Description(desc).
			Initial("root").
			Leaf("volume", domain.Always(0), "settings").
			Leaf("about", domain.Always(0), "root").
			Build()
		// s is finalized; hand it to clim.New(s, ...)
	}
*/
package dsl
