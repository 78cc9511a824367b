/*
Package clim is a menu engine for line-oriented command line interfaces.

A menu is a graph of named positions. Nodes are navigable and link to other
positions; Leaves are actions that run a decision function and forward the
user to one of their Nodes. The graph is described once with the dsl package,
frozen into a structure.Structure and then navigated by any number of Menus.

# Control types

Every Menu reads input in one fixed style:

  - nominal: the exact name of an option
  - ordinal: the zero-based index of an option
  - ordinal_trailing_zero: like ordinal, but option 0 is listed last
  - parametric: a command token followed by parameters, matched against the
    selected Leaf's parameter.Pattern

Rejected inputs never change the position. They are reported on the error
output and returned as an Outcome carrying a *domain.InputError.

# Usage

	s, err := dsl.Build(dsl.Obj(
		dsl.M("root", dsl.List(
			dsl.Obj(dsl.M("settings", dsl.List("reset", "root"))),
			"about",
		)),
	), "root",
		domain.Bind("reset", domain.Always(0), "root"),
		domain.Bind("about", domain.Always(0), "root"),
	)
	if err != nil {
		log.Fatal(err)
	}

	menu, err := clim.New(s, clim.WithControl(domain.ControlOrdinal))
	if err != nil {
		log.Fatal(err)
	}

	if err := clim.NewRunner(os.Stdin).Run(context.Background(), menu); err != nil {
		log.Fatal(err)
	}

Menus can also be loaded from YAML or JSON files with the pkg/adapters/file
package, observed with pkg/observability hooks and served over HTTP with the
clim CLI.
*/
package clim
