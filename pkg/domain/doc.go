/*
Package domain contains the core model of a clim menu.

It defines the positions of the menu graph, the entries living at those
positions, the input handed to leaf deciders and the navigation state. The
package is kept free of I/O so every adapter (console, HTTP, files) shares the
same vocabulary.

# Key Entities

  - Position: an interned name that is either a Node or a Leaf, never both.
  - Node: a navigable position with ordered outgoing links.
  - Leaf: an action position; its Decider picks the next Node from a forwarding table.
  - ProcessedInput: the resolved form of one input line, passed to Deciders.
  - State: the current Node plus the history of previous ones.
  - View: the resolved option list the host renders.
*/
package domain
