/*
Package structure holds a built menu graph.

A Structure is an arena of entries indexed by domain.PositionID. Links are
stored as positions, never as pointers, so cycles need no special handling.
Once finalized a Structure is immutable and may be shared by any number of
menus.
*/
package structure
