/*
Package registry interns menu position names into dense ids.

Each structure owns its own Registry; there is no process-wide name table.
*/
package registry
