/*
Package session keeps many independent menus in memory, one per session id.

A Menu is single-writer. The Manager serializes every operation on a session
with a per-session mutex, so hosts such as the HTTP adapter can serve
concurrent requests without sharing navigation state.
*/
package session
