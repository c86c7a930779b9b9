// Package command provides the console's command registry and the streaming
// interpreter contract the dispatch loop drives.
//
// # Interpreter contract
//
// A handler receives the completed input line and a fixed-size output
// buffer, fills at most len(out) bytes, and reports whether more output is
// pending. Handlers producing more output than one buffer are re-invoked
// with the same line until they report false; the dispatch loop paces each
// chunk against physical transmission completion, so a handler may rely on
// its previous chunk having left the transport before the next call.
//
// # Registry lifecycle
//
// All commands are registered at startup and the registry is then frozen;
// registration after Freeze fails. The built-in help command streams one
// registered help line per chunk, in registration order.
package command
