// Package session is the reference session backend.
//
// # Overview
//
// Each started session produces a panel surface: the content region the
// controller puts in a side window. The backend keeps sessions in memory;
// launching and talking to the agent process is a separate concern and is
// not part of this package.
//
// # Session Lifecycle
//
//  1. Start: a UUID is generated and a surface named
//     *dock:<project>:<agent label>* is registered. FreshSession controls
//     whether a previous transcript for the same project and provider is
//     carried over.
//  2. Destroy: the surface is marked dead. Any handle still pointing at it
//     reports Alive() == false, which the controller treats as "no panel".
//
// # Thread Safety
//
// Backend is safe for concurrent use, although the controller only calls it
// from the host's main loop.
package session
