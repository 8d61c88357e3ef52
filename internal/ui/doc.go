// Package ui is the Bubble Tea front end for the clientes collection.
//
// Core abstractions:
//   - View: a screen or modal with its own Init/Update/View (Elm-style)
//   - AppModel: root model; owns the session.State and the remote client
//   - OverlayStack: modals (form, confirmation) that receive input first
//   - KeybindRegistry/KeyHandler: single keys plus SPC-prefixed sequences
//
// Network calls run as tea.Cmd closures and report back with *Msg values;
// session.State is only touched from Update, on the event loop.
package ui
