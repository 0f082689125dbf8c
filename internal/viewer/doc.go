// Package viewer holds the state of a single model viewing session in the
// terminal client.
//
// A [Session] keeps two pieces of state apart: the camera pose currently
// displayed, which the user moves freely and which is never persisted, and
// the saved views persisted on the server. Selecting a saved view copies its
// pose into the displayed camera; only [Session.SaveCurrentView] ever
// creates a new saved view.
//
// Two references are resolved locally: [DemoRef] opens a bundled read-only
// sample and [NewRef] opens an empty placeholder that accepts a local file
// for preview.
package viewer
