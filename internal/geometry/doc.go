package geometry

// Package geometry restores persisted window placement onto the displays that
// are attached now and keeps the persisted record in step with the window
// afterwards. Reconcile is a pure function; Tracker is the standing observer
// that writes every qualifying move, resize and maximize change to a Store.
