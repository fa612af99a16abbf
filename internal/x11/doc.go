package x11

// Package x11 is the X11 host integration: XRandR display enumeration and a
// geometry.Window implementation that turns ConfigureNotify and _NET_WM_STATE
// changes of a top-level window into geometry events.
