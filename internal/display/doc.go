package display

// Package display enumerates the screens attached to the desktop. Enumerators
// report rectangles in platform order with the primary display size reported
// separately, which is what window placement needs. Backends: XRandR on X11,
// the portable screenshot library, and static YAML layouts.
