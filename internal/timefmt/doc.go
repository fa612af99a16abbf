package timefmt

// Package timefmt renders elapsed playback time as [h:]m:ss. The field layout
// of the elapsed value is chosen from a second, independent maximum so that a
// live position label keeps the same shape as the track length next to it.
