package ui

// Package ui contains the Fyne-based desktop user interface: the now-playing
// strip with its fitted title and stable position label, the compact theme,
// and the glue that restores and persists main window geometry.
