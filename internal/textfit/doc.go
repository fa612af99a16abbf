package textfit

// Package textfit shortens labels to a width budget. Fit keeps the longest
// word-respecting prefix that fits together with a truncation marker, using a
// caller-supplied Measurer so the same search serves pixel-measured Fyne labels
// and cell-measured terminal output.
