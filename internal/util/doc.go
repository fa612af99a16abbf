package util

// Package util holds small numeric, string and color helpers shared by the
// UI and playback code.
