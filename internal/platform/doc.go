package platform

// Package platform contains OS integration: user folder discovery, opening
// URLs with the system handler, and shortcut resolution.
