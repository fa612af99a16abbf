package playback

// Package playback wraps decoded audio streams and exposes the transport
// position as durations and as display labels laid out against the track
// length.
