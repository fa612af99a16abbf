package model

// Package model defines the value types shared across the app: screen
// rectangles, persisted window geometry and geometry change events. Types are
// plain structs so they can be compared directly in tests and copied freely
// between the UI thread and host adapters.
