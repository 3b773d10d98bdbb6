// Package conveyor carries module-level metadata.
package conveyor

// Version is the conveyor release version.
const Version = "0.2.0"
