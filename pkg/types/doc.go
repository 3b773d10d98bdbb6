// Package types defines the tracked-item entity, the stage table, the
// per-stage payload variants, and the storage contract for the conveyor
// tracking system.
package types
