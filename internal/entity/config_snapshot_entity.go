package entity

import (
	"time"

	"github.com/google/uuid"
)

// Mutation kind tags recorded in the undo slot.
const (
	SnapshotKindUpdateConfig     = "update_config"
	SnapshotKindUpsertEntryPoint = "upsert_entry_point"
	SnapshotKindDeleteEntryPoint = "delete_entry_point"
	SnapshotKindUndo             = "undo"
)

// ConfigSnapshot is the single undo slot: the pre-mutation config plus a
// mutation-kind tag, unconditionally overwritten on every config mutation.
type ConfigSnapshot struct {
	ConfigId uuid.UUID
	Kind     string
	TakenAt  time.Time
	Config   BusinessConfig
}
