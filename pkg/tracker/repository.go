// Package tracker owns the collection of tracked system-development
// requests and the rules for moving them through the delivery stages.
// All mutations synchronize to the injected store; every view derives
// from the in-memory collection.
package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/opsforge/conveyor/pkg/types"
)

// Repository is the single owner of the tracked-item collection for the
// life of the process. It is not safe for concurrent use; the tracker
// serves one actor at a time.
type Repository struct {
	store types.Store
	now   func() time.Time

	items []*types.TrackedItem
	users []types.User
	actor types.User
}

// Open loads the collection, the user list, and the current actor from
// the store. An absent or empty collection is populated from the seed
// dataset and persisted.
func Open(store types.Store) *Repository {
	r := &Repository{
		store: store,
		now:   time.Now,
	}
	r.load()
	return r
}

// load hydrates repository state from the store, seeding where absent.
func (r *Repository) load() {
	if raw, ok := r.store.Get(types.KeyItems); ok {
		if err := json.Unmarshal(raw, &r.items); err != nil {
			r.items = nil
		}
	}
	if len(r.items) == 0 {
		r.items = seedItems()
		r.store.Set(types.KeyItems, r.items)
	}

	if raw, ok := r.store.Get(types.KeyUsers); ok {
		if err := json.Unmarshal(raw, &r.users); err != nil {
			r.users = nil
		}
	}
	if len(r.users) == 0 {
		r.users = seedUsers()
		r.store.Set(types.KeyUsers, r.users)
	}

	if raw, ok := r.store.Get(types.KeyCurrentActor); ok {
		_ = json.Unmarshal(raw, &r.actor)
	}
}

// persist writes the full collection through the store.
func (r *Repository) persist() {
	r.store.Set(types.KeyItems, r.items)
}

// generateItemID generates a UUID v7 for new items, falling back to v4
// if v7 generation fails.
func generateItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Create appends a new tracked item from a validated intake payload.
// The serial number is derived from the collection size at call time, so
// serials are unique and strictly increasing under sequential creation.
// Creation itself satisfies stage 1: the new item starts pending at
// stage 2 with the intake payload recorded under History[1].
func (r *Repository) Create(p types.RequirementPayload) (*types.TrackedItem, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rec, err := types.PayloadRecord(p)
	if err != nil {
		return nil, err
	}
	date := types.FormatDate(r.now())
	rec["requirementDate"] = date

	item := &types.TrackedItem{
		ItemID:          generateItemID(),
		SerialNo:        fmt.Sprintf("SN-%03d", len(r.items)+1),
		RequirementDate: date,
		CurrentStage:    types.StageRequirementUnderstanding,
		History: map[int]types.Record{
			types.StageRequirementUpdate: rec,
		},
	}

	r.items = append(r.items, item)
	r.persist()
	return item, nil
}

// Advance records the completion of stageID for the item with the given
// serial and moves it to stageID + 1. The payload record is merged into
// History[stageID], so repeated partial submissions accumulate rather
// than clobber. The caller's stageID is trusted as-is: the repository
// does not re-derive it from the item's live stage, so a stale caller
// advances from the stage it passed. An unknown serial is a silent
// no-op.
func (r *Repository) Advance(serialNo string, stageID int, p types.StagePayload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	rec, err := types.PayloadRecord(p)
	if err != nil {
		return err
	}

	item, ok := r.find(serialNo)
	if !ok {
		return nil
	}

	if item.History == nil {
		item.History = make(map[int]types.Record)
	}
	existing := item.History[stageID]
	if existing == nil {
		existing = make(types.Record, len(rec))
		item.History[stageID] = existing
	}
	for k, v := range rec {
		existing[k] = v
	}
	item.CurrentStage = stageID + 1

	r.persist()
	return nil
}

// find locates an item by serial number.
func (r *Repository) find(serialNo string) (*types.TrackedItem, bool) {
	for _, item := range r.items {
		if item.SerialNo == serialNo {
			return item, true
		}
	}
	return nil, false
}

// Find returns the item with the given serial number.
func (r *Repository) Find(serialNo string) (*types.TrackedItem, bool) {
	return r.find(serialNo)
}

// All returns the collection in insertion order.
func (r *Repository) All() []*types.TrackedItem {
	out := make([]*types.TrackedItem, len(r.items))
	copy(out, r.items)
	return out
}

// PendingAt returns the items awaiting action at the given stage, in
// insertion order.
func (r *Repository) PendingAt(stage int) []*types.TrackedItem {
	var out []*types.TrackedItem
	for _, item := range r.items {
		if item.PendingAt(stage) {
			out = append(out, item)
		}
	}
	return out
}

// CompletedPast returns the items that have completed the given stage.
// Stage 1 returns the entire collection: every existing item has, by
// construction, completed intake.
func (r *Repository) CompletedPast(stage int) []*types.TrackedItem {
	if stage == types.FirstStage {
		return r.All()
	}
	var out []*types.TrackedItem
	for _, item := range r.items {
		if item.PastStage(stage) {
			out = append(out, item)
		}
	}
	return out
}

// Reset clears the collection and removes the persisted blob. The next
// Open reseeds. Confirmation is a presentation-layer concern.
func (r *Repository) Reset() {
	r.items = nil
	r.store.Remove(types.KeyItems)
}

// Export writes the full collection to w as indented JSON.
func (r *Repository) Export(w io.Writer) error {
	data, err := json.MarshalIndent(r.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// Users returns the known user list.
func (r *Repository) Users() []types.User {
	out := make([]types.User, len(r.users))
	copy(out, r.users)
	return out
}

// CurrentActor returns the display name of the acting user, or "" when
// none has been set.
func (r *Repository) CurrentActor() string {
	return r.actor.Name
}

// SetActor records the acting user by name. A name matching a known user
// keeps that user's id and role; any other name is stored as a bare
// actor record.
func (r *Repository) SetActor(name string) {
	r.actor = types.User{Name: name}
	for _, u := range r.users {
		if u.Name == name {
			r.actor = u
			break
		}
	}
	r.store.Set(types.KeyCurrentActor, r.actor)
}
