// ABOUTME: Multi-select state machine for bulk note deletion.
// ABOUTME: Idle/Selecting with auto-exit when the selection empties.

package selection

import "github.com/google/uuid"

// Deleter removes a batch of notes in one operation. *repo.Repository
// satisfies it.
type Deleter interface {
	DeleteMany(ids []uuid.UUID) error
}

// Tracker holds the selection set and mode flag. The set is empty
// whenever the mode flag is off.
type Tracker struct {
	selecting bool
	ids       map[uuid.UUID]struct{}
}

func New() *Tracker {
	return &Tracker{ids: make(map[uuid.UUID]struct{})}
}

func (t *Tracker) Selecting() bool {
	return t.selecting
}

func (t *Tracker) Count() int {
	return len(t.ids)
}

func (t *Tracker) IsSelected(id uuid.UUID) bool {
	_, ok := t.ids[id]
	return ok
}

// Selected returns the selected ids. Order is unspecified.
func (t *Tracker) Selected() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(t.ids))
	for id := range t.ids {
		out = append(out, id)
	}
	return out
}

// LongPress enters selection mode with exactly this note selected.
// While already selecting it behaves like a tap.
func (t *Tracker) LongPress(id uuid.UUID) {
	if t.selecting {
		t.Tap(id)
		return
	}
	t.selecting = true
	t.ids[id] = struct{}{}
}

// Tap toggles membership while selecting. Emptying the set drops back
// to idle. Taps outside selection mode are ignored.
func (t *Tracker) Tap(id uuid.UUID) {
	if !t.selecting {
		return
	}
	if _, ok := t.ids[id]; ok {
		delete(t.ids, id)
		if len(t.ids) == 0 {
			t.selecting = false
		}
		return
	}
	t.ids[id] = struct{}{}
}

// Cancel clears the selection unconditionally.
func (t *Tracker) Cancel() {
	t.selecting = false
	t.ids = make(map[uuid.UUID]struct{})
}

// Confirm deletes the selected notes as one batch and resets. On
// failure the selection is kept so the user can retry.
func (t *Tracker) Confirm(d Deleter) error {
	if !t.selecting {
		return nil
	}
	if err := d.DeleteMany(t.Selected()); err != nil {
		return err
	}
	t.Cancel()
	return nil
}
