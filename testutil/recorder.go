package testutil

import (
	"fmt"

	"github.com/hupe1980/modelstorage/model"
	"github.com/hupe1980/modelstorage/update"
)

// Recorder is an observer implementing every update capability.
type Recorder struct {
	events  []string
	updates []*update.Update
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Events returns the recorded callback events in delivery order.
func (r *Recorder) Events() []string {
	return append([]string(nil), r.events...)
}

// Updates returns every Update passed to PerformUpdate.
func (r *Recorder) Updates() []*update.Update {
	return append([]*update.Update(nil), r.updates...)
}

// Last returns the most recent Update, or nil.
func (r *Recorder) Last() *update.Update {
	if len(r.updates) == 0 {
		return nil
	}
	return r.updates[len(r.updates)-1]
}

// Len returns the number of updates received.
func (r *Recorder) Len() int {
	return len(r.updates)
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.events = nil
	r.updates = nil
}

func (r *Recorder) PerformUpdate(u *update.Update) { r.updates = append(r.updates, u) }
func (r *Recorder) BeginUpdates()                  { r.events = append(r.events, "begin") }
func (r *Recorder) EndUpdates()                    { r.events = append(r.events, "end") }

func (r *Recorder) SectionRemoved(section int) {
	r.events = append(r.events, fmt.Sprintf("section- %d", section))
}

func (r *Recorder) SectionInserted(section int) {
	r.events = append(r.events, fmt.Sprintf("section+ %d", section))
}

func (r *Recorder) SectionReloaded(section int) {
	r.events = append(r.events, fmt.Sprintf("section~ %d", section))
}

func (r *Recorder) ItemRemoved(at model.Coordinate) {
	r.events = append(r.events, "item- "+at.String())
}

func (r *Recorder) ItemInserted(at model.Coordinate) {
	r.events = append(r.events, "item+ "+at.String())
}

func (r *Recorder) ItemUpdated(at model.Coordinate) {
	r.events = append(r.events, "item~ "+at.String())
}

func (r *Recorder) ItemMoved(from, to model.Coordinate) {
	r.events = append(r.events, fmt.Sprintf("item> %s %s", from, to))
}
