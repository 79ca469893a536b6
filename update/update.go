package update

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/modelstorage/model"
)

// Kind identifies one category of change inside an Update.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindSectionDelete
	KindSectionInsert
	KindSectionReload
	KindItemDelete
	KindItemInsert
	KindItemUpdate
	KindItemMove
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSectionDelete:
		return "section-delete"
	case KindSectionInsert:
		return "section-insert"
	case KindSectionReload:
		return "section-reload"
	case KindItemDelete:
		return "item-delete"
	case KindItemInsert:
		return "item-insert"
	case KindItemUpdate:
		return "item-update"
	case KindItemMove:
		return "item-move"
	default:
		return "unknown"
	}
}

// Update is the structured description of a single mutation.
type Update struct {
	DeletedSections  *model.IndexSet
	InsertedSections *model.IndexSet
	UpdatedSections  *model.IndexSet

	DeletedItems  []model.Coordinate
	InsertedItems []model.Coordinate
	UpdatedItems  []model.Coordinate
	MovedItems    []model.Move
}

// New returns an empty Update with its index sets allocated.
func New() *Update {
	return &Update{
		DeletedSections:  model.NewIndexSet(),
		InsertedSections: model.NewIndexSet(),
		UpdatedSections:  model.NewIndexSet(),
	}
}

// IsEmpty reports whether the update describes no change at all.
func (u *Update) IsEmpty() bool {
	return u == nil || (u.DeletedSections.IsEmpty() &&
		u.InsertedSections.IsEmpty() &&
		u.UpdatedSections.IsEmpty() &&
		len(u.DeletedItems) == 0 &&
		len(u.InsertedItems) == 0 &&
		len(u.UpdatedItems) == 0 &&
		len(u.MovedItems) == 0)
}

// Kinds returns the categories present in the update, in delivery order.
func (u *Update) Kinds() []Kind {
	if u == nil {
		return nil
	}
	var kinds []Kind
	if !u.DeletedSections.IsEmpty() {
		kinds = append(kinds, KindSectionDelete)
	}
	if !u.InsertedSections.IsEmpty() {
		kinds = append(kinds, KindSectionInsert)
	}
	if !u.UpdatedSections.IsEmpty() {
		kinds = append(kinds, KindSectionReload)
	}
	if len(u.DeletedItems) > 0 {
		kinds = append(kinds, KindItemDelete)
	}
	if len(u.InsertedItems) > 0 {
		kinds = append(kinds, KindItemInsert)
	}
	if len(u.UpdatedItems) > 0 {
		kinds = append(kinds, KindItemUpdate)
	}
	if len(u.MovedItems) > 0 {
		kinds = append(kinds, KindItemMove)
	}
	return kinds
}

// Normalize sorts the item coordinate lists ascending and drops duplicates.
// Moves keep mutation order.
func (u *Update) Normalize() {
	u.DeletedItems = sortCoordinates(u.DeletedItems)
	u.InsertedItems = sortCoordinates(u.InsertedItems)
	u.UpdatedItems = sortCoordinates(u.UpdatedItems)
}

func sortCoordinates(cs []model.Coordinate) []model.Coordinate {
	if len(cs) < 2 {
		return cs
	}
	slices.SortFunc(cs, model.Coordinate.Compare)
	return slices.Compact(cs)
}

// String returns a compact description, e.g. "sections+{0 1} items+[(1:0)]".
func (u *Update) String() string {
	if u.IsEmpty() {
		return "update{}"
	}
	var parts []string
	if !u.DeletedSections.IsEmpty() {
		parts = append(parts, "sections-"+u.DeletedSections.String())
	}
	if !u.InsertedSections.IsEmpty() {
		parts = append(parts, "sections+"+u.InsertedSections.String())
	}
	if !u.UpdatedSections.IsEmpty() {
		parts = append(parts, "sections~"+u.UpdatedSections.String())
	}
	if len(u.DeletedItems) > 0 {
		parts = append(parts, fmt.Sprintf("items-%v", u.DeletedItems))
	}
	if len(u.InsertedItems) > 0 {
		parts = append(parts, fmt.Sprintf("items+%v", u.InsertedItems))
	}
	if len(u.UpdatedItems) > 0 {
		parts = append(parts, fmt.Sprintf("items~%v", u.UpdatedItems))
	}
	if len(u.MovedItems) > 0 {
		parts = append(parts, fmt.Sprintf("moves%v", u.MovedItems))
	}
	return strings.Join(parts, " ")
}
