package shoplist

// DefaultListName is applied when a create payload carries no name, matching
// the mock API contract.
const DefaultListName = "Nový seznam"

// CreateInput is the POST payload. Absent fields fall back to store defaults:
// placeholder name, archived false, owner 1, empty members/items.
type CreateInput struct {
	Name     string   `json:"name"`
	Archived bool     `json:"archived"`
	OwnerID  int      `json:"ownerId"`
	Members  []Member `json:"members"`
	Items    []Item   `json:"items"`
}

// Normalize applies the create defaults and returns the record to persist,
// without an id.
func (in CreateInput) Normalize() List {
	list := List{
		Name:     in.Name,
		Archived: in.Archived,
		OwnerID:  in.OwnerID,
		Members:  in.Members,
		Items:    in.Items,
	}
	if list.Name == "" {
		list.Name = DefaultListName
	}
	if list.OwnerID == 0 {
		list.OwnerID = 1
	}
	if list.Members == nil {
		list.Members = []Member{}
	}
	if list.Items == nil {
		list.Items = []Item{}
	}
	return list
}

// Patch is a partial update. Nil fields are retained; members and items are
// replaced wholesale when present, including by an explicit empty array.
// The slice fields deliberately omit omitempty: a nil slice marshals as null
// (retained server-side) while an empty slice marshals as [] and replaces.
type Patch struct {
	Name     *string  `json:"name,omitempty"`
	Archived *bool    `json:"archived,omitempty"`
	OwnerID  *int     `json:"ownerId,omitempty"`
	Members  []Member `json:"members"`
	Items    []Item   `json:"items"`
}

// Merge lays the patch over the current record, field by field.
func (p Patch) Merge(current List) List {
	out := current.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Archived != nil {
		out.Archived = *p.Archived
	}
	if p.OwnerID != nil {
		out.OwnerID = *p.OwnerID
	}
	if p.Members != nil {
		out.Members = append([]Member(nil), p.Members...)
	}
	if p.Items != nil {
		out.Items = append([]Item(nil), p.Items...)
	}
	return out
}
