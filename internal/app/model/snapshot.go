package model

// SchemaVersion is the current layout version of the persisted snapshot.
// The original document carried no version field, which made any future
// migration a guessing game; loaders treat an unknown version as corruption.
const SchemaVersion = 1

// Snapshot is the entire application state as one document. It is persisted
// wholesale and replaced wholesale; there is no partial update path.
type Snapshot struct {
	SchemaVersion int            `json:"schemaVersion"`
	CurrentUser   *User          `json:"currentUser"`
	Treks         []Trek         `json:"treks"`
	Companies     []Company      `json:"companies"`
	Verifications []Verification `json:"verifications"`
	Reviews       []Review       `json:"reviews"`
}

// Clone returns a deep copy. Workflow commands operate on clones so a caller
// holding the previous snapshot never observes a mutation.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{
		SchemaVersion: s.SchemaVersion,
		Treks:         append([]Trek(nil), s.Treks...),
		Companies:     append([]Company(nil), s.Companies...),
		Verifications: append([]Verification(nil), s.Verifications...),
		Reviews:       make([]Review, len(s.Reviews)),
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	for i, v := range s.Verifications {
		if v.ReviewedAt != nil {
			t := *v.ReviewedAt
			out.Verifications[i].ReviewedAt = &t
		}
	}
	for i, r := range s.Reviews {
		out.Reviews[i] = r
		out.Reviews[i].Photos = append([]string(nil), r.Photos...)
	}
	return out
}
