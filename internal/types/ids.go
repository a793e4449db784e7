package types

// ID types give semantic meaning to the string identifiers that flow between
// the board backend and the projection engine. Backends hand out opaque ids,
// so all of them are strings.

// BoardID identifies a board (the owner of items and columns)
type BoardID string

// ItemID identifies a single record on a board
type ItemID string

// ColumnID identifies a typed column on a board
type ColumnID string

// BucketID identifies a kanban bucket produced by classification
type BucketID string

// String returns the raw identifier
func (id BoardID) String() string {
	return string(id)
}

func (id ItemID) String() string {
	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}

func (id BucketID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty
func (id ItemID) IsZero() bool {
	return id == ""
}

func (id ColumnID) IsZero() bool {
	return id == ""
}

func (id BoardID) IsZero() bool {
	return id == ""
}
