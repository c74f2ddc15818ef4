package model

// Kind tags a table with the entity class it describes.
type Kind string

const (
	KindAreas     Kind = "areas"
	KindDistricts Kind = "districts"
)

// Valid reports whether k is a recognized entity class.
func (k Kind) Valid() bool { return k == KindAreas || k == KindDistricts }

// Collection bundles the per-class tables of one simulation dataset.
// Either sub-table may be nil, but not both.
type Collection struct {
	Areas     *Table `json:"areas,omitempty"`
	Districts *Table `json:"districts,omitempty"`

	TimeStep  TimeStep `json:"timeStep"`
	Synthesis bool     `json:"synthesis"`
}

// Empty reports whether the collection holds no sub-table at all.
func (c *Collection) Empty() bool {
	return c == nil || (c.Areas == nil && c.Districts == nil)
}
