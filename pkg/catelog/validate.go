package catelog

// Album attribute names, in the order Validate checks them.
const (
	AttrID           = "id"
	AttrName         = "name"
	AttrArtist       = "artist"
	AttrGenre        = "genre"
	AttrDateReleased = "dateReleased"
	AttrStock        = "stock"
	AttrPrice        = "price"
)

var AttributeNames = []string{
	AttrID,
	AttrName,
	AttrArtist,
	AttrGenre,
	AttrDateReleased,
	AttrStock,
	AttrPrice,
}

// Report maps every album attribute name to whether it is invalid.
type Report map[string]bool

// Invalid returns the invalid attribute names in validation order.
func (r Report) Invalid() []string {
	var fields []string
	for _, name := range AttributeNames {
		if r[name] {
			fields = append(fields, name)
		}
	}
	return fields
}

// OK reports whether no attribute is invalid.
func (r Report) OK() bool {
	return len(r.Invalid()) == 0
}

// Validate checks each attribute of a on its own and returns a complete
// Report. It looks only at a, never at any stored album.
func Validate(a Album) Report {
	return Report{
		AttrID:           a.ID < 0,
		AttrName:         a.Name == "",
		AttrArtist:       a.Artist == "",
		AttrGenre:        !a.Genre.Known(),
		AttrDateReleased: !a.DateReleased.Valid,
		AttrStock:        a.Stock < 0,
		AttrPrice:        a.Price <= 0,
	}
}
