package catelog

import (
	"bytes"

	"github.com/twitsprout/tools/json"
)

// Genre is one of a closed set of music genres. The empty Genre means no
// genre was given.
type Genre string

const (
	GenrePop        Genre = "Pop"
	GenreRap        Genre = "Rap"
	GenreRock       Genre = "Rock"
	GenreCountry    Genre = "Country"
	GenreJazz       Genre = "Jazz"
	GenreClassical  Genre = "Classical"
	GenreBlues      Genre = "Blues"
	GenreMetal      Genre = "Metal"
	GenreElectronic Genre = "Electronic"
	GenreHipHop     Genre = "HipHop"
	GenreRnB        Genre = "RnB"
	GenreFolk       Genre = "Folk"
	GenreReggae     Genre = "Reggae"
	GenreSoul       Genre = "Soul"
	GenrePunk       Genre = "Punk"
)

// Genres lists every known genre.
var Genres = []Genre{
	GenrePop,
	GenreRap,
	GenreRock,
	GenreCountry,
	GenreJazz,
	GenreClassical,
	GenreBlues,
	GenreMetal,
	GenreElectronic,
	GenreHipHop,
	GenreRnB,
	GenreFolk,
	GenreReggae,
	GenreSoul,
	GenrePunk,
}

// Known reports whether g is a member of Genres.
func (g Genre) Known() bool {
	for _, k := range Genres {
		if g == k {
			return true
		}
	}
	return false
}

// MarshalJSON writes an absent genre as null.
func (g Genre) MarshalJSON() ([]byte, error) {
	if g == "" {
		return []byte("null"), nil
	}
	return []byte(`"` + string(g) + `"`), nil
}

// UnmarshalJSON accepts null or the name of a known genre.
func (g *Genre) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*g = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidGenre
	}
	v := Genre(s)
	if !v.Known() {
		return ErrInvalidGenre
	}
	*g = v
	return nil
}
