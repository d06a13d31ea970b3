package catelog

import (
	"bytes"
	"database/sql/driver"
	"time"

	"github.com/twitsprout/tools/json"
	"gopkg.in/guregu/null.v3"
)

// Album is a record in the shop's inventory.
type Album struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Artist       string    `json:"artist"`
	Genre        Genre     `json:"genre"`
	DateReleased Date      `json:"dateReleased"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ListAlbumsRes struct {
	Albums []Album `json:"albums"`
}

type GetAlbumReq struct {
	AlbumID int64
}

type GetAlbumRes struct {
	Album *Album `json:"album"`
}

type CreateAlbumRequest struct {
	Album Album
}

type CreateAlbumResponse struct {
	Album *Album `json:"album"`
}

type UpdateAlbumRequest struct {
	ID    int64
	Album Album
}

type UpdateAlbumResponse struct {
	Album *Album `json:"album"`
}

type DeleteAlbumResponse struct {
	Album *Album `json:"album"`
}

const dateLayout = "2006-01-02"

// Date is a calendar date without a time of day. The zero value is an absent
// date.
type Date struct {
	null.Time
}

// NewDate returns a valid Date for the given day, in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return DateFrom(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateFrom truncates t to its calendar day.
func DateFrom(t time.Time) Date {
	y, m, d := t.Date()
	return Date{null.TimeFrom(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))}
}

// ParseDate parses a yyyy-mm-dd string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateFrom(t), nil
}

// Equal reports whether both dates are absent or fall on the same day.
func (d Date) Equal(o Date) bool {
	if !d.Valid || !o.Valid {
		return d.Valid == o.Valid
	}
	return d.Time.Time.Equal(o.Time.Time)
}

func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Time.Format(dateLayout)
}

// MarshalJSON writes the date as "yyyy-mm-dd", or null when absent.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON reads a "yyyy-mm-dd" string or null.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner. Drivers hand DATE columns back either as
// time.Time or as text.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateFrom(v)
		return nil
	case []byte:
		return d.scanText(string(v))
	case string:
		return d.scanText(v)
	}
	return ErrInvalidDate
}

func (d *Date) scanText(s string) error {
	for _, layout := range []string{dateLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = DateFrom(t)
			return nil
		}
	}
	return ErrInvalidDate
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.String(), nil
}
