package trackhaus

import (
	"database/sql/driver"
	"fmt"
)

// Rating is the reaction a listener had to a play
type Rating uint8

// Ratings in their canonical order, do not reorder; the zero value is RatingUnrated
const (
	RatingUnrated Rating = iota
	RatingLike
	RatingBan
	RatingTired
)

var ratingNames = [...]string{
	RatingUnrated: "UNRATED",
	RatingLike:    "LIKE",
	RatingBan:     "BAN",
	RatingTired:   "TIRED",
}

// Ratings returns all ratings in their canonical order
func Ratings() []Rating {
	return []Rating{RatingUnrated, RatingLike, RatingBan, RatingTired}
}

// RatingFromCode maps a client rating code to a Rating. The mapping is total:
// a nil code or any code outside of 0-3 maps to RatingUnrated
func RatingFromCode(code *int) Rating {
	if code == nil {
		return RatingUnrated
	}

	switch *code {
	case 1:
		return RatingLike
	case 2:
		return RatingBan
	case 3:
		return RatingTired
	}
	return RatingUnrated
}

// ParseRating parses the name of a rating as returned by Rating.String
func ParseRating(s string) (Rating, error) {
	for r, name := range ratingNames {
		if name == s {
			return Rating(r), nil
		}
	}
	return RatingUnrated, fmt.Errorf("unknown rating %q", s)
}

func (r Rating) String() string {
	if int(r) < len(ratingNames) {
		return ratingNames[r]
	}
	return ratingNames[RatingUnrated]
}

// MarshalText implements encoding.TextMarshaler
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Rating) UnmarshalText(text []byte) error {
	v, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Value implements driver.Valuer, ratings are stored by name
func (r Rating) Value() (driver.Value, error) {
	return r.String(), nil
}

// Scan implements sql.Scanner
func (r *Rating) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	case nil:
		*r = RatingUnrated
		return nil
	}
	return fmt.Errorf("cannot scan %T into Rating", src)
}
