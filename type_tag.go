package playerfolio

import (
	"encoding/json"
	"fmt"
)

// Tag classifies a position for the owner's review. It has no effect on any
// calculation.
type Tag int

const (
	// TagKeep marks a position to hold on to.
	TagKeep Tag = iota
	// TagWatch marks a position under observation.
	TagWatch
	// TagSell marks a position the owner intends to exit.
	TagSell
)

func (t Tag) String() string {
	switch t {
	case TagKeep:
		return "keep"
	case TagWatch:
		return "watch"
	case TagSell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseTag parses a string into a Tag.
func ParseTag(s string) (Tag, error) {
	switch s {
	case "keep", "":
		return TagKeep, nil
	case "watch":
		return TagWatch, nil
	case "sell":
		return TagSell, nil
	default:
		return 0, fmt.Errorf("unknown tag: %q", s)
	}
}

func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tag) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	tag, err := ParseTag(str)
	if err != nil {
		return err
	}
	*t = tag
	return nil
}
