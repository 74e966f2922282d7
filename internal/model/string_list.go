package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// StringList is an ordered list of strings persisted as a single
// comma-joined column. It marshals to a plain JSON array.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
	case string:
		*l = splitList(v)
	case []byte:
		*l = splitList(string(v))
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
	return nil
}

func splitList(s string) StringList {
	if s == "" {
		return StringList{}
	}
	return StringList(strings.Split(s, ","))
}
