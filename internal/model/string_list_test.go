package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringList_Value(t *testing.T) {
	v, err := StringList{"Go", "MySQL", "Redis"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, "Go,MySQL,Redis", v)

	v, err = StringList{}.Value()
	assert.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestStringList_Scan(t *testing.T) {
	var l StringList

	assert.NoError(t, l.Scan("Go,MySQL"))
	assert.Equal(t, StringList{"Go", "MySQL"}, l)

	assert.NoError(t, l.Scan([]byte("Go")))
	assert.Equal(t, StringList{"Go"}, l)

	assert.NoError(t, l.Scan(""))
	assert.Equal(t, StringList{}, l)

	assert.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)

	assert.Error(t, l.Scan(42))
}

func TestStringList_JSON(t *testing.T) {
	out, err := json.Marshal(StringList{"Go", "SQL"})
	assert.NoError(t, err)
	assert.JSONEq(t, `["Go","SQL"]`, string(out))

	// Empty lists serialize as [], not null.
	out, err = json.Marshal(StringList{})
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}
