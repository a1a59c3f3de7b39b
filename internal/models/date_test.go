package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONIsDateOnly(t *testing.T) {
	game := Game{Name: "Chrono", ReleasedDate: NewDate(2024, time.January, 1)}

	body, err := json.Marshal(game)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"releasedDate":"2024-01-01"`)
	assert.NotContains(t, string(body), `"genre"`, "genre is omitted unless preloaded")
}

func TestDateUnmarshalAcceptsTimestamps(t *testing.T) {
	var g Game
	require.NoError(t, json.Unmarshal([]byte(`{"releasedDate":"2023-05-17T13:45:00Z"}`), &g))
	assert.Equal(t, "2023-05-17", g.ReleasedDate.String())

	require.NoError(t, json.Unmarshal([]byte(`{"releasedDate":"1995-03-11"}`), &g))
	assert.Equal(t, "1995-03-11", g.ReleasedDate.String())

	require.NoError(t, json.Unmarshal([]byte(`{"releasedDate":null}`), &g))
	assert.True(t, g.ReleasedDate.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"releasedDate":"11/03/1995"}`), &g))
	assert.Error(t, json.Unmarshal([]byte(`{"releasedDate":20240101}`), &g))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2020, time.February, 29, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2020-02-29", d.String())

	require.NoError(t, d.Scan("2021-12-31 00:00:00+00:00"))
	assert.Equal(t, "2021-12-31", d.String())

	require.NoError(t, d.Scan([]byte("1999-01-02")))
	assert.Equal(t, "1999-01-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, time.March, 9).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestApplyUpdateKeepsID(t *testing.T) {
	existing := &Game{ID: 7, Name: "Old", Price: 1}
	existing.ApplyUpdate(&Game{ID: 99, Name: "New", Description: "d", GenreID: 3, Price: 2.5, Image: "aGk="})

	assert.Equal(t, uint(7), existing.ID)
	assert.Equal(t, "New", existing.Name)
	assert.Equal(t, uint(3), existing.GenreID)
	assert.Equal(t, 2.5, existing.Price)
	assert.Equal(t, "aGk=", existing.Image)
}
