// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2016-06-28")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2016, time.June, 28), d)

	_, err = ParseDate("28.06.2016")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	data, err := json.Marshal(wrapper{Date: NewDate(2016, time.May, 21)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2016-05-21"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2016-05-21"}`), &w))
	assert.Equal(t, NewDate(2016, time.May, 21), w.Date)

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &w))
	assert.True(t, w.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":20160521}`), &w))
	assert.Error(t, json.Unmarshal([]byte(`{"date":"2016-13-01"}`), &w))
}

func TestDate_MarshalZero(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDate_Scan(t *testing.T) {
	want := NewDate(2016, time.June, 28)

	tests := []struct {
		name    string
		src     any
		want    Date
		wantErr bool
	}{
		{name: "time", src: time.Date(2016, time.June, 28, 0, 0, 0, 0, time.UTC), want: want},
		{name: "time with clock", src: time.Date(2016, time.June, 28, 13, 5, 0, 0, time.UTC), want: want},
		{name: "text", src: "2016-06-28", want: want},
		{name: "sqlite timestamp text", src: "2016-06-28 00:00:00+00:00", want: want},
		{name: "bytes", src: []byte("2016-06-28"), want: want},
		{name: "nil", src: nil, want: Date{}},
		{name: "int", src: int64(1), wantErr: true},
		{name: "garbage", src: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2016, time.June, 28).Value()
	require.NoError(t, err)
	assert.Equal(t, "2016-06-28", v)
}

func TestDate_After(t *testing.T) {
	a := NewDate(2016, time.June, 28)
	b := NewDate(2016, time.May, 21)

	assert.True(t, a.After(b))
	assert.False(t, b.After(a))
	assert.False(t, a.After(a))
}
