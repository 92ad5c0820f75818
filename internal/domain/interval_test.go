package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals",
			a:    Interval{Start: "10:00", End: "11:00"},
			b:    Interval{Start: "10:00", End: "11:00"},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Interval{Start: "10:00", End: "11:00"},
			b:    Interval{Start: "10:30", End: "11:30"},
			want: true,
		},
		{
			name: "contained",
			a:    Interval{Start: "09:00", End: "12:00"},
			b:    Interval{Start: "10:00", End: "10:30"},
			want: true,
		},
		{
			name: "back to back do not overlap",
			a:    Interval{Start: "10:00", End: "11:00"},
			b:    Interval{Start: "11:00", End: "12:00"},
			want: false,
		},
		{
			name: "disjoint",
			a:    Interval{Start: "08:00", End: "09:00"},
			b:    Interval{Start: "14:00", End: "15:00"},
			want: false,
		},
		{
			name: "one minute overlap",
			a:    Interval{Start: "10:00", End: "11:01"},
			b:    Interval{Start: "11:00", End: "12:00"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Симметрия: overlaps(A,B) == overlaps(B,A)
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	work := Interval{Start: "09:00", End: "18:00"}

	assert.True(t, work.Contains(Interval{Start: "09:00", End: "10:00"}))
	assert.True(t, work.Contains(Interval{Start: "17:00", End: "18:00"}))
	assert.True(t, work.Contains(Interval{Start: "09:00", End: "18:00"}))

	// Выход за границу даже на минуту - не содержится
	assert.False(t, work.Contains(Interval{Start: "08:59", End: "10:00"}))
	assert.False(t, work.Contains(Interval{Start: "17:30", End: "18:01"}))
}

func TestNewInterval(t *testing.T) {
	got, err := NewInterval("10:00", 90)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: "10:00", End: "11:30"}, got)

	_, err = NewInterval("bad", 30)
	assert.Error(t, err)
}
