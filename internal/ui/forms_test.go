package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmwhalen/alcove/internal/library"
)

func TestValidationProblemMessages(t *testing.T) {
	cases := []struct {
		name    string
		profile library.RegisterProfile
		want    string
	}{
		{
			name:    "missing first name",
			profile: library.RegisterProfile{LastName: "Hall", Username: "frank", Email: "f@example.com", Password: "letmein-really"},
			want:    "First Name is required",
		},
		{
			name:    "short username",
			profile: library.RegisterProfile{FirstName: "Frank", LastName: "Hall", Username: "fh", Email: "f@example.com", Password: "letmein-really"},
			want:    "Username must be at least 3 characters",
		},
		{
			name:    "bad email",
			profile: library.RegisterProfile{FirstName: "Frank", LastName: "Hall", Username: "frank", Email: "nope", Password: "letmein-really"},
			want:    "Email must be a valid email address",
		},
		{
			name:    "short password",
			profile: library.RegisterProfile{FirstName: "Frank", LastName: "Hall", Username: "frank", Email: "f@example.com", Password: "hunter2"},
			want:    "Password must be at least 8 characters",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.profile)
			assert.Equal(t, tc.want, validationProblem(err))
		})
	}
}

func TestValidationProblemNil(t *testing.T) {
	profile := library.RegisterProfile{
		FirstName: "Frank", LastName: "Hall",
		Username: "frank", Email: "f@example.com", Password: "letmein-really",
	}
	assert.NoError(t, validate.Struct(profile))
	assert.Equal(t, "", validationProblem(nil))
}

func TestCamelToSnake(t *testing.T) {
	assert.Equal(t, "first_name", camelToSnake("FirstName"))
	assert.Equal(t, "email", camelToSnake("Email"))
}

func TestPickerCycleAndSelect(t *testing.T) {
	p := newPicker([]pickOption{
		{label: "(none)"},
		{id: 3, label: "Fiction"},
		{id: 9, label: "History"},
	})

	assert.Nil(t, p.selectedRef())

	p.cycle(1)
	assert.Equal(t, "Fiction", p.selected().label)
	if assert.NotNil(t, p.selectedRef()) {
		assert.Equal(t, int64(3), *p.selectedRef())
	}

	p.cycle(-1)
	assert.Nil(t, p.selectedRef())

	// Wraps in both directions.
	p.cycle(-1)
	assert.Equal(t, int64(9), p.selected().id)

	p.selectID(3)
	assert.Equal(t, "Fiction", p.selected().label)
	p.selectID(42)
	assert.Equal(t, "(none)", p.selected().label)
}

func TestPickerEmpty(t *testing.T) {
	var p picker
	p.cycle(1)
	assert.Equal(t, "(none)", p.selected().label)
	assert.Nil(t, p.selectedRef())
}

func TestOptionBuilders(t *testing.T) {
	shelves := []library.Bookshelf{{ID: 1, Name: "Hallway"}}
	categories := []library.Category{{ID: 2, Name: "Fiction"}}
	series := []library.Series{{ID: 3, Title: "Dune"}}

	shelfOpts := shelfOptions(shelves)
	assert.Len(t, shelfOpts, 1)
	assert.Equal(t, "Hallway", shelfOpts[0].label)

	catOpts := categoryOptions(categories, "(none)")
	assert.Len(t, catOpts, 2)
	assert.Equal(t, "(none)", catOpts[0].label)
	assert.Equal(t, int64(2), catOpts[1].id)

	seriesOpts := seriesOptions(series, "(any)")
	assert.Len(t, seriesOpts, 2)
	assert.Equal(t, "(any)", seriesOpts[0].label)
	assert.Equal(t, "Dune", seriesOpts[1].label)
}
