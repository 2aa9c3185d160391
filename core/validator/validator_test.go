package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Label string `json:"label" validate:"required"`
	Size  int    `json:"size" validate:"min=1,max=3"`
}

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Day   string `json:"day" validate:"required,datetime=2006-01-02"`
	Kind  string `json:"kind" validate:"oneof=A B"`
	Items []item `json:"items" validate:"required,min=1,dive"`
}

func TestStruct(t *testing.T) {
	t.Run("valid struct has no errors", func(t *testing.T) {
		result := Struct(sample{
			Name:  "kim",
			Day:   "2023-07-10",
			Kind:  "A",
			Items: []item{{Label: "x", Size: 2}},
		})
		assert.False(t, result.HasError())
	})

	t.Run("errors use json field paths", func(t *testing.T) {
		result := Struct(sample{
			Name:  "too long name",
			Day:   "10/07/2023",
			Kind:  "C",
			Items: []item{{Size: 9}},
		})
		require.True(t, result.HasError())

		fields := make(map[string]string)
		for _, e := range result.Errors {
			fields[e.Field] = e.Message
		}
		assert.Equal(t, "must be at most 5", fields["name"])
		assert.Equal(t, "must match layout 2006-01-02", fields["day"])
		assert.Equal(t, "must be one of [A B]", fields["kind"])
		assert.Equal(t, "is required", fields["items[0].label"])
		assert.Equal(t, "must be at most 3", fields["items[0].size"])
	})

	t.Run("nil result has no error", func(t *testing.T) {
		var result *ValidationResult
		assert.False(t, result.HasError())
	})
}
