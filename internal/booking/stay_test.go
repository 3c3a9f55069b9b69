package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStay(t *testing.T) {
	t.Run("Whole Day Difference", func(t *testing.T) {
		days, err := ComputeStay("2024-06-01", "2024-06-03")
		assert.NoError(t, err)
		assert.Equal(t, int32(2), days)
	})

	t.Run("Same Day Counts As One", func(t *testing.T) {
		days, err := ComputeStay("2024-06-01", "2024-06-01")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), days)
	})

	t.Run("Single Night", func(t *testing.T) {
		days, err := ComputeStay("2024-06-01", "2024-06-02")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), days)
	})

	t.Run("End Before Start", func(t *testing.T) {
		_, err := ComputeStay("2024-06-03", "2024-06-01")
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Unparseable Dates", func(t *testing.T) {
		_, err := ComputeStay("June 1st", "2024-06-03")
		assert.Error(t, err)

		_, err = ComputeStay("2024-06-01", "")
		assert.Error(t, err)
	})

	t.Run("Across Month Boundary", func(t *testing.T) {
		days, err := ComputeStay("2024-06-28", "2024-07-02")
		assert.NoError(t, err)
		assert.Equal(t, int32(4), days)
	})
}

func TestComputeTotal(t *testing.T) {
	assert.Equal(t, int32(20000), ComputeTotal(10000, 2))
	assert.Equal(t, int32(10000), ComputeTotal(10000, 1))
	assert.Equal(t, int32(0), ComputeTotal(0, 5))
	// 149.99/day for a 30 day stay stays exact in cents
	assert.Equal(t, int32(449970), ComputeTotal(14999, 30))
}

func TestReturnDate(t *testing.T) {
	t.Run("Adds Days To Start", func(t *testing.T) {
		got, err := ReturnDate("2024-06-01", 2)
		assert.NoError(t, err)
		assert.Equal(t, "2024-06-03", got)
	})

	t.Run("Rolls Over Month End", func(t *testing.T) {
		got, err := ReturnDate("2024-06-29", 3)
		assert.NoError(t, err)
		assert.Equal(t, "2024-07-02", got)
	})

	t.Run("Invalid Start", func(t *testing.T) {
		_, err := ReturnDate("not-a-date", 2)
		assert.Error(t, err)
	})
}
