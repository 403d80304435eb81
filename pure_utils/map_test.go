package pure_utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var dummy = func(int) int { return 0 }
var dummyErr = func(int) (int, error) { return 0, nil }

func TestMap(t *testing.T) {
	values := []int{1, 2}
	result := Map(values, func(v int) string {
		return fmt.Sprintf("%d", v)
	})
	assert.Equal(t, result, []string{"1", "2"})
}

func TestMap_Nil(t *testing.T) {
	assert.Nilf(t, Map(nil, dummy), "should return nil when src is nil")
}

func TestMapErr(t *testing.T) {

	errorForTesting := errors.New("testing error")

	values := []int{1, 2, 3}
	result, err := MapErr(values, func(v int) (string, error) {
		if v == 1 {
			return "1", nil
		}
		return "2", errorForTesting
	})
	assert.Equal(t, result, []string{"1", "2", ""})
	assert.ErrorIs(t, err, errorForTesting)
}

func TestMapErr_Nil(t *testing.T) {
	result, err := MapErr(nil, dummyErr)
	assert.NoError(t, err)
	assert.Nil(t, result, "should return nil when src is nil")
}
