package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/nasch-settings/utils"
)

func TestFind(t *testing.T) {
	data := map[int32]string{0: "a", 1: "b"}
	ok, failed := utils.Find(data, []int32{1, 5, 0, 5, 7})
	assert.Equal(t, []string{"b", "a"}, ok)
	assert.Equal(t, []int32{5, 7}, failed)

	ok, failed = utils.Find(data, nil)
	assert.Empty(t, ok)
	assert.Empty(t, failed)
}
