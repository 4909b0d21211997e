package shuffle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfPreservesElements(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got := Of(input)

	assert.Len(t, got, len(input))
	assert.ElementsMatch(t, input, got)
}

func TestOfDoesNotModifyInput(t *testing.T) {
	input := []string{"a", "b", "c", "d", "e"}
	original := make([]string, len(input))
	copy(original, input)

	for i := 0; i < 50; i++ {
		Of(input)
	}

	assert.Equal(t, original, input)
}

func TestOfEmptyAndNil(t *testing.T) {
	assert.Empty(t, Of([]int{}))
	assert.Empty(t, Of[int](nil))
}

func TestOfSingleElement(t *testing.T) {
	got := Of([]string{"only"})
	assert.Equal(t, []string{"only"}, got)
}

func TestOfEventuallyProducesDifferentOrders(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}

	for i := 0; i < 200; i++ {
		got := Of(input)
		if !assert.ObjectsAreEqual(input, got) {
			return
		}
	}
	t.Fatal("200 shuffles of 8 elements all came back in input order")
}
