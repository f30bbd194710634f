package mathutil_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thc1006/stats-workflow/pkg/mathutil"
)

func TestAddTwo(t *testing.T) {
	assert.Equal(t, 12, mathutil.AddTwo(10))
	assert.Equal(t, 2, mathutil.AddTwo(0))
	assert.Equal(t, -3, mathutil.AddTwo(-5))
	// Overflow wraps per Go int semantics.
	assert.Equal(t, math.MinInt+1, mathutil.AddTwo(math.MaxInt))
}

func ExampleAddTwo() {
	fmt.Println(mathutil.AddTwo(10))
	// Output: 12
}
