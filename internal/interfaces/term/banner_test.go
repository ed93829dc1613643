package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBanner_LatestFailureWins(t *testing.T) {
	var b Banner

	b.Fail("first failure")
	b.Fail("second failure")

	assert.Equal(t, "second failure", b.Current())
}

func TestBanner_SuccessClears(t *testing.T) {
	var b Banner

	b.Fail("boom")
	b.Clear()

	assert.Empty(t, b.Current())
}

func TestBanner_EmptyByDefault(t *testing.T) {
	var b Banner
	assert.Empty(t, b.Current())
}
