package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrapf(ErrUnsupportedNode, "pass %s", "escape-identifiers")

	assert.True(t, Is(err, ErrUnsupportedNode))
	assert.True(t, IsUnsupportedNode(err))
	assert.False(t, IsIdentifierCollision(err))
	assert.Contains(t, err.Error(), "escape-identifiers")
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrUnsupportedNode,
		ErrIdentifierCollision,
		ErrInvalidTree,
		ErrInvalidName,
		ErrUnknownPass,
		ErrInvalidConfig,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestNewUnsupportedNodeError(t *testing.T) {
	err := NewUnsupportedNodeError("kind %s", "mystery")

	require.True(t, IsUnsupportedNode(err))
	assert.Contains(t, err.Error(), "kind mystery")
}

func TestMark(t *testing.T) {
	base := New("two names escape to `fun`")
	marked := Mark(base, ErrIdentifierCollision)

	assert.True(t, Is(marked, ErrIdentifierCollision))
	assert.Equal(t, base.Error(), marked.Error())
}

func TestWithHintAndDetail(t *testing.T) {
	err := WithDetail(New("error"), "owner path: Module > Class")
	err = WithHintf(err, "register a rule for kind %s", "class")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "register a rule for kind class", hints[0])

	details := GetAllDetails(err)
	require.Len(t, details, 1)
	assert.Equal(t, "owner path: Module > Class", details[0])
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
	assert.False(t, IsUnsupportedNode(nil))
	assert.False(t, IsInvalidTree(nil))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func ExampleWrap() {
	err := Wrap(ErrUnknownPass, "pipeline")
	fmt.Println(err)
	// Output: pipeline: unknown pass
}
