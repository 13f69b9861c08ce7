package errors

import (
	stderr "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	root := stderr.New("root")
	err := Wrap(root, "outer")

	ref := View(err)
	require.False(t, ref.IsZero())
	require.Equal(t, "outer", ref.Message())
	require.Equal(t, "outer", ref.Error())
	require.True(t, ref.Err() == err)

	cause := ref.Cause()
	require.Equal(t, "root", cause.Message())
	require.True(t, cause.Err() == root)
	require.True(t, cause.Cause().IsZero())

	// viewing a view does not nest
	require.Equal(t, ref, View(ref))
}

func TestViewOwned(t *testing.T) {
	boxed := From(&codeError{code: 3})
	ref := View(boxed)
	require.Equal(t, "code 3", ref.Message())
	require.True(t, ref.Cause().IsZero())
	require.True(t, Is(ref, boxed))
	var target *codeError
	require.True(t, As(ref, &target))
	require.Equal(t, 3, target.code)
}

func TestViewUncomparable(t *testing.T) {
	ref := View(sliceError{"a"})
	require.NotPanics(t, func() {
		require.False(t, Is(ref, View(sliceError{"a"})))
		require.False(t, Is(ref, sliceError{"a"}))
	})
	var target sliceError
	require.True(t, As(ref, &target))
	require.Equal(t, sliceError{"a"}, target)
}

func TestZeroRef(t *testing.T) {
	var ref Ref
	require.True(t, ref.IsZero())
	require.True(t, View(nil).IsZero())
	require.Equal(t, "", ref.Message())
	require.Equal(t, "<nil>", ref.Error())
	require.True(t, ref.Cause().IsZero())
	require.Nil(t, ref.Unwrap())
	require.False(t, ref.Is(stderr.New("x")))
	var target *codeError
	require.False(t, ref.As(&target))
}

func TestRefUnwrap(t *testing.T) {
	root := New("root")
	ref := View(Wrap(root, "outer"))
	require.True(t, ref.Unwrap() == root)
	require.True(t, Is(ref, root))
}
