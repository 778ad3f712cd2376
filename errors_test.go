package botogram_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	botogram "github.com/Haloghen/botogram"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := botogram.Issues{
		botogram.NewIssue("/file_id", botogram.CodeMissingField, "file_id", nil),
		botogram.MismatchIssue("/width", "width", "integer", "wide"),
	}
	require.Equal(t, "missing_field at /file_id; type_mismatch at /width (expected integer, got string)", iss.Error())

	long := botogram.Issues{}
	for i := 0; i < 5; i++ {
		long = botogram.AppendIssues(long, botogram.NewIssue(fmt.Sprintf("/f%d", i), botogram.CodeMissingField, "", nil))
	}
	require.Contains(t, long.Error(), "(total 5)")
	require.Equal(t, "", botogram.Issues{}.Error())
}

func TestIssues_IsMatchesSentinels(t *testing.T) {
	var err error = botogram.Issues{botogram.NewIssue("/photos/0", botogram.CodeEmptyCollection, "", nil)}
	require.True(t, errors.Is(err, botogram.ErrEmptyCollection))
	require.False(t, errors.Is(err, botogram.ErrMissingField))

	wrapped := fmt.Errorf("loading update: %w", err)
	require.ErrorIs(t, wrapped, botogram.ErrEmptyCollection)
	iss, ok := botogram.AsIssues(wrapped)
	require.True(t, ok)
	require.Len(t, iss, 1)
}

func TestAsIssues_Foreign(t *testing.T) {
	_, ok := botogram.AsIssues(errors.New("boom"))
	require.False(t, ok)
	_, ok = botogram.AsIssues(nil)
	require.False(t, ok)
}

func TestRebase(t *testing.T) {
	in := botogram.Issues{
		botogram.MismatchIssue("/width", "width", "integer", true),
		botogram.NewIssue("/", botogram.CodeInvalidPayload, "", nil),
	}
	out := botogram.Rebase("/thumb", in)
	require.Equal(t, "/thumb/width", out[0].Path)
	require.Equal(t, "width", out[0].Field)
	require.Equal(t, "integer", out[0].Expected)
	require.Equal(t, true, out[0].Got)
	require.Equal(t, "/thumb", out[1].Path)

	// input is left untouched
	require.Equal(t, "/width", in[0].Path)
	require.Equal(t, in, botogram.Rebase("/", in))
}

func TestIssuesFromErr(t *testing.T) {
	cause := errors.New("socket closed")
	iss := botogram.IssuesFromErr("/photos", cause)
	require.Len(t, iss, 1)
	require.Equal(t, botogram.CodeInvalidPayload, iss[0].Code)
	require.Equal(t, "/photos", iss[0].Path)
	require.ErrorIs(t, iss, cause)

	require.Nil(t, botogram.IssuesFromErr("/x", nil))
}
