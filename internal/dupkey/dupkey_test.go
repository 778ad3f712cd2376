package dupkey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFind_None(t *testing.T) {
	dups, err := Find([]byte(`{"a":1,"b":{"a":2},"c":[{"a":1},{"a":2}]}`))
	require.NoError(t, err)
	require.Empty(t, dups)
}

func TestFind_Paths(t *testing.T) {
	in := `{"file_id":"x","thumb":{"width":1,"width":2},"photos":[[{"a":1}],[{"b":1,"b":2}]],"file_id":"y","a/b":1,"a/b":2}`
	dups, err := Find([]byte(in))
	require.NoError(t, err)
	require.Equal(t, []Dup{
		{Path: "/thumb/width", Key: "width"},
		{Path: "/photos/1/0/b", Key: "b"},
		{Path: "/file_id", Key: "file_id"},
		{Path: "/a~1b", Key: "a/b"},
	}, dups)
}

func TestFind_TruncatedKeepsWhatWasSeen(t *testing.T) {
	dups, _ := Find([]byte(`{"a":1,"a":2,`))
	require.Equal(t, []Dup{{Path: "/a", Key: "a"}}, dups)
}
