package objects_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	botogram "github.com/Haloghen/botogram"
	"github.com/Haloghen/botogram/objects"
)

type fakeAPI struct{ id string }

func (fakeAPI) Call(context.Context, string, map[string]any) (any, error) { return nil, nil }

func size(id string, w, h int) map[string]any {
	return map[string]any{"file_id": id, "width": w, "height": h}
}

func TestNewPhoto_Empty(t *testing.T) {
	_, err := objects.NewPhoto(context.Background(), []any{}, nil)
	require.ErrorIs(t, err, botogram.ErrEmptyCollection)
}

func TestNewPhoto_NotASequence(t *testing.T) {
	for _, raw := range []any{nil, size("a", 1, 1), "abc"} {
		_, err := objects.NewPhoto(context.Background(), raw, nil)
		require.ErrorIs(t, err, botogram.ErrInvalidPayload)
	}
}

func TestNewPhoto_SmallestAndBiggest(t *testing.T) {
	big := size("big", 100, 100)
	big["file_size"] = 5000
	api := fakeAPI{id: "s1"}

	p, err := objects.NewPhoto(context.Background(), []any{size("small", 10, 10), big}, api)
	require.NoError(t, err)
	require.Len(t, p.Sizes, 2)
	require.Same(t, p.Sizes[0], p.Smallest)
	require.Same(t, p.Sizes[1], p.Biggest)

	require.Equal(t, "big", p.FileID)
	require.Equal(t, 100, p.Width)
	require.Equal(t, 100, p.Height)
	require.Equal(t, 5000, *p.FileSize)
	require.NotSame(t, p.Biggest.FileSize, p.FileSize)

	require.Equal(t, api, p.API())
	for _, s := range p.Sizes {
		require.Equal(t, api, s.API())
	}
}

// Every PhotoSize field is mirrored on Photo.
func TestPhoto_MirrorsEveryPhotoSizeField(t *testing.T) {
	big := size("big", 30, 20)
	big["file_size"] = 7
	p, err := objects.NewPhoto(context.Background(), []any{size("s", 1, 1), big}, nil)
	require.NoError(t, err)

	mirrored := map[string]any{
		"file_id":   p.FileID,
		"width":     p.Width,
		"height":    p.Height,
		"file_size": *p.FileSize,
	}
	for _, f := range objects.PhotoSizeSchema.Fields() {
		v, ok := mirrored[f.Name]
		require.True(t, ok, "field %s is not mirrored", f.Name)
		require.Equal(t, p.Biggest.Serialize()[f.Name], v)
	}
	require.Len(t, mirrored, len(objects.PhotoSizeSchema.Fields()))
}

func TestPhoto_OptionalMirrorStaysUnset(t *testing.T) {
	p, err := objects.NewPhoto(context.Background(), []any{size("only", 4, 4)}, nil)
	require.NoError(t, err)
	require.Nil(t, p.FileSize)
	require.Same(t, p.Smallest, p.Biggest)
}

func TestPhoto_TieBreak(t *testing.T) {
	raw := []any{
		size("a", 10, 10),
		size("b", 20, 5),
		size("c", 50, 50),
		size("d", 25, 100),
		size("e", 5, 20),
	}
	p, err := objects.NewPhoto(context.Background(), raw, nil)
	require.NoError(t, err)
	// first of the minimum area, last of the maximum area
	require.Equal(t, "a", p.Smallest.FileID)
	require.Equal(t, "d", p.Biggest.FileID)
	require.Equal(t, "d", p.FileID)
}

func TestPhoto_AreaDoesNotOverflow(t *testing.T) {
	p, err := objects.NewPhoto(context.Background(), []any{
		size("a", 1<<31-1, 1<<31-1),
		size("b", 1<<31-1, 2),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "b", p.Smallest.FileID)
	require.Equal(t, "a", p.Biggest.FileID)
}

func TestNewPhoto_ElementIssuesAreIndexed(t *testing.T) {
	_, err := objects.NewPhoto(context.Background(), []any{
		size("a", 1, 1),
		map[string]any{"file_id": "b", "width": "wide", "height": 1},
		"oops",
	}, nil)
	iss, ok := botogram.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 2)
	require.Equal(t, "/1/width", iss[0].Path)
	require.Equal(t, botogram.CodeTypeMismatch, iss[0].Code)
	require.Equal(t, "/2", iss[1].Path)
	require.Equal(t, botogram.CodeInvalidPayload, iss[1].Code)

	ctx := botogram.WithOptions(context.Background(), botogram.Options{FailFast: true})
	_, err = objects.NewPhoto(ctx, []any{"x", "y"}, nil)
	iss, _ = botogram.AsIssues(err)
	require.Len(t, iss, 1)
}

func TestPhoto_SerializeRoundTrip(t *testing.T) {
	raw := []any{size("c", 50, 50), size("a", 10, 10), size("b", 20, 20)}
	p, err := objects.NewPhoto(context.Background(), raw, nil)
	require.NoError(t, err)

	out := p.Serialize()
	require.Len(t, out, 3)
	require.Equal(t, raw, out)

	again, err := objects.NewPhoto(context.Background(), out, nil)
	require.NoError(t, err)
	require.Equal(t, p.Smallest.Serialize(), again.Smallest.Serialize())
	require.Equal(t, p.Biggest.Serialize(), again.Biggest.Serialize())
	require.Equal(t, p.FileID, again.FileID)
}

func TestPhoto_SetAPIReachesEverySize(t *testing.T) {
	p, err := objects.NewPhoto(context.Background(), []any{size("a", 1, 1), size("b", 2, 2), size("c", 3, 3)}, fakeAPI{id: "old"})
	require.NoError(t, err)

	next := fakeAPI{id: "new"}
	p.SetAPI(next)
	require.Equal(t, next, p.API())
	for _, s := range p.Sizes {
		require.Equal(t, next, s.API())
	}
	require.Equal(t, next, p.FileRef().API)
}

func TestPhotoCodec(t *testing.T) {
	var fb botogram.FileBearer
	p, err := objects.PhotoCodec.Construct(context.Background(), []map[string]any{size("x", 2, 2)}, nil)
	require.NoError(t, err)
	fb = p
	require.Equal(t, "x", fb.FileRef().ID)
	require.Nil(t, objects.PhotoCodec.Serialize(nil))
}
