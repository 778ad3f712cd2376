package objects

import (
	"context"
	"sort"

	botogram "github.com/Haloghen/botogram"
	js "github.com/Haloghen/botogram/jsonschema"
)

// Kind describes a constructible entity for tools that work by name.
type Kind struct {
	Name       string
	Construct  func(ctx context.Context, raw any, api botogram.API) (botogram.Object, error)
	Serialize  func(v botogram.Object) any
	JSONSchema func() *js.Schema
}

type schemaCodec[T any] interface {
	botogram.Codec[*T]
	JSONSchema() *js.Schema
}

func kindOf[T any, PT interface {
	*T
	botogram.Object
}](name string, c schemaCodec[T]) Kind {
	return Kind{
		Name: name,
		Construct: func(ctx context.Context, raw any, api botogram.API) (botogram.Object, error) {
			v, err := c.Construct(ctx, raw, api)
			if err != nil {
				return nil, err
			}
			return PT(v), nil
		},
		Serialize: func(v botogram.Object) any {
			t, ok := v.(PT)
			if !ok {
				return nil
			}
			return c.Serialize((*T)(t))
		},
		JSONSchema: c.JSONSchema,
	}
}

var kinds = map[string]Kind{}

func register(k Kind) { kinds[k.Name] = k }

func init() {
	register(kindOf[PhotoSize]("photo_size", PhotoSizeSchema))
	register(kindOf[Photo]("photo", photoCodec{}))
	register(kindOf[Audio]("audio", AudioSchema))
	register(kindOf[Voice]("voice", VoiceSchema))
	register(kindOf[Document]("document", DocumentSchema))
	register(kindOf[Sticker]("sticker", StickerSchema))
	register(kindOf[Video]("video", VideoSchema))
	register(kindOf[Contact]("contact", ContactSchema))
	register(kindOf[Location]("location", LocationSchema))
	register(kindOf[File]("file", FileSchema))
	register(kindOf[UserProfilePhotos]("user_profile_photos", UserProfilePhotosSchema))
}

// Lookup returns the kind registered under name.
func Lookup(name string) (Kind, bool) {
	k, ok := kinds[name]
	return k, ok
}

// Names lists registered kind names in sorted order.
func Names() []string {
	out := make([]string, 0, len(kinds))
	for n := range kinds {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
