package objects

import (
	"context"
	"strconv"

	botogram "github.com/Haloghen/botogram"
	js "github.com/Haloghen/botogram/jsonschema"
	"github.com/Haloghen/botogram/schema"
)

// Photo groups every resolution the platform sent for one image.
//
// The platform delivers a photo as a bare list of PhotoSize objects; Photo
// keeps that list and picks the smallest and biggest resolution by area. The
// PhotoSize fields are mirrored from Biggest so a Photo can be used wherever
// a single size is expected.
type Photo struct {
	botogram.Base
	Sizes    []*PhotoSize
	Smallest *PhotoSize
	Biggest  *PhotoSize

	// Mirrored from Biggest.
	FileID   string
	Width    int
	Height   int
	FileSize *int
}

// PhotoCodec constructs Photo values from a sequence of PhotoSize mappings
// and serializes them back to a sequence.
var PhotoCodec botogram.Codec[*Photo] = photoCodec{}

type photoCodec struct{}

func (photoCodec) Construct(ctx context.Context, raw any, api botogram.API) (*Photo, error) {
	return NewPhoto(ctx, raw, api)
}

func (photoCodec) Serialize(p *Photo) any {
	if p == nil {
		return nil
	}
	return p.Serialize()
}

func (photoCodec) JSONSchema() *js.Schema {
	one := 1
	return &js.Schema{Title: "Photo", Type: "array", Items: PhotoSizeSchema.JSONSchema(), MinItems: &one}
}

// NewPhoto builds a Photo from a non-empty sequence of PhotoSize mappings.
// Sizes keep input order and are all bound to api.
func NewPhoto(ctx context.Context, raw any, api botogram.API) (*Photo, error) {
	seq, ok := schema.Sequence(raw)
	if !ok {
		it := botogram.NewIssue("/", botogram.CodeInvalidPayload, "", nil)
		it.Expected = schema.TypeSequence
		it.Got = raw
		it.Hint = "expected a sequence of PhotoSize"
		return nil, botogram.Fail(it)
	}
	if len(seq) == 0 {
		return nil, botogram.Fail(botogram.NewIssue("/", botogram.CodeEmptyCollection, "", nil))
	}

	p := &Photo{Sizes: make([]*PhotoSize, 0, len(seq))}
	var iss botogram.Issues
	for i, el := range seq {
		size, err := PhotoSizeSchema.Construct(ctx, el, api)
		if err != nil {
			iss = botogram.AppendIssues(iss, botogram.IssuesFromErr("/"+strconv.Itoa(i), err)...)
			if botogram.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		p.Sizes = append(p.Sizes, size)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	p.BindAPI(api)
	p.Smallest, p.Biggest = extremes(p.Sizes)
	p.mirror()
	return p, nil
}

// extremes orders sizes by (area, index): the smallest is the first size with
// the minimum area, the biggest is the last size with the maximum area.
func extremes(sizes []*PhotoSize) (smallest, biggest *PhotoSize) {
	smallest, biggest = sizes[0], sizes[0]
	for _, s := range sizes[1:] {
		a := s.Area()
		if a < smallest.Area() {
			smallest = s
		}
		if a >= biggest.Area() {
			biggest = s
		}
	}
	return smallest, biggest
}

// mirror copies every PhotoSize field from Biggest.
func (p *Photo) mirror() {
	b := p.Biggest
	p.FileID = b.FileID
	p.Width = b.Width
	p.Height = b.Height
	p.FileSize = nil
	if b.FileSize != nil {
		n := *b.FileSize
		p.FileSize = &n
	}
}

// SetAPI rebinds the handle on the photo and on every size.
func (p *Photo) SetAPI(api botogram.API) {
	p.BindAPI(api)
	for _, s := range p.Sizes {
		s.SetAPI(api)
	}
}

// Serialize returns the sizes as a sequence of mappings, in input order.
func (p *Photo) Serialize() []any {
	out := make([]any, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		out = append(out, s.Serialize())
	}
	return out
}

// FileRef points at the biggest size.
func (p *Photo) FileRef() botogram.FileRef {
	return botogram.FileRef{ID: p.FileID, Size: p.FileSize, API: p.API()}
}
