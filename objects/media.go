package objects

import (
	"context"

	botogram "github.com/Haloghen/botogram"
	"github.com/Haloghen/botogram/schema"
)

// PhotoSize is one resolution of a photo, sticker or thumbnail.
type PhotoSize struct {
	botogram.Base
	FileID   string
	Width    int
	Height   int
	FileSize *int
}

var PhotoSizeSchema = schema.NewObject[PhotoSize]("PhotoSize").
	Field("file_id", schema.String(func(p *PhotoSize) *string { return &p.FileID })).Required().
	Field("width", schema.Int(func(p *PhotoSize) *int { return &p.Width })).Required().
	Field("height", schema.Int(func(p *PhotoSize) *int { return &p.Height })).Required().
	Field("file_size", schema.IntPtr(func(p *PhotoSize) **int { return &p.FileSize })).
	MustBuild()

// NewPhotoSize constructs a PhotoSize from a keyed mapping.
func NewPhotoSize(ctx context.Context, raw any, api botogram.API) (*PhotoSize, error) {
	return PhotoSizeSchema.Construct(ctx, raw, api)
}

// Area is width × height, computed in int64.
func (p *PhotoSize) Area() int64 {
	return int64(p.Width) * int64(p.Height)
}

func (p *PhotoSize) SetAPI(api botogram.API) {
	PhotoSizeSchema.SetAPI(p, api)
}

func (p *PhotoSize) Serialize() map[string]any {
	return PhotoSizeSchema.Encode(p)
}

func (p *PhotoSize) FileRef() botogram.FileRef {
	return botogram.FileRef{ID: p.FileID, Size: p.FileSize, API: p.API()}
}

// Audio is an audio track.
type Audio struct {
	botogram.Base
	FileID    string
	Duration  int
	Performer *string
	Title     *string
	MimeType  *string
	FileSize  *int
}

var AudioSchema = schema.NewObject[Audio]("Audio").
	Field("file_id", schema.String(func(a *Audio) *string { return &a.FileID })).Required().
	Field("duration", schema.Int(func(a *Audio) *int { return &a.Duration })).Required().
	Field("performer", schema.StringPtr(func(a *Audio) **string { return &a.Performer })).
	Field("title", schema.StringPtr(func(a *Audio) **string { return &a.Title })).
	Field("mime_type", schema.StringPtr(func(a *Audio) **string { return &a.MimeType })).
	Field("file_size", schema.IntPtr(func(a *Audio) **int { return &a.FileSize })).
	MustBuild()

func NewAudio(ctx context.Context, raw any, api botogram.API) (*Audio, error) {
	return AudioSchema.Construct(ctx, raw, api)
}

func (a *Audio) SetAPI(api botogram.API) {
	AudioSchema.SetAPI(a, api)
}

func (a *Audio) Serialize() map[string]any {
	return AudioSchema.Encode(a)
}

func (a *Audio) FileRef() botogram.FileRef {
	return botogram.FileRef{ID: a.FileID, Size: a.FileSize, API: a.API()}
}

// Voice is a voice note.
type Voice struct {
	botogram.Base
	FileID   string
	Duration int
	MimeType *string
	FileSize *int
}

var VoiceSchema = schema.NewObject[Voice]("Voice").
	Field("file_id", schema.String(func(v *Voice) *string { return &v.FileID })).Required().
	Field("duration", schema.Int(func(v *Voice) *int { return &v.Duration })).Required().
	Field("mime_type", schema.StringPtr(func(v *Voice) **string { return &v.MimeType })).
	Field("file_size", schema.IntPtr(func(v *Voice) **int { return &v.FileSize })).
	MustBuild()

func NewVoice(ctx context.Context, raw any, api botogram.API) (*Voice, error) {
	return VoiceSchema.Construct(ctx, raw, api)
}

func (v *Voice) SetAPI(api botogram.API) {
	VoiceSchema.SetAPI(v, api)
}

func (v *Voice) Serialize() map[string]any {
	return VoiceSchema.Encode(v)
}

func (v *Voice) FileRef() botogram.FileRef {
	return botogram.FileRef{ID: v.FileID, Size: v.FileSize, API: v.API()}
}

// Document is a generic file.
type Document struct {
	botogram.Base
	FileID   string
	Thumb    *PhotoSize
	FileName *string
	MimeType *string
	FileSize *int
}

var DocumentSchema = schema.NewObject[Document]("Document").
	Field("file_id", schema.String(func(d *Document) *string { return &d.FileID })).Required().
	Field("thumb", schema.NestedPtr(PhotoSizeSchema, func(d *Document) **PhotoSize { return &d.Thumb })).
	Field("file_name", schema.StringPtr(func(d *Document) **string { return &d.FileName })).
	Field("mime_type", schema.StringPtr(func(d *Document) **string { return &d.MimeType })).
	Field("file_size", schema.IntPtr(func(d *Document) **int { return &d.FileSize })).
	MustBuild()

func NewDocument(ctx context.Context, raw any, api botogram.API) (*Document, error) {
	return DocumentSchema.Construct(ctx, raw, api)
}

func (d *Document) SetAPI(api botogram.API) {
	DocumentSchema.SetAPI(d, api)
}

func (d *Document) Serialize() map[string]any {
	return DocumentSchema.Encode(d)
}

func (d *Document) FileRef() botogram.FileRef {
	return botogram.FileRef{ID: d.FileID, Size: d.FileSize, API: d.API()}
}

// Sticker is a sticker image.
type Sticker struct {
	botogram.Base
	FileID   string
	Width    int
	Height   int
	Thumb    *PhotoSize
	FileSize *int
}

var StickerSchema = schema.NewObject[Sticker]("Sticker").
	Field("file_id", schema.String(func(s *Sticker) *string { return &s.FileID })).Required().
	Field("width", schema.Int(func(s *Sticker) *int { return &s.Width })).Required().
	Field("height", schema.Int(func(s *Sticker) *int { return &s.Height })).Required().
	Field("thumb", schema.NestedPtr(PhotoSizeSchema, func(s *Sticker) **PhotoSize { return &s.Thumb })).
	Field("file_size", schema.IntPtr(func(s *Sticker) **int { return &s.FileSize })).
	MustBuild()

func NewSticker(ctx context.Context, raw any, api botogram.API) (*Sticker, error) {
	return StickerSchema.Construct(ctx, raw, api)
}

func (s *Sticker) SetAPI(api botogram.API) {
	StickerSchema.SetAPI(s, api)
}

func (s *Sticker) Serialize() map[string]any {
	return StickerSchema.Encode(s)
}

func (s *Sticker) FileRef() botogram.FileRef {
	return botogram.FileRef{ID: s.FileID, Size: s.FileSize, API: s.API()}
}

// Video is a video file.
type Video struct {
	botogram.Base
	FileID   string
	Width    int
	Height   int
	Duration int
	Thumb    *PhotoSize
	MimeType *string
	FileSize *int
}

var VideoSchema = schema.NewObject[Video]("Video").
	Field("file_id", schema.String(func(v *Video) *string { return &v.FileID })).Required().
	Field("width", schema.Int(func(v *Video) *int { return &v.Width })).Required().
	Field("height", schema.Int(func(v *Video) *int { return &v.Height })).Required().
	Field("duration", schema.Int(func(v *Video) *int { return &v.Duration })).Required().
	Field("thumb", schema.NestedPtr(PhotoSizeSchema, func(v *Video) **PhotoSize { return &v.Thumb })).
	Field("mime_type", schema.StringPtr(func(v *Video) **string { return &v.MimeType })).
	Field("file_size", schema.IntPtr(func(v *Video) **int { return &v.FileSize })).
	MustBuild()

func NewVideo(ctx context.Context, raw any, api botogram.API) (*Video, error) {
	return VideoSchema.Construct(ctx, raw, api)
}

func (v *Video) SetAPI(api botogram.API) {
	VideoSchema.SetAPI(v, api)
}

func (v *Video) Serialize() map[string]any {
	return VideoSchema.Encode(v)
}

func (v *Video) FileRef() botogram.FileRef {
	return botogram.FileRef{ID: v.FileID, Size: v.FileSize, API: v.API()}
}

// Contact is a shared phone contact.
type Contact struct {
	botogram.Base
	PhoneNumber string
	FirstName   string
	LastName    *string
	UserID      *int64
}

var ContactSchema = schema.NewObject[Contact]("Contact").
	Field("phone_number", schema.String(func(c *Contact) *string { return &c.PhoneNumber })).Required().
	Field("first_name", schema.String(func(c *Contact) *string { return &c.FirstName })).Required().
	Field("last_name", schema.StringPtr(func(c *Contact) **string { return &c.LastName })).
	Field("user_id", schema.IntPtr(func(c *Contact) **int64 { return &c.UserID })).
	MustBuild()

func NewContact(ctx context.Context, raw any, api botogram.API) (*Contact, error) {
	return ContactSchema.Construct(ctx, raw, api)
}

func (c *Contact) SetAPI(api botogram.API) {
	ContactSchema.SetAPI(c, api)
}

func (c *Contact) Serialize() map[string]any {
	return ContactSchema.Encode(c)
}

// Location is a point on the map.
type Location struct {
	botogram.Base
	Longitude float64
	Latitude  float64
}

var LocationSchema = schema.NewObject[Location]("Location").
	Field("longitude", schema.Float(func(l *Location) *float64 { return &l.Longitude })).Required().
	Field("latitude", schema.Float(func(l *Location) *float64 { return &l.Latitude })).Required().
	MustBuild()

func NewLocation(ctx context.Context, raw any, api botogram.API) (*Location, error) {
	return LocationSchema.Construct(ctx, raw, api)
}

func (l *Location) SetAPI(api botogram.API) {
	LocationSchema.SetAPI(l, api)
}

func (l *Location) Serialize() map[string]any {
	return LocationSchema.Encode(l)
}
