package objects

import (
	"context"

	botogram "github.com/Haloghen/botogram"
	"github.com/Haloghen/botogram/schema"
)

// File is the platform answer describing where a file can be downloaded.
type File struct {
	botogram.Base
	FileID   string
	FileSize *int
	FilePath *string
}

var FileSchema = schema.NewObject[File]("File").
	Field("file_id", schema.String(func(f *File) *string { return &f.FileID })).Required().
	Field("file_size", schema.IntPtr(func(f *File) **int { return &f.FileSize })).
	Field("file_path", schema.StringPtr(func(f *File) **string { return &f.FilePath })).
	MustBuild()

func NewFile(ctx context.Context, raw any, api botogram.API) (*File, error) {
	return FileSchema.Construct(ctx, raw, api)
}

func (f *File) SetAPI(api botogram.API) {
	FileSchema.SetAPI(f, api)
}

func (f *File) Serialize() map[string]any {
	return FileSchema.Encode(f)
}

func (f *File) FileRef() botogram.FileRef {
	return botogram.FileRef{ID: f.FileID, Size: f.FileSize, API: f.API()}
}

// UserProfilePhotos lists the profile pictures of a user.
type UserProfilePhotos struct {
	botogram.Base
	TotalCount int
	Photos     []*Photo
}

var UserProfilePhotosSchema = schema.NewObject[UserProfilePhotos]("UserProfilePhotos").
	Field("total_count", schema.Int(func(u *UserProfilePhotos) *int { return &u.TotalCount })).Required().
	Field("photos", schema.ListOf(PhotoCodec, func(u *UserProfilePhotos) *[]*Photo { return &u.Photos })).Required().
	MustBuild()

func NewUserProfilePhotos(ctx context.Context, raw any, api botogram.API) (*UserProfilePhotos, error) {
	return UserProfilePhotosSchema.Construct(ctx, raw, api)
}

func (u *UserProfilePhotos) SetAPI(api botogram.API) {
	UserProfilePhotosSchema.SetAPI(u, api)
}

func (u *UserProfilePhotos) Serialize() map[string]any {
	return UserProfilePhotosSchema.Encode(u)
}
