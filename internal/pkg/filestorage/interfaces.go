package filestorage

import "mime/multipart"

// Well-known storage folders
const (
	FolderAvatars      = "avatars"
	FolderGallery      = "gallery"
	FolderResources    = "resources"
	FolderNotices      = "notices"
	FolderSlideshow    = "slideshow"
	FolderAssets       = "assets"
	FolderCertificates = "certificates"
	FolderAchievements = "achievements"
	FolderMemories     = "memories"
)

// Storage uploads opaque blobs and returns durable public references.
// SaveDataURI accepts a base64 data URI; SaveFile accepts a multipart upload.
// Delete is idempotent and accepts a previously returned reference.
type Storage interface {
	SaveDataURI(dataURI, folder string) (string, error)
	SaveFile(fileHeader *multipart.FileHeader, folder string) (string, error)
	Delete(url string) error
}
