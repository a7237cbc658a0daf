package domain

// UploadedImage is the result of pushing an image to the media CDN.
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
