package models

// MediaRef references an uploaded media object attached to a report
type MediaRef struct {
	Key         string `json:"key"`
	Type        string `json:"type"` // photo, video or audio
	Checksum    string `json:"checksum,omitempty"`
	BlurFaces   *bool  `json:"blur_faces,omitempty"`
	VoiceMasked *bool  `json:"voice_masked,omitempty"`
}

// PresignedUpload is a server-issued, time-limited upload target
type PresignedUpload struct {
	UploadURL string            `json:"upload_url"`
	Fields    map[string]string `json:"fields"`
	ExpiresIn int               `json:"expires_in"`
	ExpiresAt string            `json:"expires_at,omitempty"`
	MediaKey  string            `json:"media_key"`
}
