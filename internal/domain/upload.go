package domain

// StoredFile describes a file persisted by the upload store.
type StoredFile struct {
	Name        string // original client file name
	Path        string // path relative to the upload root
	URL         string // public URL path
	ContentType string
	Size        int64
}

// Attachment converts the stored file to a message attachment.
func (f StoredFile) Attachment() Attachment {
	return Attachment{URL: f.URL, FileName: f.Name, FileType: f.ContentType, FileSize: f.Size}
}

// DocumentUpload is a stored document submitted for verification.
type DocumentUpload struct {
	Type string
	Name string
	Path string
}
