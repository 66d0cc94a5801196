package entity

// UploadedFile is a file received in a single request. It is never stored.
type UploadedFile struct {
	Filename string
	Content  []byte
}

// Size returns the content length in bytes.
func (f UploadedFile) Size() int {
	return len(f.Content)
}
