package models

// Upload is a parsed multipart file payload: the original file name
// (used only for its extension) and the file bytes.
type Upload struct {
	Name string
	Data []byte
}
