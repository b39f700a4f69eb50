package domain

// Attachment is a stored binary blob plus its declared content type,
// embedded inside a Listing record. The whole blob is held in memory;
// there is no external reference and no streaming.
type Attachment struct {
	Data        []byte `json:"data"`
	ContentType string `json:"contentType"`
}

// EncodeAttachment turns a complete uploaded file and its declared MIME
// type into a storable attachment record. No validation of size or type
// is performed and the bytes are never transformed.
func EncodeAttachment(raw []byte, contentType string) Attachment {
	return Attachment{Data: raw, ContentType: contentType}
}

// Decode is the identity inverse of EncodeAttachment: it yields the
// raw bytes and MIME type exactly as they were uploaded.
func (a Attachment) Decode() ([]byte, string) {
	return a.Data, a.ContentType
}
