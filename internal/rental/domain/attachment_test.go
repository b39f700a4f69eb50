package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachmentRoundTrip(t *testing.T) {
	payloads := []struct {
		name string
		data []byte
		mime string
	}{
		{"png bytes", []byte{1, 2, 3}, "image/png"},
		{"empty blob", []byte{}, "application/octet-stream"},
		{"binary with zero bytes", []byte{0, 255, 0, 128}, "image/jpeg"},
		{"unvalidated mime type", []byte("not an image"), "totally/made-up"},
	}

	for _, tc := range payloads {
		t.Run(tc.name, func(t *testing.T) {
			att := EncodeAttachment(tc.data, tc.mime)
			data, mime := att.Decode()
			assert.Equal(t, tc.data, data)
			assert.Equal(t, tc.mime, mime)
		})
	}
}

func TestEncodeAttachmentKeepsBytes(t *testing.T) {
	raw := []byte{10, 20, 30}
	att := EncodeAttachment(raw, "image/png")
	assert.Equal(t, raw, att.Data)
	assert.Equal(t, "image/png", att.ContentType)
}
