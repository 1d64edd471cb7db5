package storage

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13}

func fileHeaderWithType(t *testing.T, declaredType string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="photo.png"`)
	header.Set("Content-Type", declaredType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSniffContentType_IgnoresDeclaredHeader(t *testing.T) {
	// Clients commonly upload with a generic octet-stream header; the payload
	// decides the type, not the header.
	file := fileHeaderWithType(t, "application/octet-stream", pngSignature)
	assert.Equal(t, "application/octet-stream", file.Header.Get("Content-Type"))

	src, err := file.Open()
	require.NoError(t, err)
	defer src.Close()

	contentType, err := sniffContentType(src)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.True(t, typeAllowed(contentType, AllowImage))
}

func TestSniffContentType_RewindsReader(t *testing.T) {
	src := bytes.NewReader(pngSignature)

	contentType, err := sniffContentType(src)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	rest := make([]byte, len(pngSignature))
	n, _ := src.Read(rest)
	assert.Equal(t, len(pngSignature), n, "reader must be rewound for the upload")
}

func TestTypeAllowed(t *testing.T) {
	assert.True(t, typeAllowed("image/png", AllowImage))
	assert.True(t, typeAllowed("image/webp", AllowImage))
	assert.False(t, typeAllowed("text/plain; charset=utf-8", AllowImage))
	assert.False(t, typeAllowed("application/octet-stream", AllowImage))
}
