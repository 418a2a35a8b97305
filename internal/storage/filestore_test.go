package storage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	fs, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, fs.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveValidImage(t *testing.T) {
	fs, err := New(t.TempDir())
	require.NoError(t, err)

	data := bytes.Repeat([]byte{0x89, 0x50, 0x4e, 0x47}, 2560) // ~10 KB
	fh := fileHeader(t, "foto.PNG", "image/png", data)

	name, err := fs.Save(fh)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d+-\d+\.png$`), name)

	stored, err := os.ReadFile(filepath.Join(fs.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	fs, err := New(t.TempDir())
	require.NoError(t, err)

	fh := fileHeader(t, "notas.txt", "text/plain", []byte("hola"))

	_, err = fs.Save(fh)
	assert.ErrorIs(t, err, ErrDisallowedType)

	entries, err := os.ReadDir(fs.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveRejectsMismatchedMIME(t *testing.T) {
	fs, err := New(t.TempDir())
	require.NoError(t, err)

	// A text file renamed to .png still declares a non-image MIME type.
	fh := fileHeader(t, "renombrado.png", "text/plain", []byte("no soy una imagen"))

	_, err = fs.Save(fh)
	assert.ErrorIs(t, err, ErrDisallowedType)
}

func TestSaveRejectsOversizedImage(t *testing.T) {
	fs, err := New(t.TempDir())
	require.NoError(t, err)

	data := bytes.Repeat([]byte{0xff}, 6*1024*1024)
	fh := fileHeader(t, "grande.jpg", "image/jpeg", data)

	_, err = fs.Save(fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	entries, err := os.ReadDir(fs.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveAcceptsMIMEWithParameters(t *testing.T) {
	fs, err := New(t.TempDir())
	require.NoError(t, err)

	fh := fileHeader(t, "foto.webp", "image/webp; charset=binary", []byte{0x52, 0x49, 0x46, 0x46})

	name, err := fs.Save(fh)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`\.webp$`), name)
}

func TestRemove(t *testing.T) {
	fs, err := New(t.TempDir())
	require.NoError(t, err)

	fh := fileHeader(t, "foto.gif", "image/gif", []byte{0x47, 0x49, 0x46})
	name, err := fs.Save(fh)
	require.NoError(t, err)

	require.NoError(t, fs.Remove(name))

	_, err = os.Stat(filepath.Join(fs.Dir(), name))
	assert.True(t, os.IsNotExist(err))
}
