package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadServiceSave(t *testing.T) {
	dir := t.TempDir()
	uploads := NewUploadService(dir)

	t.Run("writes the file under a timestamped slug name", func(t *testing.T) {
		url, err := uploads.Save("Plano General.PNG", "image/png", 9, strings.NewReader("png-bytes"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(url, "/uploads/"))
		assert.True(t, strings.HasSuffix(url, "plano-general.png"))

		name := strings.TrimPrefix(url, "/uploads/")
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(content))
	})

	t.Run("rejects disallowed content types", func(t *testing.T) {
		_, err := uploads.Save("nota.pdf", "application/pdf", 4, strings.NewReader("%PDF"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid file type")
	})

	t.Run("rejects files over the size cap", func(t *testing.T) {
		_, err := uploads.Save("enorme.webp", "image/webp", MaxUploadSize+1, strings.NewReader("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "File too large")
	})

	t.Run("accepts every allowed image type", func(t *testing.T) {
		for _, contentType := range []string{"image/png", "image/jpeg", "image/jpg", "image/webp"} {
			_, err := uploads.Save("foto.img", contentType, 3, strings.NewReader("img"))
			assert.NoError(t, err, contentType)
		}
	})
}

func TestContactEmail(t *testing.T) {
	subject, body := ContactEmail(
		"María Pérez", "maria@example.com", "+598 99 123 456", "Residencial",
		"Quisiera una cotización.")

	assert.Equal(t, "Nueva Consulta: Residencial - María Pérez", subject)
	assert.Contains(t, body, "María Pérez")
	assert.Contains(t, body, "maria@example.com")
	assert.Contains(t, body, "+598 99 123 456")
	assert.Contains(t, body, "Quisiera una cotización.")

	t.Run("missing phone renders a placeholder", func(t *testing.T) {
		_, body := ContactEmail("Juan", "juan@example.com", "", "Comercial", "Hola")
		assert.Contains(t, body, "No proporcionado")
	})

	t.Run("html in inputs is escaped", func(t *testing.T) {
		_, body := ContactEmail("<b>x</b>", "a@b.c", "", "Arte", `<script>alert("x")</script>`)
		assert.NotContains(t, body, "<b>x</b>")
		assert.NotContains(t, body, "<script>")
	})
}
