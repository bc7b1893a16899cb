package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/altos-estudio/altos-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleRedirects(t *testing.T) {
	server := newTestServer(t)

	t.Run("root redirects to the default locale", func(t *testing.T) {
		w := server.serve(httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, "/es", w.Header().Get("Location"))
	})

	t.Run("unprefixed paths keep their path", func(t *testing.T) {
		w := server.serve(httptest.NewRequest(http.MethodGet, "/projects", nil))
		require.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, "/es/projects", w.Header().Get("Location"))
	})

	t.Run("preference cookie wins over the default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		req.AddCookie(&http.Cookie{Name: localeCookieName, Value: "ja"})
		w := server.serve(req)
		require.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, "/ja/projects", w.Header().Get("Location"))
	})

	t.Run("an invalid cookie falls back to the default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: localeCookieName, Value: "fr"})
		w := server.serve(req)
		require.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, "/es", w.Header().Get("Location"))
	})

	t.Run("unknown locale-prefixed paths are not found", func(t *testing.T) {
		w := server.serve(httptest.NewRequest(http.MethodGet, "/es/nonexistent", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = server.serve(httptest.NewRequest(http.MethodGet, "/en/projects/casa/extra", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("an invalid locale segment redirects once, then stops", func(t *testing.T) {
		w := server.serve(httptest.NewRequest(http.MethodGet, "/fr/projects", nil))
		require.Equal(t, http.StatusTemporaryRedirect, w.Code)
		location := w.Header().Get("Location")
		assert.Equal(t, "/es/fr/projects", location)

		// The redirect target carries a valid locale, so it terminates in a
		// 404 instead of prefixing again.
		w = server.serve(httptest.NewRequest(http.MethodGet, location, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("visiting a locale remembers it", func(t *testing.T) {
		w := server.serve(httptest.NewRequest(http.MethodGet, "/en/projects", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var remembered bool
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == localeCookieName && cookie.Value == "en" {
				remembered = true
			}
		}
		assert.True(t, remembered)
	})
}

func TestPublicHome(t *testing.T) {
	server := newTestServer(t)

	project := server.createProject(t, "casa-patio")
	require.NoError(t, server.gorm.Model(&project).Update("popular", true).Error)
	_, err := server.db.FeaturedProjectRepo().Add(project.ID)
	require.NoError(t, err)

	require.NoError(t, server.db.TranslationRepo().Upsert(&models.ProjectTranslation{
		ProjectID:        project.ID,
		Locale:           "en",
		Title:            "Patio House",
		Description:      "A home around a patio",
		ShortDescription: "Around a patio",
	}))

	require.NoError(t, server.gorm.Create(&models.Category{
		Slug: models.TypologyResidential, Name: "Residencial", Enabled: true,
	}).Error)

	home := func(locale string) map[string]json.RawMessage {
		w := server.serve(httptest.NewRequest(http.MethodGet, "/"+locale, nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		return body
	}

	t.Run("serves translated featured projects", func(t *testing.T) {
		body := home("en")

		var featured []struct {
			Project struct {
				Title string `json:"title"`
			} `json:"project"`
		}
		require.NoError(t, json.Unmarshal(body["featuredProjects"], &featured))
		require.Len(t, featured, 1)
		assert.Equal(t, "Patio House", featured[0].Project.Title)

		var locale string
		require.NoError(t, json.Unmarshal(body["locale"], &locale))
		assert.Equal(t, "en", locale)
	})

	t.Run("default locale serves the original text", func(t *testing.T) {
		body := home("es")

		var featured []struct {
			Project struct {
				Title string `json:"title"`
			} `json:"project"`
		}
		require.NoError(t, json.Unmarshal(body["featuredProjects"], &featured))
		require.Len(t, featured, 1)
		assert.Equal(t, project.Title, featured[0].Project.Title)
	})

	t.Run("only used categories appear", func(t *testing.T) {
		require.NoError(t, server.gorm.Create(&models.Category{
			Slug: models.TypologyArt, Name: "Arte", Enabled: true,
		}).Error)

		body := home("pt")

		var categories []models.Category
		require.NoError(t, json.Unmarshal(body["categories"], &categories))
		require.Len(t, categories, 1)
		assert.Equal(t, models.TypologyResidential, categories[0].Slug)
	})

	t.Run("popular projects ride along", func(t *testing.T) {
		body := home("zh")

		var popular []projectView
		require.NoError(t, json.Unmarshal(body["popularProjects"], &popular))
		require.Len(t, popular, 1)
		assert.Equal(t, project.Slug, popular[0].Slug)
	})
}

func TestPublicProjectDetail(t *testing.T) {
	server := newTestServer(t)

	project := server.createProject(t, "galeria-rio")
	require.NoError(t, server.db.TranslationRepo().Upsert(&models.ProjectTranslation{
		ProjectID:        project.ID,
		Locale:           "pt",
		Title:            "Galeria do Rio",
		Description:      "Uma galeria à beira do rio",
		ShortDescription: "Galeria ribeirinha",
	}))

	t.Run("overlays the locale translation", func(t *testing.T) {
		w := server.serve(httptest.NewRequest(http.MethodGet, "/pt/projects/galeria-rio", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Project projectView `json:"project"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "Galeria do Rio", body.Project.Title)
		assert.Equal(t, project.Slug, body.Project.Slug)
	})

	t.Run("locales without a translation fall back", func(t *testing.T) {
		w := server.serve(httptest.NewRequest(http.MethodGet, "/ja/projects/galeria-rio", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Project projectView `json:"project"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, project.Title, body.Project.Title)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		w := server.serve(httptest.NewRequest(http.MethodGet, "/es/projects/no-existe", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPublicProjectsListing(t *testing.T) {
	server := newTestServer(t)

	server.createProject(t, "muestra-1")
	server.createProject(t, "muestra-2")

	w := server.serve(httptest.NewRequest(http.MethodGet, "/es/projects", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Projects []projectView `json:"projects"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body.Projects, 2)
}

func TestStaticPages(t *testing.T) {
	server := newTestServer(t)

	for _, page := range []string{"about", "services", "contact"} {
		w := server.serve(httptest.NewRequest(http.MethodGet, "/en/"+page, nil))
		require.Equal(t, http.StatusOK, w.Code, page)

		var body struct {
			Page     string            `json:"page"`
			Locale   string            `json:"locale"`
			Messages map[string]string `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, page, body.Page)
		assert.Equal(t, "en", body.Locale)
		assert.NotEmpty(t, body.Messages)
	}
}
