package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/altos-estudio/altos-backend/cache"
	"github.com/altos-estudio/altos-backend/database"
	"github.com/altos-estudio/altos-backend/models"
	"github.com/altos-estudio/altos-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sentEmail records one Send call on the stub mailer.
type sentEmail struct {
	Subject    string
	HTML       string
	Recipients []string
}

type stubMailer struct {
	sent []sentEmail
	err  error
}

func (m *stubMailer) Send(subject, html string, recipients []string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentEmail{Subject: subject, HTML: html, Recipients: recipients})
	return nil
}

// testServer wires the full router against an in-memory database, a stub
// mailer and a temp upload dir, so tests exercise the same middleware chain
// as production.
type testServer struct {
	router   *chi.Mux
	db       database.Database
	gorm     *gorm.DB
	mailer   *stubMailer
	sessions sessionMiddleware
	cache    *cache.Cache
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(gormDB))

	db := database.New(gormDB)
	mailer := &stubMailer{}
	sessions := newSessionMiddleware("test-secret")
	uploads := services.NewUploadService(t.TempDir())
	renderCache := cache.New()

	handlers := initializeHandlers(db, mailer, uploads, renderCache, sessions)

	router := chi.NewRouter()
	setupRoutes(router, handlers, sessions)

	return &testServer{
		router:   router,
		db:       db,
		gorm:     gormDB,
		mailer:   mailer,
		sessions: sessions,
		cache:    renderCache,
	}
}

func (s *testServer) serve(r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, r)
	return w
}

// createAdmin stores an admin user with the given password hashed.
func (s *testServer) createAdmin(t *testing.T, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:    email,
		Name:     "Admin",
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	require.NoError(t, s.db.UserRepo().Add(&user))
	return &user
}

// sessionCookie mints a valid session cookie for the user without going
// through the login handler.
func (s *testServer) sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, s.sessions.issue(rec, user))

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie was not set")
	return nil
}

// createProject inserts a minimal valid project directly.
func (s *testServer) createProject(t *testing.T, slug string) models.Project {
	t.Helper()

	project := models.Project{
		Slug:             slug,
		Title:            "Title " + slug,
		Location:         "Montevideo",
		Year:             "2024",
		Status:           models.StatusCompleted,
		Typology:         models.TypologyResidential,
		Description:      "Description " + slug,
		ShortDescription: "Short " + slug,
		Images:           `["/uploads/a.webp"]`,
		FeaturedImage:    "/uploads/a.webp",
	}
	require.NoError(t, s.gorm.Create(&project).Error)
	return project
}
