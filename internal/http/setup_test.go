package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/database"
	auditRepo "github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/database/authors"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/categories"
	"github.com/mrlokans/library/internal/services"
)

// testLibrary is a router over real services backed by a temp SQLite file.
type testLibrary struct {
	db         *database.Database
	router     *gin.Engine
	audit      *audit.Service
	authors    *services.AuthorService
	books      *services.BookService
	categories *services.CategoryService
}

func setupLibrary(t *testing.T) *testLibrary {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "library.db"), logger.Silent)
	require.NoError(t, err)

	auditService := audit.NewService(auditRepo.NewRepository(db.DB))
	lib := &testLibrary{
		db:         db,
		audit:      auditService,
		authors:    services.NewAuthorService(authors.NewRepository(db.DB), auditService),
		books:      services.NewBookService(books.NewRepository(db.DB), auditService),
		categories: services.NewCategoryService(categories.NewRepository(db.DB), auditService),
	}
	lib.router = NewRouter(RouterConfig{
		Authors:    lib.authors,
		Books:      lib.books,
		Categories: lib.categories,
		Database:   db,
		AuditLog:   auditService,
		Version:    "test",
	})

	t.Cleanup(func() {
		auditService.Wait()
		db.Close()
	})
	return lib
}

func (l *testLibrary) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	l.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
