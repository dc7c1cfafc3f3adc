package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"autocare_api/internal/adapter/http/handlers"
	"autocare_api/internal/adapter/http/handlers/mocks"
	"autocare_api/internal/adapter/http/middleware"
	"autocare_api/internal/domain/entities"
	"autocare_api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIJobUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	jobs := mocks.NewMockIJobUseCase(ctrl)
	router := NewRouter(config.Config{CORSAllowedOrigins: []string{"https://app.autocare.dev"}}, Handlers{
		Jobs:     handlers.NewJobHandler(jobs),
		Orders:   handlers.NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl)),
		Payments: handlers.NewPaymentHandler(mocks.NewMockIBillPaymentUseCase(ctrl)),
	})
	return router, jobs
}

func request(router *gin.Engine, method, path string, actor entities.Actor) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if actor.ID != "" {
		req.Header.Set(middleware.HeaderActorID, actor.ID)
		req.Header.Set(middleware.HeaderActorRole, string(actor.Role))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	customer := entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}
	technician := entities.Actor{ID: "tech-1", Role: entities.RoleTechnician}

	t.Run("ping is public", func(t *testing.T) {
		router, _ := newTestRouter(t)
		if w := request(router, http.MethodGet, "/v1/ping", entities.Actor{}); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("jobs require authentication", func(t *testing.T) {
		router, _ := newTestRouter(t)
		if w := request(router, http.MethodGet, "/v1/jobs", entities.Actor{}); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("technicians cannot create jobs", func(t *testing.T) {
		router, _ := newTestRouter(t)
		if w := request(router, http.MethodPost, "/v1/jobs", technician); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("status override is admin only", func(t *testing.T) {
		router, _ := newTestRouter(t)
		if w := request(router, http.MethodPatch, "/v1/jobs/job-1/status", customer); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("job reads reach the handler", func(t *testing.T) {
		router, jobs := newTestRouter(t)
		jobs.EXPECT().GetByID(gomock.Any(), customer, "job-1").Return(entities.Job{ID: "job-1", CustomerID: customer.ID, Status: entities.JobStatusPending}, nil)

		if w := request(router, http.MethodGet, "/v1/jobs/job-1", customer); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodOptions, "/v1/jobs", nil)
		req.Header.Set("Origin", "https://app.autocare.dev")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.autocare.dev" {
			t.Fatalf("unexpected allow origin %q", got)
		}
	})
}
