package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autocare_api/internal/adapter/http/handlers/mocks"
	"autocare_api/internal/adapter/http/middleware"
	"autocare_api/internal/domain/entities"
	"autocare_api/internal/domain/lifecycle"
	"autocare_api/internal/infrastructure/config"
	"autocare_api/internal/usecase"
	"autocare_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var (
	customer   = entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}
	technician = entities.Actor{ID: "tech-1", Role: entities.RoleTechnician}
	supplier   = entities.Actor{ID: "sup-1", Role: entities.RoleSupplier}
)

// newRouter authenticates through the local-mode actor headers.
func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Authenticate(config.Auth{}))
	return r
}

func serve(r *gin.Engine, method, path, body string, actor entities.Actor) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor.ID != "" {
		req.Header.Set(middleware.HeaderActorID, actor.ID)
		req.Header.Set(middleware.HeaderActorRole, string(actor.Role))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func fixtureJob(status entities.JobStatus) entities.Job {
	now := time.Now().UTC()
	return entities.Job{
		ID:          "job-1",
		CustomerID:  customer.ID,
		VehicleID:   "veh-1",
		Description: "brakes squeal",
		Status:      status,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestJobHandler_CreateJob(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl))

		r := newRouter()
		r.POST("/v1/jobs", h.CreateJob)

		w := serve(r, http.MethodPost, "/v1/jobs", `{"vehicle_id":"veh-1","description":"x"}`, entities.Actor{})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("no actor in context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl))

		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		w := serve(r, http.MethodPost, "/v1/jobs", `{"vehicle_id":"veh-1","description":"x"}`, customer)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl))

		r := newRouter()
		r.POST("/v1/jobs", h.CreateJob)

		w := serve(r, http.MethodPost, "/v1/jobs", `{`, customer)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().CreateJob(gomock.Any(), customer, gomock.Any()).
			Return(entities.Job{}, &lifecycle.ValidationError{Field: "description", Reason: "is required"})

		w := serve(r, http.MethodPost, "/v1/jobs", `{"vehicle_id":"veh-1","description":" "}`, customer)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "VALIDATION_FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().CreateJob(gomock.Any(), customer, lifecycle.CreateJob{VehicleID: "veh-1", Description: "brakes squeal"}).
			Return(fixtureJob(entities.JobStatusPending), nil)

		w := serve(r, http.MethodPost, "/v1/jobs", `{"vehicle_id":"veh-1","description":"brakes squeal"}`, customer)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "job-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_Reads(t *testing.T) {
	t.Run("list passes the query as filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.GET("/v1/jobs", h.ListJobs)

		uc.EXPECT().List(gomock.Any(), technician, interfaces.JobFilter{Status: entities.JobStatusPending, Limit: 10}).
			Return([]entities.Job{fixtureJob(entities.JobStatusPending)}, nil)

		w := serve(r, http.MethodGet, "/v1/jobs?status=PENDING&limit=10", "", technician)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list with bad limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl))

		r := newRouter()
		r.GET("/v1/jobs", h.ListJobs)

		w := serve(r, http.MethodGet, "/v1/jobs?limit=ten", "", technician)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	for _, tc := range []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: usecase.ErrJobNotFound, want: http.StatusNotFound},
		{name: "not visible", err: usecase.ErrNotVisible, want: http.StatusForbidden},
		{name: "invalid id", err: usecase.ErrInvalidJobID, want: http.StatusBadRequest},
	} {
		t.Run("get "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIJobUseCase(ctrl)
			h := NewJobHandler(uc)

			r := newRouter()
			r.GET("/v1/jobs/:id", h.GetJob)

			uc.EXPECT().GetByID(gomock.Any(), customer, "job-1").Return(entities.Job{}, tc.err)

			w := serve(r, http.MethodGet, "/v1/jobs/job-1", "", customer)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("history reports a broken chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.GET("/v1/jobs/:id/history", h.History)

		entries := []entities.StatusChange{{Seq: 1, Command: "create", To: entities.JobStatusPending}}
		uc.EXPECT().History(gomock.Any(), customer, "job-1").Return(entries, fmt.Errorf("%w: entry 1", usecase.ErrHistoryTampered))

		w := serve(r, http.MethodGet, "/v1/jobs/job-1/history", "", customer)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["intact"] != false || len(body["entries"].([]any)) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("history intact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.GET("/v1/jobs/:id/history", h.History)

		uc.EXPECT().History(gomock.Any(), customer, "job-1").Return(nil, nil)

		w := serve(r, http.MethodGet, "/v1/jobs/job-1/history", "", customer)
		if w.Code != http.StatusOK || decodeBody(t, w)["intact"] != true {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestJobHandler_Commands(t *testing.T) {
	t.Run("accept without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.PATCH("/v1/jobs/:id/accept", h.Accept)

		job := fixtureJob(entities.JobStatusAccepted)
		job.TechnicianID = technician.ID
		uc.EXPECT().Accept(gomock.Any(), technician, "job-1", lifecycle.AcceptJob{}).Return(job, nil)

		w := serve(r, http.MethodPatch, "/v1/jobs/job-1/accept", "", technician)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["technician_id"] != technician.ID {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("accept already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.PATCH("/v1/jobs/:id/accept", h.Accept)

		uc.EXPECT().Accept(gomock.Any(), technician, "job-1", lifecycle.AcceptJob{GarageName: "Fast Fix"}).
			Return(entities.Job{}, &lifecycle.TransitionError{Command: "accept", From: "accepted"})

		w := serve(r, http.MethodPatch, "/v1/jobs/job-1/accept", `{"garage_name":"Fast Fix"}`, technician)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_TRANSITION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("concurrent update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.PATCH("/v1/jobs/:id/arrive", h.Arrive)

		uc.EXPECT().Arrive(gomock.Any(), technician, "job-1").Return(entities.Job{}, interfaces.ErrConcurrentUpdate)

		w := serve(r, http.MethodPatch, "/v1/jobs/job-1/arrive", "", technician)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("send quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.POST("/v1/jobs/:id/quote", h.SendQuote)

		uc.EXPECT().SendQuote(gomock.Any(), technician, "job-1", gomock.AssignableToTypeOf(lifecycle.SendQuote{})).DoAndReturn(
			func(_ context.Context, _ entities.Actor, _ string, cmd lifecycle.SendQuote) (entities.Job, error) {
				if len(cmd.Items) != 1 || cmd.Items[0].Name != "pads" || cmd.Labor != 120 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return fixtureJob(entities.JobStatusQuotePending), nil
			},
		)

		w := serve(r, http.MethodPost, "/v1/jobs/job-1/quote", `{"items":[{"name":"pads","quantity":2,"unit_price":40}],"labor_amount":120}`, technician)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("respond quote with unknown decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl))

		r := newRouter()
		r.PATCH("/v1/jobs/:id/quote/response", h.RespondQuote)

		w := serve(r, http.MethodPatch, "/v1/jobs/job-1/quote/response", `{"response":"maybe"}`, customer)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("part request returns job and order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.POST("/v1/jobs/:id/parts-request", h.SubmitPartRequest)

		order := entities.Order{ID: "ord-1", JobID: "job-1", SupplierID: "sup-1", Type: entities.OrderTypeWholesale, Status: entities.OrderStatusPending}
		uc.EXPECT().SubmitPartRequest(gomock.Any(), technician, "job-1", gomock.AssignableToTypeOf(lifecycle.SubmitPartRequest{})).
			Return(fixtureJob(entities.JobStatusPartsOrdered), order, nil)

		w := serve(r, http.MethodPost, "/v1/jobs/job-1/parts-request", `{"supplier_id":"sup-1","items":[{"name":"pads","quantity":1,"unit_price":40}],"urgency":"urgent"}`, technician)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["job"].(map[string]any)["status"] != "parts_ordered" || body["order"].(map[string]any)["id"] != "ord-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("online bill approval forwards the payment payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.PATCH("/v1/jobs/:id/bill/response", h.RespondBill)

		want := lifecycle.RespondBill{Decision: lifecycle.DecisionApprove, PaymentMethod: entities.PaymentMethodOnline}
		uc.EXPECT().RespondBill(gomock.Any(), customer, "job-1", want, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Actor, _ string, _ lifecycle.RespondBill, payload json.RawMessage) (entities.Job, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return fixtureJob(entities.JobStatusCompleted), nil
			},
		)

		w := serve(r, http.MethodPatch, "/v1/jobs/job-1/bill/response", `{"response":"approve","payment_method":"online","mp_payload":{"payment_method_id":"pix"}}`, customer)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("declined charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.PATCH("/v1/jobs/:id/bill/response", h.RespondBill)

		uc.EXPECT().RespondBill(gomock.Any(), customer, "job-1", gomock.Any(), gomock.Any()).Return(entities.Job{}, usecase.ErrPaymentNotApproved)

		w := serve(r, http.MethodPatch, "/v1/jobs/job-1/bill/response", `{"response":"approve","payment_method":"online","payment_payload":{}}`, customer)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("bill response requires a decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl))

		r := newRouter()
		r.PATCH("/v1/jobs/:id/bill/response", h.RespondBill)

		w := serve(r, http.MethodPatch, "/v1/jobs/job-1/bill/response", `{"payment_method":"cash"}`, customer)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cancel with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.PATCH("/v1/jobs/:id/cancel", h.Cancel)

		uc.EXPECT().Cancel(gomock.Any(), customer, "job-1", "found another garage").Return(fixtureJob(entities.JobStatusCancelled), nil)

		w := serve(r, http.MethodPatch, "/v1/jobs/job-1/cancel", `{"reason":"found another garage"}`, customer)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status update normalizes the target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.PATCH("/v1/jobs/:id/status", h.UpdateStatus)

		admin := entities.Actor{ID: "adm-1", Role: entities.RoleAdmin}
		uc.EXPECT().UpdateStatus(gomock.Any(), admin, "job-1", entities.JobStatusInProgress).Return(fixtureJob(entities.JobStatusInProgress), nil)

		w := serve(r, http.MethodPatch, "/v1/jobs/job-1/status", `{"status":" In_Progress "}`, admin)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cash collected forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.PATCH("/v1/jobs/:id/bill/cash-collected", h.ConfirmCashPayment)

		uc.EXPECT().ConfirmCashPayment(gomock.Any(), customer, "job-1").Return(entities.Job{}, fmt.Errorf("%w: confirm_cash: not the assigned technician", lifecycle.ErrForbidden))

		w := serve(r, http.MethodPatch, "/v1/jobs/job-1/bill/cash-collected", "", customer)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func multipartBody(t *testing.T, kind, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	if kind != "" {
		if err := mw.WriteField("kind", kind); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = io.WriteString(fw, content)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestJobHandler_AddAttachment(t *testing.T) {
	send := func(r *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/attachments", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(middleware.HeaderActorID, customer.ID)
		req.Header.Set(middleware.HeaderActorRole, string(customer.Role))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.POST("/v1/jobs/:id/attachments", h.AddAttachment)

		uc.EXPECT().AddAttachment(gomock.Any(), customer, "job-1", gomock.AssignableToTypeOf(usecase.Attachment{})).DoAndReturn(
			func(_ context.Context, _ entities.Actor, _ string, file usecase.Attachment) (entities.Job, error) {
				data, _ := io.ReadAll(file.Body)
				if file.Kind != lifecycle.AttachmentPhoto || file.FileName != "dent.jpg" || file.Size != 5 || string(data) != "image" {
					t.Fatalf("unexpected attachment: %+v %q", file, data)
				}
				job := fixtureJob(entities.JobStatusPending)
				job.Photos = []string{"http://media/jobs/job-1/photo/x.jpg"}
				return job, nil
			},
		)

		body, contentType := multipartBody(t, "Photo", "dent.jpg", "image")
		w := send(r, body, contentType)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "x.jpg") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl))

		r := newRouter()
		r.POST("/v1/jobs/:id/attachments", h.AddAttachment)

		body, contentType := multipartBody(t, "photo", "", "")
		if w := send(r, body, contentType); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewJobHandler(mocks.NewMockIJobUseCase(ctrl))

		r := newRouter()
		r.POST("/v1/jobs/:id/attachments", h.AddAttachment)

		body, contentType := multipartBody(t, "video", "clip.mp4", "data")
		if w := send(r, body, contentType); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("storage not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := newRouter()
		r.POST("/v1/jobs/:id/attachments", h.AddAttachment)

		uc.EXPECT().AddAttachment(gomock.Any(), customer, "job-1", gomock.Any()).Return(entities.Job{}, usecase.ErrMediaStorageNotConfigured)

		body, contentType := multipartBody(t, "voice_note", "note.ogg", "audio")
		if w := send(r, body, contentType); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
