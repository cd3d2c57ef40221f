package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/persistence/file"
	"github.com/pressline/pressline/pkg/web"
)

// stubRunner completes every run immediately without touching any node.
type stubRunner struct {
	lastNodes []*models.WorkflowNode
}

func (r *stubRunner) Run(_ context.Context, workflowID string, nodes []*models.WorkflowNode, _ map[string]any) (*models.WorkflowExecution, error) {
	r.lastNodes = nodes

	execution := models.NewWorkflowExecution(workflowID)
	execution.MarkCompleted(&models.ExecutionResult{ContextCount: 1})

	return execution, nil
}

func setupTestApp(t *testing.T) (*fiber.App, *file.Persistence, *stubRunner) {
	t.Helper()

	persistence := file.NewPersistence(t.TempDir())
	runner := &stubRunner{}
	validate := validator.New(validator.WithRequiredStructEnabled())

	handlers := web.NewAPIHandlers(persistence, runner, validate)

	app := fiber.New()
	w := app.Group("/workflows")
	w.Get("/", handlers.GetWorkflows)
	w.Post("/", handlers.CreateWorkflow)
	w.Get("/:id", handlers.GetWorkflow)
	w.Delete("/:id", handlers.DeleteWorkflow)
	w.Post("/:id/run", handlers.RunWorkflow)
	w.Get("/:id/executions", handlers.GetWorkflowExecutions)
	app.Get("/executions/:id", handlers.GetExecution)

	return app, persistence, runner
}

func seedWorkflow(t *testing.T, persistence *file.Persistence, status models.WorkflowStatus) *models.Workflow {
	t.Helper()

	workflow := &models.Workflow{
		ID:     "wf-1",
		Name:   "Digest pipeline",
		Status: status,
		Nodes: []*models.WorkflowNode{
			{ID: "start", Type: models.NodeTypeTrigger},
		},
	}
	require.NoError(t, persistence.WorkflowRepository().SaveWorkflow(context.Background(), workflow))

	return workflow
}

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	os.Exit(m.Run())
}

func TestCreateWorkflow(t *testing.T) {
	app, _, _ := setupTestApp(t)

	body, _ := json.Marshal(web.CreateWorkflowRequest{
		Name:  "Test Workflow",
		Owner: "editor",
		Nodes: []*models.WorkflowNode{{ID: "start", Type: models.NodeTypeTrigger}},
	})

	req := httptest.NewRequest(http.MethodPost, "/workflows/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Workflow
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, models.WorkflowStatusDraft, created.Status)
	assert.NotEmpty(t, created.ID)
}

func TestCreateWorkflow_ValidationError(t *testing.T) {
	app, _, _ := setupTestApp(t)

	body, _ := json.Marshal(web.CreateWorkflowRequest{Name: "x"})
	req := httptest.NewRequest(http.MethodPost, "/workflows/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetWorkflow_NotFound(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/workflows/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRunWorkflow(t *testing.T) {
	app, persistence, runner := setupTestApp(t)
	seedWorkflow(t, persistence, models.WorkflowStatusPublished)

	body := []byte(`{"trigger_data": {"requested_by": "editor"}}`)
	req := httptest.NewRequest(http.MethodPost, "/workflows/wf-1/run", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out web.RunWorkflowResponse
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &out))
	require.NotNil(t, out.Execution)
	assert.Equal(t, models.ExecutionStatusCompleted, out.Execution.Status)
	assert.Len(t, runner.lastNodes, 1)
}

func TestRunWorkflow_ArchivedIsConflict(t *testing.T) {
	app, persistence, _ := setupTestApp(t)
	seedWorkflow(t, persistence, models.WorkflowStatusArchived)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/workflows/wf-1/run", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRunWorkflow_UnknownWorkflow(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/workflows/nope/run", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetExecution(t *testing.T) {
	app, persistence, _ := setupTestApp(t)

	execution := models.NewWorkflowExecution("wf-1")
	require.NoError(t, persistence.ExecutionRepository().CreateExecution(context.Background(), execution))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/executions/"+execution.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/executions/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetWorkflowExecutions(t *testing.T) {
	app, persistence, _ := setupTestApp(t)
	seedWorkflow(t, persistence, models.WorkflowStatusPublished)

	execution := models.NewWorkflowExecution("wf-1")
	require.NoError(t, persistence.ExecutionRepository().CreateExecution(context.Background(), execution))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/workflows/wf-1/executions", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		TotalCount int `json:"total_count"`
	}

	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 1, out.TotalCount)
}
