package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"careerflow-be/internal/model"
	"careerflow-be/internal/pkg/apperror"
	"careerflow-be/internal/repository/unitofwork"
	"careerflow-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestExecutor(t *testing.T) *Executor {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Job{},
		&model.Company{},
		&model.Contact{},
		&model.Knowledge{},
	)
	require.NoError(t, err)

	return NewExecutor(unitofwork.NewRepositoryFactory(db))
}

func execute(t *testing.T, e *Executor, userId uuid.UUID, name, args string) string {
	t.Helper()
	out, err := e.Execute(context.Background(), userId, llm.ToolCall{Id: "call_0", Name: name, Arguments: args})
	require.NoError(t, err)
	return out
}

func TestExecutorUnknownTool(t *testing.T) {
	e := newTestExecutor(t)

	_, err := e.Execute(context.Background(), uuid.New(), llm.ToolCall{Name: "drop_tables"})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestExecutorMalformedArguments(t *testing.T) {
	e := newTestExecutor(t)

	_, err := e.Execute(context.Background(), uuid.New(), llm.ToolCall{
		Name:      ToolAddJob,
		Arguments: `{"title": `,
	})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestExecutorJobTools(t *testing.T) {
	e := newTestExecutor(t)
	userId := uuid.New()

	out := execute(t, e, userId, ToolAddJob, `{"title":"Backend Engineer","company":"Acme","location":"Remote"}`)
	var added struct {
		Id     uuid.UUID `json:"id"`
		Status string    `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &added))
	assert.Equal(t, "pending", added.Status)

	t.Run("get_jobs sees the new job", func(t *testing.T) {
		out := execute(t, e, userId, ToolGetJobs, `{}`)
		var jobs []struct {
			Id    uuid.UUID `json:"id"`
			Title string    `json:"title"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &jobs))
		require.Len(t, jobs, 1)
		assert.Equal(t, "Backend Engineer", jobs[0].Title)
	})

	t.Run("update_job_status moves it", func(t *testing.T) {
		out := execute(t, e, userId, ToolUpdateJobStatus,
			fmt.Sprintf(`{"job_id":%q,"new_status":"applied"}`, added.Id))
		var res struct {
			PreviousStatus string `json:"previous_status"`
			Status         string `json:"status"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, "pending", res.PreviousStatus)
		assert.Equal(t, "applied", res.Status)
	})

	t.Run("update_job_status rejects unknown statuses", func(t *testing.T) {
		_, err := e.Execute(context.Background(), userId, llm.ToolCall{
			Name:      ToolUpdateJobStatus,
			Arguments: fmt.Sprintf(`{"job_id":%q,"new_status":"archived"}`, added.Id),
		})
		assert.True(t, apperror.IsInvalidArgument(err))
	})

	t.Run("jobs are invisible to other users", func(t *testing.T) {
		out := execute(t, e, uuid.New(), ToolGetJobs, `{}`)
		assert.Equal(t, "[]", out)

		_, err := e.Execute(context.Background(), uuid.New(), llm.ToolCall{
			Name:      ToolUpdateJobStatus,
			Arguments: fmt.Sprintf(`{"job_id":%q,"new_status":"applied"}`, added.Id),
		})
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("dashboard stats reflect the data", func(t *testing.T) {
		out := execute(t, e, userId, ToolGetDashboardStats, `{}`)
		var stats struct {
			TotalJobs int64            `json:"total_jobs"`
			ByStatus  map[string]int64 `json:"by_status"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &stats))
		assert.Equal(t, int64(1), stats.TotalJobs)
		assert.Equal(t, int64(1), stats.ByStatus["applied"])
	})
}

func TestExecutorCompanyAndContactTools(t *testing.T) {
	e := newTestExecutor(t)
	userId := uuid.New()

	out := execute(t, e, userId, ToolCreateCompany, `{"name":"Acme","about":"rockets","visa_sponsor":true}`)
	var company struct {
		Id uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &company))

	t.Run("contact links to the matching company", func(t *testing.T) {
		out := execute(t, e, userId, ToolCreateContact, `{"name":"Jordan","email":"jordan@acme.com","company":"Acme"}`)
		var contact struct {
			Id uuid.UUID `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &contact))

		listed := execute(t, e, userId, ToolGetContacts, `{}`)
		assert.Contains(t, listed, "Jordan")
	})

	t.Run("update_company patches fields", func(t *testing.T) {
		execute(t, e, userId, ToolUpdateCompany,
			fmt.Sprintf(`{"company_id":%q,"employee_count":"500-1000"}`, company.Id))

		listed := execute(t, e, userId, ToolGetCompanies, `{}`)
		assert.Contains(t, listed, "Acme")
	})

	t.Run("research_company returns links and stamps the record", func(t *testing.T) {
		out := execute(t, e, userId, ToolResearchCompany, `{"company_name":"Acme"}`)
		assert.Contains(t, out, "glassdoor.com")
		assert.Contains(t, out, "linkedin.com")
		assert.Contains(t, out, "levels.fyi")
	})

	t.Run("research works without a saved company", func(t *testing.T) {
		out := execute(t, e, userId, ToolResearchCompany, `{"company_name":"Unknown Startup"}`)
		assert.Contains(t, out, "Unknown+Startup")
	})
}

func TestExecutorCreateKnowledge(t *testing.T) {
	e := newTestExecutor(t)
	userId := uuid.New()

	t.Run("requires title and content", func(t *testing.T) {
		_, err := e.Execute(context.Background(), userId, llm.ToolCall{
			Name:      ToolCreateKnowledge,
			Arguments: `{"title":"Notes"}`,
		})
		assert.True(t, apperror.IsInvalidArgument(err))
	})

	t.Run("creates an entry", func(t *testing.T) {
		out := execute(t, e, userId, ToolCreateKnowledge,
			`{"title":"System design","content":"always ask about scale","tags":["interview"]}`)
		assert.Contains(t, out, "System design")
	})
}
