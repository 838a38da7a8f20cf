package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"careerflow-be/internal/constant"
	"careerflow-be/internal/entity"
	"careerflow-be/internal/pkg/apperror"
	"careerflow-be/internal/repository/specification"
	"careerflow-be/internal/repository/unitofwork"
	"careerflow-be/pkg/llm"

	"github.com/google/uuid"
)

// Executor maps each tool call onto exactly one data operation. Every
// operation is scoped to the calling user no matter what ids the model
// put in the arguments.
type Executor struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewExecutor(uowFactory unitofwork.RepositoryFactory) *Executor {
	return &Executor{
		uowFactory: uowFactory,
	}
}

// Typed argument structs, one per tool.

type getJobsArgs struct {
	Status string `json:"status"`
}

type updateJobStatusArgs struct {
	JobId     string `json:"job_id"`
	NewStatus string `json:"new_status"`
}

type addJobArgs struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

type createCompanyArgs struct {
	Name        string `json:"name"`
	About       string `json:"about"`
	VisaSponsor *bool  `json:"visa_sponsor"`
	StemSupport *bool  `json:"stem_support"`
}

type updateCompanyArgs struct {
	CompanyId     string  `json:"company_id"`
	About         *string `json:"about"`
	Research      *string `json:"research"`
	UserComments  *string `json:"user_comments"`
	EmployeeCount *string `json:"employee_count"`
	VisaSponsor   *bool   `json:"visa_sponsor"`
	StemSupport   *bool   `json:"stem_support"`
}

type createContactArgs struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Notes   string `json:"notes"`
}

type createKnowledgeArgs struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type researchCompanyArgs struct {
	CompanyName    string `json:"company_name"`
	CompanyWebsite string `json:"company_website"`
}

func decodeArgs(raw string, into interface{}) error {
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		return apperror.InvalidArgument("malformed tool arguments: %v", err)
	}
	return nil
}

// Execute runs one tool call and returns its serialized result. Errors are
// returned for the dispatcher to fold back into the transcript.
func (e *Executor) Execute(ctx context.Context, userId uuid.UUID, call llm.ToolCall) (string, error) {
	switch call.Name {
	case ToolGetJobs:
		var args getJobsArgs
		if err := decodeArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		return e.getJobs(ctx, userId, args)
	case ToolUpdateJobStatus:
		var args updateJobStatusArgs
		if err := decodeArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		return e.updateJobStatus(ctx, userId, args)
	case ToolAddJob:
		var args addJobArgs
		if err := decodeArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		return e.addJob(ctx, userId, args)
	case ToolGetDashboardStats:
		return e.getDashboardStats(ctx, userId)
	case ToolCreateCompany:
		var args createCompanyArgs
		if err := decodeArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		return e.createCompany(ctx, userId, args)
	case ToolUpdateCompany:
		var args updateCompanyArgs
		if err := decodeArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		return e.updateCompany(ctx, userId, args)
	case ToolCreateContact:
		var args createContactArgs
		if err := decodeArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		return e.createContact(ctx, userId, args)
	case ToolCreateKnowledge:
		var args createKnowledgeArgs
		if err := decodeArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		return e.createKnowledge(ctx, userId, args)
	case ToolGetCompanies:
		return e.getCompanies(ctx, userId)
	case ToolGetContacts:
		return e.getContacts(ctx, userId)
	case ToolResearchCompany:
		var args researchCompanyArgs
		if err := decodeArgs(call.Arguments, &args); err != nil {
			return "", err
		}
		return e.researchCompany(ctx, userId, args)
	default:
		return "", apperror.InvalidArgument("unknown tool: %s", call.Name)
	}
}

func marshalResult(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", apperror.ToolExecution("serialize tool result", err)
	}
	return string(b), nil
}

func (e *Executor) getJobs(ctx context.Context, userId uuid.UUID, args getJobsArgs) (string, error) {
	specs := []specification.Specification{specification.OwnedBy{UserID: userId}}
	if args.Status != "" {
		if !constant.IsValidJobStatus(args.Status) {
			return "", apperror.InvalidArgument("invalid status: %s", args.Status)
		}
		specs = append(specs, specification.ByStatus{Status: args.Status})
	}

	uow := e.uowFactory.NewUnitOfWork(ctx)
	jobs, err := uow.JobRepository().FindAll(ctx, specs...)
	if err != nil {
		return "", apperror.ToolExecution("list jobs", err)
	}

	type jobView struct {
		Id      uuid.UUID `json:"id"`
		Title   string    `json:"title"`
		Company string    `json:"company"`
		Status  string    `json:"status"`
	}
	views := make([]jobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, jobView{Id: j.Id, Title: j.Title, Company: j.Company, Status: j.Status})
	}
	return marshalResult(views)
}

func (e *Executor) updateJobStatus(ctx context.Context, userId uuid.UUID, args updateJobStatusArgs) (string, error) {
	if !constant.IsValidJobStatus(args.NewStatus) {
		return "", apperror.InvalidArgument("invalid status: %s", args.NewStatus)
	}
	jobId, err := uuid.Parse(args.JobId)
	if err != nil {
		return "", apperror.InvalidArgument("invalid job_id: %s", args.JobId)
	}

	uow := e.uowFactory.NewUnitOfWork(ctx)
	repo := uow.JobRepository()
	job, err := repo.FindOne(ctx, specification.ByID{ID: jobId}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return "", apperror.ToolExecution("find job", err)
	}
	if job == nil {
		return "", apperror.NotFound("job %s not found", args.JobId)
	}

	previous := job.Status
	job.Status = args.NewStatus
	now := time.Now()
	job.UpdatedAt = &now
	if err := repo.Update(ctx, job); err != nil {
		return "", apperror.ToolExecution("update job status", err)
	}

	return marshalResult(map[string]interface{}{
		"id":              job.Id,
		"previous_status": previous,
		"status":          job.Status,
	})
}

func (e *Executor) addJob(ctx context.Context, userId uuid.UUID, args addJobArgs) (string, error) {
	if args.Title == "" || args.Company == "" {
		return "", apperror.InvalidArgument("title and company are required")
	}
	status := args.Status
	if status == "" {
		status = constant.JobStatusPending
	}
	if !constant.IsValidJobStatus(status) {
		return "", apperror.InvalidArgument("invalid status: %s", status)
	}

	job := &entity.Job{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     args.Title,
		Company:   args.Company,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if args.Location != "" {
		job.Location = &args.Location
	}
	if args.Notes != "" {
		job.Notes = &args.Notes
	}

	uow := e.uowFactory.NewUnitOfWork(ctx)
	if err := uow.JobRepository().Create(ctx, job); err != nil {
		return "", apperror.ToolExecution("create job", err)
	}
	return marshalResult(map[string]interface{}{
		"id":      job.Id,
		"title":   job.Title,
		"company": job.Company,
		"status":  job.Status,
	})
}

func (e *Executor) getDashboardStats(ctx context.Context, userId uuid.UUID) (string, error) {
	uow := e.uowFactory.NewUnitOfWork(ctx)
	repo := uow.JobRepository()

	total, err := repo.Count(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return "", apperror.ToolExecution("count jobs", err)
	}
	byStatus := make(map[string]int64, len(constant.JobStatuses))
	for _, status := range constant.JobStatuses {
		n, err := repo.Count(ctx, specification.OwnedBy{UserID: userId}, specification.ByStatus{Status: status})
		if err != nil {
			return "", apperror.ToolExecution("count jobs by status", err)
		}
		byStatus[status] = n
	}
	return marshalResult(map[string]interface{}{
		"total_jobs": total,
		"by_status":  byStatus,
	})
}

func (e *Executor) createCompany(ctx context.Context, userId uuid.UUID, args createCompanyArgs) (string, error) {
	if args.Name == "" {
		return "", apperror.InvalidArgument("name is required")
	}
	company := &entity.Company{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      args.Name,
		CreatedAt: time.Now(),
	}
	if args.About != "" {
		company.About = &args.About
	}
	if args.VisaSponsor != nil {
		company.VisaSponsor = *args.VisaSponsor
	}
	if args.StemSupport != nil {
		company.StemSupport = *args.StemSupport
	}

	uow := e.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CompanyRepository().Create(ctx, company); err != nil {
		return "", apperror.ToolExecution("create company", err)
	}
	return marshalResult(map[string]interface{}{
		"id":   company.Id,
		"name": company.Name,
	})
}

func (e *Executor) updateCompany(ctx context.Context, userId uuid.UUID, args updateCompanyArgs) (string, error) {
	companyId, err := uuid.Parse(args.CompanyId)
	if err != nil {
		return "", apperror.InvalidArgument("invalid company_id: %s", args.CompanyId)
	}

	uow := e.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CompanyRepository()
	company, err := repo.FindOne(ctx, specification.ByID{ID: companyId}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return "", apperror.ToolExecution("find company", err)
	}
	if company == nil {
		return "", apperror.NotFound("company %s not found", args.CompanyId)
	}

	if args.About != nil {
		company.About = args.About
	}
	if args.Research != nil {
		company.Research = args.Research
	}
	if args.UserComments != nil {
		company.UserComments = args.UserComments
	}
	if args.EmployeeCount != nil {
		company.EmployeeCount = args.EmployeeCount
	}
	if args.VisaSponsor != nil {
		company.VisaSponsor = *args.VisaSponsor
	}
	if args.StemSupport != nil {
		company.StemSupport = *args.StemSupport
	}
	now := time.Now()
	company.UpdatedAt = &now

	if err := repo.Update(ctx, company); err != nil {
		return "", apperror.ToolExecution("update company", err)
	}
	return marshalResult(map[string]interface{}{
		"id":   company.Id,
		"name": company.Name,
	})
}

func (e *Executor) createContact(ctx context.Context, userId uuid.UUID, args createContactArgs) (string, error) {
	if args.Name == "" {
		return "", apperror.InvalidArgument("name is required")
	}

	uow := e.uowFactory.NewUnitOfWork(ctx)
	contact := &entity.Contact{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      args.Name,
		CreatedAt: time.Now(),
	}
	if args.Email != "" {
		contact.Email = &args.Email
	}
	if args.Role != "" {
		contact.Role = &args.Role
	}
	if args.Notes != "" {
		contact.Notes = &args.Notes
	}

	// Link to a saved company when the name matches one.
	if args.Company != "" {
		company, err := uow.CompanyRepository().FindOne(ctx,
			specification.OwnedBy{UserID: userId},
			specification.Filter("name", args.Company),
		)
		if err != nil {
			return "", apperror.ToolExecution("find company", err)
		}
		if company != nil {
			contact.CompanyId = &company.Id
		}
	}

	if err := uow.ContactRepository().Create(ctx, contact); err != nil {
		return "", apperror.ToolExecution("create contact", err)
	}
	return marshalResult(map[string]interface{}{
		"id":   contact.Id,
		"name": contact.Name,
	})
}

func (e *Executor) createKnowledge(ctx context.Context, userId uuid.UUID, args createKnowledgeArgs) (string, error) {
	if args.Title == "" || args.Content == "" {
		return "", apperror.InvalidArgument("title and content are required")
	}
	knowledge := &entity.Knowledge{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     args.Title,
		Content:   args.Content,
		Tags:      args.Tags,
		CreatedAt: time.Now(),
	}

	uow := e.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KnowledgeRepository().Create(ctx, knowledge); err != nil {
		return "", apperror.ToolExecution("create knowledge", err)
	}
	return marshalResult(map[string]interface{}{
		"id":    knowledge.Id,
		"title": knowledge.Title,
	})
}

func (e *Executor) getCompanies(ctx context.Context, userId uuid.UUID) (string, error) {
	uow := e.uowFactory.NewUnitOfWork(ctx)
	companies, err := uow.CompanyRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return "", apperror.ToolExecution("list companies", err)
	}

	type companyView struct {
		Id          uuid.UUID `json:"id"`
		Name        string    `json:"name"`
		VisaSponsor bool      `json:"visa_sponsor"`
		StemSupport bool      `json:"stem_support"`
	}
	views := make([]companyView, 0, len(companies))
	for _, c := range companies {
		views = append(views, companyView{Id: c.Id, Name: c.Name, VisaSponsor: c.VisaSponsor, StemSupport: c.StemSupport})
	}
	return marshalResult(views)
}

func (e *Executor) getContacts(ctx context.Context, userId uuid.UUID) (string, error) {
	uow := e.uowFactory.NewUnitOfWork(ctx)
	contacts, err := uow.ContactRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return "", apperror.ToolExecution("list contacts", err)
	}

	type contactView struct {
		Id    uuid.UUID `json:"id"`
		Name  string    `json:"name"`
		Email *string   `json:"email,omitempty"`
		Role  *string   `json:"role,omitempty"`
	}
	views := make([]contactView, 0, len(contacts))
	for _, c := range contacts {
		views = append(views, contactView{Id: c.Id, Name: c.Name, Email: c.Email, Role: c.Role})
	}
	return marshalResult(views)
}

func (e *Executor) researchCompany(ctx context.Context, userId uuid.UUID, args researchCompanyArgs) (string, error) {
	if args.CompanyName == "" {
		return "", apperror.InvalidArgument("company_name is required")
	}

	q := url.QueryEscape(args.CompanyName)
	links := map[string]string{
		"google":    fmt.Sprintf("https://www.google.com/search?q=%s", q),
		"linkedin":  fmt.Sprintf("https://www.linkedin.com/search/results/companies/?keywords=%s", q),
		"glassdoor": fmt.Sprintf("https://www.glassdoor.com/Search/results.htm?keyword=%s", q),
		"levels":    fmt.Sprintf("https://www.levels.fyi/?search=%s", q),
	}
	if args.CompanyWebsite != "" {
		links["website"] = args.CompanyWebsite
	}

	// Stamp the research links on the saved record when one matches.
	uow := e.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CompanyRepository()
	company, err := repo.FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.Filter("name", args.CompanyName),
	)
	if err != nil {
		return "", apperror.ToolExecution("find company", err)
	}
	stamped := false
	if company != nil {
		var sb strings.Builder
		for label, link := range links {
			sb.WriteString(label)
			sb.WriteString(": ")
			sb.WriteString(link)
			sb.WriteString("\n")
		}
		research := sb.String()
		company.Research = &research
		now := time.Now()
		company.UpdatedAt = &now
		if err := repo.Update(ctx, company); err != nil {
			return "", apperror.ToolExecution("stamp company research", err)
		}
		stamped = true
	}

	return marshalResult(map[string]interface{}{
		"company": args.CompanyName,
		"links":   links,
		"stamped": stamped,
	})
}
