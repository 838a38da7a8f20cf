package assistant

import (
	"careerflow-be/pkg/llm"
)

// Tool names form a closed set. Anything else coming back from the model
// is rejected before it reaches business logic.
const (
	ToolGetJobs           = "get_jobs"
	ToolUpdateJobStatus   = "update_job_status"
	ToolAddJob            = "add_job"
	ToolGetDashboardStats = "get_dashboard_stats"
	ToolCreateCompany     = "create_company"
	ToolUpdateCompany     = "update_company"
	ToolCreateContact     = "create_contact"
	ToolCreateKnowledge   = "create_knowledge"
	ToolGetCompanies      = "get_companies"
	ToolGetContacts       = "get_contacts"
	ToolResearchCompany   = "research_company"
)

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func boolProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "boolean", "description": description}
}

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Definitions returns the fixed tool catalog sent to the model on every turn.
func Definitions() []llm.ToolDefinition {
	return []llm.ToolDefinition{
		{
			Name:        ToolGetJobs,
			Description: "List the user's tracked job applications, optionally filtered by status.",
			Parameters: objectSchema(map[string]interface{}{
				"status": stringProp("Filter by status: pending, applied, interview, offer, rejected or ghosted."),
			}),
		},
		{
			Name:        ToolUpdateJobStatus,
			Description: "Move one job application to a new status.",
			Parameters: objectSchema(map[string]interface{}{
				"job_id":     stringProp("Id of the job to update."),
				"new_status": stringProp("New status: pending, applied, interview, offer, rejected or ghosted."),
			}, "job_id", "new_status"),
		},
		{
			Name:        ToolAddJob,
			Description: "Track a new job application.",
			Parameters: objectSchema(map[string]interface{}{
				"title":    stringProp("Job title."),
				"company":  stringProp("Company name."),
				"location": stringProp("Job location."),
				"status":   stringProp("Initial status, defaults to pending."),
				"notes":    stringProp("Free-form notes."),
			}, "title", "company"),
		},
		{
			Name:        ToolGetDashboardStats,
			Description: "Summarize the user's job search: totals and counts per status.",
			Parameters:  objectSchema(map[string]interface{}{}),
		},
		{
			Name:        ToolCreateCompany,
			Description: "Save a company the user is interested in.",
			Parameters: objectSchema(map[string]interface{}{
				"name":         stringProp("Company name."),
				"about":        stringProp("Short description of the company."),
				"visa_sponsor": boolProp("Whether the company sponsors work visas."),
				"stem_support": boolProp("Whether the company supports STEM OPT."),
			}, "name"),
		},
		{
			Name:        ToolUpdateCompany,
			Description: "Update a saved company's details or research notes.",
			Parameters: objectSchema(map[string]interface{}{
				"company_id":     stringProp("Id of the company to update."),
				"about":          stringProp("Short description of the company."),
				"research":       stringProp("Research notes to store on the company."),
				"user_comments":  stringProp("The user's own comments."),
				"employee_count": stringProp("Approximate employee count."),
				"visa_sponsor":   boolProp("Whether the company sponsors work visas."),
				"stem_support":   boolProp("Whether the company supports STEM OPT."),
			}, "company_id"),
		},
		{
			Name:        ToolCreateContact,
			Description: "Save a networking contact.",
			Parameters: objectSchema(map[string]interface{}{
				"name":    stringProp("Contact name."),
				"email":   stringProp("Contact email."),
				"company": stringProp("Company the contact works at; linked when it matches a saved company."),
				"role":    stringProp("Contact's role or title."),
				"notes":   stringProp("Free-form notes."),
			}, "name"),
		},
		{
			Name:        ToolCreateKnowledge,
			Description: "Save a knowledge note for later reference.",
			Parameters: objectSchema(map[string]interface{}{
				"title":   stringProp("Note title."),
				"content": stringProp("Note body."),
				"tags": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Tags for the note.",
				},
			}, "title", "content"),
		},
		{
			Name:        ToolGetCompanies,
			Description: "List the user's saved companies.",
			Parameters:  objectSchema(map[string]interface{}{}),
		},
		{
			Name:        ToolGetContacts,
			Description: "List the user's saved contacts.",
			Parameters:  objectSchema(map[string]interface{}{}),
		},
		{
			Name:        ToolResearchCompany,
			Description: "Build research links for a company and stamp them on the saved record when one matches.",
			Parameters: objectSchema(map[string]interface{}{
				"company_name":    stringProp("Company to research."),
				"company_website": stringProp("Company website, if known."),
			}, "company_name"),
		},
	}
}
