package services

import "construction-tracker/backend/models"

// Store keys. One key per collection plus the active session; values are
// JSON arrays of the record type (the session key holds a single object).
const (
	usersKey    = "dw_users_db"
	sessionKey  = "dw_user"
	projectsKey = "dw_projects"
	logsKey     = "dw_logs"
	sopsKey     = "dw_sops"
)

// DefaultUsers is the collection written on first run: two approved
// accounts, one of them the admin.
func DefaultUsers() []models.User {
	return []models.User{
		{
			ID: "1", Name: "Alan Wu", Email: "wu@dwcc.com.tw", Role: models.RoleAdmin,
			Password: "123", Status: models.StatusApproved,
			Title: "System Administrator", Phone: "0912-345-678", StartDate: "2020-01-01",
			Education:  []string{"M.S. Civil Engineering, NCTU", "B.S. Civil Engineering, FCU"},
			Experience: []string{"Project Manager, Derwang Construction (5 yrs)", "Site Director, Chenghua Development (3 yrs)"},
			Licenses:   []string{"Site Director", "Class B Occupational Safety Technician", "Public Works QC Engineer"},
		},
		{
			ID: "2", Name: "Site Engineer", Email: "site@dwcc.com.tw", Role: models.RoleMember,
			Password: "123", Status: models.StatusApproved,
			Title: "Site Director", Phone: "0987-654-321", StartDate: "2023-05-20",
			Education:  []string{"B.S. Civil Engineering, FCU"},
			Experience: []string{"Site Supervisor (2 yrs)"},
			Licenses:   []string{"Public Works QC"},
		},
	}
}

func DefaultProjects() []models.Project {
	return []models.Project{}
}

func DefaultLogs() []models.ConstructionLog {
	return []models.ConstructionLog{
		{ID: "1", Date: "2023-12-20", Weather: "Sunny", ProjectRef: "East Corridor Widening", WorkItems: "Roadbed leveling", Workers: 5},
		{ID: "2", Date: "2023-12-21", Weather: "Cloudy", ProjectRef: "East Corridor Widening", WorkItems: "Asphalt paving", Workers: 8},
	}
}

func DefaultSOPs() []models.SOP {
	return []models.SOP{
		{ID: "1", Title: "Fall Prevention Plan for Work at Height", Category: "Safety & Emergency Response", Version: "V2.1", Date: "2024-01-15", Content: "Applies to all work at heights of 2 meters or more"},
		{ID: "2", Title: "RC Wall Rebar Tying Inspection Standard", Category: "Structural Works", Version: "V1.0", Date: "2023-11-20", Content: "Covers lap lengths and stirrup spacing"},
	}
}

func DefaultAnnouncements() []models.Announcement {
	return []models.Announcement{
		{ID: "1", Date: "2025-11-23", Title: "Bulletin system test notice", Content: "Test announcement used to verify the bulletin board.", Author: "System Administrator"},
	}
}
