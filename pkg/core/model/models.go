package model

// Role identifies which kind of principal is signed in
type Role string

const (
	RoleVolunteer    Role = "volunteer"
	RoleAdmin        Role = "admin"
	RoleOrganization Role = "organization"
)

func (r Role) IsValid() bool {
	return r == RoleVolunteer || r == RoleAdmin || r == RoleOrganization
}

// Status is the review lifecycle state of a volunteer or organization
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusSuspended Status = "suspended"
)

// Location is a latitude/longitude pair
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PersonalInfo is the first section of a volunteer profile
type PersonalInfo struct {
	Fullname string `json:"fullname"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Photo    string `json:"photo,omitempty"`
}

// ContactInfo is the second section of a volunteer profile
type ContactInfo struct {
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
	Address  string    `json:"address"`
	Location *Location `json:"location,omitempty"`
}

// Certifications are the training flags collected in the skills step
type Certifications struct {
	CPRTrained      bool `json:"cprTrained"`
	FirstAidTrained bool `json:"firstAidTrained"`
}

// Skills is the third section of a volunteer profile
type Skills struct {
	Certifications Certifications `json:"certifications"`
	SkillsList     []string       `json:"skillsList"`
	Availability   []string       `json:"availability"`
}

// Documents is the final section of a volunteer profile
type Documents struct {
	IDDocument             string `json:"idDocument,omitempty"`
	TermsAccepted          bool   `json:"termsAccepted"`
	BackgroundCheckConsent bool   `json:"backgroundCheckConsent"`
}

// Emergency holds a volunteer's emergency-response availability
type Emergency struct {
	IsAvailable    bool   `json:"isAvailable"`
	ResponseTime   string `json:"responseTime,omitempty"`
	TotalResponses int    `json:"totalResponses"`
	LastActive     string `json:"lastActive,omitempty"`
}

// Identity is the authenticated principal held by the session store.
// A single role-tagged shape covers all three variants; the volunteer
// sections are nil for admins and organizations.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`

	// Volunteer-only fields
	OnboardingComplete bool          `json:"onboardingComplete,omitempty"`
	ProfileCompletion  int           `json:"profileCompletion,omitempty"`
	Status             Status        `json:"status,omitempty"`
	PersonalInfo       *PersonalInfo `json:"personalInfo,omitempty"`
	ContactInfo        *ContactInfo  `json:"contactInfo,omitempty"`
	Skills             *Skills       `json:"skills,omitempty"`
	Documents          *Documents    `json:"documents,omitempty"`
	Emergency          *Emergency    `json:"emergency,omitempty"`
}

// IsVolunteer reports whether the identity is a volunteer principal
func (i *Identity) IsVolunteer() bool {
	return i != nil && i.Role == RoleVolunteer
}

// Organization is the organization principal's full record
type Organization struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Description string  `json:"description,omitempty"`
	Website     string  `json:"website,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Status      Status  `json:"status,omitempty"`
	Address     Address `json:"address,omitempty"`
}

// Address is an organization's postal address
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// VolunteerSummary is the admin console's listing row for a volunteer
type VolunteerSummary struct {
	ID                 string   `json:"_id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone,omitempty"`
	Status             Status   `json:"status"`
	Location           string   `json:"location,omitempty"`
	Skills             []string `json:"skills,omitempty"`
	JoinDate           string   `json:"joinDate,omitempty"`
	LastActive         string   `json:"lastActive,omitempty"`
	EmergencyAvailable bool     `json:"emergencyAvailable"`
	ResponseCount      int      `json:"responseCount"`
}

// DashboardStats is the admin console's headline numbers
type DashboardStats struct {
	Total          int    `json:"total"`
	Pending        int    `json:"pending"`
	Approved       int    `json:"approved"`
	Active         int    `json:"active"`
	ResponseTime   string `json:"responseTime,omitempty"`
	TodayResponses int    `json:"todayResponses"`
}

// Alert is an emergency alert visible on the volunteer dashboard
type Alert struct {
	ID        string        `json:"_id"`
	Type      string        `json:"type"`
	Priority  string        `json:"priority"`
	Status    string        `json:"status"`
	Location  AlertLocation `json:"location"`
	CreatedAt string        `json:"createdAt"`
}

// AlertLocation is where an alert was raised
type AlertLocation struct {
	Address     string    `json:"address"`
	Coordinates *Location `json:"coordinates,omitempty"`
}

// VolunteerDashboard is the payload backing the volunteer dashboard view
type VolunteerDashboard struct {
	Volunteer    Identity `json:"volunteer"`
	RecentAlerts []Alert  `json:"recentAlerts"`
	Stats        struct {
		TotalResponses    int    `json:"totalResponses"`
		ResponseTime      string `json:"responseTime"`
		ProfileCompletion int    `json:"profileCompletion"`
	} `json:"stats"`
}

// Program is a volunteering program run by an organization
type Program struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description,omitempty"`
	Organization      string `json:"organization,omitempty"`
	StartDate         string `json:"startDate,omitempty"`
	EndDate           string `json:"endDate,omitempty"`
	Category          string `json:"category,omitempty"`
	Urgency           string `json:"urgency,omitempty"`
	Status            string `json:"status,omitempty"`
	MaxVolunteers     int    `json:"maxVolunteers,omitempty"`
	CurrentVolunteers int    `json:"currentVolunteers,omitempty"`
}

// OrganizationDashboard is the payload backing the organization portal
type OrganizationDashboard struct {
	Organization Organization `json:"organization"`
	Programs     []Program    `json:"programs"`
	Stats        struct {
		TotalPrograms     int `json:"totalPrograms"`
		ActivePrograms    int `json:"activePrograms"`
		CompletedPrograms int `json:"completedPrograms"`
		TotalApplications int `json:"totalApplications"`
	} `json:"stats"`
}
