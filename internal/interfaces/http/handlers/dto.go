package handlers

// Request bodies are validated by gin's binding layer (validator tags);
// deeper invariants are enforced by the domain entities.

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8,max=128,strongpassword"`
	Role     string `json:"role" binding:"omitempty,oneof=admin analyst user"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin analyst user"`
}

type CreateIncidentRequest struct {
	Category    string `json:"category" binding:"max=100"`
	Severity    string `json:"severity" binding:"required,oneof=low medium high critical"`
	Description string `json:"description" binding:"required,max=5000"`
	Reporter    string `json:"reporter" binding:"max=100"`
}

type UpdateIncidentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open investigating resolved"`
}

type CreateTicketRequest struct {
	Subject    string `json:"subject" binding:"required,max=200"`
	Issue      string `json:"issue" binding:"max=5000"`
	Priority   string `json:"priority" binding:"required,oneof=low medium high critical"`
	AssignedTo string `json:"assigned_to" binding:"max=100"`
}

type UpdateTicketRequest struct {
	Status     string `json:"status" binding:"omitempty,oneof=open in_progress closed"`
	Priority   string `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	AssignedTo string `json:"assigned_to" binding:"max=100"`
}

type CreateDatasetRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Owner string `json:"owner" binding:"required,max=100"`
}

type UpdateDatasetRequest struct {
	Name  string `json:"name" binding:"omitempty,max=200"`
	Owner string `json:"owner" binding:"omitempty,max=100"`
}

type AssistantRequest struct {
	Query string `json:"query" binding:"required,max=500"`
}

// Response payloads.

type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type IncidentResponse struct {
	ID          uint   `json:"id"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Reporter    string `json:"reporter,omitempty"`
}

type TicketResponse struct {
	ID         uint    `json:"id"`
	Subject    string  `json:"subject"`
	Issue      string  `json:"issue,omitempty"`
	Priority   string  `json:"priority"`
	Status     string  `json:"status"`
	CreatedBy  string  `json:"created_by,omitempty"`
	AssignedTo string  `json:"assigned_to,omitempty"`
	CreatedOn  string  `json:"created_on"`
	ResolvedOn *string `json:"resolved_on,omitempty"`
}

type DatasetResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

type AssistantResponse struct {
	Reply     string `json:"reply"`
	ReplyHTML string `json:"reply_html,omitempty"`
}
