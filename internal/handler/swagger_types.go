package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ExecuteRequest represents the execute run request body.
type ExecuteRequest struct {
	DocumentText string `json:"document_text" binding:"required" example:"ACME Corp Invoice INV-2024-001234 dated 2024-12-15..."`
}

// SuggestRequest represents the field suggestion request body.
type SuggestRequest struct {
	DocumentType    string   `json:"document_type" binding:"required" example:"Invoice"`
	PrimaryGoal     string   `json:"primary_goal" example:"Extract Key Invoice Details"`
	SelectedDetails []string `json:"selected_details" example:"Invoice Number,Total Amount"`
	CustomDetails   []string `json:"custom_details" example:"Warehouse Code"`
}

// ShareRequest represents the share prompt request body.
type ShareRequest struct {
	Email   string `json:"email" binding:"required,email" example:"accounts@acme.com"`
	Subject string `json:"subject" example:"Extraction prompt for Q4 invoices"`
}

// --- Response Types ---

// PromptPreview represents the assembled prompt preview response.
type PromptPreview struct {
	Prompt string `json:"prompt" example:"You are an expert data extraction assistant..."`
}

// ExecutionResult represents the output of executing a prompt against a document.
type ExecutionResult struct {
	Output string `json:"output" example:"Invoice Number,Total Amount\nINV-2024-001234,289100.00"`
}

// SuggestionsResult represents suggested field labels.
type SuggestionsResult struct {
	Suggestions []string `json:"suggestions" example:"Vendor GSTIN,Due Date"`
}

// DownloadURLResponse represents a presigned artifact download URL.
type DownloadURLResponse struct {
	DownloadURL string `json:"download_url" example:"https://s3.amazonaws.com/promptpilot-artifacts/...?X-Amz-Signature=..."`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
