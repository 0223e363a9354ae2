package greeting

// Message is the fixed greeting payload. The service exists to serve this
// one constant; nothing may mutate it after process start.
const Message = "Hello from FastAPI in EKS!"

// Data models the greeting record returned by the root route.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello from FastAPI in EKS!"`
}

// GetOutput is the response wrapper for the greeting endpoint.
type GetOutput struct {
	Body Data
}
