package common

// HealthServiceName is the service name reported by the gRPC health endpoint.
const HealthServiceName = "greeter"

// User-facing messages shared by the API and its clients.
const (
	MessageCredentialsRequired = "Username and password are required."
	MessageUsernameTaken       = "Username already exists."
	MessageInvalidCredentials  = "Invalid username or password."
	MessageInternal            = "Internal server error."
)
