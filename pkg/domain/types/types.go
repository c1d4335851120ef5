package types

// Version is the application version, embedded in the User-Agent of
// outbound GitHub API calls and the health check response.
const Version = "0.1.0"
