package repository

// Backend names accepted by the store configuration.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)
