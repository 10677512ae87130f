package system

// Application metadata shown on the root page and in the OpenAPI document.
const (
	AppName       = "Quoin"
	Version       = "0.1.0"
	Description   = "A backend application template: user CRUD over PostgreSQL."
	RepositoryURL = "https://github.com/quoinhq/quoin"
)
