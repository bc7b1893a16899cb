package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler            authHandler
	dashboardHandler       dashboardHandler
	settingsHandler        settingsHandler
	projectHandler         projectHandler
	featuredProjectHandler featuredProjectHandler
	categoryHandler        categoryHandler
	tagHandler             tagHandler
	contactHandler         contactHandler
	uploadHandler          uploadHandler
	publicHandler          publicHandler
}

// ActionResult is the uniform result shape of mutating admin operations: the
// caller always receives success plus either a message or a friendly error,
// never a raw failure.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}
