package handlers

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	SkillHandler     *SkillHandler
	RequestHandler   *RequestHandler
	DashboardHandler *DashboardHandler
}
