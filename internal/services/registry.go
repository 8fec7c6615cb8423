package services

// ServiceContainer bundles all services for dependency injection into the
// handler layer.
type ServiceContainer struct {
	AuthService      AuthService
	UserService      UserService
	SkillService     SkillService
	RequestService   RequestService
	DashboardService DashboardService
}
