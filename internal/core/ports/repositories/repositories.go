package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container at process start.
type RepositoryProvider struct {
	PrintJobRepo     PrintJobRepositoryFacade
	ClassRepo        ClassRepositoryFacade
	TeacherRepo      TeacherRepositoryFacade
	DocumentTypeRepo DocumentTypeRepositoryFacade
	SettingsRepo     SettingsRepositoryFacade
}
