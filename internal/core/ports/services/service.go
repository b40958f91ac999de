package services

// ServiceContainer bundles the service facades wired at process start and
// injected into the HTTP handlers. There are no ambient singletons; everything
// reaches its dependencies through this container.
type ServiceContainer struct {
	PrintJob     PrintJobSvcFacade
	Class        ClassSvcFacade
	Teacher      TeacherSvcFacade
	DocumentType DocumentTypeSvcFacade
	Settings     SettingsSvcFacade
	Reporting    ReportingSvcFacade
	Notifier     NotificationDispatcher
}
