package services

import (
	portsrepo "github.com/printenterprise/pe_backend/internal/core/ports/repositories"
	portssvc "github.com/printenterprise/pe_backend/internal/core/ports/services"
)

// NewServiceContainer wires the service layer once at process start. The
// class ledger is built first because the print-job ledger drives balance
// deltas through it; the notification dispatcher is an external collaborator
// supplied by the caller.
func NewServiceContainer(repos portsrepo.RepositoryProvider, notifier portssvc.NotificationDispatcher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Notifier = notifier
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Class = NewClassService(repos.ClassRepo, repos.PrintJobRepo)
	container.PrintJob = NewPrintJobService(repos.PrintJobRepo, container.Class, container.Settings, notifier)
	container.Teacher = NewTeacherService(repos.TeacherRepo)
	container.DocumentType = NewDocumentTypeService(repos.DocumentTypeRepo)
	container.Reporting = NewReportingService(repos.PrintJobRepo, repos.ClassRepo)

	return container
}
