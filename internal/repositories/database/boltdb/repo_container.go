package boltdb

import (
	bolt "go.etcd.io/bbolt"

	portsrepo "github.com/printenterprise/pe_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every bolt-backed repository over one shared
// database handle.
func NewRepositoryProvider(db *bolt.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PrintJobRepo:     newBoltPrintJobRepository(db),
		ClassRepo:        newBoltClassRepository(db),
		TeacherRepo:      newBoltTeacherRepository(db),
		DocumentTypeRepo: newBoltDocumentTypeRepository(db),
		SettingsRepo:     newBoltSettingsRepository(db),
	}
}
