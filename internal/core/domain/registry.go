package domain

// Teacher is a registry entry used to attribute jobs to a teacher by name.
type Teacher struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DocumentType is a registry entry describing what kind of document a job is
// (exam, worksheet, handout, ...).
type DocumentType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
