package domain

import "context"

// Store bundles the repositories over one backing database handle and is the
// unit-of-work boundary: InTx yields a Store whose repositories all run on a
// single transaction, committed when fn returns nil.
//
// Workflow operations that read a guard condition and then write must do both
// through the transactional Store so the guard cannot race the write.
type Store interface {
	Persons() PersonRepository
	Competences() CompetenceRepository
	Profiles() ProfileRepository
	Applications() ApplicationRepository

	InTx(ctx context.Context, fn func(Store) error) error
}
