package repositories

// RepositoryProvider holds the persistence and collaborator handles needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	Ledger LedgerStore
	Audit  AuditSink
	Pumps  PumpRegistry
}
