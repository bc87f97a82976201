package repositories

// RepositoryContainer holds instances of all the repository facades.
// It is assembled once at startup and handed to the service layer.
type RepositoryContainer struct {
	Account AccountRepositoryFacade
	Ledger  LedgerRepositoryFacade
	Bill    BillRepositoryFacade
}
