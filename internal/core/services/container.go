package services

import (
	portsrepo "github.com/Shalini-Dasari/TrustMed/internal/core/ports/repositories"
	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/core/session"
)

// NewServiceContainer wires up all application services over the
// repository container and the shared session context.
func NewServiceContainer(repos *portsrepo.RepositoryContainer, sess *session.Context) *portssvc.ServiceContainer {
	sessionSvc := NewSessionService(repos.Account, sess)
	return &portssvc.ServiceContainer{
		Session:  sessionSvc,
		Document: NewDocumentService(sessionSvc),
		Ledger:   NewLedgerService(repos.Ledger, repos.Account, sess),
		Bill:     NewBillService(repos.Bill),
	}
}
