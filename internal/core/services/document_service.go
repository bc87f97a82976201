package services

import (
	"context"
	"encoding/base64"
	"net/http"
	"sync"

	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
)

// DocumentService converts uploaded files into data-URI base64 blobs
// and appends them to an account's document list.
//
// Appends to one account are serialized through a per-account lock and
// the store appends atomically, so concurrent uploads can never
// overwrite each other: N files always produce N entries. (The product
// this replaces re-wrote the whole list from a possibly stale copy per
// file, which could drop entries.)
type DocumentService struct {
	sessions portssvc.SessionSvcFacade

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewDocumentService(sessions portssvc.SessionSvcFacade) portssvc.DocumentSvcFacade {
	return &DocumentService{
		sessions: sessions,
		locks:    make(map[int64]*sync.Mutex),
	}
}

var _ portssvc.DocumentSvcFacade = (*DocumentService)(nil)

func (s *DocumentService) accountLock(accountID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[accountID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[accountID] = l
	}
	return l
}

// EncodeDataURI renders file bytes as a data-URI base64 string. The
// declared media type is trusted when present and sniffed otherwise;
// there is no size limit and no duplicate detection.
func EncodeDataURI(contentType string, data []byte) string {
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// IngestDocuments encodes each file independently and appends all
// results in selection order in a single partial update.
func (s *DocumentService) IngestDocuments(ctx context.Context, accountID int64, files []dto.UploadedFile) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	encoded := make([]string, len(files))
	for i, f := range files {
		encoded[i] = EncodeDataURI(f.ContentType, f.Data)
	}

	lock := s.accountLock(accountID)
	lock.Lock()
	defer lock.Unlock()

	patch := domain.AccountPatch{AppendDocuments: encoded}
	if _, err := s.sessions.UpdatePartial(ctx, accountID, patch); err != nil {
		return nil, err
	}
	return encoded, nil
}

// ListDocuments returns the account's stored document list.
func (s *DocumentService) ListDocuments(ctx context.Context, accountID int64) ([]string, error) {
	account, err := s.sessions.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account.Documents, nil
}
