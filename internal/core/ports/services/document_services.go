package services

import (
	"context"

	"github.com/Shalini-Dasari/TrustMed/internal/dto"
)

// DocumentSvcFacade ingests uploaded files into an account's document list.
type DocumentSvcFacade interface {
	// IngestDocuments encodes each file as a base64 data URI and
	// appends the results to the account's document list. Appends for
	// one account are serialized; N files always yield N entries.
	IngestDocuments(ctx context.Context, accountID int64, files []dto.UploadedFile) ([]string, error)

	// ListDocuments returns the account's document list in stored order.
	ListDocuments(ctx context.Context, accountID int64) ([]string, error)
}
