package interfaces

import (
	"context"

	"wld/internal/models"
)

// StoreInterface is the optimistic-concurrency contract over the remote
// document. Read returns the revision the document was fetched at; Write
// only succeeds if that revision is still current.
type StoreInterface interface {
	Read(ctx context.Context) (models.Document, models.Revision, error)
	Write(ctx context.Context, doc models.Document, rev models.Revision) (models.Revision, error)
}
