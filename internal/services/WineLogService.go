package services

import (
	"context"

	json "github.com/goccy/go-json"

	"wld/internal/models"
	"wld/internal/providers"
	"wld/internal/winelog"
	"wld/internal/winelog/interfaces"
)

type WineLogServiceInterface interface {
	Load(ctx context.Context) (models.Document, error)
	Save(ctx context.Context, date string, data json.RawMessage) error
	Import(ctx context.Context, data models.Document) error
	Stats(ctx context.Context) (*models.DerivedStats, error)
}

// WineLogService holds no state between requests; the remote document is
// the only shared resource. Every mutation is one read-transform-write
// sequence with no retry: a lost revision race surfaces to the caller.
type WineLogService struct {
	store  interfaces.StoreInterface
	logger providers.Logger
}

func NewWineLogService(store interfaces.StoreInterface, logger providers.Logger) WineLogServiceInterface {
	return &WineLogService{
		store:  store,
		logger: logger,
	}
}

func (ws *WineLogService) Load(ctx context.Context) (models.Document, error) {
	doc, _, err := ws.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (ws *WineLogService) Save(ctx context.Context, date string, data json.RawMessage) error {
	doc, rev, err := ws.store.Read(ctx)
	if err != nil {
		return err
	}

	// Whole-day overwrite, not a patch.
	doc[date] = data

	if _, err := ws.store.Write(ctx, doc, rev); err != nil {
		return err
	}
	ws.logger.Infof(providers.TypePost, "Saved record for %s", date)
	return nil
}

func (ws *WineLogService) Import(ctx context.Context, data models.Document) error {
	doc, rev, err := ws.store.Read(ctx)
	if err != nil {
		return err
	}

	// Shallow merge: imported dates overwrite, everything else stays.
	doc.Merge(data)

	if _, err := ws.store.Write(ctx, doc, rev); err != nil {
		return err
	}
	ws.logger.Infof(providers.TypePost, "Imported %d day(s)", len(data))
	return nil
}

func (ws *WineLogService) Stats(ctx context.Context) (*models.DerivedStats, error) {
	doc, _, err := ws.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return winelog.Summarize(doc), nil
}
