package winelog

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"wld/internal/github"
	"wld/internal/models"
	"wld/internal/providers"
	"wld/internal/structures"
	"wld/internal/winelog/interfaces"
)

// ErrRevisionConflict is returned by Write when the supplied revision is
// stale: another writer committed between our read and this write. The
// caller decides whether to re-read and merge; no retry happens here.
var ErrRevisionConflict = errors.New("document revision conflict")

// Store persists the Document as one JSON file in a GitHub repository,
// using blob SHAs as revision tokens. Every successful Write creates a
// permanent commit in the repository history.
type Store struct {
	client  *github.Client
	conf    *structures.Config
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewStore(client *github.Client, conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) interfaces.StoreInterface {
	return &Store{
		client:  client,
		conf:    conf,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *Store) Read(ctx context.Context) (models.Document, models.Revision, error) {
	gh := s.conf.Github

	start := time.Now()
	data, sha, err := s.client.GetFileContent(ctx, gh.Owner, gh.Repo, gh.FilePath, gh.Branch)
	s.metrics.ObserveStoreDuration("read", time.Since(start))

	if errors.Is(err, github.ErrNotFound) {
		// First run: the log file has not been created yet. Still a
		// successful read, so it counts.
		s.metrics.IncStoreReads()
		s.logger.Infof(providers.TypeApp, "Document %s not found, starting empty", gh.FilePath)
		return models.Document{}, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("reading document: %w", err)
	}
	s.metrics.IncStoreReads()

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, "", fmt.Errorf("parsing document: %w", err)
	}
	if doc == nil {
		doc = models.Document{}
	}

	s.metrics.SetDocumentDays(len(doc))
	return doc, models.Revision(sha), nil
}

func (s *Store) Write(ctx context.Context, doc models.Document, rev models.Revision) (models.Revision, error) {
	gh := s.conf.Github

	// Pretty-printed for diff-friendly repository history.
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing document: %w", err)
	}

	message := fmt.Sprintf("Update drink log: %s", time.Now().UTC().Format(time.RFC3339))

	start := time.Now()
	newSHA, err := s.client.PutFile(ctx, gh.Owner, gh.Repo, gh.FilePath, gh.Branch, payload, string(rev), message)
	s.metrics.ObserveStoreDuration("write", time.Since(start))

	if errors.Is(err, github.ErrConflict) {
		s.metrics.IncWriteConflicts()
		s.logger.Warnf(providers.TypePost, "Write lost revision race at %s", rev)
		return "", ErrRevisionConflict
	}
	if err != nil {
		return "", fmt.Errorf("writing document: %w", err)
	}

	s.metrics.IncStoreWrites()
	s.metrics.SetDocumentDays(len(doc))
	return models.Revision(newSHA), nil
}
