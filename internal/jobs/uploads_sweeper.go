package jobs

import (
	"context"
	"log"
	"path"

	"github.com/google/uuid"

	"crackershop/internal/repositories"
	"crackershop/internal/storage"
)

// UploadsSweeper reports image files no product row references. Uploads that
// preceded a failed validation and images replaced on update stay on disk;
// the sweeper only makes the leak visible, it never deletes.
type UploadsSweeper struct {
	products repositories.ProductRepository
	store    storage.ImageStore
}

func NewUploadsSweeper(products repositories.ProductRepository, store storage.ImageStore) *UploadsSweeper {
	return &UploadsSweeper{
		products: products,
		store:    store,
	}
}

func (s *UploadsSweeper) Sweep(ctx context.Context) ([]string, error) {
	runID := uuid.NewString()

	stored, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	referenced, err := s.products.ListImagePaths(ctx)
	if err != nil {
		return nil, err
	}

	refSet := make(map[string]struct{}, len(referenced))
	for _, p := range referenced {
		refSet[path.Base(p)] = struct{}{}
	}

	var orphans []string
	for _, name := range stored {
		if _, ok := refSet[name]; !ok {
			orphans = append(orphans, name)
		}
	}

	if len(orphans) == 0 {
		log.Printf("uploads sweep %s: no orphaned files", runID)
		return nil, nil
	}

	log.Printf("uploads sweep %s: %d orphaned upload(s)", runID, len(orphans))
	for _, name := range orphans {
		log.Printf("uploads sweep %s: %s is not referenced by any product", runID, name)
	}
	return orphans, nil
}
