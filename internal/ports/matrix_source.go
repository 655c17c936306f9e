package ports

import (
	"campus-route-service/internal/domain"
	"context"
)

// Port: a boundary for retrieving the campus distance matrix from a file,
// database or remote service.
type MatrixSource interface {
	LoadMatrix(ctx context.Context) (*domain.DistanceMatrix, error)
}

// Port: a boundary for loading landmark categories that replace the
// built-in taxonomy.
type TaxonomySource interface {
	LoadTaxonomy(ctx context.Context) ([]domain.LandmarkCategory, error)
}
