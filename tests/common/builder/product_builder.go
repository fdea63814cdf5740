//go:build unit || e2e

package builder

import (
	"time"

	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/pkg/ptr"
	"hof-drops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductBuilder struct {
	ID               uuid.UUID
	Name             string
	Slug             string
	PriceCents       int64
	IsLimitedEdition bool
	ReleaseDate      *time.Time
	DropEndDate      *time.Time
	IsActive         bool
	CreatedAt        time.Time
}

// NewProductBuilder starts from a limited drop that went live an hour ago.
func NewProductBuilder() *ProductBuilder {
	now := time.Now()
	return &ProductBuilder{
		ID:               uuid.New(),
		Name:             "Archive Hoodie",
		Slug:             "archive-hoodie",
		PriceCents:       15000,
		IsLimitedEdition: true,
		ReleaseDate:      ptr.Of(now.Add(-time.Hour)),
		DropEndDate:      ptr.Of(now.Add(24 * time.Hour)),
		IsActive:         true,
		CreatedAt:        now,
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) AsRegular() *ProductBuilder {
	p.IsLimitedEdition = false
	p.ReleaseDate = nil
	p.DropEndDate = nil
	return p
}

func (p *ProductBuilder) AsEnded() *ProductBuilder {
	p.ReleaseDate = ptr.Of(time.Now().Add(-48 * time.Hour))
	p.DropEndDate = ptr.Of(time.Now().Add(-time.Hour))
	return p
}

// Build methods
func (p *ProductBuilder) BuildInfra() sqlc.Products {
	return sqlc.Products{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		PriceCents:       p.PriceCents,
		IsLimitedEdition: p.IsLimitedEdition,
		ReleaseDate:      timestamptz(p.ReleaseDate),
		DropEndDate:      timestamptz(p.DropEndDate),
		IsActive:         p.IsActive,
		CreatedAt:        pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
	}
}

func (p *ProductBuilder) BuildRecord() queries.ProductRecord {
	return queries.ProductRecord{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		PriceCents:       p.PriceCents,
		IsLimitedEdition: p.IsLimitedEdition,
		ReleaseDate:      p.ReleaseDate,
		DropEndDate:      p.DropEndDate,
		IsActive:         p.IsActive,
	}
}

func timestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}
