package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gamecharge/storefront/models"
	"gorm.io/gorm"
)

// Result reports what SeedIfEmpty did.
type Result struct {
	Seeded   bool
	Games    int
	Products int
}

func (r Result) String() string {
	if !r.Seeded {
		return "catalog already seeded"
	}
	return fmt.Sprintf("seeded %d games and %d products", r.Games, r.Products)
}

// Loader populates an empty catalog with the reference dataset.
type Loader struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewLoader(db *gorm.DB, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{db: db, log: log}
}

// SeedIfEmpty inserts the reference games and products unless at least one game
// already exists, in which case it writes nothing. The check looks at games only,
// so a catalog holding games without products is reported as seeded.
//
// All records are staged and validated first, then written in one transaction.
// Two concurrent calls on an empty store can both pass the check; callers that
// run it from several processes must accept a duplicate seed.
func (l *Loader) SeedIfEmpty(ctx context.Context) (Result, error) {
	catalog := models.NewCatalogRepository(l.db)
	n, err := catalog.CountGames(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("count games: %w", err)
	}
	if n > 0 {
		l.log.Debug("seed skipped", "games", n)
		return Result{}, nil
	}

	stagedGames, stagedProducts, err := stage()
	if err != nil {
		return Result{}, err
	}

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// ids only lives for the duration of this transaction.
		ids := make([]uint, len(stagedGames))
		for i := range stagedGames {
			if err := tx.Create(&stagedGames[i]).Error; err != nil {
				return fmt.Errorf("insert game %q: %w", stagedGames[i].Name, err)
			}
			ids[i] = stagedGames[i].ID
		}
		for i, p := range products {
			stagedProducts[i].GameID = ids[p.game]
			if err := tx.Create(&stagedProducts[i]).Error; err != nil {
				return fmt.Errorf("insert product %q: %w", stagedProducts[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{Seeded: true, Games: len(stagedGames), Products: len(stagedProducts)}
	l.log.Info("catalog seeded", "games", res.Games, "products", res.Products)
	return res, nil
}

// stage builds the records to insert. Product game ids are filled in at commit time.
func stage() ([]models.Game, []models.Product, error) {
	gs := make([]models.Game, len(games))
	for i, g := range games {
		gs[i] = models.Game{
			Name:          g.name,
			NameAr:        g.nameAr,
			Description:   g.description,
			DescriptionAr: g.descriptionAr,
			Image:         g.image,
			Category:      g.category,
			IsActive:      true,
		}
		if err := gs[i].Validate(); err != nil {
			return nil, nil, err
		}
	}

	ps := make([]models.Product, len(products))
	for i, p := range products {
		game := games[p.game]
		ps[i] = models.Product{
			Name:           p.name,
			NameAr:         p.nameAr,
			Description:    fmt.Sprintf("%s for %s", p.name, game.name),
			DescriptionAr:  fmt.Sprintf("%s للعبة %s", p.nameAr, game.nameAr),
			Price:          p.amount(),
			Currency:       currency,
			IsPopular:      p.popular,
			IsActive:       true,
			DeliveryTime:   p.deliveryTime,
			DeliveryTimeAr: p.deliveryTimeAr,
		}
		// Validate needs a game reference; any non-zero placeholder will do here.
		check := ps[i]
		check.GameID = uint(p.game) + 1
		if err := check.Validate(); err != nil {
			return nil, nil, err
		}
	}
	return gs, ps, nil
}
