package commands

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/syllab/syllab-cli/pkg/config"
	"github.com/syllab/syllab-cli/pkg/gateway"
	"github.com/syllab/syllab-cli/pkg/models"
)

// fetchCurriculum pulls one course's curriculum for the non-interactive
// commands. Logging stays off; these commands report errors on stderr.
func fetchCurriculum(ctx context.Context, courseKey string) (models.Curriculum, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return models.Curriculum{}, err
	}

	gw := gateway.New(cfg.APIBaseURL, cfg.RequestTimeout, nil)
	cur, err := gw.FetchCurriculum(ctx, courseKey)
	if err != nil {
		return models.Curriculum{}, fmt.Errorf("fetch curriculum %q: %w", courseKey, err)
	}
	return cur, nil
}
