package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if err := c.Interest.validate(); err != nil {
		return fmt.Errorf("interest: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}
	return nil
}

func (s *SearchConfig) validate() error {
	if s.SimilarityThreshold < 0 || s.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold must be in [0, 1] (got %v)", s.SimilarityThreshold)
	}
	if s.CatalogScanLimit < 0 {
		return fmt.Errorf("catalog_scan_limit must be >= 0 (got %d)", s.CatalogScanLimit)
	}
	if s.DefaultLimit < 1 || s.DefaultLimit > 10 {
		return fmt.Errorf("default_limit must be in [1, 10] (got %d)", s.DefaultLimit)
	}
	if s.DefaultMinProb < 0 || s.DefaultMinProb > 100 {
		return fmt.Errorf("default_min_prob must be in [0, 100] (got %d)", s.DefaultMinProb)
	}
	return nil
}

func (i *InterestConfig) validate() error {
	if i.SweepWorkers < 1 {
		return fmt.Errorf("sweep_workers must be >= 1 (got %d)", i.SweepWorkers)
	}
	if i.ScanBatch < 1 {
		return fmt.Errorf("scan_batch must be >= 1 (got %d)", i.ScanBatch)
	}
	return nil
}
