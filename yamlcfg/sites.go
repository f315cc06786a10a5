// Package yamlcfg loads site crawl profiles from a YAML file, so new
// sites can be added without recompiling.
package yamlcfg

import (
	"os"

	"github.com/pkruczek/mdharvest"
	"gopkg.in/yaml.v3"
)

type siteConfig struct {
	Name             string `yaml:"name"`
	BaseURL          string `yaml:"base_url"`
	IndexURL         string `yaml:"index_url"`
	CategorySelector string `yaml:"category_selector"`
	ArticleSelector  string `yaml:"article_selector"`
	TitleSelector    string `yaml:"title_selector"`
	ContentSelector  string `yaml:"content_selector"`
	PagerSelector    string `yaml:"pager_selector"`
	MinContentLen    int    `yaml:"min_content_len"`
}

type fileConfig struct {
	Sites []siteConfig `yaml:"sites"`
}

// LoadSites reads site profiles from a YAML file and validates each one.
func LoadSites(path string) ([]mdharvest.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mdharvest.Errorf(mdharvest.ENOTFOUND, "read config %s: %v", path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, mdharvest.Errorf(mdharvest.EINVALID, "parse config %s: %v", path, err)
	}
	if len(cfg.Sites) == 0 {
		return nil, mdharvest.Errorf(mdharvest.EINVALID, "config %s defines no sites", path)
	}

	sites := make([]mdharvest.Site, 0, len(cfg.Sites))
	for _, sc := range cfg.Sites {
		site := mdharvest.Site{
			Name:             sc.Name,
			BaseURL:          sc.BaseURL,
			IndexURL:         sc.IndexURL,
			CategorySelector: sc.CategorySelector,
			ArticleSelector:  sc.ArticleSelector,
			TitleSelector:    sc.TitleSelector,
			ContentSelector:  sc.ContentSelector,
			PagerSelector:    sc.PagerSelector,
			MinContentLen:    sc.MinContentLen,
		}
		if err := site.Validate(); err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, nil
}
