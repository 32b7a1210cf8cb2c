package jobs

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"time"

	log "github.com/Ptt-Alertor/logrus"

	"github.com/Haven-Estates/haven-api/models/blog"
	"github.com/Haven-Estates/haven-api/models/page"
	"github.com/Haven-Estates/haven-api/models/property"
)

// SitemapGenerator rebuilds sitemap.xml from pages, properties and
// blogs. Wired on an hourly cron from main.
type SitemapGenerator struct {
	BaseURL string
	OutDir  string

	Pages      page.Repository
	Properties property.Repository
	Blogs      blog.Repository
}

// NewSitemapGenerator creates the hourly sitemap job
func NewSitemapGenerator(baseURL, outDir string, pages page.Repository, properties property.Repository, blogs blog.Repository) *SitemapGenerator {
	return &SitemapGenerator{
		BaseURL:    baseURL,
		OutDir:     outDir,
		Pages:      pages,
		Properties: properties,
		Blogs:      blogs,
	}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Run implements cron.Job
func (s *SitemapGenerator) Run() {
	set := &urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs, sitemapURL{Loc: s.BaseURL + "/"})

	pages, err := s.Pages.List()
	if err != nil {
		log.WithError(err).Error("sitemap: list pages")
		return
	}
	for _, p := range pages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     s.BaseURL + "/" + p.Name,
			LastMod: p.UpdatedAt.Format(time.DateOnly),
		})
	}

	properties, err := s.Properties.List()
	if err != nil {
		log.WithError(err).Error("sitemap: list properties")
		return
	}
	for _, p := range properties {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     s.BaseURL + "/properties/" + strconv.Itoa(p.ID),
			LastMod: p.UpdatedAt.Format(time.DateOnly),
		})
	}

	blogs, err := s.Blogs.List()
	if err != nil {
		log.WithError(err).Error("sitemap: list blogs")
		return
	}
	for _, b := range blogs {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     s.BaseURL + "/blogs/" + strconv.Itoa(b.ID),
			LastMod: b.UpdatedAt.Format(time.DateOnly),
		})
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		log.WithError(err).Error("sitemap: marshal")
		return
	}
	data = append([]byte(xml.Header), data...)

	if err := os.MkdirAll(s.OutDir, 0755); err != nil {
		log.WithError(err).Error("sitemap: mkdir")
		return
	}
	out := filepath.Join(s.OutDir, "sitemap.xml")
	if err := os.WriteFile(out, data, 0644); err != nil {
		log.WithError(err).Error("sitemap: write")
		return
	}

	log.WithField("urls", len(set.URLs)).Info("sitemap regenerated")
}
