package jobs

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Haven-Estates/haven-api/models/blog"
	"github.com/Haven-Estates/haven-api/models/page"
	"github.com/Haven-Estates/haven-api/models/property"
)

func TestSitemapGeneratorRun(t *testing.T) {
	pages := page.NewMock()
	properties := property.NewMock()
	blogs := blog.NewMock()

	pages.Create(&page.Page{Name: "about", Title: "About"})
	pages.Create(&page.Page{Name: "services", Title: "Services"})
	properties.Create(&property.Property{Title: "Villa", Price: 1})
	blogs.Create(&blog.Blog{Title: "Market update"})

	dir := t.TempDir()
	job := NewSitemapGenerator("https://havenestates.com", dir, pages, properties, blogs)
	job.Run()

	data, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	if err != nil {
		t.Fatalf("sitemap not written: %v", err)
	}

	var set struct {
		URLs []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	if err := xml.Unmarshal(data, &set); err != nil {
		t.Fatalf("sitemap not parseable: %v", err)
	}

	// root + 2 pages + 1 property + 1 blog
	if len(set.URLs) != 5 {
		t.Fatalf("urls = %d, want 5", len(set.URLs))
	}

	wantLocs := []string{
		"https://havenestates.com/",
		"https://havenestates.com/about",
		"https://havenestates.com/services",
		"https://havenestates.com/properties/1",
		"https://havenestates.com/blogs/1",
	}
	got := map[string]bool{}
	for _, u := range set.URLs {
		got[u.Loc] = true
	}
	for _, loc := range wantLocs {
		if !got[loc] {
			t.Errorf("missing url %v", loc)
		}
	}

	if !strings.HasPrefix(string(data), "<?xml") {
		t.Error("sitemap missing XML header")
	}
}
