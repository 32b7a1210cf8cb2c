package jobs

import (
	log "github.com/Ptt-Alertor/logrus"

	"github.com/Haven-Estates/haven-api/models/contact"
	"github.com/Haven-Estates/haven-api/models/property"
)

// CacheWarmer refreshes the Redis caches backing the public pages so a
// cold cache never lands on a visitor request.
type CacheWarmer struct {
	Properties property.Repository
	Contact    contact.Repository
}

// NewCacheWarmer creates the periodic cache refresh job
func NewCacheWarmer(properties property.Repository, contactRepo contact.Repository) *CacheWarmer {
	return &CacheWarmer{Properties: properties, Contact: contactRepo}
}

// Run implements cron.Job
func (c *CacheWarmer) Run() {
	if err := property.WarmListCache(c.Properties); err != nil {
		log.WithError(err).Error("warm property listing cache")
	}
	if err := contact.WarmCache(c.Contact); err != nil {
		log.WithError(err).Error("warm contact cache")
	}
}
