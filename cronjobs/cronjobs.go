package cronjobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"go-sentinel/cache"
	"go-sentinel/signal"
	"go-sentinel/types"
)

const warmTimeout = 30 * time.Second

// watchlist of diseases whose default-region signal is kept warm.
var watchlist = []struct {
	slug     string
	schedule string
}{
	// Staggered so the warm-ups don't land on the same tick.
	{"flu", "2-59/10 * * * *"},
	{"dengue", "4-59/10 * * * *"},
	{"covid", "6-59/10 * * * *"},
}

// InitCronJobs schedules the cache sweep and the watchlist warm-ups.
// src should be the cached source so warm-ups actually populate the cache.
func InitCronJobs(src signal.Source, signals *cache.SignalCache) *cron.Cron {
	log.Println("Starting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	_, err := c.AddFunc("*/10 * * * *", func() {
		removed := signals.Sweep()
		log.Printf("CronJob: cache sweep removed %d expired entries (%d live)", removed, signals.Len())
	})
	if err != nil {
		log.Println("Error scheduling cache sweep:", err)
	}

	for _, w := range watchlist {
		slug := w.slug
		_, err := c.AddFunc(w.schedule, func() {
			log.Printf("CronJob: warming signal for %s", slug)
			warmSignal(src, slug)
		})
		if err != nil {
			log.Printf("Error scheduling warm-up for %s: %v", slug, err)
		}
	}

	c.Start()
	return c
}

func warmSignal(src signal.Source, slug string) {
	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	profile, _ := types.ProfileFor(slug)
	if _, err := src.Signal(ctx, profile, types.DefaultCity, types.DefaultGeo); err != nil {
		log.Printf("Error warming signal for %s: %v", slug, err)
	}
}
