package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// AnalysisGuard marks ideas whose AI analysis is currently running, so a
// double-submitted analyze request is rejected instead of racing the first.
// Entries expire on their own in case a run dies without releasing.
type AnalysisGuard struct {
	cache *cache.Cache
}

func NewAnalysisGuard() *AnalysisGuard {
	// Analysis calls block on two provider round-trips; 5 minutes is far
	// beyond any healthy run.
	c := cache.New(5*time.Minute, 1*time.Minute)
	return &AnalysisGuard{
		cache: c,
	}
}

// TryAcquire reports true when no analysis is running for the idea and
// marks one as started.
func (g *AnalysisGuard) TryAcquire(ideaId uuid.UUID) bool {
	err := g.cache.Add(ideaId.String(), struct{}{}, cache.DefaultExpiration)
	return err == nil
}

func (g *AnalysisGuard) Release(ideaId uuid.UUID) {
	g.cache.Delete(ideaId.String())
}
