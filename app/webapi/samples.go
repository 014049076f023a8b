package webapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-pkgz/rest"

	"github.com/umputun/tg-moderator/app/storage"
)

// SampleReader lists training samples, implemented by storage.Samples
type SampleReader interface {
	List(ctx context.Context, t storage.SampleType, limit int) ([]storage.Sample, error)
}

// samplesHandler handles GET /api/samples/{type}?limit=N, exports samples collected by moderators
func (s *Server) samplesHandler(w http.ResponseWriter, r *http.Request) {
	sampleType := storage.SampleType(r.PathValue("type"))
	if sampleType != storage.SampleTypeSpam && sampleType != storage.SampleTypeHam {
		renderError(w, http.StatusBadRequest, fmt.Errorf("unknown sample type %q", sampleType), "invalid sample type")
		return
	}
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}
	samples, err := s.Samples.List(r.Context(), sampleType, limit)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err, "can't get samples")
		return
	}
	rest.RenderJSON(w, rest.JSON{"type": sampleType, "samples": samples})
}
