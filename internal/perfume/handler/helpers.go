package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"pricecomp-service/internal/config"
	"pricecomp-service/internal/fileio"
	"pricecomp-service/internal/perfume/engine"
	"pricecomp-service/internal/perfume/loader"
	"pricecomp-service/internal/perfume/model"
)

// analysisInput is everything the engine needs for one run, parsed out of
// the multipart form. Nothing is retained between requests.
type analysisInput struct {
	Mine        []model.Product
	Competitors []engine.Competitor
	MinScore    int
}

// parseAnalysisRequest reads the "store" file, every "competitors" file and
// the threshold from the form. Missing files are the run-level hard
// failures; a file that fails to parse is reported with its filename.
func parseAnalysisRequest(r *http.Request, cfg config.Config) (analysisInput, error) {
	var in analysisInput

	if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
		return in, fmt.Errorf("bad multipart form: %w", err)
	}
	defer r.Body.Close()

	headerRow := atoi(r.FormValue("header_row"), 1)
	in.MinScore = engine.ClampMinScore(atoi(r.FormValue("min_score"), cfg.MinScore))

	store, storeHdr, err := r.FormFile("store")
	if err != nil {
		return in, engine.ErrNoStoreFile
	}
	defer store.Close()

	storeTable, err := fileio.ReadAny(store, storeHdr.Filename, headerRow)
	if err != nil {
		return in, fmt.Errorf("failed to read %s: %w", storeHdr.Filename, err)
	}
	in.Mine = loader.Load(storeTable)

	if r.MultipartForm == nil || len(r.MultipartForm.File["competitors"]) == 0 {
		return in, engine.ErrNoCompetitorFiles
	}
	for _, fh := range r.MultipartForm.File["competitors"] {
		f, err := fh.Open()
		if err != nil {
			return in, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
		}
		table, err := fileio.ReadAny(f, fh.Filename, headerRow)
		f.Close()
		if err != nil {
			return in, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
		}
		in.Competitors = append(in.Competitors, engine.Competitor{
			Label:    sourceLabel(fh.Filename),
			Products: loader.Load(table),
		})
	}
	return in, nil
}

// sourceLabel is the uploaded filename without its extension.
func sourceLabel(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
