package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"pricecomp-service/internal/config"
	"pricecomp-service/internal/perfume/engine"
	"pricecomp-service/internal/perfume/export"
	"pricecomp-service/internal/perfume/model"
)

// Analyze handles POST /analyze: multipart form with a "store" price list,
// one or more "competitors" price lists and an optional min_score. Responds
// with the flat report table plus per-decision counts. Zero matches is a
// valid 200, not an error.
func Analyze(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)

		in, err := parseAnalysisRequest(r, cfg)
		if err != nil {
			writeError(w, err)
			return
		}

		matches := engine.Run(in.Mine, in.Competitors, in.MinScore)
		resp := analysisResponse{
			Report:   engine.BuildReport(matches),
			Summary:  engine.Summarize(matches),
			MinScore: in.MinScore,
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Int("my_products", len(in.Mine)).
			Int("competitor_files", len(in.Competitors)).
			Int("matches", len(matches)).
			Int("min_score", in.MinScore).
			Dur("elapsed", time.Since(start)).
			Msg("analyze done")
	}
}

// Export handles POST /analyze/export?format=xlsx|csv: same form as
// /analyze, streams the report as a downloadable spreadsheet.
func Export(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)

		in, err := parseAnalysisRequest(r, cfg)
		if err != nil {
			writeError(w, err)
			return
		}

		matches := engine.Run(in.Mine, in.Competitors, in.MinScore)
		rep := engine.BuildReport(matches)

		format := r.URL.Query().Get("format")
		if format == "" {
			format = "xlsx"
		}
		stamp := time.Now().Format("20060102_1504")

		var body []byte
		var ctype, fname string
		switch format {
		case "xlsx":
			body, err = export.Excel(rep)
			ctype = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
			fname = fmt.Sprintf("report_%s.xlsx", stamp)
		case "csv":
			body, err = export.CSV(rep)
			ctype = "text/csv; charset=utf-8"
			fname = fmt.Sprintf("report_%s.csv", stamp)
		default:
			http.Error(w, "unknown format: "+format, http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Error().Err(err).Str("format", format).Msg("export failed")
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", ctype)
		w.Header().Set("Content-Disposition", `attachment; filename="`+fname+`"`)
		if _, err := w.Write(body); err != nil {
			log.Error().Err(err).Msg("write body")
			return
		}

		log.Info().
			Str("format", format).
			Int("matches", len(matches)).
			Dur("elapsed", time.Since(start)).
			Msg("export done")
	}
}

type analysisResponse struct {
	Report   model.Report   `json:"report"`
	Summary  engine.Summary `json:"summary"`
	MinScore int            `json:"minScore"`
}

func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

// Missing files and unreadable tables are all caller mistakes: 400 with a
// named reason in the body, nothing gets matched.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
