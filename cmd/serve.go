package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/patterndex/analyze"
	"github.com/jsphweid/patterndex/beatmap"
	"github.com/jsphweid/patterndex/constants"
	"github.com/jsphweid/patterndex/db"
	"github.com/jsphweid/patterndex/logger"
	"github.com/jsphweid/patterndex/measure"
	"github.com/jsphweid/patterndex/model"
	"github.com/jsphweid/patterndex/report"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.Open(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		h := NewHandler(store, newAnalyzer(), tuning.GetDominanceRatio())
		logger.Get().Info("listening", slog.String("addr", cfg.Addr), slog.String("store", cfg.Store))
		return http.ListenAndServe(cfg.Addr, h)
	},
}

type server struct {
	store    db.Store
	analyzer *analyze.Analyzer
	ratio    float64
}

// NewHandler builds the API router wrapped in CORS handling.
func NewHandler(store db.Store, analyzer *analyze.Analyzer, ratio float64) http.Handler {
	s := &server{store: store, analyzer: analyzer, ratio: ratio}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	router.HandleFunc("/reports/{id}", s.handleGetReport).Methods(http.MethodGet)
	router.HandleFunc("/reports", s.handleListReports).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Get().Error("writing response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func analysisStatus(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, beatmap.ErrMalformed):
		return http.StatusBadRequest
	case errors.Is(err, analyze.ErrUnsupportedMode),
		errors.Is(err, measure.ErrEmptyTimingSegments),
		errors.Is(err, measure.ErrInvalidBeatLength):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constants.MaxChartSize))
	if err != nil {
		writeError(w, analysisStatus(err), err)
		return
	}

	b, err := beatmap.Parse(bytes.NewReader(raw))
	if err != nil {
		writeError(w, analysisStatus(err), err)
		return
	}
	res, err := s.analyzer.Beatmap(b)
	if err != nil {
		writeError(w, analysisStatus(err), err)
		return
	}
	rep := report.Build(b, res, raw, s.ratio)

	if store, _ := strconv.ParseBool(r.URL.Query().Get("store")); store {
		if err := s.store.SaveReport(r.Context(), rep); err != nil {
			logger.Get().Error("saving report", slog.String("id", rep.ID), slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rep, err := s.store.GetReport(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *server) handleListReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var reports []model.Report
	var err error
	if checksum := q.Get("checksum"); checksum != "" {
		reports, err = s.store.FindByChecksum(r.Context(), checksum)
	} else {
		limit, _ := strconv.Atoi(q.Get("limit"))
		if limit <= 0 {
			limit = 20
		}
		reports, err = s.store.ListReports(r.Context(), limit)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if reports == nil {
		reports = []model.Report{}
	}
	writeJSON(w, http.StatusOK, model.ReportListResponse{Reports: reports})
}
