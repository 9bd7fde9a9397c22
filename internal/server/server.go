package server

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"gazetteer/internal/countries"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Handler serves the collection endpoint contract over an in-memory dataset:
// GET /api/countries with limit, offset, one optional substring filter
// parameter keyed by field name, and sortField/sortDirection. The total
// match count (ignoring pagination) travels in the X-Total-Count header.
type Handler struct {
	items  []countries.Country
	router *mux.Router
	log    zerolog.Logger
}

// NewHandler builds a Handler over the given dataset. A nil dataset serves
// the built-in one.
func NewHandler(items []countries.Country, log zerolog.Logger) *Handler {
	if items == nil {
		items = Dataset()
	}
	h := &Handler{items: items, log: log}
	r := mux.NewRouter()
	r.HandleFunc("/api/countries", h.list).Methods(http.MethodGet)
	h.router = r
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := intParam(query.Get("limit"), defaultLimit)
	if err != nil || limit < 1 || limit > maxLimit {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	offset, err := intParam(query.Get("offset"), 0)
	if err != nil || offset < 0 {
		http.Error(w, "invalid offset", http.StatusBadRequest)
		return
	}

	matched := h.items
	for _, field := range countries.Fields() {
		text := strings.TrimSpace(query.Get(field))
		if text == "" {
			continue
		}
		matched = filterByField(matched, field, text)
		break // at most one filter field applies
	}

	if sortField := strings.TrimSpace(query.Get("sortField")); sortField != "" {
		if !countries.ValidField(sortField) {
			http.Error(w, "invalid sortField", http.StatusBadRequest)
			return
		}
		descending := false
		switch strings.ToLower(query.Get("sortDirection")) {
		case "", "asc":
		case "desc":
			descending = true
		default:
			http.Error(w, "invalid sortDirection", http.StatusBadRequest)
			return
		}
		matched = sortByField(matched, sortField, descending)
	}

	total := len(matched)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	h.log.Debug().
		Int("offset", offset).
		Int("limit", limit).
		Int("total", total).
		Msg("list countries")

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(countries.TotalCountHeader, strconv.Itoa(total))
	_ = json.NewEncoder(w).Encode(countries.ListResponse{Items: matched[start:end]})
}

func intParam(raw string, fallback int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// filterByField keeps records whose field contains text, case-insensitive.
func filterByField(items []countries.Country, field, text string) []countries.Country {
	needle := strings.ToLower(text)
	out := make([]countries.Country, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Field(field)), needle) {
			out = append(out, it)
		}
	}
	return out
}

// sortByField returns a sorted copy; the input is never reordered.
func sortByField(items []countries.Country, field string, descending bool) []countries.Country {
	sorted := make([]countries.Country, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			i, j = j, i
		}
		return strings.ToLower(sorted[i].Field(field)) < strings.ToLower(sorted[j].Field(field))
	})
	return sorted
}
