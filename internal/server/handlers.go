package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/haneul-labs/meritboard/internal/board"
	"github.com/haneul-labs/meritboard/internal/source"
	"github.com/haneul-labs/meritboard/pkg/conduct"
)

// Handlers provides the JSON API handlers.
type Handlers struct {
	board  *board.Board
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(b *board.Board, logger *slog.Logger) *Handlers {
	return &Handlers{board: b, logger: logger}
}

type recordJSON struct {
	Date    string            `json:"date,omitempty"`
	RawDate string            `json:"raw_date"`
	Month   int               `json:"month,omitempty"`
	Day     int               `json:"day,omitempty"`
	ID      string            `json:"id"`
	Groups  []string          `json:"groups"`
	Fields  map[string]string `json:"fields"`
}

type recordsResponse struct {
	Period  string       `json:"period"`
	Empty   bool         `json:"empty,omitempty"`
	Records []recordJSON `json:"records"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Columns []string `json:"columns,omitempty"`
}

// Periods lists the source's period names. ?by_month=true restricts the
// list to month-named periods, calendar order.
func (h *Handlers) Periods(w http.ResponseWriter, r *http.Request) {
	var (
		periods []string
		err     error
	)
	if r.URL.Query().Get("by_month") == "true" {
		periods, err = h.board.PeriodsByMonth(r.Context())
	} else {
		periods, err = h.board.Periods(r.Context())
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if periods == nil {
		periods = []string{}
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"periods": periods})
}

// Records returns a period's records. Query parameters narrow the result:
// date=YYYY-MM-DD matches a calendar date; day (with optional month) matches
// a day-of-month the way the day command does; from/to select an inclusive
// date window; grade/class constrain the group keys.
func (h *Handlers) Records(w http.ResponseWriter, r *http.Request) {
	period := chi.URLParam(r, "period")

	table, done := h.loadTable(w, r, period)
	if done {
		return
	}

	q := r.URL.Query()
	filter := queryFilter(q.Get("grade"), q.Get("class"))

	var records []conduct.Record
	switch {
	case q.Get("date") != "":
		date, err := time.Parse("2006-01-02", q.Get("date"))
		if err != nil {
			h.writeError(w, http.StatusBadRequest, errors.New("date must be YYYY-MM-DD"))
			return
		}
		records = conduct.ByCalendarDate(table, date)
	case q.Get("day") != "":
		day, err := strconv.Atoi(q.Get("day"))
		if err != nil {
			h.writeError(w, http.StatusBadRequest, errors.New("day must be a number"))
			return
		}
		month := table.Month
		if q.Get("month") != "" {
			month, err = strconv.Atoi(q.Get("month"))
			if err != nil {
				h.writeError(w, http.StatusBadRequest, errors.New("month must be a number"))
				return
			}
		}
		records = conduct.ByExactDay(table, month, day)
	case q.Get("from") != "" || q.Get("to") != "":
		if q.Get("from") == "" || q.Get("to") == "" {
			h.writeError(w, http.StatusBadRequest, errors.New("from and to must be used together"))
			return
		}
		start, err := time.Parse("2006-01-02", q.Get("from"))
		if err != nil {
			h.writeError(w, http.StatusBadRequest, errors.New("from must be YYYY-MM-DD"))
			return
		}
		end, err := time.Parse("2006-01-02", q.Get("to"))
		if err != nil {
			h.writeError(w, http.StatusBadRequest, errors.New("to must be YYYY-MM-DD"))
			return
		}
		records = conduct.ByDateRange(table, start, end, filter)
	default:
		records = conduct.ByGroup(table, filter)
	}

	h.writeJSON(w, http.StatusOK, recordsResponse{
		Period:  period,
		Records: toRecordJSON(records),
	})
}

// Days lists the distinct resolved days-of-month in a period.
func (h *Handlers) Days(w http.ResponseWriter, r *http.Request) {
	period := chi.URLParam(r, "period")
	table, done := h.loadTable(w, r, period)
	if done {
		return
	}
	days := conduct.DistinctDays(table)
	if days == nil {
		days = []int{}
	}
	h.writeJSON(w, http.StatusOK, map[string][]int{"days": days})
}

// Months lists the distinct resolved months in a period.
func (h *Handlers) Months(w http.ResponseWriter, r *http.Request) {
	period := chi.URLParam(r, "period")
	table, done := h.loadTable(w, r, period)
	if done {
		return
	}
	months := conduct.DistinctMonths(table)
	if months == nil {
		months = []int{}
	}
	h.writeJSON(w, http.StatusOK, map[string][]int{"months": months})
}

// Groups lists the distinct group-key values at ?position= (default 0).
func (h *Handlers) Groups(w http.ResponseWriter, r *http.Request) {
	period := chi.URLParam(r, "period")

	position := 0
	if p := r.URL.Query().Get("position"); p != "" {
		var err error
		position, err = strconv.Atoi(p)
		if err != nil || position < 0 || position >= conduct.GroupKeyCount {
			h.writeError(w, http.StatusBadRequest, errors.New("position out of range"))
			return
		}
	}

	table, done := h.loadTable(w, r, period)
	if done {
		return
	}
	values := conduct.DistinctGroupValues(table, position)
	if values == nil {
		values = []string{}
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"values": values})
}

// loadTable builds a period's table and handles the shared error mapping.
// An empty period is not an error: it becomes a 200 with the empty flag set
// and the response is written here, signalled by done=true.
func (h *Handlers) loadTable(w http.ResponseWriter, r *http.Request, period string) (*conduct.Table, bool) {
	table, err := h.board.Load(r.Context(), period)
	if err == nil {
		return table, false
	}

	switch {
	case errors.Is(err, source.ErrUnknownPeriod):
		h.writeError(w, http.StatusNotFound, errors.New("unknown period: "+period))
	case errors.Is(err, conduct.ErrEmptyTable):
		h.writeJSON(w, http.StatusOK, recordsResponse{
			Period:  period,
			Empty:   true,
			Records: []recordJSON{},
		})
	default:
		var missing *conduct.MissingColumnError
		if errors.As(err, &missing) {
			h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:   missing.Error(),
				Columns: missing.Columns,
			})
			break
		}
		h.writeError(w, http.StatusInternalServerError, err)
	}
	return nil, true
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func queryFilter(grade, class string) conduct.GroupFilter {
	var filter conduct.GroupFilter
	if grade != "" {
		filter = append(filter, conduct.GroupConstraint{Position: 0, Value: grade})
	}
	if class != "" {
		filter = append(filter, conduct.GroupConstraint{Position: 1, Value: class})
	}
	return filter
}

func toRecordJSON(records []conduct.Record) []recordJSON {
	out := make([]recordJSON, 0, len(records))
	for i := range records {
		rec := &records[i]
		j := recordJSON{
			RawDate: rec.RawDate,
			Month:   rec.Month,
			Day:     rec.Day,
			ID:      rec.ID,
			Groups:  rec.GroupKeys,
			Fields:  rec.Fields,
		}
		if rec.HasDate() {
			j.Date = rec.Date.Format("2006-01-02")
		}
		out = append(out, j)
	}
	return out
}
