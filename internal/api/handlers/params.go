package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// PathInt64 читает положительный int64 из переменной пути
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path %s=%q: %w", name, raw, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("path %s=%q: must be positive", name, raw)
	}
	return v, nil
}

// PathInt читает int из переменной пути
func PathInt(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("path %s=%q: %w", name, raw, err)
	}
	return v, nil
}

// PathDate читает тройку year/month/day из пути.
// ok=false, если тройка указана не полностью: вызывающий использует сегодняшнюю дату.
func PathDate(r *http.Request) (year, month, day int, ok bool, err error) {
	vars := mux.Vars(r)
	if vars["year"] == "" || vars["month"] == "" || vars["day"] == "" {
		return 0, 0, 0, false, nil
	}
	if year, err = PathInt(r, "year"); err != nil {
		return 0, 0, 0, false, err
	}
	if month, err = PathInt(r, "month"); err != nil {
		return 0, 0, 0, false, err
	}
	if day, err = PathInt(r, "day"); err != nil {
		return 0, 0, 0, false, err
	}
	return year, month, day, true, nil
}
