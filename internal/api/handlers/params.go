package handlers

import (
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
)

func pagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	return page, pageSize
}

// dateRange reads fechaInicio and fechaFin (YYYY-MM-DD). Both are optional.
func dateRange(r *http.Request) (models.DateRange, error) {
	var rng models.DateRange
	query := r.URL.Query()

	if raw := query.Get("fechaInicio"); raw != "" {
		from, err := models.ParseDate(raw)
		if err != nil {
			return rng, errors.BadRequestError("Invalid fechaInicio").WithDetail(err.Error())
		}
		rng.From = from
	}

	if raw := query.Get("fechaFin"); raw != "" {
		to, err := models.ParseDate(raw)
		if err != nil {
			return rng, errors.BadRequestError("Invalid fechaFin").WithDetail(err.Error())
		}
		rng.To = to
	}

	return rng, nil
}

func optionalFloat(r *http.Request, key string) (*float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.BadRequestError("Invalid " + key)
	}

	return &v, nil
}
