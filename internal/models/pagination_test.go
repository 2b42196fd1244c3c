package models_test

import (
	"testing"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		size      int
		wantPages int
	}{
		{"empty", 0, 10, 0},
		{"exact", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"zero size", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := models.NewPage([]string{}, tt.total, 1, tt.size)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.total, page.Total)
		})
	}
}
