package utils_test

import (
	"context"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeouts(t *testing.T) {
	for name, fn := range map[string]func(context.Context) (context.Context, context.CancelFunc){
		"row":    utils.WithDBTimeout,
		"report": utils.WithReportTimeout,
	} {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := fn(context.Background())
			defer cancel()

			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(utils.ReportDBTimeout), deadline, utils.ReportDBTimeout)
		})
	}

	t.Run("keeps an earlier caller deadline", func(t *testing.T) {
		parent, cancelParent := context.WithTimeout(context.Background(), time.Second)
		defer cancelParent()

		ctx, cancel := utils.WithReportTimeout(parent)
		defer cancel()

		parentDeadline, _ := parent.Deadline()
		deadline, _ := ctx.Deadline()
		assert.Equal(t, parentDeadline, deadline)
	})
}
