package dto_test

import (
	"testing"

	"hotel/internal/domains/report/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRequest_Bounds(t *testing.T) {
	t.Run("open window", func(t *testing.T) {
		req := dto.ReportRequest{}

		start, end, err := req.Bounds()

		require.NoError(t, err)
		assert.Nil(t, start)
		assert.Nil(t, end)
	})

	t.Run("closed window", func(t *testing.T) {
		req := dto.ReportRequest{Start: "2025-07-01", End: "2025-07-31"}

		start, end, err := req.Bounds()

		require.NoError(t, err)
		assert.Equal(t, "2025-07-01", *dto.FormatBound(start))
		assert.Equal(t, "2025-07-31", *dto.FormatBound(end))
	})

	t.Run("inverted window", func(t *testing.T) {
		req := dto.ReportRequest{Start: "2025-07-31", End: "2025-07-01"}

		_, _, err := req.Bounds()

		assert.Error(t, err)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := dto.ReportRequest{Start: "07/01/2025"}

		_, _, err := req.Bounds()

		assert.Error(t, err)
	})
}

func TestFormatBound_Nil(t *testing.T) {
	assert.Nil(t, dto.FormatBound(nil))
}
