package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/tempconv/internal/domain"
	"github.com/runoshun/tempconv/internal/infra/logging"
	"github.com/runoshun/tempconv/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowTable_Execute(t *testing.T) {
	uc := usecase.NewShowTable(logging.Discard())

	out, err := uc.Execute(context.Background(), usecase.ShowTableInput{})
	require.NoError(t, err)
	assert.Equal(t, domain.CommonTable(), out.Rows)
	assert.Len(t, out.Rows, 15)
}
