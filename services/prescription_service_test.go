package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAnalyzeWrapsVisionFailure(t *testing.T) {
	server := chatServer(t, "", http.StatusInternalServerError)
	defer server.Close()
	t.Setenv("VISION_API_URL", server.URL)

	svc := NewPrescriptionService(NewVisionService(zap.NewNop()), nil, nil, zap.NewNop())
	_, _, err := svc.Analyze([]byte{0x89, 'P', 'N', 'G'}, "image/png")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVisionAnalysis)
}
