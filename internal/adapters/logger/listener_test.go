package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/venvkit/internal/adapters/logger"
	"go.trai.ch/venvkit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestStepListener_ForwardsLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Info("collecting").Times(1)
	mockLogger.EXPECT().Warn("+ pytest").Times(1)

	l := logger.NewListener(mockLogger, "test")
	l.Info("collecting")
	l.Warn("+ pytest")

	assert.False(t, l.Failed())
	assert.Empty(t, l.Fatals())
}

func TestStepListener_Fatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Error(gomock.Any()).Times(2)

	l := logger.NewListener(mockLogger, "")
	l.Fatal("no Python installation found")
	l.Fatal("second")

	assert.True(t, l.Failed())
	assert.Equal(t, []string{"no Python installation found", "second"}, l.Fatals())
}

func TestStepListener_AttributesStep(t *testing.T) {
	lg, buf := newTestLogger(t)

	l := logger.NewListener(lg, "build")
	l.Info("hello")

	assert.Equal(t, "build ● hello\n", buf.String())
}
