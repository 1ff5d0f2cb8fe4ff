package main

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	oldFormatter := log.StandardLogger().Formatter
	oldLevel := log.GetLevel()
	defer func() {
		log.SetFormatter(oldFormatter)
		log.SetLevel(oldLevel)
	}()

	setupLogger()

	formatter, ok := log.StandardLogger().Formatter.(*log.TextFormatter)
	require.True(t, ok, "expected text formatter")
	require.True(t, formatter.FullTimestamp)
	require.Equal(t, log.InfoLevel, log.GetLevel())
}
