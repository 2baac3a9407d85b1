package main

import (
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitForShutdown_ListenErrorIsFatal(t *testing.T) {
	listenErr := make(chan error, 1)
	quit := make(chan os.Signal, 1)
	bind := errors.New("listen tcp :3001: bind: address already in use")
	listenErr <- bind

	assert.ErrorIs(t, waitForShutdown(listenErr, quit), bind)
}

func TestWaitForShutdown_ListenReturnsNil(t *testing.T) {
	listenErr := make(chan error, 1)
	listenErr <- nil

	assert.Error(t, waitForShutdown(listenErr, make(chan os.Signal)))
}

func TestWaitForShutdown_Signal(t *testing.T) {
	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM

	assert.NoError(t, waitForShutdown(make(chan error), quit))
}
