package handlers_test

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"testing"

	"cmms-backend/internal/testutils"
)

// itoa renders an id for building request paths
func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// TestMain runs before all handler tests and ensures proper Docker cleanup
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Handler tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
