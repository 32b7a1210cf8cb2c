package api

import (
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/Haven-Estates/haven-api/auth"
	"github.com/Haven-Estates/haven-api/connections"
	"github.com/Haven-Estates/haven-api/media"
)

var testAuthService *auth.Service

func TestMain(m *testing.M) {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	connections.SetRedisAddr(mr.Addr())

	testAuthService = auth.NewService("test-secret", time.Hour, false)

	dir, err := os.MkdirTemp("", "haven-media")
	if err != nil {
		panic(err)
	}
	store, err := media.NewDiskStore(dir, "http://localhost:9090")
	if err != nil {
		panic(err)
	}

	Setup(testAuthService, store)

	code := m.Run()

	mr.Close()
	os.RemoveAll(dir)
	os.Exit(code)
}
