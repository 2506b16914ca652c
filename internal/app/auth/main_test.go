package auth

import (
	"os"
	"testing"

	pkgAuth "github.com/qasyoun/qasyounextra/internal/pkg/auth"
)

func TestMain(m *testing.M) {
	pkgAuth.BcryptCost = pkgAuth.MinBcryptCost
	os.Exit(m.Run())
}
