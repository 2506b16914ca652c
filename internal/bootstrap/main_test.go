package bootstrap

import (
	"os"
	"testing"

	"github.com/qasyoun/qasyounextra/internal/pkg/auth"
)

func TestMain(m *testing.M) {
	auth.BcryptCost = auth.MinBcryptCost
	os.Exit(m.Run())
}
