package repositories

import (
	"os"
	"testing"

	xlog "github.com/kasetpay/go-slip-topup/internal/common/log"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}
