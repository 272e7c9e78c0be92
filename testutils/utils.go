package testutils

import (
	"log"
	"net/http"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func SetupTests(m *testing.M) {
	initialGoroutineCount := runtime.NumGoroutine()

	result := m.Run()

	http.DefaultClient.CloseIdleConnections()
	// Loop for at most a second checking for goroutines leaks
	start := time.Now()
	var finalGoroutineCount int
	for time.Since(start) <= 1*time.Second {
		runtime.Gosched()
		finalGoroutineCount = runtime.NumGoroutine()
		if finalGoroutineCount == initialGoroutineCount {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if finalGoroutineCount != initialGoroutineCount {
		log.Printf("Detected a goroutine leak (%d before != %d after)", initialGoroutineCount, finalGoroutineCount)
		pprof.Lookup("goroutine").WriteTo(os.Stdout, 1)
		result = 1
	} else {
		log.Printf("No goroutines appear to have leaked (%d before == %d after)", initialGoroutineCount, finalGoroutineCount)
	}

	os.Exit(result)
}

func MakeTestLogger(t *testing.T) *zap.Logger {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	return logger
}

func LoadTestData(t *testing.T, filename string) []byte {
	_, root, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(root), "..")

	b, err := os.ReadFile(dir + "/testdata/" + filename)
	require.NoError(t, err)

	return b
}
