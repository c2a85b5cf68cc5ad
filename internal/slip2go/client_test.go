package slip2go

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xlog "github.com/kasetpay/go-slip-topup/internal/common/log"
	"github.com/kasetpay/go-slip-topup/internal/config"
	"github.com/kasetpay/go-slip-topup/internal/models"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func testConfig(baseURL string) config.Config {
	return config.Config{
		Slip2Go: config.Slip2Go{
			BaseURL:       baseURL,
			SecretKey:     "test-secret",
			Timeout:       5 * time.Second,
			AccountNameTH: "นางสาว ปลายฟ้า ม",
			AccountNameEN: "MS PLAIFA M",
			AccountNumber: "1234567890",
		},
	}
}

func TestClient_Verify_Success(t *testing.T) {
	var gotAuth, gotPayload string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, verifyPath, r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "slip.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		img, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("fake-png-bytes"), img)

		// the payload part has no filename, it arrives as a form value
		gotPayload = r.FormValue("payload")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": "200000",
			"message": "success",
			"data": {
				"amount": 250.75,
				"transRef": "2024070412345678",
				"receiver": {"account": {"name": "นางสาว ปลายฟ้า ม"}}
			}
		}`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL))

	res, err := client.Verify(context.Background(), []byte("fake-png-bytes"), "slip.png")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-secret", gotAuth)

	var payload verifyPayload
	require.NoError(t, json.Unmarshal([]byte(gotPayload), &payload))
	assert.True(t, payload.CheckDuplicate)
	require.Len(t, payload.CheckReceiver, 1)
	assert.Equal(t, config.DefaultAccountType, payload.CheckReceiver[0].AccountType)
	assert.Equal(t, "นางสาว ปลายฟ้า ม", payload.CheckReceiver[0].AccountNameTH)

	result := models.InterpretSlip(res)
	assert.Equal(t, models.SlipCodeOK, result.Code)
	assert.Equal(t, "2024070412345678", result.TransactionRef)
	assert.True(t, result.HasAmount())
}

func TestClient_Verify_CreatedStatusAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"code": "200200", "message": "qr success"}`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL))

	res, err := client.Verify(context.Background(), []byte("img"), "slip.jpg")
	require.NoError(t, err)
	assert.Equal(t, "qr success", res.Message)
}

func TestClient_Verify_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid secret"}`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL))

	_, err := client.Verify(context.Background(), []byte("img"), "slip.jpg")
	require.Error(t, err)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, http.StatusUnauthorized, provErr.StatusCode)
	assert.Contains(t, provErr.Body, "invalid secret")
}

func TestClient_Verify_UnparsableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL))

	_, err := client.Verify(context.Background(), []byte("img"), "slip.jpg")

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, http.StatusOK, provErr.StatusCode)
}

func TestClient_Verify_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := New(testConfig(server.URL))

	_, err := client.Verify(context.Background(), []byte("img"), "slip.jpg")

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Error(t, provErr.Err)
}

func Test_contentTypeFor(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{filename: "slip.png", want: "image/png"},
		{filename: "SLIP.PNG", want: "image/png"},
		{filename: "slip.jpg", want: "image/jpeg"},
		{filename: "slip.jpeg", want: "image/jpeg"},
		{filename: "noextension", want: "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, contentTypeFor(tt.filename))
		})
	}
}
