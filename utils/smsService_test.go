package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fams/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendTagNumberSMS(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"authorization": r.URL.Query().Get("authorization"),
			"sender_id":     r.URL.Query().Get("sender_id"),
			"message":       r.URL.Query().Get("message"),
			"numbers":       r.URL.Query().Get("numbers"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	config.AppConfig = &config.Config{
		SMSApiURL: server.URL,
		SMSApiKey: "test-key",
		SMSSender: "CSSFARM",
	}

	err := SendTagNumberSMS("08012345678", "Amina", "FAMS-0042")
	require.NoError(t, err)
	assert.Equal(t, "test-key", gotQuery["authorization"])
	assert.Equal(t, "CSSFARM", gotQuery["sender_id"])
	assert.Equal(t, "08012345678", gotQuery["numbers"])
	assert.Contains(t, gotQuery["message"], "FAMS-0042")
	assert.Contains(t, gotQuery["message"], "Amina")
}

func TestSendTagNumberSMSGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	config.AppConfig = &config.Config{SMSApiURL: server.URL}

	err := SendTagNumberSMS("08012345678", "Amina", "FAMS-0042")
	assert.Error(t, err)
}

func TestSendTagNumberSMSSkipsWhenUnconfigured(t *testing.T) {
	config.AppConfig = &config.Config{}
	assert.NoError(t, SendTagNumberSMS("08012345678", "Amina", "FAMS-0042"))
}
